package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	a := V2{X: 0, Y: 0}
	b := V2{X: 3, Y: 4}
	assert.InDelta(t, 5.0, Distance(a, b), 1e-9)
}

func TestMoveToward_NeverOvershoots(t *testing.T) {
	current := V2{X: 0, Y: 0}
	target := V2{X: 10, Y: 0}

	next := MoveToward(current, target, 3)
	assert.InDelta(t, 3.0, next.X, 1e-9)

	arrived := MoveToward(current, target, 20)
	assert.Equal(t, target, arrived)
}

func TestMoveToward_WithinEpsilonSnapsToTarget(t *testing.T) {
	current := V2{X: 5, Y: 5}
	target := V2{X: 5, Y: 5}
	assert.Equal(t, target, MoveToward(current, target, 1))
}

func TestClampToField_ClampsOutOfBoundsCoordinates(t *testing.T) {
	clamped := ClampToField(V2{X: -5, Y: 200})
	assert.Equal(t, 0.0, clamped.X)
	assert.Equal(t, FieldLength, clamped.Y)

	over := ClampToField(V2{X: FieldWidth + 1, Y: FieldWidth + 1})
	assert.Equal(t, FieldWidth, over.X)
}

func TestNormalize_ZeroVectorReturnsZero(t *testing.T) {
	assert.Equal(t, V2{}, V2{}.Normalize())
}

func TestEaseInOutQuad_ClampsAndIsMonotonic(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutQuad(-1))
	assert.Equal(t, 1.0, EaseInOutQuad(2))
	assert.Less(t, EaseInOutQuad(0.25), EaseInOutQuad(0.75))
}

func TestBezierQuadratic_EndpointsMatchInputs(t *testing.T) {
	start := V2{X: 0, Y: 0}
	ctrl := V2{X: 5, Y: 10}
	end := V2{X: 10, Y: 0}

	assert.Equal(t, start, BezierQuadratic(start, ctrl, end, 0))
	assert.Equal(t, end, BezierQuadratic(start, ctrl, end, 1))
}
