package qbmove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

func TestNewState_UnknownDropFallsBackToDefault(t *testing.T) {
	s := NewState(model.QBDropType("bogus"), 0, vector.V2{})
	assert.Equal(t, model.QBMovementTable[DefaultDrop].TotalTiming, s.Config.TotalTiming)
}

func TestPositionAt_BeforeFirstWaypointReturnsStart(t *testing.T) {
	start := vector.V2{X: 10, Y: 20}
	s := NewState(model.QBDrop5Step, 0, start)
	assert.Equal(t, start, PositionAt(s, -1))
}

func TestPositionAt_AtCompletionMatchesDeclaredDepth(t *testing.T) {
	start := vector.V2{X: 10, Y: 20}
	s := NewState(model.QBDrop5Step, 0, start)
	pos := PositionAt(s, 1.8)
	assert.Equal(t, start.Y-7, pos.Y, "5-step drop lands 7 yards behind the start point")
}

func TestPositionAt_PastCompletionClampsToFinalWaypoint(t *testing.T) {
	start := vector.V2{X: 10, Y: 20}
	s := NewState(model.QBDrop5Step, 0, start)
	pos := PositionAt(s, 100)
	assert.Equal(t, start.Y-7, pos.Y)
}

func TestPositionAt_InterpolatesPlayActionBootLaterally(t *testing.T) {
	start := vector.V2{X: 10, Y: 20}
	s := NewState(model.QBDropPABootRight, 0, start)

	mid := PositionAt(s, 0.6)
	require.Equal(t, start.Y-2, mid.Y)
	require.Equal(t, start.X, mid.X)

	end := PositionAt(s, 2.2)
	assert.Equal(t, start.X+6, end.X)
	assert.Equal(t, start.Y-6, end.Y)

	between := PositionAt(s, 1.4)
	assert.True(t, between.X > start.X && between.X < start.X+6)
}

func TestIsInThrowingPosition_HalfwayThroughTheDropThreshold(t *testing.T) {
	s := NewState(model.QBDrop5Step, 0, vector.V2{})
	assert.False(t, IsInThrowingPosition(s, 0.89))
	assert.True(t, IsInThrowingPosition(s, 0.9))
}

func TestIsInThrowingPosition_NilStateIsNeverInThrowingPosition(t *testing.T) {
	assert.False(t, IsInThrowingPosition(nil, 100))
}
