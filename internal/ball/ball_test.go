package ball

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/rng"
	"github.com/coverageeng/snap-engine/internal/vector"
)

func TestClassifyDepth(t *testing.T) {
	assert.Equal(t, DepthShort, ClassifyDepth(5))
	assert.Equal(t, DepthIntermediate, ClassifyDepth(10))
	assert.Equal(t, DepthDeep, ClassifyDepth(20))
}

func TestThrowTo_LeadTimeMatchesFlightSpeed(t *testing.T) {
	from := vector.V2{X: 26.665, Y: 20}
	receiver := &model.Player{
		Position: vector.V2{X: 26.665, Y: 30},
		Velocity: vector.V2{},
	}
	_, leadTime := ThrowTo(from, receiver)
	assert.InDelta(t, 10.0/Speed, leadTime, 1e-9)
}

func TestAdvance_MovesBallAlongVelocity(t *testing.T) {
	b := &model.Ball{Position: vector.V2{X: 0, Y: 0}, Velocity: vector.V2{X: Speed, Y: 0}}
	Advance(b, 1.0)
	assert.InDelta(t, Speed, b.Position.X, 1e-9)
}

func TestHasArrived_WithinTolerance(t *testing.T) {
	b := &model.Ball{Position: vector.V2{X: 10, Y: 10}}
	assert.True(t, HasArrived(b, vector.V2{X: 10.5, Y: 10}))
	assert.False(t, HasArrived(b, vector.V2{X: 12, Y: 10}))
}

func TestOpenness_ClampsToZeroAndHundred(t *testing.T) {
	assert.Equal(t, 0.0, Openness(-5))
	assert.Equal(t, 100.0, Openness(10))
}

func TestCatchProbability_IsClampedToUnitInterval(t *testing.T) {
	p := CatchProbability(5, model.RouteFlat, 1.5, 1.5)
	assert.LessOrEqual(t, p, 1.0)
	assert.GreaterOrEqual(t, p, 0.0)
}

func TestNearestDefender_PicksClosest(t *testing.T) {
	near := &model.Player{ID: "near", Position: vector.V2{X: 26, Y: 20}}
	far := &model.Player{ID: "far", Position: vector.V2{X: 26, Y: 40}}
	best, dist := NearestDefender(vector.V2{X: 26, Y: 21}, []*model.Player{far, near})
	assert.Equal(t, "near", best.ID)
	assert.InDelta(t, 1.0, dist, 1e-9)
}

func TestResolve_WideOpenAlwaysRollsCatchOrIncomplete(t *testing.T) {
	src := rng.New(1)
	res := Resolve(
		vector.V2{X: 26, Y: 20},
		vector.V2{X: 10, Y: 0},
		30, 0.5,
		1.0,
		src,
	)
	assert.Equal(t, model.OutcomeCatch, res.Outcome)
}

func TestResolve_ZeroCatchProbabilityNeverCatches(t *testing.T) {
	src := rng.New(1)
	res := Resolve(
		vector.V2{X: 26, Y: 20},
		vector.V2{X: 26, Y: 40},
		30, 0.5,
		0.0,
		src,
	)
	assert.NotEqual(t, model.OutcomeCatch, res.Outcome)
}
