package blitz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/rng"
)

func TestDecideBlitz_Cover0AlwaysBlitzes(t *testing.T) {
	src := rng.New(7)
	defenders := []*model.Player{
		{ID: "cb1", CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespBlitz}},
	}
	pkg, blitzing := DecideBlitz(model.Cover0, defenders, src)
	assert.True(t, blitzing)
	assert.NotNil(t, pkg)
}

func TestBuildPackage_CapsAtSixRushers(t *testing.T) {
	var defenders []*model.Player
	for i := 0; i < 8; i++ {
		defenders = append(defenders, &model.Player{
			ID:                     string(rune('a' + i)),
			CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespBlitz},
		})
	}
	pkg := BuildPackage(defenders)
	assert.LessOrEqual(t, len(pkg.Rushers), maxRushers)
	assert.Len(t, pkg.Rushers, 6)
}

func TestBuildPackage_IgnoresNonBlitzDefenders(t *testing.T) {
	defenders := []*model.Player{
		{ID: "man1", CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespMan}},
		{ID: "blitz1", CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespBlitz}},
	}
	pkg := BuildPackage(defenders)
	assert.Len(t, pkg.Rushers, 1)
	assert.Equal(t, "blitz1", pkg.Rushers[0].DefenderID)
}

func TestEvaluatePressure_Levels(t *testing.T) {
	budget := SackBudgetDefault // 5.0
	level, _ := EvaluatePressure(0, budget)
	assert.Equal(t, PressureClean, level)

	level, _ = EvaluatePressure(4, budget)
	assert.Equal(t, PressurePressured, level)

	level, _ = EvaluatePressure(4.9, budget)
	assert.Equal(t, PressureCollapsed, level)
}

func TestIsSack_RequiresBallStillHeldAtBudget(t *testing.T) {
	assert.True(t, IsSack(5.0, 5.0, model.BallHeld))
	assert.False(t, IsSack(5.0, 5.0, model.BallThrown))
	assert.False(t, IsSack(4.9, 5.0, model.BallHeld))
}

func TestEffectiveSackBudget_ReducesAndFloors(t *testing.T) {
	assert.Equal(t, SackBudgetDefault, EffectiveSackBudget(SackBudgetDefault, false))
	assert.InDelta(t, 3.5, EffectiveSackBudget(SackBudgetDefault, true), 1e-9)
	assert.Equal(t, SackBudgetRangeMin, EffectiveSackBudget(SackBudgetRangeMin+1.0, true))
}
