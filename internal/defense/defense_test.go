package defense

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

func TestReactionTime_FacingReceiverAndStarBothShrinkTheTimer(t *testing.T) {
	base := ReactionTime(&model.Player{Type: model.CB}, false)
	facing := ReactionTime(&model.Player{Type: model.CB}, true)
	star := ReactionTime(&model.Player{Type: model.CB, IsStar: true}, false)

	assert.Equal(t, base-HipRecognitionBonus, facing)
	assert.Equal(t, base-StarBonusMin, star)
}

func TestReactionTime_UnknownTypeFallsBackToDefault(t *testing.T) {
	assert.Equal(t, 0.30, ReactionTime(&model.Player{Type: model.WR}, false))
}

func TestReactionTime_NeverGoesNegative(t *testing.T) {
	r := ReactionTime(&model.Player{Type: model.CB, IsStar: true}, true)
	assert.GreaterOrEqual(t, r, 0.0)
}

func TestComputeDesiredPosition_NoResponsibilityHoldsPosition(t *testing.T) {
	d := &model.Player{Position: vector.V2{X: 10, Y: 10}}
	pos := ComputeDesiredPosition(d, &World{})
	assert.Equal(t, d.Position, pos)
}

func TestComputeDesiredPosition_BallCarrierWithinRallyDistanceOverridesAssignment(t *testing.T) {
	d := &model.Player{
		Position:               vector.V2{X: 0, Y: 0},
		MaxSpeed:                10,
		CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespZone, Zone: &model.Zone{Center: vector.V2{X: 40, Y: 40}}},
	}
	w := &World{HasBallCarrier: true, BallCarrierPos: vector.V2{X: 1, Y: 1}}
	pos := ComputeDesiredPosition(d, w)
	assert.True(t, pos.X > 0 || pos.Y > 0, "defender should step toward the nearby ball carrier rather than its zone landmark")
}

func TestComputeDesiredPosition_OffTechniqueBacksUpWhenReceiverIsFar(t *testing.T) {
	d := &model.Player{
		Position:               vector.V2{X: 0, Y: 0},
		MaxSpeed:                10,
		Technique:               model.TechOff,
		CoverageResponsibility:  &model.CoverageResponsibility{Kind: model.RespMan, ManTargetID: "WR1"},
	}
	target := &model.Player{ID: "WR1", Position: vector.V2{X: 0, Y: 10}}
	w := &World{Receivers: []*model.Player{target}}
	pos := ComputeDesiredPosition(d, w)
	assert.True(t, d.IsBackpedaling)
	assert.Greater(t, pos.Y, 0.0)
}

func TestComputeDesiredPosition_OffTechniqueTransitionsToTrailWhenCushionBreaks(t *testing.T) {
	d := &model.Player{
		Position:               vector.V2{X: 0, Y: 0},
		MaxSpeed:                10,
		Technique:               model.TechOff,
		CoverageResponsibility:  &model.CoverageResponsibility{Kind: model.RespMan, ManTargetID: "WR1"},
	}
	target := &model.Player{ID: "WR1", Position: vector.V2{X: 0, Y: 1.5}}
	w := &World{Receivers: []*model.Player{target}}
	ComputeDesiredPosition(d, w)
	assert.Equal(t, model.TechTrail, d.Technique)
	assert.True(t, d.IsTransitioning)
}

func TestComputeDesiredPosition_BlitzTechniqueMovesTowardTheQB(t *testing.T) {
	d := &model.Player{
		Position:               vector.V2{X: 0, Y: 0},
		MaxSpeed:                10,
		CoverageResponsibility:  &model.CoverageResponsibility{Kind: model.RespBlitz},
	}
	w := &World{QBPosition: vector.V2{X: 0, Y: 5}}
	pos := ComputeDesiredPosition(d, w)
	assert.Greater(t, pos.Y, 0.0)
}

func TestPalms_CornerTakesNumberTwoWhenItBreaksOutside(t *testing.T) {
	corner := &model.Player{ID: "CB"}
	safety := &model.Player{ID: "FS"}
	r1 := &model.Player{ID: "WR1"}
	r2 := &model.Player{
		ID: "WR2",
		Route: &model.Route{Points: []model.RoutePoint{
			{Time: 1, Offset: vector.V2{X: 3, Y: 5}, IsBreak: true},
		}},
	}

	Palms(corner, safety, r1, r2)
	assert.Equal(t, "WR2", corner.CoverageResponsibility.ManTargetID)
	assert.Equal(t, "WR1", safety.CoverageResponsibility.ManTargetID)
}

func TestPalms_SafetyMatchesNumberTwoVerticalWhenNoOutsideBreak(t *testing.T) {
	corner := &model.Player{ID: "CB"}
	safety := &model.Player{ID: "FS"}
	r2 := &model.Player{
		ID: "WR2",
		Route: &model.Route{Points: []model.RoutePoint{
			{Time: 1, Offset: vector.V2{X: 0, Y: 12}, IsBreak: false},
		}},
	}

	Palms(corner, safety, nil, r2)
	assert.Equal(t, "WR2", safety.CoverageResponsibility.ManTargetID)
	assert.Nil(t, corner.CoverageResponsibility)
}
