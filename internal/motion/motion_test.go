package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

func TestBuildPath_DirectionFollowsStartingSideOfCenter(t *testing.T) {
	qb := vector.V2{X: vector.CenterX, Y: 0}

	left := BuildPath(model.MotionJet, vector.V2{X: vector.CenterX - 10, Y: 0}, qb)
	assert.Greater(t, left.End.X, left.Start.X, "jet motion from the left side runs toward +X")

	right := BuildPath(model.MotionJet, vector.V2{X: vector.CenterX + 10, Y: 0}, qb)
	assert.Less(t, right.End.X, right.Start.X, "jet motion from the right side runs toward -X")
}

func TestBuildPath_AcrossMotionEndsOnTheMirroredXCoordinate(t *testing.T) {
	start := vector.V2{X: vector.CenterX - 15, Y: 5}
	m := BuildPath(model.MotionAcross, start, vector.V2{})
	assert.Equal(t, vector.FieldWidth-start.X, m.End.X)
	assert.True(t, m.CrossesFormation)
}

func TestBuildPath_ReturnMotionEndsBackAtStart(t *testing.T) {
	start := vector.V2{X: vector.CenterX - 10, Y: 5}
	m := BuildPath(model.MotionReturn, start, vector.V2{X: vector.CenterX, Y: 0})
	assert.Equal(t, start, m.End)
	assert.Len(t, m.Path, 3)
}

func TestBuildPath_CrossesFormationOnlyWhenEndpointsStraddleCenter(t *testing.T) {
	noCross := BuildPath(model.MotionGlide, vector.V2{X: vector.CenterX - 10, Y: 0}, vector.V2{})
	assert.False(t, noCross.CrossesFormation)

	cross := BuildPath(model.MotionFly, vector.V2{X: vector.CenterX - 2, Y: 0}, vector.V2{})
	assert.True(t, cross.CrossesFormation)
}

func TestBuildPath_DurationMatchesConfiguredTable(t *testing.T) {
	m := BuildPath(model.MotionOrbit, vector.V2{X: vector.CenterX - 10, Y: 0}, vector.V2{})
	assert.Equal(t, model.MotionDuration[model.MotionOrbit], m.Duration)
}

func TestCoverageResponse_Cover1CrossingMotionTriggersRockAndRoll(t *testing.T) {
	m := &model.Motion{PlayerID: "WR1", End: vector.V2{X: vector.CenterX + 5, Y: 10}}
	safety := &model.Player{ID: "FS", Type: model.S, Position: vector.V2{X: vector.CenterX, Y: 32}}

	targets, execTime := CoverageResponse(model.Cover1, true, m, []*model.Player{safety})
	assert.Equal(t, 1.1, execTime)
	_, moved := targets["FS"]
	assert.True(t, moved)
}

func TestCoverageResponse_Cover0LocksManDefenderToMotionEndX(t *testing.T) {
	m := &model.Motion{PlayerID: "WR1", End: vector.V2{X: vector.CenterX + 12, Y: 5}}
	man := &model.Player{
		ID:       "CB1",
		Position: vector.V2{X: vector.CenterX - 3, Y: 5},
		CoverageResponsibility: &model.CoverageResponsibility{
			Kind: model.RespMan, ManTargetID: "WR1",
		},
	}
	targets, execTime := CoverageResponse(model.Cover0, false, m, []*model.Player{man})
	assert.Equal(t, 0.5, execTime)
	assert.Equal(t, m.End.X, targets["CB1"].X)
	assert.Equal(t, man.Position.Y, targets["CB1"].Y)
}

func TestCoverageResponse_UnrecognizedCoverageProducesNoResponse(t *testing.T) {
	m := &model.Motion{PlayerID: "WR1", End: vector.V2{X: vector.CenterX, Y: 5}}
	_, execTime := CoverageResponse(model.CoverageType("made-up"), false, m, nil)
	assert.Equal(t, 0.5, execTime)
}

func TestCoverageResponse_PatternMatchProducesNoImmediateTargets(t *testing.T) {
	m := &model.Motion{PlayerID: "WR1", End: vector.V2{X: vector.CenterX, Y: 5}}
	lb := &model.Player{ID: "LB1", Type: model.LB, Position: vector.V2{X: vector.CenterX, Y: 10}}
	targets, execTime := CoverageResponse(model.Cover4, true, m, []*model.Player{lb})
	assert.Empty(t, targets)
	assert.Equal(t, 0.6, execTime)
}
