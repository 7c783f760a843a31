package zonecoord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverageeng/snap-engine/internal/formation"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

func deepZoneDefender(id string, y float64) *model.Player {
	return &model.Player{
		ID:       id,
		Position: vector.V2{X: vector.CenterX, Y: y},
		CoverageResponsibility: &model.CoverageResponsibility{
			DefenderID: id, Kind: model.RespZone,
			Zone: &model.Zone{Name: "deep-middle", Center: vector.V2{X: vector.CenterX, Y: y}, Width: 30, Height: 10, Depth: 20},
		},
	}
}

func TestComputeLandmarks_ThirdsSpanTheField(t *testing.T) {
	l := ComputeLandmarks()
	assert.InDelta(t, vector.FieldWidth/2, l.ThirdMiddle, 1e-9)
	assert.True(t, l.ThirdLeft < l.ThirdMiddle)
	assert.True(t, l.ThirdMiddle < l.ThirdRight)
}

func TestCoordinate_DeeperThanDeepestPushesSafetyBehindReceiver(t *testing.T) {
	fs := deepZoneDefender("FS", 30)
	receivers := []*model.Player{
		{ID: "WR1", Position: vector.V2{X: vector.CenterX, Y: 33}},
	}
	Coordinate([]*model.Player{fs}, receivers, &formation.Analysis{}, 20)
	assert.GreaterOrEqual(t, fs.Position.Y, 33+model.DeepZoneCushion)
}

func TestCoordinate_OverlappingZoneDefendersProduceAHandoffPair(t *testing.T) {
	a := &model.Player{ID: "LB1", Position: vector.V2{X: vector.CenterX - 4, Y: 20},
		CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespZone, Zone: &model.Zone{Center: vector.V2{X: vector.CenterX - 4, Y: 20}, Depth: 5}}}
	b := &model.Player{ID: "LB2", Position: vector.V2{X: vector.CenterX + 4, Y: 20},
		CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespZone, Zone: &model.Zone{Center: vector.V2{X: vector.CenterX + 4, Y: 20}, Depth: 5}}}
	pairs := Coordinate([]*model.Player{a, b}, nil, &formation.Analysis{}, 20)
	assert.Len(t, pairs, 1)
	assert.InDelta(t, vector.CenterX, pairs[0].Midpoint.X, 1e-9)
}

func TestCoordinate_FarApartZoneDefendersProduceNoHandoff(t *testing.T) {
	a := &model.Player{ID: "LB1", Position: vector.V2{X: 5, Y: 20},
		CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespZone, Zone: &model.Zone{Center: vector.V2{X: 5, Y: 20}, Depth: 5}}}
	b := &model.Player{ID: "LB2", Position: vector.V2{X: 50, Y: 20},
		CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespZone, Zone: &model.Zone{Center: vector.V2{X: 50, Y: 20}, Depth: 5}}}
	pairs := Coordinate([]*model.Player{a, b}, nil, &formation.Analysis{}, 20)
	assert.Empty(t, pairs)
}

func TestCoordinate_BunchContractsUnderneathZoneWidth(t *testing.T) {
	d := &model.Player{ID: "NB", Position: vector.V2{X: vector.CenterX + 10, Y: 25},
		CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespZone, Zone: &model.Zone{Center: vector.V2{X: vector.CenterX + 10, Y: 25}, Depth: 5}}}
	analysis := &formation.Analysis{Sets: map[model.ReceiverSet]bool{model.SetBunch: true}}
	Coordinate([]*model.Player{d}, nil, analysis, 20)
	assert.InDelta(t, vector.CenterX+10*(1-BunchContraction), d.Position.X, 1e-9)
}

func TestCoordinate_SpreadExpandsDeepZoneWidth(t *testing.T) {
	d := deepZoneDefender("FS", 30)
	d.Position.X = vector.CenterX + 8
	d.CoverageResponsibility.Zone.Center.X = vector.CenterX + 8
	analysis := &formation.Analysis{Sets: map[model.ReceiverSet]bool{model.SetSpread: true}}
	Coordinate([]*model.Player{d}, nil, analysis, 20)
	assert.InDelta(t, vector.CenterX+8*(1+SpreadExpansion), d.Position.X, 1e-9)
}
