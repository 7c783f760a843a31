package receiver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

func goRoute() *model.Route {
	return &model.Route{Type: model.RouteGo, Points: []model.RoutePoint{
		{Time: 0, Offset: vector.V2{X: 0, Y: 0}},
		{Time: 3.5, Offset: vector.V2{X: 0, Y: 20}},
	}}
}

func TestUpdate_NilRouteLeavesPlayerUntouched(t *testing.T) {
	start := vector.V2{X: 10, Y: 20}
	p := &model.Player{Position: start, MaxSpeed: 9}
	Update(p, start, 1.0, model.Leverage(""))
	assert.Equal(t, start, p.Position)
}

func TestUpdate_MovesTowardTheRouteAtMaxSpeed(t *testing.T) {
	lineup := vector.V2{X: 10, Y: 20}
	p := &model.Player{Position: lineup, MaxSpeed: 9, Route: goRoute()}
	Update(p, lineup, 1.0, model.Leverage(""))
	assert.Greater(t, p.Position.Y, lineup.Y, "receiver advances downfield along a go route")
}

func TestUpdate_OutsideLeverageAppliesAnInsideStemEarlyInTheRoute(t *testing.T) {
	lineup := vector.V2{X: vector.CenterX - 10, Y: 20}
	withStem := &model.Player{Position: lineup, MaxSpeed: 9, Route: goRoute()}
	Update(withStem, lineup, 0.2, model.LeverageOutside)

	noStem := &model.Player{Position: lineup, MaxSpeed: 9, Route: goRoute()}
	Update(noStem, lineup, 0.2, model.Leverage(""))

	assert.NotEqual(t, noStem.Position.X, withStem.Position.X)
}

func TestUpdate_SlowsThroughARouteBreak(t *testing.T) {
	lineup := vector.V2{X: 10, Y: 20}
	outRoute := &model.Route{Type: model.RouteOut, Points: []model.RoutePoint{
		{Time: 0, Offset: vector.V2{X: 0, Y: 0}},
		{Time: 1.0, Offset: vector.V2{X: 0, Y: 10}, IsBreak: true},
		{Time: 2.0, Offset: vector.V2{X: 8, Y: 10}},
	}}
	p := &model.Player{Position: lineup, MaxSpeed: 9, Route: outRoute}
	Update(p, lineup, 1.0, model.Leverage(""))
	assert.Less(t, p.CurrentSpeed, p.EffectiveMaxSpeed(), "speed is reduced through the out route's break")
}

func TestUpdate_SetsVelocityTowardTheDesiredPoint(t *testing.T) {
	lineup := vector.V2{X: 10, Y: 20}
	p := &model.Player{Position: lineup, MaxSpeed: 9, Route: goRoute()}
	Update(p, lineup, 1.0, model.Leverage(""))
	assert.Greater(t, p.Velocity.Y, 0.0)
}
