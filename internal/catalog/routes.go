package catalog

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// BuildRoute synthesizes a Route's waypoints from the static timing
// table (spec.md §4.10): a release point, an optional break point, and
// the route's terminal depth, with a fixed lateral offset per route
// type expressed in field +X/-X terms. The offsets are not mirrored for
// receivers lined up left of center, here or in the receiver movement
// package. Exported so hot-route
// conversion and audibles can build a substitute route without
// duplicating the generator.
func BuildRoute(rt model.RouteType) model.Route {
	timing := model.RouteTimingTable[rt]
	depth := model.DeclaredDepth[rt]
	duration := timing.RhythmSeconds

	switch rt {
	case model.RouteGo, model.RouteFade, model.RouteSeam:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: depth}, Time: duration, IsBreak: false},
		}}
	case model.RouteSlant:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: 2}, Time: 0.5},
			{Offset: vector.V2{X: 6, Y: depth}, Time: duration, IsBreak: true},
		}}
	case model.RouteFlat:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 5, Y: depth}, Time: duration, IsBreak: true},
		}}
	case model.RouteHitch, model.RouteComeback:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: depth}, Time: duration * 0.7},
			{Offset: vector.V2{X: -1, Y: depth - 2}, Time: duration, IsBreak: true},
		}}
	case model.RouteOut, model.RouteSpeedOut:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: depth}, Time: duration * 0.65},
			{Offset: vector.V2{X: 8, Y: depth}, Time: duration, IsBreak: true},
		}}
	case model.RouteIn, model.RouteDig:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: depth}, Time: duration * 0.65},
			{Offset: vector.V2{X: -10, Y: depth}, Time: duration, IsBreak: true},
		}}
	case model.RoutePost:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: depth - 4}, Time: duration * 0.7},
			{Offset: vector.V2{X: -8, Y: depth}, Time: duration, IsBreak: true},
		}}
	case model.RouteCorner:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: depth - 4}, Time: duration * 0.7},
			{Offset: vector.V2{X: 8, Y: depth}, Time: duration, IsBreak: true},
		}}
	case model.RouteDrag:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: -12, Y: depth}, Time: duration, IsBreak: true},
		}}
	case model.RouteWheel:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 4, Y: 2}, Time: 0.8, IsBreak: true},
			{Offset: vector.V2{X: 6, Y: depth}, Time: duration},
		}}
	case model.RouteCurl:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: depth}, Time: duration * 0.75},
			{Offset: vector.V2{X: -1, Y: depth - 2}, Time: duration, IsBreak: true},
		}}
	default:
		return model.Route{Type: rt, Points: []model.RoutePoint{
			{Offset: vector.V2{X: 0, Y: 0}, Time: 0},
			{Offset: vector.V2{X: 0, Y: depth}, Time: duration},
		}}
	}
}
