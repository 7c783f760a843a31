package catalog

import "github.com/coverageeng/snap-engine/internal/model"

// concepts is the static catalog of play concepts keyed by id, per
// spec.md §6's named set: slant-flat, mesh, four-verts, y-option,
// shallow-cross, six.
var concepts = map[string]*model.Concept{
	"slant-flat": {
		Name: "slant-flat",
		RoutesBySlot: map[string]model.Route{
			"WR1": BuildRoute(model.RouteSlant),
			"WR2": BuildRoute(model.RouteFlat),
			"RB":  BuildRoute(model.RouteFlat),
			"TE":  BuildRoute(model.RouteDig),
		},
	},
	"mesh": {
		Name: "mesh",
		RoutesBySlot: map[string]model.Route{
			"WR1": BuildRoute(model.RouteDrag),
			"WR2": BuildRoute(model.RouteDrag),
			"TE":  BuildRoute(model.RouteCurl),
			"RB":  BuildRoute(model.RouteFlat),
		},
	},
	"four-verts": {
		Name: "four-verts",
		RoutesBySlot: map[string]model.Route{
			"WR1": BuildRoute(model.RouteGo),
			"WR2": BuildRoute(model.RouteSeam),
			"WR3": BuildRoute(model.RouteSeam),
			"WR4": BuildRoute(model.RouteGo),
			"TE":  BuildRoute(model.RouteSeam),
		},
	},
	"y-option": {
		Name: "y-option",
		RoutesBySlot: map[string]model.Route{
			"TE":  BuildRoute(model.RouteIn),
			"WR1": BuildRoute(model.RouteGo),
			"WR2": BuildRoute(model.RouteComeback),
			"RB":  BuildRoute(model.RouteFlat),
		},
	},
	"shallow-cross": {
		Name: "shallow-cross",
		RoutesBySlot: map[string]model.Route{
			"WR1": BuildRoute(model.RouteDrag),
			"TE":  BuildRoute(model.RouteDig),
			"WR2": BuildRoute(model.RoutePost),
			"RB":  BuildRoute(model.RouteFlat),
		},
	},
	"six": {
		Name: "six",
		RoutesBySlot: map[string]model.Route{
			"WR1": BuildRoute(model.RoutePost),
			"WR2": BuildRoute(model.RouteCorner),
			"TE":  BuildRoute(model.RouteDig),
			"RB":  BuildRoute(model.RouteWheel),
		},
	},
}
