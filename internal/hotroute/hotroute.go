// Package hotroute implements hot routes & sight adjustments (spec.md
// §4.13): blitz-triggered auto-convert of quick-breaking routes, and
// coverage-triggered per-receiver route substitution at the snap.
package hotroute

import (
	"github.com/coverageeng/snap-engine/internal/catalog"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// BlitzCountThreshold and AutoFireElapsed implement spec.md §4.13/§4.14:
// 6 of 7 defenders blitzing auto-converts the route set below; with 5+
// rushers the conversion auto-fires once the play clock reaches 2.0s
// even absent the full 6-of-7 trigger.
const (
	BlitzCountThreshold = 6
	DefenderCount       = 7
	AutoFireElapsed     = 2.0
	AutoFireRushers     = 5
	SackClockReduction  = 1.5
)

// AutoConvertSet is the route-type set eligible for blitz auto-convert.
var AutoConvertSet = map[model.RouteType]bool{
	model.RouteGo:       true,
	model.RoutePost:     true,
	model.RouteCorner:   true,
	model.RouteComeback: true,
	model.RouteCurl:     true,
}

// HotVariant maps each auto-convert-eligible route to its quick-game
// hot-route alternative.
var HotVariant = map[model.RouteType]model.RouteType{
	model.RouteGo:       model.RouteSlant,
	model.RoutePost:     model.RouteSlant,
	model.RouteCorner:   model.RouteOut,
	model.RouteComeback: model.RouteHitch,
	model.RouteCurl:     model.RouteHitch,
}

// DetectBlitz reports whether the defense's coverage responsibilities
// meet the blitz-detection threshold for hot-route conversion.
func DetectBlitz(defenders []*model.Player) bool {
	return blitzCount(defenders) >= BlitzCountThreshold
}

// ShouldAutoFire reports whether elapsed time and rusher count meet the
// auto-fire condition independent of the 6-of-7 threshold.
func ShouldAutoFire(defenders []*model.Player, elapsed float64) bool {
	return elapsed >= AutoFireElapsed && blitzCount(defenders) >= AutoFireRushers
}

func blitzCount(defenders []*model.Player) int {
	n := 0
	for _, d := range defenders {
		if d.CoverageResponsibility != nil && d.CoverageResponsibility.Kind == model.RespBlitz {
			n++
		}
	}
	return n
}

// ConvertAll rewrites every eligible receiver's route to its hot
// variant in place, using cat to build the substitute route's
// waypoints, and returns whether any conversion happened.
func ConvertAll(offense []*model.Player, cat catalog.Catalog) bool {
	converted := false
	for _, p := range offense {
		if p.Route == nil {
			continue
		}
		if !AutoConvertSet[p.Route.Type] {
			continue
		}
		variant, ok := HotVariant[p.Route.Type]
		if !ok {
			continue
		}
		p.Route = cat.GetRoute(variant)
		converted = true
	}
	return converted
}

// CoverageAudibleTable is the per-coverage route conversion table
// (spec.md §4.13: "Cover 3: go->comeback, post->seam, corner->speed_out").
var CoverageAudibleTable = map[model.CoverageType]map[model.RouteType]model.RouteType{
	model.Cover3: {
		model.RouteGo:     model.RouteComeback,
		model.RoutePost:   model.RouteSeam,
		model.RouteCorner: model.RouteSpeedOut,
	},
	model.Cover1: {
		model.RouteGo:     model.RouteFade,
		model.RoutePost:   model.RouteSlant,
		model.RouteCorner: model.RouteOut,
	},
	model.Cover2: {
		model.RouteGo:     model.RouteSeam,
		model.RoutePost:   model.RouteCorner,
		model.RouteComeback: model.RouteHitch,
	},
	model.Cover0: {
		model.RouteGo:   model.RouteSlant,
		model.RoutePost: model.RouteSlant,
	},
}

// ApplyCoverageAudible rewrites every eligible receiver's route per the
// coverage's conversion table, returning the number converted.
func ApplyCoverageAudible(offense []*model.Player, coverage model.CoverageType, cat catalog.Catalog) int {
	table, ok := CoverageAudibleTable[coverage]
	if !ok {
		return 0
	}
	n := 0
	for _, p := range offense {
		if p.Route == nil {
			continue
		}
		variant, ok := table[p.Route.Type]
		if !ok {
			continue
		}
		p.Route = cat.GetRoute(variant)
		n++
	}
	return n
}

// Alignment classifies a receiver's split for the sight-adjustment
// table (spec.md §4.13: "outside/slot/tight").
type Alignment string

const (
	AlignOutside Alignment = "outside"
	AlignSlot    Alignment = "slot"
	AlignTight   Alignment = "tight"
)

// Classify returns a receiver's alignment for sight-adjustment lookup.
func Classify(p *model.Player) Alignment {
	if p.Type == model.TE {
		return AlignTight
	}
	if p.IsSlot {
		return AlignSlot
	}
	return AlignOutside
}

// SightRule is one (coverage, alignment) table entry: the receiver's
// route converts to Substitute at DepthDelta yards relative to its
// original declared depth.
type SightRule struct {
	Substitute model.RouteType
	DepthDelta float64
}

// SightTable is the static (coverage, alignment) -> SightRule table
// from spec.md §4.13 (e.g. "Cover 3 outside receiver -> comeback at
// depth -2").
var SightTable = map[model.CoverageType]map[Alignment]SightRule{
	model.Cover3: {
		AlignOutside: {Substitute: model.RouteComeback, DepthDelta: -2},
		AlignSlot:    {Substitute: model.RouteCurl, DepthDelta: -1},
		AlignTight:   {Substitute: model.RouteDig, DepthDelta: 0},
	},
	model.Cover1: {
		AlignOutside: {Substitute: model.RouteFade, DepthDelta: 0},
		AlignSlot:    {Substitute: model.RouteSlant, DepthDelta: -1},
		AlignTight:   {Substitute: model.RouteSeam, DepthDelta: 0},
	},
	model.Cover2: {
		AlignOutside: {Substitute: model.RouteOut, DepthDelta: -3},
		AlignSlot:    {Substitute: model.RouteHitch, DepthDelta: -2},
		AlignTight:   {Substitute: model.RouteCorner, DepthDelta: 0},
	},
	model.Cover0: {
		AlignOutside: {Substitute: model.RouteSlant, DepthDelta: -4},
		AlignSlot:    {Substitute: model.RouteSlant, DepthDelta: -4},
		AlignTight:   {Substitute: model.RouteFlat, DepthDelta: -2},
	},
	model.Quarters: {
		AlignOutside: {Substitute: model.RouteComeback, DepthDelta: -2},
		AlignSlot:    {Substitute: model.RouteDig, DepthDelta: 0},
		AlignTight:   {Substitute: model.RouteSeam, DepthDelta: 0},
	},
}

// Apply substitutes a receiver's route per the sight-adjustment table
// and translates every waypoint by the rule's depth delta in y,
// leaving the route untouched if no rule exists for this coverage.
func Apply(p *model.Player, coverage model.CoverageType, cat catalog.Catalog) bool {
	byAlign, ok := SightTable[coverage]
	if !ok {
		return false
	}
	rule, ok := byAlign[Classify(p)]
	if !ok {
		return false
	}
	r := cat.GetRoute(rule.Substitute)
	for i := range r.Points {
		r.Points[i].Offset = vector.V2{X: r.Points[i].Offset.X, Y: r.Points[i].Offset.Y + rule.DepthDelta}
	}
	p.Route = r
	return true
}

// ApplyAll runs Apply over every eligible receiver, returning the
// number of routes adjusted.
func ApplyAll(offense []*model.Player, coverage model.CoverageType, cat catalog.Catalog) int {
	n := 0
	for _, p := range offense {
		if !p.IsReceiverEligible() || p.Route == nil {
			continue
		}
		if Apply(p, coverage, cat) {
			n++
		}
	}
	return n
}
