package model

import "github.com/coverageeng/snap-engine/internal/vector"

// RoutePoint is a single waypoint relative to the receiver's line-up
// position, with its scheduled arrival time and whether it marks a
// direction change (a "break").
type RoutePoint struct {
	Offset  vector.V2
	Time    float64
	IsBreak bool
}

// RouteTiming describes the break angle and total rhythm for a route
// family, per spec.md §4.10's static table.
type RouteTiming struct {
	BreakAngleDegrees float64
	RhythmSeconds     float64
	SpeedReduction    float64 // fractional speed cut through the break
}

// RouteTimingTable is the static per-route-family timing table from
// spec.md §4.10 ("slant 45°/1.8s, curl variable/2.2s, hitch 180°/1.5s,
// go straight/3.5s", plus the remaining tree filled in consistently).
var RouteTimingTable = map[RouteType]RouteTiming{
	RouteSlant:    {BreakAngleDegrees: 45, RhythmSeconds: 1.8, SpeedReduction: 0.0},
	RouteFlat:     {BreakAngleDegrees: 90, RhythmSeconds: 1.5, SpeedReduction: 0.15},
	RouteGo:       {BreakAngleDegrees: 0, RhythmSeconds: 3.5, SpeedReduction: 0.0},
	RouteCurl:     {BreakAngleDegrees: 135, RhythmSeconds: 2.2, SpeedReduction: 0.35},
	RouteOut:      {BreakAngleDegrees: 90, RhythmSeconds: 2.0, SpeedReduction: 0.30},
	RouteIn:       {BreakAngleDegrees: 90, RhythmSeconds: 2.1, SpeedReduction: 0.30},
	RoutePost:     {BreakAngleDegrees: 45, RhythmSeconds: 2.6, SpeedReduction: 0.10},
	RouteComeback: {BreakAngleDegrees: 180, RhythmSeconds: 2.4, SpeedReduction: 0.40},
	RouteFade:     {BreakAngleDegrees: 15, RhythmSeconds: 2.0, SpeedReduction: 0.05},
	RouteHitch:    {BreakAngleDegrees: 180, RhythmSeconds: 1.5, SpeedReduction: 0.40},
	RouteWheel:    {BreakAngleDegrees: 90, RhythmSeconds: 3.0, SpeedReduction: 0.20},
	RouteCorner:   {BreakAngleDegrees: 45, RhythmSeconds: 2.6, SpeedReduction: 0.10},
	RouteDig:      {BreakAngleDegrees: 90, RhythmSeconds: 2.3, SpeedReduction: 0.30},
	RouteDrag:     {BreakAngleDegrees: 90, RhythmSeconds: 2.0, SpeedReduction: 0.20},
	RouteSeam:     {BreakAngleDegrees: 10, RhythmSeconds: 2.8, SpeedReduction: 0.0},
	RouteSpeedOut: {BreakAngleDegrees: 90, RhythmSeconds: 1.4, SpeedReduction: 0.25},
}

// DeclaredDepth returns the route's intended depth past the line of
// scrimmage in yards, used by catch-probability base rates (short /
// intermediate / deep).
var DeclaredDepth = map[RouteType]float64{
	RouteSlant:    4,
	RouteFlat:     2,
	RouteGo:       20,
	RouteCurl:     12,
	RouteOut:      10,
	RouteIn:       12,
	RoutePost:     18,
	RouteComeback: 14,
	RouteFade:     18,
	RouteHitch:    6,
	RouteWheel:    16,
	RouteCorner:   18,
	RouteDig:      14,
	RouteDrag:     4,
	RouteSeam:     16,
	RouteSpeedOut: 6,
}

// Route is the ordered set of waypoints (relative to the receiver's
// lined-up position) plus the matching timing array a receiver runs.
type Route struct {
	Type   RouteType
	Points []RoutePoint
}

// Clone deep-copies a route.
func (r *Route) Clone() *Route {
	if r == nil {
		return nil
	}
	cp := &Route{Type: r.Type, Points: make([]RoutePoint, len(r.Points))}
	copy(cp.Points, r.Points)
	return cp
}

// Depth returns the route's final waypoint depth (declared depth).
func (r *Route) Depth() float64 {
	if d, ok := DeclaredDepth[r.Type]; ok {
		return d
	}
	if len(r.Points) == 0 {
		return 0
	}
	return r.Points[len(r.Points)-1].Offset.Y
}

// Duration returns the total scheduled time for the route.
func (r *Route) Duration() float64 {
	if len(r.Points) == 0 {
		return 0
	}
	return r.Points[len(r.Points)-1].Time
}
