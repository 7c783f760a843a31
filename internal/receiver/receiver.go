// Package receiver implements receiver movement (spec.md §4.10): route
// execution against the authoritative timing clock, acceleration ramp,
// break-angle speed reduction, and leverage-based stem adjustment.
package receiver

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// LeverageStemYards and LeverageStemWindow implement spec.md §4.10's
// leverage stem rule: "stem 1.5yd inside during first 6yd, then resume
// route" when the assigned defender shows outside leverage.
const (
	LeverageStemYards  = 1.5
	LeverageStemWindow = 6.0
)

// Update advances a receiver along its route to the given elapsed time
// since snap, honoring leverage stems and break-phase speed reduction.
// lineupPos is the receiver's position at the snap (routes are relative
// to it); defenderLeverage is the leverage the assigned defender is
// currently showing, or "" if none/unknown.
func Update(p *model.Player, lineupPos vector.V2, elapsed float64, defenderLeverage model.Leverage) {
	if p.Route == nil {
		return
	}
	route := p.Route
	pts := route.Points
	if len(pts) == 0 {
		return
	}

	target := interpolate(pts, elapsed)

	if defenderLeverage == model.LeverageOutside && elapsed*unitsPerYard(route) < LeverageStemWindow {
		stemDir := 1.0
		if lineupPos.X > vector.CenterX {
			stemDir = -1.0
		}
		target.X += stemDir * LeverageStemYards
	}

	desired := lineupPos.Add(target)
	speedFrac := speedFractionAt(pts, elapsed, route.Type)
	maxStep := p.EffectiveMaxSpeed() * speedFrac * tickDT

	p.IsAccelerating = p.CurrentSpeed < p.EffectiveMaxSpeed()*speedFrac
	p.Position = vector.MoveToward(p.Position, desired, maxStep)
	p.CurrentSpeed = p.EffectiveMaxSpeed() * speedFrac
	p.Velocity = desired.Sub(p.Position).Normalize().Scale(p.CurrentSpeed)
}

// tickDT is the fixed 1/60s step the engine drives receiver movement
// at.
const tickDT = 1.0 / 60.0

func unitsPerYard(r *model.Route) float64 {
	// Approximate yards-per-second-of-route-time so the 6yd leverage
	// window can be checked against elapsed time.
	d := r.Depth()
	dur := r.Duration()
	if dur <= 0 {
		return 1
	}
	return d / dur
}

func interpolate(pts []model.RoutePoint, elapsed float64) vector.V2 {
	if elapsed <= pts[0].Time {
		return pts[0].Offset
	}
	last := pts[len(pts)-1]
	if elapsed >= last.Time {
		return last.Offset
	}
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		if elapsed >= a.Time && elapsed <= b.Time {
			span := b.Time - a.Time
			if span <= vector.Epsilon {
				return b.Offset
			}
			t := (elapsed - a.Time) / span
			return vector.Lerp(a.Offset, b.Offset, t)
		}
	}
	return last.Offset
}

// speedFractionAt returns the fraction of max speed the receiver should
// be running at: reduced near a break per spec.md §4.10's per-route
// break angle (45° slant no reduction; 90° out 30% reduction).
func speedFractionAt(pts []model.RoutePoint, elapsed float64, rt model.RouteType) float64 {
	timing := model.RouteTimingTable[rt]
	const window = 0.3
	for _, p := range pts {
		if !p.IsBreak {
			continue
		}
		if elapsed >= p.Time-window && elapsed <= p.Time+window {
			return 1 - timing.SpeedReduction
		}
	}
	return 1.0
}
