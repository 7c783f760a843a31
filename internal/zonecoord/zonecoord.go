// Package zonecoord implements zone coordination (spec.md §4.6):
// landmarks, the deeper-than-deepest rule, zone-defender overlap
// handoffs, and bunch/spread width compression and expansion.
package zonecoord

import (
	"github.com/coverageeng/snap-engine/internal/formation"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// Landmarks are the named field reference points relative to a given
// LOS, per spec.md §4.6.
type Landmarks struct {
	HashLeft, HashRight     float64
	NumberLeft, NumberRight float64
	ThirdLeft, ThirdMiddle, ThirdRight float64
}

// ComputeLandmarks returns the landmark x-coordinates (they don't
// depend on LOS; LOS only matters for y-depth placement done by the
// alignment builder).
func ComputeLandmarks() Landmarks {
	c := vector.CenterX
	return Landmarks{
		HashLeft:    c - vector.HashOffset,
		HashRight:   c + vector.HashOffset,
		NumberLeft:  c - vector.NumbersOffset,
		NumberRight: c + vector.NumbersOffset,
		ThirdLeft:   vector.FieldWidth / 6,
		ThirdMiddle: vector.FieldWidth / 2,
		ThirdRight:  vector.FieldWidth * 5 / 6,
	}
}

// HandoffPair records two zone defenders close enough to coordinate a
// route handoff, with the midpoint they hand off at.
type HandoffPair struct {
	DefenderA, DefenderB string
	Midpoint             vector.V2
}

// OverlapThreshold is the max distance, in yards, between two zone
// defenders for them to record a handoff (spec.md §4.6).
const OverlapThreshold = 12.0

// Coordinate runs the full zone-coordination pass over the given
// defenders' zone responsibilities: deeper-than-deepest, overlaps, and
// bunch/spread width adjustment. Defenders without a zone
// responsibility are ignored. Receivers must be the offense's eligible
// receivers with current positions.
func Coordinate(defenders []*model.Player, receivers []*model.Player, analysis *formation.Analysis, los float64) []HandoffPair {
	applyDeeperThanDeepest(defenders, receivers)
	applyWidthAdjustment(defenders, analysis)
	return computeOverlaps(defenders)
}

// applyDeeperThanDeepest enforces: each deep-zone defender's y must be
// at least the deepest receiver currently in that zone's y, plus
// DeepZoneCushion.
func applyDeeperThanDeepest(defenders []*model.Player, receivers []*model.Player) {
	for _, d := range defenders {
		resp := d.CoverageResponsibility
		if resp == nil || resp.Kind != model.RespZone || resp.Zone == nil || !resp.Zone.IsDeep() {
			continue
		}
		deepest := deepestReceiverInZone(*resp.Zone, receivers)
		if deepest == nil {
			continue
		}
		minY := deepest.Position.Y + model.DeepZoneCushion
		if d.Position.Y < minY {
			d.Position.Y = minY
			resp.Zone.Center.Y = minY
		}
	}
}

func deepestReceiverInZone(z model.Zone, receivers []*model.Player) *model.Player {
	min, max := z.Bounds()
	var deepest *model.Player
	for _, r := range receivers {
		if r.Position.X < min.X || r.Position.X > max.X {
			continue
		}
		if r.Position.Y < min.Y || r.Position.Y > max.Y {
			continue
		}
		if deepest == nil || r.Position.Y > deepest.Position.Y {
			deepest = r
		}
	}
	return deepest
}

func computeOverlaps(defenders []*model.Player) []HandoffPair {
	var out []HandoffPair
	for i := 0; i < len(defenders); i++ {
		ri := defenders[i].CoverageResponsibility
		if ri == nil || ri.Kind != model.RespZone {
			continue
		}
		for j := i + 1; j < len(defenders); j++ {
			rj := defenders[j].CoverageResponsibility
			if rj == nil || rj.Kind != model.RespZone {
				continue
			}
			dist := vector.Distance(defenders[i].Position, defenders[j].Position)
			if dist <= OverlapThreshold {
				mid := vector.Lerp(defenders[i].Position, defenders[j].Position, 0.5)
				out = append(out, HandoffPair{DefenderA: defenders[i].ID, DefenderB: defenders[j].ID, Midpoint: mid})
			}
		}
	}
	return out
}

// BunchContraction and SpreadExpansion are the width-adjustment
// coefficients from spec.md §4.6.
const (
	BunchContraction = 0.3
	SpreadExpansion  = 0.15
)

func applyWidthAdjustment(defenders []*model.Player, analysis *formation.Analysis) {
	if analysis == nil {
		return
	}
	c := vector.CenterX
	for _, d := range defenders {
		resp := d.CoverageResponsibility
		if resp == nil || resp.Kind != model.RespZone || resp.Zone == nil {
			continue
		}
		offset := resp.Zone.Center.X - c
		if analysis.Sets[model.SetBunch] && !resp.Zone.IsDeep() {
			resp.Zone.Center.X = c + offset*(1-BunchContraction)
			d.Position.X = resp.Zone.Center.X
		}
		if analysis.Sets[model.SetSpread] && resp.Zone.IsDeep() {
			resp.Zone.Center.X = c + offset*(1+SpreadExpansion)
			d.Position.X = resp.Zone.Center.X
		}
	}
}
