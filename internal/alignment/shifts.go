package alignment

import (
	"github.com/coverageeng/snap-engine/internal/formation"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// ConeExpansion and TrixOffset implement the trips/bunch-specific
// shifts named in spec.md §4.5 step 7: "cone" weak-corner expansion,
// "trix" solo technique for the backside X, bunch contraction.
const (
	ConeExpansion = 2.0
	TrixOffset    = 1.5
)

// applyFormationShifts applies the formation-specific techniques: the
// trips cone (which moves the weak corner and its zone center), bunch
// contraction of underneath zone defenders, and the trix press for an
// empty backfield.
func applyFormationShifts(defenders []*model.Player, analysis *formation.Analysis, los float64) {
	if analysis.Sets[model.SetTrips] {
		applyCone(defenders, analysis)
	}
	if analysis.Sets[model.SetBunch] {
		applyBunchContraction(defenders)
	}
	if len(analysis.BackfieldIDs) == 0 { // empty backfield -> backside X typically isolated
		applyTrix(defenders, analysis)
	}
}

// applyCone widens the weak-side corner to help protect against the
// trips side overloading coverage rules.
func applyCone(defenders []*model.Player, analysis *formation.Analysis) {
	cbs := byType(defenders, model.CB)
	if len(cbs) == 0 {
		return
	}
	weak := cbs[0]
	if analysis.Strength == model.StrengthLeft {
		if len(cbs) > 1 {
			weak = cbs[1]
		}
	}
	dir := 1.0
	if weak.Position.X < vector.CenterX {
		dir = -1.0
	}
	weak.Position.X += dir * ConeExpansion
	if weak.CoverageResponsibility != nil && weak.CoverageResponsibility.Zone != nil {
		weak.CoverageResponsibility.Zone.Center.X += dir * ConeExpansion
	}
}

// applyBunchContraction pulls underneath zone defenders toward the
// bunch to compress throwing windows, beyond zonecoord's own
// width-adjustment pass (which handles the zone landmark; this nudges
// the defender's literal starting alignment).
func applyBunchContraction(defenders []*model.Player) {
	for _, d := range defenders {
		if d.CoverageResponsibility == nil || d.CoverageResponsibility.Kind != model.RespZone {
			continue
		}
		if d.CoverageResponsibility.Zone != nil && d.CoverageResponsibility.Zone.IsDeep() {
			continue
		}
		offset := d.Position.X - vector.CenterX
		d.Position.X = vector.CenterX + offset*(1-0.3)
	}
}

// applyTrix gives the backside isolated X receiver's defender a solo
// press technique rather than zone help, when the formation leaves no
// backfield help to that side.
func applyTrix(defenders []*model.Player, analysis *formation.Analysis) {
	cbs := byType(defenders, model.CB)
	if len(cbs) == 0 {
		return
	}
	solo := cbs[len(cbs)-1]
	if analysis.Strength == model.StrengthRight {
		solo = cbs[0]
	}
	if solo.CoverageResponsibility != nil && solo.CoverageResponsibility.Kind == model.RespMan {
		solo.Technique = model.TechPress
	}
}
