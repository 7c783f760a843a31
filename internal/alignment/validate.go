package alignment

import "github.com/coverageeng/snap-engine/internal/model"

// validate checks the invariants spec.md §3/§8 require of a completed
// alignment: exactly 7 defenders (guaranteed by construction, checked
// anyway), every defender has a responsibility, no duplicate man
// targets, and in Cover 0 every eligible receiver has a man defender.
func validate(defenders, receivers []*model.Player, coverage model.CoverageType) bool {
	if len(defenders) != 7 {
		return false
	}
	seenTargets := map[string]bool{}
	for _, d := range defenders {
		if d.CoverageResponsibility == nil {
			return false
		}
		if d.CoverageResponsibility.Kind == model.RespMan {
			t := d.CoverageResponsibility.ManTargetID
			if t == "" || seenTargets[t] {
				return false
			}
			seenTargets[t] = true
		}
	}
	if coverage == model.Cover0 {
		for _, r := range receivers {
			if !seenTargets[r.ID] {
				return false
			}
		}
	}
	return true
}

// fallbackCanonical rebuilds a minimal, always-valid assignment for the
// given coverage when the primary pass violates an invariant (spec.md
// §4.5 step 9 / §7 "invariant violation ... recovered internally").
func fallbackCanonical(defenders, receivers []*model.Player, coverage model.CoverageType, los float64, hash model.Hash) {
	ordered := sortedReceiversByX(receivers)
	used := map[string]bool{}
	manOrder := manEligibleOrder(defenders)
	for _, d := range manOrder {
		var target *model.Player
		for _, r := range ordered {
			if !used[r.ID] {
				target = r
				break
			}
		}
		if target != nil {
			used[target.ID] = true
			d.CoverageResponsibility = man(d.ID, target.ID)
			d.Technique = model.TechPress
		} else if coverage == model.Cover0 {
			d.CoverageResponsibility = blitzResp(d.ID)
			d.Technique = model.TechBlitz
		} else {
			d.CoverageResponsibility = zoneResp(d.ID, model.Zone{
				Name: "fallback-zone", Center: d.Position, Width: 12, Height: 8, Depth: los + 10 - los, Landmark: "hook",
			})
			d.Technique = model.TechZone
		}
	}
}
