// Package alignment implements the alignment & coverage builder
// (spec.md §4.5): given coverage, personnel, formation analysis, LOS
// and hash, produces the seven defenders with positions and coverage
// responsibilities, applying coverage-specific adjustments and
// disguise pre-snap alignments.
package alignment

import (
	"sort"

	"github.com/coverageeng/snap-engine/internal/formation"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/personnel"
	"github.com/coverageeng/snap-engine/internal/vector"
	"github.com/coverageeng/snap-engine/internal/zonecoord"
)

// Logger is the minimal logging seam the builder needs; internal/engine
// passes its own log adapter here, which records the message in
// GameState.Diagnostics and forwards it to the host's Config.Logger
// (cmd/snapserver backs that with pkg/logger, tagged by component).
type Logger func(component, message string)

// Result is the alignment builder's output.
type Result struct {
	Defenders   []*model.Player
	Analysis    *formation.Analysis
	Package     model.DefensivePackage
	Warning     string
	HandoffPairs []zonecoord.HandoffPair
}

// Build runs the full nine-step alignment pipeline from spec.md §4.5.
// forcedPackage overrides the personnel matcher's auto-selected package
// when non-empty (setPersonnel, spec.md §4.16).
func Build(offense []*model.Player, coverage model.CoverageType, los float64, hash model.Hash, sit personnel.Situation, disguiseRoll float64, forcedPackage model.DefensivePackage, log Logger) *Result {
	analysis := formation.Analyze(offense)

	pkg := personnel.SelectPackage(analysis.Personnel, sit)
	if forcedPackage != "" {
		pkg = forcedPackage
	}
	warning, compatible := personnel.CompatibilityWarning(coverage, pkg)
	if !compatible && log != nil {
		log("alignment", warning)
	}

	types := personnel.GenerateDefensivePlayerTypes(pkg)
	defenders := newDefenders(types)

	receivers := eligibleReceivers(offense)

	placeBase(defenders, receivers, analysis, los, hash)
	assignResponsibilities(defenders, receivers, coverage, analysis, los, hash, disguiseRoll)
	applyFormationShifts(defenders, analysis, los)

	pairs := zonecoord.Coordinate(defenders, receivers, analysis, los)

	if !validate(defenders, receivers, coverage) {
		if log != nil {
			log("alignment", "invariant violation detected; falling back to canonical assignment for "+string(coverage))
		}
		fallbackCanonical(defenders, receivers, coverage, los, hash)
		pairs = zonecoord.Coordinate(defenders, receivers, analysis, los)
	}

	analysis.Leverage = formation.LeverageAgainst(defenders, receivers)

	return &Result{
		Defenders:    defenders,
		Analysis:     analysis,
		Package:      pkg,
		Warning:      warning,
		HandoffPairs: pairs,
	}
}

func eligibleReceivers(offense []*model.Player) []*model.Player {
	var out []*model.Player
	for _, p := range offense {
		if p.IsReceiverEligible() && p.Type != model.FB {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position.X < out[j].Position.X })
	return out
}

func newDefenders(types []model.PlayerType) []*model.Player {
	counters := map[model.PlayerType]int{}
	out := make([]*model.Player, 0, len(types))
	for _, t := range types {
		counters[t]++
		out = append(out, &model.Player{
			ID:              string(t) + itoa(counters[t]),
			Team:            model.TeamDefense,
			Type:            t,
			MaxSpeed:        model.BaseMaxSpeed[t],
			SpeedMultiplier: 1.0,
			IsEligible:      false,
			Technique:       model.TechZone,
		})
	}
	return out
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func byType(defenders []*model.Player, t model.PlayerType) []*model.Player {
	var out []*model.Player
	for _, d := range defenders {
		if d.Type == t {
			out = append(out, d)
		}
	}
	return out
}

// placeBase sets a generic pre-coverage-rule starting position for
// every defender: corners across from the widest receivers, safeties
// deep middle, LBs/NBs underneath near their run fits. Coverage-
// specific logic in coverages.go then overrides y-depth and x-landmark
// as needed.
func placeBase(defenders []*model.Player, receivers []*model.Player, analysis *formation.Analysis, los float64, hash model.Hash) {
	cbs := byType(defenders, model.CB)
	safeties := byType(defenders, model.S)
	nbs := byType(defenders, model.NB)
	lbs := byType(defenders, model.LB)

	left, right := widestReceivers(receivers)
	if len(cbs) > 0 && left != nil {
		cbs[0].Position = vector.V2{X: left.Position.X, Y: los + 1}
	}
	if len(cbs) > 1 && right != nil {
		cbs[1].Position = vector.V2{X: right.Position.X, Y: los + 1}
	}
	for i, s := range safeties {
		dir := -1.0
		if i == 1 {
			dir = 1.0
		}
		s.Position = vector.V2{X: vector.CenterX + dir*8, Y: los + 14}
	}
	for i, n := range nbs {
		slotX := vector.CenterX + 10
		if i < len(analysis.SlotIDs) {
			if r := findPlayer(receivers, analysis.SlotIDs[i]); r != nil {
				slotX = r.Position.X
			}
		}
		n.Position = vector.V2{X: slotX, Y: los + 5}
	}
	for i, l := range lbs {
		l.Position = vector.V2{X: vector.CenterX + float64(i-len(lbs)/2)*4, Y: los + 6}
	}
}

func widestReceivers(receivers []*model.Player) (left, right *model.Player) {
	if len(receivers) == 0 {
		return nil, nil
	}
	return receivers[0], receivers[len(receivers)-1]
}

func findPlayer(players []*model.Player, id string) *model.Player {
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
