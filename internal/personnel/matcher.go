// Package personnel implements the personnel matcher (spec.md §4.4):
// maps offensive personnel + situation to a defensive package, screens
// coverage compatibility, and generates the seven defensive player
// types a package requires.
package personnel

import "github.com/coverageeng/snap-engine/internal/model"

// Situation carries the down/distance/field-position context the
// matcher uses for situational overrides.
type Situation struct {
	Down          int
	YardsToGo     float64
	FieldPositionY float64 // LOS
}

// basePackage maps an offensive personnel code to its default
// defensive package (spec.md §4.4).
var basePackage = map[string]model.DefensivePackage{
	"00": model.PackageDime,
	"10": model.PackageNickel,
	"11": model.PackageNickel,
	"12": model.PackageBase,
	"13": model.PackageBase,
	"20": model.PackageNickel,
	"21": model.PackageBase,
	"22": model.PackageBase,
}

// compatibility lists minimum LB/DB/safety counts a coverage requires
// and which packages it is outright incompatible with (spec.md §4.4).
type compatEntry struct {
	minLB, minDB, minSafety int
	incompatible            map[model.DefensivePackage]bool
}

var compatibility = map[model.CoverageType]compatEntry{
	model.Cover0:  {minLB: 0, minDB: 4, minSafety: 0, incompatible: map[model.DefensivePackage]bool{}},
	model.Cover1:  {minLB: 1, minDB: 4, minSafety: 1, incompatible: map[model.DefensivePackage]bool{}},
	model.Cover2:  {minLB: 2, minDB: 4, minSafety: 2, incompatible: map[model.DefensivePackage]bool{}},
	model.Cover3:  {minLB: 2, minDB: 4, minSafety: 1, incompatible: map[model.DefensivePackage]bool{}},
	model.Cover4:  {minLB: 1, minDB: 4, minSafety: 2, incompatible: map[model.DefensivePackage]bool{model.PackageGoalLine: true}},
	model.Cover6:  {minLB: 1, minDB: 4, minSafety: 2, incompatible: map[model.DefensivePackage]bool{}},
	model.Quarters: {minLB: 1, minDB: 4, minSafety: 2, incompatible: map[model.DefensivePackage]bool{model.PackageGoalLine: true}},
	model.Tampa2:  {minLB: 3, minDB: 2, minSafety: 2, incompatible: map[model.DefensivePackage]bool{}},
}

func init() {
	for _, c := range []model.CoverageType{model.Cover0, model.Quarters} {
		e := compatibility[c]
		if e.incompatible == nil {
			e.incompatible = map[model.DefensivePackage]bool{}
		}
		e.incompatible[model.PackageGoalLine] = true
		compatibility[c] = e
	}
}

// packageCounts gives LB/DB/Safety counts for each defensive package.
type counts struct{ lb, db, safety int }

var packageCounts = map[model.DefensivePackage]counts{
	model.PackageBase:     {lb: 3, db: 4, safety: 2},
	model.PackageNickel:   {lb: 2, db: 5, safety: 2},
	model.PackageDime:     {lb: 1, db: 6, safety: 2},
	model.PackageQuarter:  {lb: 0, db: 7, safety: 2},
	model.PackageGoalLine: {lb: 4, db: 3, safety: 1},
}

// SelectPackage chooses a defensive package for the given offensive
// personnel and situation, applying red-zone / 3rd-and-short / 4th-and-
// long overrides per spec.md §4.4.
func SelectPackage(personnelCode string, sit Situation) model.DefensivePackage {
	pkg, ok := basePackage[personnelCode]
	if !ok {
		pkg = model.PackageNickel
	}

	redZone := sit.FieldPositionY >= 90
	shortYardage := sit.Down == 3 && sit.YardsToGo <= 2
	longYardage := sit.YardsToGo >= 8
	fourthLong := sit.Down == 4 && sit.YardsToGo >= 8

	switch {
	case redZone || shortYardage:
		pkg = heavier(pkg)
	case longYardage || fourthLong:
		pkg = model.PackageDime
	}
	return pkg
}

func heavier(pkg model.DefensivePackage) model.DefensivePackage {
	switch pkg {
	case model.PackageDime, model.PackageQuarter:
		return model.PackageNickel
	case model.PackageNickel:
		return model.PackageBase
	default:
		return pkg
	}
}

// CompatibilityWarning screens whether coverage c can be run out of
// package pkg; returns a non-empty warning string (and false) when it
// cannot, so the alignment builder can adapt rather than error (spec.md
// §4.5's "adapts ... compatibilityWarning").
func CompatibilityWarning(c model.CoverageType, pkg model.DefensivePackage) (string, bool) {
	entry, ok := compatibility[c]
	if !ok {
		return "", true
	}
	if entry.incompatible[pkg] {
		return string(c) + " is incompatible with " + string(pkg) + "; substituting feasible assignments", false
	}
	pc := packageCounts[pkg]
	if pc.lb < entry.minLB || pc.db < entry.minDB || pc.safety < entry.minSafety {
		return string(c) + " needs more coverage personnel than " + string(pkg) + " provides; adapting", false
	}
	return "", true
}

// GenerateDefensivePlayerTypes returns exactly 7 tokens for the given
// package: always 2 CB + 2 S, remaining DBs as NB, balance as LB
// (spec.md §4.4).
func GenerateDefensivePlayerTypes(pkg model.DefensivePackage) []model.PlayerType {
	pc, ok := packageCounts[pkg]
	if !ok {
		pc = packageCounts[model.PackageNickel]
	}
	out := []model.PlayerType{model.CB, model.CB, model.S, model.S}
	nb := pc.db - 4
	for i := 0; i < nb; i++ {
		out = append(out, model.NB)
	}
	for len(out) < 7 {
		out = append(out, model.LB)
	}
	if len(out) > 7 {
		out = out[:7]
	}
	return out
}

// BlitzSuitableDefenders ranks defenders by blitz suitability: never
// leave fewer than 5 in coverage; prefer LBs, then SS, then NB (spec.md
// §4.4). players must be exactly the 7 defenders.
func BlitzSuitableDefenders(players []*model.Player, maxBlitzers int) []*model.Player {
	if maxBlitzers > len(players)-5 {
		maxBlitzers = len(players) - 5
	}
	if maxBlitzers < 0 {
		maxBlitzers = 0
	}
	rank := func(p *model.Player) int {
		switch p.Type {
		case model.LB:
			return 0
		case model.S:
			return 1
		case model.NB:
			return 2
		default:
			return 3
		}
	}
	ordered := append([]*model.Player(nil), players...)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && rank(ordered[j]) < rank(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	if maxBlitzers > len(ordered) {
		maxBlitzers = len(ordered)
	}
	return ordered[:maxBlitzers]
}
