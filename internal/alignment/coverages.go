package alignment

import (
	"sort"

	"github.com/coverageeng/snap-engine/internal/formation"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// assignResponsibilities dispatches to the per-coverage rule set from
// spec.md §4.5 step 4-6.
func assignResponsibilities(defenders, receivers []*model.Player, coverage model.CoverageType, analysis *formation.Analysis, los float64, hash model.Hash, disguiseRoll float64) {
	switch coverage {
	case model.Cover0:
		assignCover0(defenders, receivers, analysis, los)
	case model.Cover1:
		assignCover1(defenders, receivers, analysis, los)
	case model.Cover2:
		assignCover2(defenders, receivers, analysis, los)
	case model.Cover3:
		assignCover3(defenders, receivers, analysis, los)
	case model.Cover4, model.Quarters:
		assignQuarters(defenders, receivers, analysis, los, false)
	case model.Cover6:
		assignCover6(defenders, receivers, analysis, los)
	case model.Tampa2:
		assignTampa2(defenders, receivers, analysis, los)
	case model.Cover2RollTo1:
		assignCover1(defenders, receivers, analysis, los)
		applyDisguise(defenders, model.Cover2, los, disguiseRoll)
	case model.QuartersPoach:
		assignQuarters(defenders, receivers, analysis, los, true)
	case model.Cover2Invert:
		assignCover2(defenders, receivers, analysis, los)
		invertSafetyCorner(defenders)
	default:
		assignCover3(defenders, receivers, analysis, los)
	}
}

func sortedReceiversByX(receivers []*model.Player) []*model.Player {
	out := append([]*model.Player(nil), receivers...)
	sort.Slice(out, func(i, j int) bool { return out[i].Position.X < out[j].Position.X })
	return out
}

func man(defenderID, targetID string) *model.CoverageResponsibility {
	return &model.CoverageResponsibility{DefenderID: defenderID, Kind: model.RespMan, ManTargetID: targetID}
}

func blitzResp(defenderID string) *model.CoverageResponsibility {
	return &model.CoverageResponsibility{DefenderID: defenderID, Kind: model.RespBlitz}
}

func zoneResp(defenderID string, z model.Zone) *model.CoverageResponsibility {
	zz := z
	return &model.CoverageResponsibility{DefenderID: defenderID, Kind: model.RespZone, Zone: &zz}
}

// assignCover0: press man on every eligible receiver; any defender left
// over (e.g. because there are fewer receivers than defenders) blitzes.
// No zone defenders in Cover 0.
func assignCover0(defenders, receivers []*model.Player, analysis *formation.Analysis, los float64) {
	ordered := sortedReceiversByX(receivers)
	manDefenders := manEligibleOrder(defenders)
	used := map[string]bool{}
	n := len(ordered)
	for i, d := range manDefenders {
		if i < n {
			r := ordered[i]
			d.CoverageResponsibility = man(d.ID, r.ID)
			d.Technique = model.TechPress
			d.Position = vector.V2{X: r.Position.X, Y: los + 1}
			used[r.ID] = true
		} else {
			d.CoverageResponsibility = blitzResp(d.ID)
			d.Technique = model.TechBlitz
		}
	}
}

// manEligibleOrder returns defenders ordered CB, NB, LB, S — the order
// Cover 0 prefers for assigning man targets (corners first, then
// nickel, then backers, with safeties last as the extra blitzers /
// bracket help).
func manEligibleOrder(defenders []*model.Player) []*model.Player {
	var out []*model.Player
	for _, t := range []model.PlayerType{model.CB, model.NB, model.LB, model.S} {
		out = append(out, byType(defenders, t)...)
	}
	return out
}

// assignCover1: single-high FS, robber SS, man everywhere else.
func assignCover1(defenders, receivers []*model.Player, analysis *formation.Analysis, los float64) {
	ordered := sortedReceiversByX(receivers)
	safeties := byType(defenders, model.S)
	cbs := byType(defenders, model.CB)
	nbs := byType(defenders, model.NB)
	lbs := byType(defenders, model.LB)

	fsDepth := los + 14
	if analysis.Type == model.FormationSpread || analysis.Type == model.FormationEmpty {
		fsDepth = los + 18
	}
	if len(safeties) > 0 {
		fs := safeties[0]
		fs.Position = vector.V2{X: vector.CenterX, Y: fsDepth}
		fs.CoverageResponsibility = zoneResp(fs.ID, model.Zone{
			Name: "deep-middle", Center: fs.Position, Width: 30, Height: 10, Depth: fsDepth - los, Landmark: "middle",
		})
		fs.Technique = model.TechZone
	}
	if len(safeties) > 1 {
		ss := safeties[1]
		ss.Position = vector.V2{X: strengthX(analysis, vector.CenterX), Y: los + 8}
		ss.CoverageResponsibility = &model.CoverageResponsibility{
			DefenderID: ss.ID, Kind: model.RespZone,
			Zone: &model.Zone{Name: "robber", Center: ss.Position, Width: 14, Height: 8, Depth: 8, Landmark: "hole"},
			Robber: &model.RobberInfo{PatternReads: []string{"crossers", "digs"}, QBKeyRule: "eyes"},
		}
		ss.Technique = model.TechZone
	}

	rest := append(append(append([]*model.Player(nil), cbs...), nbs...), lbs...)
	assignManInOrder(rest, ordered, los)
}

// assignManInOrder assigns defenders to receivers by proximity in x
// order, validated against duplicate targets by construction (each
// receiver consumed once).
func assignManInOrder(defenders, ordered []*model.Player, los float64) {
	used := map[string]bool{}
	for _, d := range defenders {
		var best *model.Player
		bestDist := -1.0
		for _, r := range ordered {
			if used[r.ID] {
				continue
			}
			dist := vector.Distance(d.Position, r.Position)
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				best = r
			}
		}
		if best == nil {
			continue
		}
		used[best.ID] = true
		d.CoverageResponsibility = man(d.ID, best.ID)
		d.Technique = model.TechPress
		d.Position = vector.V2{X: best.Position.X, Y: los + 1}
	}
}

func strengthX(analysis *formation.Analysis, base float64) float64 {
	switch analysis.Strength {
	case model.StrengthLeft:
		return base - 6
	case model.StrengthRight:
		return base + 6
	default:
		return base
	}
}

// assignCover2: two safeties at LOS+18 on the numbers, never within 9yd
// of the sideline; corners underneath flat zones; LBs hook/curl.
func assignCover2(defenders, receivers []*model.Player, analysis *formation.Analysis, los float64) {
	safeties := byType(defenders, model.S)
	cbs := byType(defenders, model.CB)
	nbs := byType(defenders, model.NB)
	lbs := byType(defenders, model.LB)

	for i, s := range safeties {
		x := vector.CenterX + vector.NumbersOffset
		if i == 0 {
			x = vector.CenterX - vector.NumbersOffset
		}
		x = clampSideline(x)
		s.Position = vector.V2{X: x, Y: los + 18}
		s.CoverageResponsibility = zoneResp(s.ID, model.Zone{
			Name: "deep-half", Center: s.Position, Width: vector.FieldWidth / 2, Height: 12, Depth: 18, Landmark: "half",
		})
		s.Technique = model.TechZone
	}
	for i, c := range cbs {
		x := vector.CenterX + vector.NumbersOffset + 6
		if i == 0 {
			x = vector.CenterX - vector.NumbersOffset - 6
		}
		c.Position = vector.V2{X: clampSideline(x), Y: los + 3}
		c.CoverageResponsibility = zoneResp(c.ID, model.Zone{
			Name: "flat", Center: c.Position, Width: 10, Height: 6, Depth: 3, Landmark: "flat",
		})
		c.Technique = model.TechZone
	}
	underneath := append(append([]*model.Player(nil), nbs...), lbs...)
	placeUnderneathZones(underneath, los, "hook-curl")
}

func clampSideline(x float64) float64 {
	if x < 6 {
		return 6
	}
	if x > vector.FieldWidth-6 {
		return vector.FieldWidth - 6
	}
	return x
}

func placeUnderneathZones(defs []*model.Player, los float64, landmark string) {
	n := len(defs)
	for i, d := range defs {
		x := vector.CenterX + float64(i-(n-1)/2)*12
		d.Position = vector.V2{X: x, Y: los + 6}
		d.CoverageResponsibility = zoneResp(d.ID, model.Zone{
			Name: landmark, Center: d.Position, Width: 12, Height: 8, Depth: 6, Landmark: landmark,
		})
		d.Technique = model.TechZone
	}
}

// assignCover3: corners deep-thirds, FS middle third, three underneath.
func assignCover3(defenders, receivers []*model.Player, analysis *formation.Analysis, los float64) {
	lm := thirdsX()
	cbs := byType(defenders, model.CB)
	safeties := byType(defenders, model.S)
	nbs := byType(defenders, model.NB)
	lbs := byType(defenders, model.LB)

	if len(cbs) > 0 {
		cbs[0].Position = vector.V2{X: lm[0], Y: los + 16}
		cbs[0].CoverageResponsibility = zoneResp(cbs[0].ID, model.Zone{Name: "deep-third-left", Center: cbs[0].Position, Width: vector.FieldWidth / 3, Height: 12, Depth: 16, Landmark: "third"})
		cbs[0].Technique = model.TechZone
	}
	if len(cbs) > 1 {
		cbs[1].Position = vector.V2{X: lm[2], Y: los + 16}
		cbs[1].CoverageResponsibility = zoneResp(cbs[1].ID, model.Zone{Name: "deep-third-right", Center: cbs[1].Position, Width: vector.FieldWidth / 3, Height: 12, Depth: 16, Landmark: "third"})
		cbs[1].Technique = model.TechZone
	}
	if len(safeties) > 0 {
		safeties[0].Position = vector.V2{X: lm[1], Y: los + 16}
		safeties[0].CoverageResponsibility = zoneResp(safeties[0].ID, model.Zone{Name: "deep-third-middle", Center: safeties[0].Position, Width: vector.FieldWidth / 3, Height: 12, Depth: 16, Landmark: "third"})
		safeties[0].Technique = model.TechZone
	}
	if len(safeties) > 1 {
		safeties[1].Position = vector.V2{X: strengthX(analysis, vector.CenterX), Y: los + 9}
		safeties[1].CoverageResponsibility = zoneResp(safeties[1].ID, model.Zone{Name: "curl-flat", Center: safeties[1].Position, Width: 14, Height: 8, Depth: 9, Landmark: "curl"})
		safeties[1].Technique = model.TechZone
	}
	underneath := append(append([]*model.Player(nil), nbs...), lbs...)
	placeUnderneathZones(underneath, los, "hook")
}

func thirdsX() [3]float64 {
	return [3]float64{vector.FieldWidth / 6, vector.FieldWidth / 2, vector.FieldWidth * 5 / 6}
}

// assignQuarters: four deep-quarter defenders (2 CB + 2 S) matched to
// the nearest vertical-releasing receiver, three underneath.
// When poach is true, the backside safety is overlaid with a poach
// responsibility on the #2 receiver's vertical release.
func assignQuarters(defenders, receivers []*model.Player, analysis *formation.Analysis, los float64, poach bool) {
	cbs := byType(defenders, model.CB)
	safeties := byType(defenders, model.S)
	nbs := byType(defenders, model.NB)
	lbs := byType(defenders, model.LB)

	quarterX := []float64{vector.CenterX - 20, vector.CenterX - 7, vector.CenterX + 7, vector.CenterX + 20}
	deep := append(append([]*model.Player(nil), cbs...), safeties...)
	sort.Slice(deep, func(i, j int) bool { return deep[i].Position.X < deep[j].Position.X })
	for i, d := range deep {
		if i >= len(quarterX) {
			break
		}
		d.Position = vector.V2{X: quarterX[i], Y: los + 12}
		d.CoverageResponsibility = &model.CoverageResponsibility{
			DefenderID: d.ID, Kind: model.RespZone,
			Zone: &model.Zone{Name: "quarter", Center: d.Position, Width: vector.FieldWidth / 4, Height: 14, Depth: 12, Landmark: "quarter"},
		}
		d.Technique = model.TechZone
	}
	if poach && len(safeties) > 0 {
		backside := safeties[0]
		for _, s := range safeties[1:] {
			if analysis.Strength == model.StrengthLeft && s.Position.X > backside.Position.X ||
				analysis.Strength != model.StrengthLeft && s.Position.X < backside.Position.X {
				backside = s
			}
		}
		if backside.CoverageResponsibility != nil {
			backside.CoverageResponsibility.IsPoach = true
		}
	}
	underneath := append(append([]*model.Player(nil), nbs...), lbs...)
	placeUnderneathZones(underneath, los, "hook")
}

// assignCover6: split halves, cover-2 rules on one side, quarters on
// the other, determined by formation strength.
func assignCover6(defenders, receivers []*model.Player, analysis *formation.Analysis, los float64) {
	assignCover2(defenders, receivers, analysis, los)
	// Overlay the weak side's deep defenders to a quarters read.
	weakSide := byType(defenders, model.CB)
	if len(weakSide) > 0 {
		wc := weakSide[0]
		if analysis.Strength == model.StrengthLeft {
			wc = weakSide[1]
		}
		wc.CoverageResponsibility = &model.CoverageResponsibility{
			DefenderID: wc.ID, Kind: model.RespZone,
			Zone: &model.Zone{Name: "quarter", Center: wc.Position, Width: vector.FieldWidth / 4, Height: 14, Depth: 12, Landmark: "quarter"},
		}
		wc.Position.Y = los + 12
	}
}

// assignTampa2: Cover 2 rules plus the MLB dropping to a deep-middle
// zone. The MLB is placed at LOS+15yd, the low end of the 15-18yd
// target (SPEC_FULL.md §12.1).
func assignTampa2(defenders, receivers []*model.Player, analysis *formation.Analysis, los float64) {
	assignCover2(defenders, receivers, analysis, los)
	lbs := byType(defenders, model.LB)
	if len(lbs) == 0 {
		return
	}
	mlb := lbs[0]
	mlb.Position = vector.V2{X: vector.CenterX, Y: los + 15}
	mlb.CoverageResponsibility = zoneResp(mlb.ID, model.Zone{
		Name: "tampa-deep-middle", Center: mlb.Position, Width: 16, Height: 10, Depth: 15, Landmark: "middle",
	})
	mlb.Technique = model.TechZone
}

// applyDisguise records a pre-snap alignment (looking like
// preSnapLook) for every covering defender in its
// CoverageResponsibility.Disguise, with TriggerAtSnap set (spec.md §4.5
// step 4, "disguise coverages"). Each defender's Position stays at its
// post-snap assignment; no component moves defenders to
// PreSnapPosition before the snap or rolls them back at the snap.
func applyDisguise(defenders []*model.Player, preSnapLook model.CoverageType, los float64, roll float64) {
	for _, d := range defenders {
		if d.CoverageResponsibility == nil {
			continue
		}
		d.CoverageResponsibility.Disguise = &model.DisguiseInfo{
			PreSnapPosition: preSnapDisguisePosition(d, preSnapLook, los),
			TriggerAtSnap:   true,
		}
	}
}

func preSnapDisguisePosition(d *model.Player, look model.CoverageType, los float64) vector.V2 {
	if look == model.Cover2 && d.Type == model.S {
		return vector.V2{X: d.Position.X, Y: los + 18}
	}
	return d.Position
}

// invertSafetyCorner swaps the first safety and first corner's deep
// assignments, modeling cover-2-invert's rotation.
func invertSafetyCorner(defenders []*model.Player) {
	safeties := byType(defenders, model.S)
	cbs := byType(defenders, model.CB)
	if len(safeties) == 0 || len(cbs) == 0 {
		return
	}
	s, c := safeties[0], cbs[0]
	s.CoverageResponsibility, c.CoverageResponsibility = c.CoverageResponsibility, s.CoverageResponsibility
	if s.CoverageResponsibility != nil {
		s.CoverageResponsibility.DefenderID = s.ID
		s.CoverageResponsibility.IsInvert = true
	}
	if c.CoverageResponsibility != nil {
		c.CoverageResponsibility.DefenderID = c.ID
		c.CoverageResponsibility.IsInvert = true
	}
}
