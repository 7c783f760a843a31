// Package defense implements defensive movement (spec.md §4.11):
// press/off/bail/trail/zone/blitz techniques, backpedal-to-trail
// transitions, pursuit, zone drops, pattern-match triggers and
// play-action freeze.
package defense

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// ReactionBase gives the base reaction timer per defender type (spec.md
// §4.11).
var ReactionBase = map[model.PlayerType]float64{
	model.CB: 0.28,
	model.S:  0.30,
	model.LB: 0.34,
	model.NB: 0.29,
}

// HipRecognitionBonus and StarBonus are the reaction-time discounts
// from spec.md §4.11.
const (
	HipRecognitionBonus = 0.050
	StarBonusMin        = 0.025
	StarBonusMax        = 0.030
)

// ReactionTime returns the defender's effective reaction timer.
func ReactionTime(d *model.Player, facingReceiver bool) float64 {
	base, ok := ReactionBase[d.Type]
	if !ok {
		base = 0.30
	}
	if facingReceiver {
		base -= HipRecognitionBonus
	}
	if d.IsStar {
		base -= StarBonusMin
	}
	if base < 0 {
		base = 0
	}
	return base
}

// World carries the per-tick context the defense package needs beyond
// a single Player, avoiding an import cycle back to internal/engine.
type World struct {
	Receivers        []*model.Player // by id, eligible receivers with current positions
	BallCarrierPos   vector.V2
	HasBallCarrier   bool
	QBPosition       vector.V2
	PlayActionFreeze bool
	Elapsed          float64
	DT               float64
}

func findReceiver(w *World, id string) *model.Player {
	for _, r := range w.Receivers {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// PressCushion and OffThresholds are the numeric constants from
// spec.md §4.11.
const (
	PressCushion        = 1.0
	CushionBroken       = 2.0
	CushionThreatened   = 3.0
	OffBackpedalSpeed   = 0.55
	ThreatenedSpeed     = 1.00
	HipFlipDuration     = 0.25
	HipFlipSpeed        = 0.50
	TrailLeverageOffset = 0.5
	TrailFollowDistance = 1.5
	ZoneDropSpeed       = 0.85
	ZoneDropBezierMinYd = 5.0
	RallyDistance       = 10.0
	RallyAngleDegrees   = 45.0
	PlayActionLBDriveYd = 2.0
	PlayActionLBRecover = 0.4
	PlayActionSPause    = 0.3
)

// ComputeDesiredPosition returns where the defender wants to be this
// tick, before the engine overlays any active timing-system
// adjustment on top (spec.md §4.16 step 5).
func ComputeDesiredPosition(d *model.Player, w *World) vector.V2 {
	resp := d.CoverageResponsibility
	if resp == nil {
		return d.Position
	}

	if w.PlayActionFreeze {
		if pos, ok := playActionFreezePosition(d, w); ok {
			return pos
		}
	}

	if w.HasBallCarrier && vector.Distance(d.Position, w.BallCarrierPos) <= RallyDistance {
		return rallyToward(d, w.BallCarrierPos)
	}

	switch resp.Kind {
	case model.RespMan:
		return manTechnique(d, w)
	case model.RespZone:
		return zoneTechnique(d, w)
	case model.RespBlitz:
		return blitzTechnique(d, w)
	case model.RespSpy:
		return spyTechnique(d, w)
	}
	return d.Position
}

func playActionFreezePosition(d *model.Player, w *World) (vector.V2, bool) {
	switch d.Type {
	case model.LB:
		drive := PlayActionLBDriveYd
		progress := w.Elapsed
		if progress < PlayActionLBRecover {
			return vector.V2{X: d.Position.X, Y: d.Position.Y - drive*(progress/PlayActionLBRecover)}, true
		}
		return d.Position, true
	case model.S:
		return d.Position, true
	}
	return d.Position, false
}

func rallyToward(d *model.Player, target vector.V2) vector.V2 {
	_ = RallyAngleDegrees
	step := d.EffectiveMaxSpeed() * tickDT
	return vector.MoveToward(d.Position, target, step)
}

const tickDT = 1.0 / 60.0

func manTechnique(d *model.Player, w *World) vector.V2 {
	target := findReceiver(w, d.CoverageResponsibility.ManTargetID)
	if target == nil {
		return d.Position
	}
	switch d.Technique {
	case model.TechPress:
		return pressTechnique(d, target)
	case model.TechBail:
		return bailTechnique(d, target)
	case model.TechTrail:
		return trailTechnique(d, target)
	default:
		return offTechnique(d, target)
	}
}

func leverageOffset(leverage model.Leverage) float64 {
	switch leverage {
	case model.LeverageOutside:
		return 1.0
	case model.LeverageInside:
		return -1.0
	default:
		return 0
	}
}

func pressTechnique(d *model.Player, target *model.Player) vector.V2 {
	off := leverageOffset(d.Leverage)
	want := vector.V2{X: target.Position.X + off, Y: target.Position.Y}
	step := d.EffectiveMaxSpeed() * tickDT
	return vector.MoveToward(d.Position, want, step)
}

func bailTechnique(d *model.Player, target *model.Player) vector.V2 {
	want := vector.V2{X: target.Position.X, Y: target.Position.Y + 3}
	step := d.EffectiveMaxSpeed() * OffBackpedalSpeed * tickDT
	return vector.MoveToward(d.Position, want, step)
}

func offTechnique(d *model.Player, target *model.Player) vector.V2 {
	sep := vector.Distance(d.Position, target.Position)
	switch {
	case sep <= CushionBroken:
		d.Technique = model.TechTrail
		d.IsTransitioning = true
		return trailTechnique(d, target)
	case sep <= CushionThreatened:
		d.IsBackpedaling = false
		step := d.EffectiveMaxSpeed() * ThreatenedSpeed * tickDT
		return vector.MoveToward(d.Position, target.Position, step)
	default:
		d.IsBackpedaling = true
		want := vector.V2{X: target.Position.X, Y: d.Position.Y + 1}
		step := d.EffectiveMaxSpeed() * OffBackpedalSpeed * tickDT
		return vector.MoveToward(d.Position, want, step)
	}
}

func trailTechnique(d *model.Player, target *model.Player) vector.V2 {
	off := leverageOffset(d.Leverage) * TrailLeverageOffset
	want := vector.V2{X: target.Position.X + off, Y: target.Position.Y - TrailFollowDistance}
	speedMult := 1.0
	if d.IsTransitioning {
		speedMult = HipFlipSpeed
		d.IsTransitioning = false
	}
	step := d.EffectiveMaxSpeed() * speedMult * tickDT
	return vector.MoveToward(d.Position, want, step)
}

func zoneTechnique(d *model.Player, w *World) vector.V2 {
	resp := d.CoverageResponsibility
	if resp.Zone == nil {
		return d.Position
	}

	if modTrigger(d, w) {
		return manTechniqueToNearestVertical(d, w)
	}

	landmark := resp.Zone.Center
	dist := vector.Distance(d.Position, landmark)
	if dist >= ZoneDropBezierMinYd {
		ctrl := vector.Lerp(d.Position, landmark, 0.5)
		ctrl.Y += 1
		t := zoneTParam(d, landmark)
		pos := vector.BezierQuadratic(d.Position, ctrl, landmark, t)
		return pos
	}
	step := d.EffectiveMaxSpeed() * ZoneDropSpeed * tickDT
	return vector.MoveToward(d.Position, landmark, step)
}

func zoneTParam(d *model.Player, landmark vector.V2) float64 {
	dist := vector.Distance(d.Position, landmark)
	if dist < vector.Epsilon {
		return 1
	}
	step := d.EffectiveMaxSpeed() * ZoneDropSpeed * tickDT
	t := step / dist
	if t > 1 {
		t = 1
	}
	return t
}

// PatternMatchVerticalThreshold is the depth, in yards past the LOS, a
// route must cross for a Cover 4/quarters zone defender to convert to
// man (the "MOD" trigger, spec.md §4.11).
const PatternMatchVerticalThreshold = 12.0

func modTrigger(d *model.Player, w *World) bool {
	resp := d.CoverageResponsibility
	if resp.Zone == nil || resp.Zone.Name != "quarter" {
		return false
	}
	nearest := nearestVertical(d, w)
	return nearest != nil
}

func nearestVertical(d *model.Player, w *World) *model.Player {
	var best *model.Player
	bestDist := -1.0
	for _, r := range w.Receivers {
		if r.Route == nil || r.Route.Depth() < PatternMatchVerticalThreshold {
			continue
		}
		dist := vector.Distance(d.Position, r.Position)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = r
		}
	}
	return best
}

func manTechniqueToNearestVertical(d *model.Player, w *World) vector.V2 {
	target := nearestVertical(d, w)
	if target == nil {
		return d.Position
	}
	d.CoverageAssignment = "MOD-" + target.ID
	return pressTechnique(d, target)
}

func blitzTechnique(d *model.Player, w *World) vector.V2 {
	target := w.QBPosition
	step := d.EffectiveMaxSpeed() * tickDT
	return vector.MoveToward(d.Position, target, step)
}

func spyTechnique(d *model.Player, w *World) vector.V2 {
	target := w.QBPosition
	step := d.EffectiveMaxSpeed() * 0.7 * tickDT
	return vector.MoveToward(d.Position, target, step)
}

// Palms implements the 2-read rule: the corner reads #2; if #2 breaks
// out past 5yd the corner takes #2 and the safety takes #1 deep;
// otherwise the safety matches #2 vertical and the corner stays on #1
// (spec.md §4.11).
func Palms(corner, safety *model.Player, receiver1, receiver2 *model.Player) {
	if receiver2 == nil || receiver2.Route == nil {
		return
	}
	brokeOut := false
	for _, p := range receiver2.Route.Points {
		if p.IsBreak && p.Offset.Y >= 5 && p.Offset.X > 0 {
			brokeOut = true
		}
	}
	if brokeOut {
		corner.CoverageResponsibility = &model.CoverageResponsibility{DefenderID: corner.ID, Kind: model.RespMan, ManTargetID: receiver2.ID}
		if receiver1 != nil {
			safety.CoverageResponsibility = &model.CoverageResponsibility{DefenderID: safety.ID, Kind: model.RespMan, ManTargetID: receiver1.ID}
		}
	} else {
		safety.CoverageResponsibility = &model.CoverageResponsibility{DefenderID: safety.ID, Kind: model.RespMan, ManTargetID: receiver2.ID}
	}
}
