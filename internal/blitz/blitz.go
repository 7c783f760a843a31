// Package blitz implements blitz decisions, pass-rush assignment and
// pressure/sack timing (spec.md §4.14).
package blitz

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/rng"
)

// BlitzProbability is the per-coverage chance the defense sends extra
// rushers, per spec.md §4.14 ("Cover 0 always; Cover 1 25%; Cover 6
// 30%; others lower").
var BlitzProbability = map[model.CoverageType]float64{
	model.Cover0:        1.0,
	model.Cover1:        0.25,
	model.Cover6:        0.30,
	model.Cover2:        0.12,
	model.Cover3:        0.15,
	model.Cover4:        0.10,
	model.Quarters:      0.10,
	model.Tampa2:        0.12,
	model.Cover2RollTo1: 0.15,
	model.QuartersPoach: 0.10,
	model.Cover2Invert:  0.15,
}

// RushLane enumerates the gaps/edge a rusher attacks.
type RushLane string

const (
	LaneAGap RushLane = "A"
	LaneBGap RushLane = "B"
	LaneCGap RushLane = "C"
	LaneEdge RushLane = "edge"
)

// RushTarget is the blocker type a rusher is aimed at.
type RushTarget string

const (
	TargetCenter  RushTarget = "center"
	TargetGuard   RushTarget = "guard"
	TargetTackle  RushTarget = "tackle"
	TargetContain RushTarget = "contain"
)

// Rusher is one pass-rush assignment.
type Rusher struct {
	DefenderID string
	Lane       RushLane
	Target     RushTarget
	TimingSec  float64
	Priority   int
}

// Package describes the decided blitz for a play: which defenders
// rush, their lanes/targets/timing, and how many total rushers.
type Package struct {
	Rushers []Rusher
}

// DecideBlitz rolls whether the defense blitzes this coverage, and if
// so builds a rush package from the defenders marked RespBlitz by the
// alignment builder.
func DecideBlitz(coverage model.CoverageType, defenders []*model.Player, src *rng.Source) (*Package, bool) {
	p := BlitzProbability[coverage]
	if !src.Chance(p) {
		return nil, false
	}
	return BuildPackage(defenders), true
}

// BuildPackage assigns lanes/targets/timing to every defender already
// marked with a blitz responsibility (spec.md §4.5's alignment output),
// in priority order (edge rushers first, then B, then A, capped at 6).
const maxRushers = 6

func BuildPackage(defenders []*model.Player) *Package {
	var rushers []Rusher
	lanes := []RushLane{LaneEdge, LaneBGap, LaneAGap, LaneCGap, LaneEdge, LaneBGap}
	targets := []RushTarget{TargetContain, TargetGuard, TargetCenter, TargetTackle, TargetContain, TargetGuard}
	i := 0
	for _, d := range defenders {
		if d.CoverageResponsibility == nil || d.CoverageResponsibility.Kind != model.RespBlitz {
			continue
		}
		if i >= maxRushers {
			break
		}
		rushers = append(rushers, Rusher{
			DefenderID: d.ID,
			Lane:       lanes[i%len(lanes)],
			Target:     targets[i%len(targets)],
			TimingSec:  1.2 + 0.2*float64(i),
			Priority:   i + 1,
		})
		i++
	}
	return &Package{Rushers: rushers}
}

// ProtectorType is an offensive pass-protector.
type ProtectorType string

const (
	ProtectRB ProtectorType = "RB"
)

// ProtectionPriority is the RB protection read order (spec.md §4.14:
// "RB: Mike, Sam, Will, SS").
var ProtectionPriority = []string{"Mike", "Sam", "Will", "SS"}

// Effectiveness is a protector's per-rusher-lane block-success chance.
var Effectiveness = map[RushLane]float64{
	LaneAGap: 0.55,
	LaneBGap: 0.60,
	LaneCGap: 0.65,
	LaneEdge: 0.40,
}

// MaxBlockTime is the base hold time (seconds) a successful block buys
// before the rusher continues.
const MaxBlockTime = 1.5

// ProtectionResult is the outcome of one rusher-vs-protector matchup.
type ProtectionResult struct {
	Held     bool
	HoldTime float64
}

// Resolve rolls whether a protector picks up the given rush lane, and
// for how long.
func Resolve(lane RushLane, src *rng.Source) ProtectionResult {
	eff := Effectiveness[lane]
	if src.Chance(eff) {
		return ProtectionResult{Held: true, HoldTime: MaxBlockTime}
	}
	return ProtectionResult{Held: false, HoldTime: MaxBlockTime * 0.3}
}

// SackBudgetDefault, SackBudgetChallenge and SackBudgetRange implement
// the default/challenge/range tunables from spec.md §4.14.
const (
	SackBudgetDefault   = 5.0
	SackBudgetChallenge = 2.7
	SackBudgetRangeMin  = 2.0
	SackBudgetRangeMax  = 10.0
)

// PressureLevel is the QB's pressure state at a given elapsed time.
type PressureLevel string

const (
	PressureClean     PressureLevel = "clean"
	PressurePressured PressureLevel = "pressured"
	PressureCollapsed PressureLevel = "collapsed"
)

// PressureEffect is the accuracy modifier and throw-time penalty for a
// PressureLevel (spec.md §4.14).
type PressureEffect struct {
	Accuracy  float64
	ThrowTime float64
}

var pressureEffects = map[PressureLevel]PressureEffect{
	PressureClean:     {Accuracy: 1.00, ThrowTime: 0.8},
	PressurePressured: {Accuracy: 0.85, ThrowTime: 0.6},
	PressureCollapsed: {Accuracy: 0.70, ThrowTime: 0.4},
}

// EvaluatePressure returns the QB's pressure level and its effect at
// the given elapsed time against the play's sack budget. pressureTime
// is the point rushers first threaten (sackBudget - 1.5 by
// convention); sackTime is the sack budget itself.
func EvaluatePressure(elapsed, sackBudget float64) (PressureLevel, PressureEffect) {
	pressureTime := sackBudget - 1.5
	switch {
	case elapsed <= pressureTime:
		return PressureClean, pressureEffects[PressureClean]
	case elapsed <= sackBudget-0.5:
		return PressurePressured, pressureEffects[PressurePressured]
	default:
		return PressureCollapsed, pressureEffects[PressureCollapsed]
	}
}

// IsSack reports whether the play has reached a sack: ball still held
// at or past the sack budget.
func IsSack(elapsed, sackBudget float64, ballState model.BallState) bool {
	return ballState == model.BallHeld && elapsed >= sackBudget
}

// IsTimeout reports the defensive-timeout condition: no throw by
// sackBudget+2s.
func IsTimeout(elapsed, sackBudget float64, ballState model.BallState) bool {
	return ballState == model.BallHeld && elapsed >= sackBudget+2.0
}

// EffectiveSackBudget scales the base budget when the sack clock is
// reduced by hot-route auto-convert (spec.md §4.13: "-1.5s").
func EffectiveSackBudget(base float64, hotRouteTriggered bool) float64 {
	if !hotRouteTriggered {
		return base
	}
	b := base - 1.5
	if b < SackBudgetRangeMin {
		b = SackBudgetRangeMin
	}
	return b
}
