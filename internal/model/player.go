package model

import "github.com/coverageeng/snap-engine/internal/vector"

// BaseMaxSpeed gives the unmodified top speed, in yards/sec, for each
// defensive player type per spec.md §4.5 step 3. Offensive skill
// positions use OffenseMaxSpeed.
var BaseMaxSpeed = map[PlayerType]float64{
	CB: 9.1,
	NB: 9.1,
	S:  8.8,
	LB: 8.3,
}

// OffenseMaxSpeed gives default top speeds for offensive skill
// positions; these are not specified as precisely in spec.md so they
// are set in the 8.0-9.2 range, close to their defensive counterparts.
var OffenseMaxSpeed = map[PlayerType]float64{
	QB: 8.0,
	RB: 9.0,
	WR: 9.2,
	TE: 8.6,
	FB: 8.2,
}

// StarBoost is the multiplicative bonus an isStar player's max speed
// receives (+10%).
const StarBoost = 1.10

// MotionBoostMultiplier and MotionBoostDuration implement the post-snap
// speed boost granted to a player who completed pre-snap motion: +9%
// for 0.35s with a 0.1s fade (modeled as a linear ramp down to 1.0 over
// the final 0.1s of the window).
const (
	MotionBoostMultiplier = 1.09
	MotionBoostDuration   = 0.35
	MotionBoostFade       = 0.10
)

// Player is the single mutable entity representing one participant in
// the play. Kinematics, attributes, motion state and assignment are
// modeled as plain fields rather than duck-typed maps so every access
// is compile-time checked.
type Player struct {
	ID       string
	Team     Team
	Type     PlayerType
	IsSlot   bool

	Position    vector.V2
	Velocity    vector.V2
	CurrentSpeed float64
	MaxSpeed    float64
	// SpeedMultiplier carries motion/star boosts without mutating
	// MaxSpeed in place (Open Question resolution, SPEC_FULL.md §3).
	SpeedMultiplier float64
	Acceleration    float64

	IsAccelerating  bool
	IsDecelerating  bool
	IsBackpedaling  bool

	IsStar      bool
	IsEligible  bool
	IsBlocking  bool
	IsBlocked   bool
	HasBall     bool

	HasMotion            bool
	MotionPath           *Motion
	HasMotionBoost       bool
	MotionBoostRemaining float64

	Route                  *Route
	CoverageResponsibility *CoverageResponsibility
	CoverageAssignment     string

	// Defensive-movement runtime state (§4.11).
	Technique       Technique
	Leverage        Leverage
	CushionYards    float64
	IsTransitioning bool
	ReactionTimer   float64
	TargetPosition  vector.V2
}

// EffectiveMaxSpeed returns MaxSpeed scaled by SpeedMultiplier and the
// star boost, never mutating the stored MaxSpeed.
func (p *Player) EffectiveMaxSpeed() float64 {
	mult := p.SpeedMultiplier
	if mult <= 0 {
		mult = 1.0
	}
	if p.IsStar {
		mult *= StarBoost
	}
	return p.MaxSpeed * mult
}

// Clone returns a deep copy of the player, used by GameState snapshots
// and by the catalog loader's deep-clone contract.
func (p *Player) Clone() *Player {
	cp := *p
	if p.MotionPath != nil {
		m := *p.MotionPath
		cp.MotionPath = &m
	}
	if p.Route != nil {
		cp.Route = p.Route.Clone()
	}
	if p.CoverageResponsibility != nil {
		cp.CoverageResponsibility = p.CoverageResponsibility.Clone()
	}
	return &cp
}

// IsQB reports whether the player is the offense's quarterback.
func (p *Player) IsQB() bool { return p.Team == TeamOffense && p.Type == QB }

// IsReceiverEligible reports whether a player can be assigned a route:
// any offensive player other than the QB.
func (p *Player) IsReceiverEligible() bool {
	return p.Team == TeamOffense && p.Type != QB
}
