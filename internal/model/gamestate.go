package model

import "github.com/coverageeng/snap-engine/internal/vector"

// DefaultSackBudget, ChallengeSackBudget and sack budget bounds per
// spec.md §4.14/§6.
const (
	DefaultSackBudget   = 5.0
	ChallengeSackBudget = 2.7
	MinSackBudget       = 2.0
	MaxSackBudget       = 10.0
	DefaultMaxAudibles  = 2
)

// GameState is the single authoritative snapshot the engine advances.
// It is never aliased to callers: GetGameState returns a deep copy with
// a fresh Players slice (spec.md §3 invariant 9).
type GameState struct {
	Phase         Phase
	TimeElapsed   float64
	SackBudget    float64
	PressureBudget float64

	Players []*Player
	Ball    Ball

	ConceptName   string
	CoverageName  string
	CoverageType  CoverageType
	Outcome       *Outcome

	IsShowingDefense bool
	IsShowingRoutes  bool

	AudiblesUsed int
	MaxAudibles  int

	Mode GameMode

	ActiveMotion *Motion

	PersonnelPackage DefensivePackage

	PassProtectionFlags map[string]bool

	QBMovement *QBMovementState

	LOS               float64
	Down              int
	YardsToGo         float64
	DriveStartY       float64
	BallOnY           float64
	IsFirstDown       bool
	HashPosition      Hash

	LastUpdate float64

	CompatibilityWarning string

	Diagnostics []Diagnostic

	RNGSeed uint64
}

// FindPlayer returns the player with the given id, or nil.
func (g *GameState) FindPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Offense returns the offensive roster.
func (g *GameState) Offense() []*Player {
	var out []*Player
	for _, p := range g.Players {
		if p.Team == TeamOffense {
			out = append(out, p)
		}
	}
	return out
}

// Defense returns the defensive roster (always 7 players, spec.md §3
// invariant 1).
func (g *GameState) Defense() []*Player {
	var out []*Player
	for _, p := range g.Players {
		if p.Team == TeamDefense {
			out = append(out, p)
		}
	}
	return out
}

// QBPlayer returns the offense's quarterback, or nil.
func (g *GameState) QBPlayer() *Player {
	for _, p := range g.Players {
		if p.IsQB() {
			return p
		}
	}
	return nil
}

// LogDiagnostic appends a recovered-invariant record. This is the sole
// channel through which internal invariant breaches become visible to
// a host, per spec.md §7's "never surfaces as a user-visible failure"
// policy.
func (g *GameState) LogDiagnostic(component, message string) {
	g.Diagnostics = append(g.Diagnostics, Diagnostic{
		Component: component,
		Message:   message,
		Time:      g.TimeElapsed,
	})
}

// Snapshot returns a deep copy suitable for external consumption:
// fresh Players slice, fresh nested pointers, so callers never observe
// tearing and can rely on reference inequality to detect a change
// (spec.md §3 invariant 9, §5).
func (g *GameState) Snapshot() *GameState {
	cp := *g
	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp.Players[i] = p.Clone()
	}
	cp.Ball = g.Ball.Clone()
	if g.ActiveMotion != nil {
		m := *g.ActiveMotion
		cp.ActiveMotion = &m
	}
	if g.QBMovement != nil {
		q := *g.QBMovement
		cp.QBMovement = &q
	}
	if g.Outcome != nil {
		o := *g.Outcome
		cp.Outcome = &o
	}
	cp.PassProtectionFlags = make(map[string]bool, len(g.PassProtectionFlags))
	for k, v := range g.PassProtectionFlags {
		cp.PassProtectionFlags[k] = v
	}
	cp.Diagnostics = append([]Diagnostic(nil), g.Diagnostics...)
	return &cp
}

// ClampAll clamps every player position to the field rectangle; used as
// a final safety net at the end of each tick (spec.md §7, "numerical
// edge" handling).
func (g *GameState) ClampAll() {
	for _, p := range g.Players {
		p.Position = vector.ClampToField(p.Position)
	}
	g.Ball.Position = vector.ClampToField(g.Ball.Position)
}
