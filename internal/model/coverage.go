package model

import "github.com/coverageeng/snap-engine/internal/vector"

// DeepZoneDepth is the minimum depth, in yards past the LOS, at which a
// zone is considered "deep" rather than "underneath" (spec.md §3).
const DeepZoneDepth = 15.0

// DeepZoneCushion is the minimum yards a deep-zone defender must stay
// behind the deepest receiver currently in that zone (spec.md §4.6).
const DeepZoneCushion = 2.0

// Zone is an axis-aligned coverage region plus a named landmark.
type Zone struct {
	Name   string
	Center vector.V2
	Width  float64
	Height float64
	Depth  float64
	Landmark string
}

// IsDeep reports whether the zone is a deep zone per spec.md §3.
func (z Zone) IsDeep() bool { return z.Depth >= DeepZoneDepth }

// Bounds returns the zone's axis-aligned rectangle corners.
func (z Zone) Bounds() (min, max vector.V2) {
	hw, hh := z.Width/2, z.Height/2
	return vector.V2{X: z.Center.X - hw, Y: z.Center.Y - hh},
		vector.V2{X: z.Center.X + hw, Y: z.Center.Y + hh}
}

// BracketRole distinguishes the two bracket coordination styles.
type BracketRole string

const (
	BracketTopBottom    BracketRole = "top-bottom"
	BracketInsideOutside BracketRole = "inside-outside"
)

// BracketInfo describes a two-defender bracket on a single receiver.
type BracketInfo struct {
	Role         BracketRole
	PartnerID    string
	TriggerDepth float64
}

// RobberInfo describes a robber/lurk defender reading the QB's eyes.
type RobberInfo struct {
	PatternReads []string
	QBKeyRule    string
}

// DisguiseInfo carries a defender's pre-snap alignment and the position
// it rolls to at the snap.
type DisguiseInfo struct {
	PreSnapPosition vector.V2
	TriggerAtSnap   bool
}

// CoverageResponsibility is a single defender's assignment, modeled as
// an exhaustive tagged variant: Kind selects which of the optional
// fields below are meaningful.
type CoverageResponsibility struct {
	DefenderID string
	Kind       ResponsibilityKind

	// RespMan
	ManTargetID string

	// RespZone
	Zone *Zone

	// Overlays, valid regardless of Kind.
	Bracket  *BracketInfo
	Robber   *RobberInfo
	Disguise *DisguiseInfo
	IsPoach  bool
	IsInvert bool
}

// Clone deep-copies a CoverageResponsibility.
func (c *CoverageResponsibility) Clone() *CoverageResponsibility {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Zone != nil {
		z := *c.Zone
		cp.Zone = &z
	}
	if c.Bracket != nil {
		b := *c.Bracket
		cp.Bracket = &b
	}
	if c.Robber != nil {
		r := *c.Robber
		r.PatternReads = append([]string(nil), c.Robber.PatternReads...)
		cp.Robber = &r
	}
	if c.Disguise != nil {
		d := *c.Disguise
		cp.Disguise = &d
	}
	return &cp
}

// Coverage is the static, catalog-sourced coverage definition.
type Coverage struct {
	Name        string
	Type        CoverageType
	SafetyCount int
	// RelativeAlignment optionally overrides a defender role's default
	// alignment offset relative to LOS/hash/formation strength.
	RelativeAlignment map[string]vector.V2
}

// Clone deep-copies a Coverage.
func (c *Coverage) Clone() *Coverage {
	if c == nil {
		return nil
	}
	cp := &Coverage{Name: c.Name, Type: c.Type, SafetyCount: c.SafetyCount}
	if c.RelativeAlignment != nil {
		cp.RelativeAlignment = make(map[string]vector.V2, len(c.RelativeAlignment))
		for k, v := range c.RelativeAlignment {
			cp.RelativeAlignment[k] = v
		}
	}
	return cp
}
