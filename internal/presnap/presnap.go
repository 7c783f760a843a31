// Package presnap implements the pre-snap controller (spec.md §4.8):
// every pre-snap user command is serialized through here, which
// updates offense/coverage/personnel state, re-invokes alignment,
// validates invariants, and enqueues a matching defensive-timing-
// system adjustment.
package presnap

import (
	"github.com/coverageeng/snap-engine/internal/alignment"
	"github.com/coverageeng/snap-engine/internal/catalog"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/motion"
	"github.com/coverageeng/snap-engine/internal/personnel"
	"github.com/coverageeng/snap-engine/internal/timing"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// DefaultMaxAudibles is the default audible budget (spec.md §4.8),
// overridable via pkg/config.
const DefaultMaxAudibles = 2

// Controller holds the mutable pre-snap session state: audible budget
// used so far and the motion-in-progress flag, alongside the shared
// catalog and timing system every rebuild needs.
type Controller struct {
	Catalog      catalog.Catalog
	Timing       *timing.System
	MaxAudibles  int
	AudiblesUsed int
	MotionActive bool
	Log          alignment.Logger
}

// New builds a Controller with the given audible budget.
func New(cat catalog.Catalog, t *timing.System, maxAudibles int, log alignment.Logger) *Controller {
	return &Controller{Catalog: cat, Timing: t, MaxAudibles: maxAudibles, Log: log}
}

// RebuildResult mirrors alignment.Result with the pieces the engine
// needs to commit into GameState after any pre-snap command.
type RebuildResult = alignment.Result

// Rebuild re-runs the full alignment pipeline and enqueues a matching
// defensive-timing adjustment of the given kind for every defender
// whose position changed materially, per spec.md §4.8 step 4.
func (c *Controller) Rebuild(offense []*model.Player, prev []*model.Player, coverage model.CoverageType, los float64, hash model.Hash, sit personnel.Situation, disguiseRoll float64, forcedPackage model.DefensivePackage, kind model.AdjustmentKind, now float64) *RebuildResult {
	result := alignment.Build(offense, coverage, los, hash, sit, disguiseRoll, forcedPackage, c.Log)
	c.enqueueAdjustments(prev, result.Defenders, kind, now)
	return result
}

func (c *Controller) enqueueAdjustments(prev, next []*model.Player, kind model.AdjustmentKind, now float64) {
	if c.Timing == nil {
		return
	}
	prevByID := make(map[string]*model.Player, len(prev))
	for _, p := range prev {
		prevByID[p.ID] = p
	}
	for _, d := range next {
		old, ok := prevByID[d.ID]
		if !ok || vector.Distance(old.Position, d.Position) < 0.1 {
			continue
		}
		c.Timing.Queue(d.ID, kind, old.Position, d.Position, now)
	}
}

// ValidateDragDrop clamps and validates a drag-drop repositioning
// command (spec.md §4.8: "QB y ≤ LOS ... receivers free but clamped to
// field"). Returns the clamped position and whether the move is legal.
func ValidateDragDrop(p *model.Player, newPos vector.V2, los float64) (vector.V2, bool) {
	clamped := vector.ClampToField(newPos)
	if p.IsQB() && clamped.Y > los {
		return p.Position, false
	}
	return clamped, true
}

// AudibleRoute swaps a receiver's route for a new route type, honoring
// maxAudibles; returns false if the budget is exhausted or the player
// isn't receiver-eligible.
func (c *Controller) AudibleRoute(p *model.Player, rt model.RouteType) bool {
	if !p.IsReceiverEligible() {
		return false
	}
	if c.AudiblesUsed >= c.MaxAudibles {
		return false
	}
	r := c.Catalog.GetRoute(rt)
	p.Route = r
	c.AudiblesUsed++
	return true
}

// SendInMotion starts a motion path for the given player, enforcing
// "at most one player in motion at once" (spec.md §3 invariant 7).
// Returns false if another player is already in motion.
func (c *Controller) SendInMotion(p *model.Player, mt model.MotionType, qbPos vector.V2) bool {
	if c.MotionActive {
		return false
	}
	if p.Team != model.TeamOffense {
		return false
	}
	path := motion.BuildPath(mt, p.Position, qbPos)
	p.HasMotion = true
	p.MotionPath = path
	c.MotionActive = true
	return true
}

// CompleteMotion clears a finished motion and arms the post-snap speed
// boost (spec.md §4.7: "flip hasMotion off, set hasMotionBoost true for
// 0.35s on snap").
func (c *Controller) CompleteMotion(p *model.Player) {
	p.HasMotion = false
	p.MotionPath = nil
	p.HasMotionBoost = true
	p.MotionBoostRemaining = model.MotionBoostDuration
	c.MotionActive = false
}

// ResetAudibles clears the audible counter; called by resetPlay/nextPlay.
func (c *Controller) ResetAudibles() { c.AudiblesUsed = 0 }
