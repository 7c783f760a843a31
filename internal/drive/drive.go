// Package drive implements down/distance/LOS bookkeeping (spec.md
// §4.17): first downs, touchdowns/safeties, turnover on downs, and
// next-play setup including hash recalculation.
package drive

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// GoalLineY and OwnGoalY are the field's two end-zone boundaries in
// the engine's y-up coordinate system (spec.md §3: field length 120,
// with 10 yd end zones).
const (
	OwnGoalY  = 0.0
	GoalLineY = 110.0
	FieldEnd  = 120.0
)

// PostScoreSpot is where the ball is placed after a touchdown or
// safety (spec.md §4.16: "TD -> ball on 30, safety -> ball on 30").
const PostScoreSpot = 30.0

// State is the drive's down/distance/field-position bookkeeping,
// carried across plays independently of GameState's per-play fields.
type State struct {
	Down          int
	YardsToGo     float64
	LOS           float64
	DriveStart    float64
	BallOn        float64
	IsFirstDown   bool
	Hash          model.Hash
	YardsToGoal   float64
	IsGoalToGo    bool
}

// New returns the starting drive state: 1st & 10 at the 25, middle hash.
func New() *State {
	return &State{Down: 1, YardsToGo: 10, LOS: 25, DriveStart: 25, BallOn: 25, Hash: model.HashMiddle}
}

// RecomputeHash buckets an x position into left/middle/right per the
// hash-mark offsets (spec.md §4.6: hashes at ±3.08 from center).
func RecomputeHash(x float64) model.Hash {
	switch {
	case x < vector.CenterX-vector.HashOffset:
		return model.HashLeft
	case x > vector.CenterX+vector.HashOffset:
		return model.HashRight
	default:
		return model.HashMiddle
	}
}

// goalToGoDistance returns the 1st-and-goal distance (LOS to goal line)
// when inside the 10, per spec.md's "1st & Goal distance is LOS-to-
// goal, not 10" edge case.
func goalToGoDistance(los float64) (float64, bool) {
	toGoal := GoalLineY - los
	if toGoal <= 10 {
		return toGoal, true
	}
	return 10, false
}

// Advance applies a completed play's outcome and gained yardage to the
// drive state, returning the next play's setup (spec.md §4.16
// nextPlay): first-down reset on success, TD/safety repositioning, and
// turnover-on-downs on 4th-down failure.
func Advance(s *State, outcome model.Outcome, ballEndY float64) *State {
	next := *s

	switch outcome {
	case model.OutcomeTouchdown:
		next.Down = 1
		next.LOS = PostScoreSpot
		next.BallOn = PostScoreSpot
		next.YardsToGo, next.IsGoalToGo = goalToGoDistance(next.LOS)
		next.Hash = model.HashMiddle
		next.IsFirstDown = false
		return &next

	case model.OutcomeSafety:
		next.Down = 1
		next.LOS = PostScoreSpot
		next.BallOn = PostScoreSpot
		next.YardsToGo, next.IsGoalToGo = goalToGoDistance(next.LOS)
		next.Hash = model.HashMiddle
		next.IsFirstDown = false
		return &next
	}

	// OutcomeInterception falls through to the general gained-yardage
	// path below rather than a dedicated case: the single-offense model
	// (DESIGN.md) has no second offense to hand the ball to, so an
	// interception is scored like any other play that ends at ballEndY.
	gained := ballEndY - s.LOS
	reachedFirst := gained >= s.YardsToGo

	if reachedFirst {
		next.Down = 1
		next.LOS = ballEndY
		next.BallOn = ballEndY
		next.YardsToGo, next.IsGoalToGo = goalToGoDistance(next.LOS)
		next.IsFirstDown = true
		next.Hash = RecomputeHash(next.BallOn)
		return &next
	}

	if s.Down >= 4 {
		// Turnover on downs: 1st & 10 at the same spot, possession
		// flips conceptually but the engine models a single offense.
		next.Down = 1
		next.LOS = ballEndY
		next.BallOn = ballEndY
		next.YardsToGo, next.IsGoalToGo = goalToGoDistance(next.LOS)
		next.IsFirstDown = false
		next.Hash = RecomputeHash(next.BallOn)
		return &next
	}

	next.Down = s.Down + 1
	next.YardsToGo = s.YardsToGo - gained
	if next.YardsToGo < 0 {
		next.YardsToGo = 0
	}
	next.LOS = ballEndY
	next.BallOn = ballEndY
	next.IsFirstDown = false
	next.Hash = RecomputeHash(next.BallOn)
	return &next
}

// IsSafety reports the safety edge case: the ball ends behind the
// offense's own goal line.
func IsSafety(ballEndY float64) bool { return ballEndY <= OwnGoalY }

// IsTouchdown reports whether the ball ends at or past the opponent's
// goal line.
func IsTouchdown(ballEndY float64) bool { return ballEndY >= GoalLineY }
