// Package motion implements the motion engine (spec.md §4.7): motion
// path generation per type, the coverage-response dispatch table, and
// the post-snap speed boost.
package motion

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// BuildPath constructs the waypoint path for a motion of the given
// type, starting at start and moving toward the opposite side of the
// formation (toward +X if start is left of center, else -X), per
// spec.md §4.7's per-type shapes.
func BuildPath(mtype model.MotionType, start vector.V2, qbPos vector.V2) *model.Motion {
	duration := model.MotionDuration[mtype]
	dir := 1.0
	if start.X > vector.CenterX {
		dir = -1.0
	}

	var path []vector.V2
	var end vector.V2

	switch mtype {
	case model.MotionJet:
		mid := vector.V2{X: qbPos.X, Y: qbPos.Y - 1}
		end = vector.V2{X: start.X + dir*18, Y: start.Y}
		path = []vector.V2{start, mid, end}
	case model.MotionFly:
		end = vector.V2{X: start.X + dir*(vector.FieldWidth - 2), Y: start.Y}
		path = []vector.V2{start, end}
	case model.MotionOrbit:
		behind := vector.V2{X: qbPos.X, Y: qbPos.Y - 3}
		end = vector.V2{X: start.X + dir*10, Y: start.Y}
		path = []vector.V2{start, behind, end}
	case model.MotionAcross:
		end = vector.V2{X: vector.FieldWidth - start.X, Y: start.Y}
		path = []vector.V2{start, end}
	case model.MotionGlide:
		end = vector.V2{X: start.X + dir*6, Y: start.Y}
		path = []vector.V2{start, end}
	case model.MotionReturn:
		mid := vector.V2{X: start.X + dir*8, Y: start.Y}
		end = start
		path = []vector.V2{start, mid, end}
	case model.MotionShift:
		end = vector.V2{X: start.X + dir*4, Y: start.Y}
		path = []vector.V2{start, end}
	default:
		end = start
		path = []vector.V2{start, end}
	}

	crosses := (start.X-vector.CenterX)*(end.X-vector.CenterX) < 0

	return &model.Motion{
		Type:             mtype,
		Start:            start,
		End:              end,
		Path:             path,
		Duration:         duration,
		CrossesFormation: crosses,
	}
}

// responseKind names the coverage-response style a coverage/motion
// combination dispatches to.
type responseKind string

const (
	respLock       responseKind = "lock"
	respRockAndRoll responseKind = "rock-and-roll"
	respBuzz       responseKind = "buzz"
	respRobber     responseKind = "robber"
	respPatternMatch responseKind = "pattern-match"
	respSplitField responseKind = "split-field"
	respMLBAdjust  responseKind = "mlb-adjust"
	respNone       responseKind = "none"
)

// dispatchTable keyed on (coverageType, crossesFormation) per spec.md
// §4.7.
var dispatchTable = map[model.CoverageType]map[bool]responseKind{
	model.Cover0:  {true: respLock, false: respLock},
	model.Cover1:  {true: respRockAndRoll, false: respLock},
	model.Cover2:  {true: respBuzz, false: respRobber},
	model.Cover3:  {true: respBuzz, false: respRobber},
	model.Cover4:  {true: respPatternMatch, false: respPatternMatch},
	model.Cover6:  {true: respSplitField, false: respSplitField},
	model.Quarters: {true: respPatternMatch, false: respPatternMatch},
	model.Tampa2:  {true: respMLBAdjust, false: respMLBAdjust},
}

// executionTime returns the 0.5s (lock) to 1.4s (spin) execution window
// for a response kind, per spec.md §4.7.
func executionTime(kind responseKind) float64 {
	switch kind {
	case respLock:
		return 0.5
	case respRockAndRoll:
		return 1.1
	case respBuzz:
		return 0.8
	case respRobber:
		return 0.7
	case respPatternMatch:
		return 0.6
	case respSplitField:
		return 1.4
	case respMLBAdjust:
		return 0.9
	default:
		return 0.5
	}
}

// MotionRecognitionTime is the fixed 0.2s recognition window for motion
// adjustments (spec.md §4.7).
const MotionRecognitionTime = 0.2

// CoverageResponse computes the defender id -> target position map the
// motion's coverage response produces, along with the execution timing
// to forward to the defensive timing system as a `motion` adjustment.
func CoverageResponse(coverage model.CoverageType, crosses bool, m *model.Motion, defenders []*model.Player) (targets map[string]vector.V2, execTime float64) {
	kindsBySide, ok := dispatchTable[coverage]
	kind := respNone
	if ok {
		kind = kindsBySide[crosses]
	}
	execTime = executionTime(kind)
	targets = map[string]vector.V2{}

	switch kind {
	case respLock:
		// Man defenders shadow the motion player's end position offset.
		for _, d := range defenders {
			if d.CoverageResponsibility != nil && d.CoverageResponsibility.Kind == model.RespMan &&
				d.CoverageResponsibility.ManTargetID == m.PlayerID {
				targets[d.ID] = vector.V2{X: m.End.X, Y: d.Position.Y}
			}
		}
	case respRockAndRoll:
		// Rotate the single-high safety and the strong-side
		// linebacker's assignment toward the new strength; approximated
		// as the safety shifting toward the motion's new side.
		for _, d := range defenders {
			if d.Type == model.S {
				dir := 1.0
				if m.End.X < vector.CenterX {
					dir = -1.0
				}
				targets[d.ID] = vector.V2{X: d.Position.X + dir*4, Y: d.Position.Y}
			}
		}
	case respBuzz:
		for _, d := range defenders {
			if d.Type == model.S {
				dir := 1.0
				if m.End.X < vector.CenterX {
					dir = -1.0
				}
				targets[d.ID] = vector.V2{X: d.Position.X + dir*3, Y: d.Position.Y - 6}
			}
		}
	case respRobber:
		for _, d := range defenders {
			if d.CoverageResponsibility != nil && d.CoverageResponsibility.Robber != nil {
				targets[d.ID] = d.Position
			}
		}
	case respPatternMatch:
		// No immediate repositioning; the trigger happens at the route
		// break (handled by internal/defense pattern-match logic).
	case respSplitField:
		for _, d := range defenders {
			if d.Type == model.S {
				targets[d.ID] = d.Position
			}
		}
	case respMLBAdjust:
		for _, d := range defenders {
			if d.Type == model.LB {
				dir := 1.0
				if m.End.X < vector.CenterX {
					dir = -1.0
				}
				targets[d.ID] = vector.V2{X: d.Position.X + dir*2, Y: d.Position.Y}
			}
		}
	}
	return targets, execTime
}
