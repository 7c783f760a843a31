// Package qbmove implements QB movement (spec.md §4.9): drop/rollout/
// play-action configuration, waypoint interpolation, and the default
// drop selection at snap.
package qbmove

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// DefaultDrop is used when no QB movement was chosen before the snap
// (spec.md §4.9: "a 5-step drop is defaulted").
const DefaultDrop = model.QBDrop5Step

// NewState builds a fresh QBMovementState for the given drop type,
// anchored at the QB's lined-up position.
func NewState(dropType model.QBDropType, startTime float64, startPos vector.V2) *model.QBMovementState {
	cfg, ok := model.QBMovementTable[dropType]
	if !ok {
		cfg = model.QBMovementTable[DefaultDrop]
	}
	return &model.QBMovementState{
		Config:        cfg,
		Active:        true,
		StartTime:     startTime,
		IsPlayAction:  cfg.IsPlayAction,
		StartPosition: startPos,
	}
}

// PositionAt interpolates the QB's field position along its configured
// waypoints at the given elapsed time since the drop began.
func PositionAt(s *model.QBMovementState, elapsed float64) vector.V2 {
	wps := s.Config.Waypoints
	if len(wps) == 0 {
		return s.StartPosition
	}
	if elapsed <= wps[0].Time {
		return s.StartPosition.Add(wps[0].Offset)
	}
	last := wps[len(wps)-1]
	if elapsed >= last.Time {
		return s.StartPosition.Add(last.Offset)
	}
	for i := 0; i < len(wps)-1; i++ {
		a, b := wps[i], wps[i+1]
		if elapsed >= a.Time && elapsed <= b.Time {
			span := b.Time - a.Time
			if span <= vector.Epsilon {
				return s.StartPosition.Add(b.Offset)
			}
			t := (elapsed - a.Time) / span
			offset := vector.Lerp(a.Offset, b.Offset, t)
			return s.StartPosition.Add(offset)
		}
	}
	return s.StartPosition.Add(last.Offset)
}

// IsInThrowingPosition reports whether at least half of the QB's
// configured drop/rollout timing has elapsed, so it can legally throw (spec.md §4.16:
// throwTo requires "QB in throwing position").
func IsInThrowingPosition(s *model.QBMovementState, elapsed float64) bool {
	if s == nil {
		return false
	}
	return elapsed >= s.Config.TotalTiming*0.5
}
