// Package timing implements the defensive timing system (spec.md
// §4.12): a queue + state machine of Adjustment entries, pulled by the
// tick loop rather than pushed via callbacks (Design Notes §9).
package timing

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
	"github.com/google/uuid"
)

// RetentionSeconds is how long a terminal (complete/cancelled)
// adjustment is kept for diagnostics before being garbage-collected
// (spec.md §3 "Lifecycles", §4.12).
const RetentionSeconds = 2.0

// System owns the map of in-flight and recently-terminal adjustments.
type System struct {
	entries map[string]*model.Adjustment // keyed by adjustment id
}

// New returns an empty timing system.
func New() *System {
	return &System{entries: map[string]*model.Adjustment{}}
}

// Queue inserts a new adjustment, cancelling any conflicting entry on
// the same defender of equal-or-lower priority (spec.md §4.12: "blitz 1
// < motion 2 < coverage 3 < formation 4 < playAction 5 < shift 6" —
// lower number wins, so "equal-or-lower priority" means numerically
// >= the new entry's priority).
func (s *System) Queue(defenderID string, kind model.AdjustmentKind, original, target vector.V2, now float64) *model.Adjustment {
	priority := kind.Priority()
	for _, e := range s.entries {
		if e.DefenderID != defenderID {
			continue
		}
		if e.State == model.AdjComplete || e.State == model.AdjCancelled {
			continue
		}
		if e.Priority >= priority {
			s.cancel(e, now)
		}
	}
	adj := &model.Adjustment{
		ID:              uuid.NewString(),
		Kind:            kind,
		DefenderID:      defenderID,
		OriginalPos:     original,
		TargetPos:       target,
		RecognitionTime: model.RecognitionTime[kind],
		ExecutionTime:   0.5,
		Priority:        priority,
		State:           model.AdjPending,
		StartTime:       now,
	}
	s.entries[adj.ID] = adj
	return adj
}

// QueueWithExecution is Queue but lets the caller override the default
// execution time (used by motion, which computes 0.5-1.4s per
// response kind).
func (s *System) QueueWithExecution(defenderID string, kind model.AdjustmentKind, original, target vector.V2, execTime, now float64) *model.Adjustment {
	adj := s.Queue(defenderID, kind, original, target, now)
	adj.ExecutionTime = execTime
	return adj
}

func (s *System) cancel(e *model.Adjustment, now float64) {
	e.State = model.AdjCancelled
	e.CompletedAt = now
	e.HasCompletedAt = true
}

// CancelAll cancels every active adjustment (resetPlay, spec.md §5).
func (s *System) CancelAll(now float64) {
	for _, e := range s.entries {
		if e.State != model.AdjComplete && e.State != model.AdjCancelled {
			s.cancel(e, now)
		}
	}
}

// CancelForDefender cancels in-flight adjustments on a defender of
// equal-or-lower priority than the given kind (used by the pre-snap
// controller when a new command supersedes a queued one).
func (s *System) CancelForDefender(defenderID string, kind model.AdjustmentKind, now float64) {
	priority := kind.Priority()
	for _, e := range s.entries {
		if e.DefenderID == defenderID && e.Priority >= priority &&
			e.State != model.AdjComplete && e.State != model.AdjCancelled {
			s.cancel(e, now)
		}
	}
}

// Advance runs the state machine for every entry and garbage-collects
// terminal entries past their retention window.
func (s *System) Advance(now float64) {
	// Determine, per defender, whether a higher-priority entry is
	// currently recognizing or executing (blocks lower-priority
	// entries from starting recognition).
	blocking := map[string]int{} // defenderID -> best (lowest) blocking priority
	for _, e := range s.entries {
		if e.State == model.AdjRecognizing || e.State == model.AdjExecuting {
			if cur, ok := blocking[e.DefenderID]; !ok || e.Priority < cur {
				blocking[e.DefenderID] = e.Priority
			}
		}
	}

	for id, e := range s.entries {
		elapsed := now - e.StartTime
		// Transitions are applied in sequence so one call catches up
		// through every state whose time has already passed.
		if e.State == model.AdjPending {
			if best, ok := blocking[e.DefenderID]; !ok || best >= e.Priority {
				e.State = model.AdjRecognizing
			}
		}
		if e.State == model.AdjRecognizing && elapsed >= e.RecognitionTime {
			e.State = model.AdjExecuting
		}
		if e.State == model.AdjExecuting && elapsed >= e.RecognitionTime+e.ExecutionTime {
			e.State = model.AdjComplete
			e.CompletedAt = now
			e.HasCompletedAt = true
		}
		if e.State == model.AdjComplete || e.State == model.AdjCancelled {
			if e.HasCompletedAt && now-e.CompletedAt >= RetentionSeconds {
				delete(s.entries, id)
			}
		}
	}
}

// GetAdjustedPosition returns the overlay position for a defender if an
// adjustment on it is currently executing, along with whether one was
// found.
func (s *System) GetAdjustedPosition(defenderID string, now float64) (vector.V2, bool) {
	for _, e := range s.entries {
		if e.DefenderID != defenderID || e.State != model.AdjExecuting {
			continue
		}
		return e.AdjustedPosition(now - e.StartTime), true
	}
	return vector.V2{}, false
}

// IsDefenderFrozen reports whether a playAction adjustment is currently
// executing on the defender (spec.md §4.12).
func (s *System) IsDefenderFrozen(defenderID string) bool {
	for _, e := range s.entries {
		if e.DefenderID == defenderID && e.Kind == model.AdjPlayAction && e.State == model.AdjExecuting {
			return true
		}
	}
	return false
}

// Active returns all non-terminal entries, for diagnostics/tests.
func (s *System) Active() []*model.Adjustment {
	var out []*model.Adjustment
	for _, e := range s.entries {
		if e.State != model.AdjComplete && e.State != model.AdjCancelled {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears all entries (used by Engine.Reset for a clean slate
// between drives/games, distinct from resetPlay's CancelAll).
func (s *System) Reset() {
	s.entries = map[string]*model.Adjustment{}
}
