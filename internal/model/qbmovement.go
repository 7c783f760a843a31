package model

import "github.com/coverageeng/snap-engine/internal/vector"

// QBDropType enumerates the drop/rollout/play-action variants spec.md
// §4.9 names.
type QBDropType string

const (
	QBDrop3Step        QBDropType = "3-step"
	QBDrop5Step        QBDropType = "5-step"
	QBDrop7Step        QBDropType = "7-step"
	QBDropPABootRight  QBDropType = "pa-boot-right"
	QBDropRolloutRight QBDropType = "rollout-right"
	QBDropRolloutLeft  QBDropType = "rollout-left"
)

// QBWaypoint is one timed point along the QB's drop/rollout path.
type QBWaypoint struct {
	Offset vector.V2
	Time   float64
}

// QBMovementConfig is the static per-drop-type configuration table from
// spec.md §4.9.
type QBMovementConfig struct {
	Type              QBDropType
	Steps             int
	TotalTiming       float64
	Depth             float64
	Lateral           float64
	Waypoints         []QBWaypoint
	AccuracyModifier  float64
	IsPlayAction      bool
	FakeHandoffDuration float64
}

// QBMovementTable holds the canonical configuration for every drop
// type, per spec.md §4.9's timing numbers.
var QBMovementTable = map[QBDropType]QBMovementConfig{
	QBDrop3Step: {
		Type: QBDrop3Step, Steps: 3, TotalTiming: 1.2, Depth: 5, AccuracyModifier: 1.00,
		Waypoints: []QBWaypoint{{vector.V2{X: 0, Y: 0}, 0}, {vector.V2{X: 0, Y: -5}, 1.2}},
	},
	QBDrop5Step: {
		Type: QBDrop5Step, Steps: 5, TotalTiming: 1.8, Depth: 7, AccuracyModifier: 1.00,
		Waypoints: []QBWaypoint{{vector.V2{X: 0, Y: 0}, 0}, {vector.V2{X: 0, Y: -7}, 1.8}},
	},
	QBDrop7Step: {
		Type: QBDrop7Step, Steps: 7, TotalTiming: 2.4, Depth: 9, AccuracyModifier: 1.00,
		Waypoints: []QBWaypoint{{vector.V2{X: 0, Y: 0}, 0}, {vector.V2{X: 0, Y: -9}, 2.4}},
	},
	QBDropPABootRight: {
		Type: QBDropPABootRight, Steps: 0, TotalTiming: 2.2, Depth: 6, Lateral: 6,
		AccuracyModifier: 0.92, IsPlayAction: true, FakeHandoffDuration: 0.6,
		Waypoints: []QBWaypoint{
			{vector.V2{X: 0, Y: 0}, 0},
			{vector.V2{X: 0, Y: -2}, 0.6},
			{vector.V2{X: 6, Y: -6}, 2.2},
		},
	},
	QBDropRolloutRight: {
		Type: QBDropRolloutRight, Steps: 0, TotalTiming: 1.8, Depth: 4, Lateral: 8,
		AccuracyModifier: 0.88,
		Waypoints: []QBWaypoint{{vector.V2{X: 0, Y: 0}, 0}, {vector.V2{X: 8, Y: -4}, 1.8}},
	},
	QBDropRolloutLeft: {
		Type: QBDropRolloutLeft, Steps: 0, TotalTiming: 1.8, Depth: 4, Lateral: 8,
		AccuracyModifier: 0.85,
		Waypoints: []QBWaypoint{{vector.V2{X: 0, Y: 0}, 0}, {vector.V2{X: -8, Y: -4}, 1.8}},
	},
}

// QBMovementState is the runtime state of the QB's drop/rollout.
type QBMovementState struct {
	Config          QBMovementConfig
	Active          bool
	StartTime       float64
	IsPlayAction    bool
	PAResponseFired bool
	StartPosition   vector.V2
}

// ShouldTriggerPlayActionResponse reports whether enough time has
// elapsed for defenders to react to a play-action fake.
func (s *QBMovementState) ShouldTriggerPlayActionResponse(elapsed float64) bool {
	return s.IsPlayAction && elapsed >= s.Config.FakeHandoffDuration
}

// AccuracyModifierAt returns the QB's current accuracy modifier given
// elapsed time since snap and whether the QB is currently under
// pressure-induced scramble (handled by the blitz package; this covers
// the drop's own phases per spec.md §4.9).
func (s *QBMovementState) AccuracyModifierAt(elapsed float64) float64 {
	if !s.Active {
		return 1.0
	}
	if s.IsPlayAction && elapsed < s.Config.FakeHandoffDuration {
		return 0.82
	}
	if elapsed >= s.Config.TotalTiming {
		return 1.0
	}
	if s.Config.Type == QBDropRolloutRight || s.Config.Type == QBDropRolloutLeft {
		return s.Config.AccuracyModifier
	}
	return 0.95
}
