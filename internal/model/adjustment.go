package model

import "github.com/coverageeng/snap-engine/internal/vector"

// RecognitionTime gives the 0.15-0.30s recognition window per
// adjustment kind (spec.md §4.12).
var RecognitionTime = map[AdjustmentKind]float64{
	AdjBlitz:      0.15,
	AdjMotion:     0.20,
	AdjCoverage:   0.22,
	AdjFormation:  0.25,
	AdjPlayAction: 0.18,
	AdjAudible:    0.22,
	AdjShift:      0.30,
}

// Adjustment is a single entry in the defensive timing system's queue.
type Adjustment struct {
	ID              string
	Kind            AdjustmentKind
	DefenderID      string
	OriginalPos     vector.V2
	TargetPos       vector.V2
	RecognitionTime float64
	ExecutionTime   float64
	Priority        int
	State           AdjustmentState
	StartTime       float64
	// CompletedAt records the engine clock time the adjustment reached
	// AdjComplete or AdjCancelled, used for the 2s diagnostic retention
	// window.
	CompletedAt float64
	HasCompletedAt bool
}

// AdjustedPosition returns the eased interpolation between
// OriginalPos and TargetPos for the given elapsed-since-start time,
// valid only while State == AdjExecuting.
func (a *Adjustment) AdjustedPosition(elapsedSinceStart float64) vector.V2 {
	execStart := a.RecognitionTime
	progress := (elapsedSinceStart - execStart) / a.ExecutionTime
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return vector.Lerp(a.OriginalPos, a.TargetPos, vector.EaseInOutQuad(progress))
}
