package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

func TestQueue_HigherPriorityCancelsAnInFlightLowerPriorityEntry(t *testing.T) {
	s := New()
	s.Queue("CB1", model.AdjShift, vector.V2{}, vector.V2{X: 1}, 0)
	s.Queue("CB1", model.AdjBlitz, vector.V2{}, vector.V2{X: 2}, 0)

	active := s.Active()
	require.Len(t, active, 1, "the lower-priority shift adjustment is cancelled by the higher-priority blitz")
	assert.Equal(t, model.AdjBlitz, active[0].Kind)
}

func TestQueue_LowerPriorityDoesNotCancelAnInFlightHigherPriorityEntry(t *testing.T) {
	s := New()
	s.Queue("CB1", model.AdjBlitz, vector.V2{}, vector.V2{X: 1}, 0)
	s.Queue("CB1", model.AdjShift, vector.V2{}, vector.V2{X: 2}, 0)

	active := s.Active()
	require.Len(t, active, 2)
}

func TestAdvance_TransitionsThroughRecognizingExecutingToComplete(t *testing.T) {
	s := New()
	adj := s.QueueWithExecution("CB1", model.AdjBlitz, vector.V2{}, vector.V2{X: 10}, 0.5, 0)

	s.Advance(0)
	assert.Equal(t, model.AdjRecognizing, adj.State)

	s.Advance(adj.RecognitionTime)
	assert.Equal(t, model.AdjExecuting, adj.State)

	s.Advance(adj.RecognitionTime + adj.ExecutionTime)
	assert.Equal(t, model.AdjComplete, adj.State)
}

func TestAdvance_GarbageCollectsTerminalEntriesPastTheRetentionWindow(t *testing.T) {
	s := New()
	adj := s.QueueWithExecution("CB1", model.AdjBlitz, vector.V2{}, vector.V2{X: 10}, 0.1, 0)
	s.Advance(adj.RecognitionTime + adj.ExecutionTime)
	require.Equal(t, model.AdjComplete, adj.State)

	s.Advance(adj.RecognitionTime + adj.ExecutionTime + RetentionSeconds + 0.01)
	assert.Empty(t, s.Active())
	_, ok := s.GetAdjustedPosition("CB1", 100)
	assert.False(t, ok)
}

func TestGetAdjustedPosition_OnlyReturnsAPositionWhileExecuting(t *testing.T) {
	s := New()
	adj := s.QueueWithExecution("CB1", model.AdjBlitz, vector.V2{X: 0}, vector.V2{X: 10}, 1.0, 0)

	_, ok := s.GetAdjustedPosition("CB1", 0)
	assert.False(t, ok, "still pending/recognizing, not executing yet")

	s.Advance(adj.RecognitionTime)
	pos, ok := s.GetAdjustedPosition("CB1", adj.RecognitionTime)
	require.True(t, ok)
	assert.InDelta(t, 0, pos.X, 1e-9)
}

func TestCancelAll_CancelsEveryActiveEntry(t *testing.T) {
	s := New()
	s.Queue("CB1", model.AdjCoverage, vector.V2{}, vector.V2{X: 1}, 0)
	s.Queue("LB1", model.AdjShift, vector.V2{}, vector.V2{X: 1}, 0)

	s.CancelAll(0)
	assert.Empty(t, s.Active())
}

func TestCancelForDefender_OnlyCancelsTheNamedDefendersEntries(t *testing.T) {
	s := New()
	s.Queue("CB1", model.AdjCoverage, vector.V2{}, vector.V2{X: 1}, 0)
	s.Queue("LB1", model.AdjCoverage, vector.V2{}, vector.V2{X: 1}, 0)

	s.CancelForDefender("CB1", model.AdjShift, 0)
	active := s.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "LB1", active[0].DefenderID)
}

func TestIsDefenderFrozen_TrueOnlyDuringAnExecutingPlayActionAdjustment(t *testing.T) {
	s := New()
	adj := s.QueueWithExecution("LB1", model.AdjPlayAction, vector.V2{}, vector.V2{X: 1}, 0.4, 0)
	assert.False(t, s.IsDefenderFrozen("LB1"))

	s.Advance(adj.RecognitionTime)
	assert.True(t, s.IsDefenderFrozen("LB1"))
}

func TestReset_ClearsAllEntriesRegardlessOfState(t *testing.T) {
	s := New()
	s.Queue("CB1", model.AdjCoverage, vector.V2{}, vector.V2{X: 1}, 0)
	s.Reset()
	assert.Empty(t, s.Active())
}
