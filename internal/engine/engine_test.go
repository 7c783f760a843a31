package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverageeng/snap-engine/internal/catalog"
	"github.com/coverageeng/snap-engine/internal/drive"
	"github.com/coverageeng/snap-engine/internal/model"
)

func newTestEngine(seed uint64) *Engine {
	return New(Config{Catalog: catalog.New(), RNGSeed: seed})
}

func setupSlantFlatCover1(t *testing.T, e *Engine, los float64) {
	t.Helper()
	require.True(t, e.SetPlayConcept("trips-right", "slant-flat", los, model.HashMiddle))
	require.True(t, e.SetCoverageByType(model.Cover1))
}

func TestSetPlayConcept_AlwaysProducesSevenDefenders(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 30)
	gs := e.GetGameState()
	assert.Len(t, gs.Defense(), 7)
}

func TestSetPlayConcept_EveryEligibleReceiverHasUniqueManDefender(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 30)
	gs := e.GetGameState()

	targets := map[string]bool{}
	for _, d := range gs.Defense() {
		if d.CoverageResponsibility == nil || d.CoverageResponsibility.Kind != model.RespMan {
			continue
		}
		target := d.CoverageResponsibility.ManTargetID
		assert.False(t, targets[target], "target %s double-assigned", target)
		targets[target] = true
	}
	for _, o := range gs.Offense() {
		if !o.IsReceiverEligible() {
			continue
		}
		assert.True(t, targets[o.ID], "eligible receiver %s has no man defender", o.ID)
	}
}

func TestCover0_UnassignedDefendersConvertToBlitz(t *testing.T) {
	e := newTestEngine(1)
	require.True(t, e.SetPlayConcept("trips-right", "slant-flat", 30, model.HashMiddle))
	require.True(t, e.SetCoverageByType(model.Cover0))
	gs := e.GetGameState()

	manCount, blitzCount := 0, 0
	for _, d := range gs.Defense() {
		require.NotNil(t, d.CoverageResponsibility)
		switch d.CoverageResponsibility.Kind {
		case model.RespMan:
			manCount++
		case model.RespBlitz:
			blitzCount++
		default:
			t.Fatalf("cover-0 defender %s has unexpected responsibility %v", d.ID, d.CoverageResponsibility.Kind)
		}
	}
	assert.Equal(t, 7, manCount+blitzCount)
	assert.Equal(t, len(gs.Offense())-1, manCount) // every non-QB offensive player is eligible in this formation
}

func TestSnap_Cover0AlwaysDecidesToBlitz(t *testing.T) {
	e := newTestEngine(1)
	require.True(t, e.SetPlayConcept("trips-right", "slant-flat", 30, model.HashMiddle))
	require.True(t, e.SetCoverageByType(model.Cover0))
	require.True(t, e.Snap())
	assert.NotNil(t, e.blitzPackage)
}

func TestSnap_OnlyValidPreSnap(t *testing.T) {
	e := newTestEngine(1)
	require.True(t, e.SetPlayConcept("trips-right", "slant-flat", 30, model.HashMiddle))
	require.True(t, e.Snap())
	assert.False(t, e.Snap())
}

func TestSnap_PutsTheBallHeldByTheQB(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 30)
	require.True(t, e.Snap())

	gs := e.GetGameState()
	qb := gs.QBPlayer()
	require.NotNil(t, qb)
	assert.Equal(t, model.BallHeld, gs.Ball.State)
	assert.Equal(t, qb.ID, gs.Ball.Carrier)
	assert.True(t, qb.HasBall)
}

func TestTickLoop_HeldBallPastTheSackBudgetResolvesToASack(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 30)
	require.True(t, e.Snap())

	for i := 0; i < int(model.DefaultSackBudget*60)+5; i++ {
		e.Tick(1.0 / 60.0)
	}

	gs := e.GetGameState()
	require.NotNil(t, gs.Outcome)
	assert.Equal(t, model.OutcomeSack, *gs.Outcome)
	assert.Equal(t, model.PhasePlayOver, gs.Phase)
}

func TestThrowTo_ClearsTheBallHeldStateAndTheQBsCarry(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 30)
	require.True(t, e.Snap())

	for i := 0; i < 60; i++ {
		e.Tick(1.0 / 60.0)
	}
	require.True(t, e.ThrowTo("WR1"))

	gs := e.GetGameState()
	assert.Equal(t, model.BallThrown, gs.Ball.State)
	assert.Empty(t, gs.Ball.Carrier)
	qb := gs.QBPlayer()
	require.NotNil(t, qb)
	assert.False(t, qb.HasBall)
}

func TestTick_NoopBeforeSnap(t *testing.T) {
	e := newTestEngine(1)
	require.True(t, e.SetPlayConcept("trips-right", "slant-flat", 30, model.HashMiddle))
	before := e.GetGameState()
	e.Tick(1.0 / 60.0)
	after := e.GetGameState()
	assert.Equal(t, before.TimeElapsed, after.TimeElapsed)
}

func TestThrowTo_RequiresQBInThrowingPosition(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 30)
	require.True(t, e.Snap())

	assert.False(t, e.ThrowTo("WR1"), "should not be able to throw before the drop completes")

	for i := 0; i < 60; i++ { // 1 second of ticks, past the 0.9s 5-step drop threshold
		e.Tick(1.0 / 60.0)
	}
	assert.True(t, e.ThrowTo("WR1"))
}

func TestTickLoop_BallArrivalResolvesToATerminalOutcome(t *testing.T) {
	e := newTestEngine(7)
	setupSlantFlatCover1(t, e, 30)
	require.True(t, e.Snap())

	for i := 0; i < 60; i++ {
		e.Tick(1.0 / 60.0)
	}
	require.True(t, e.ThrowTo("WR1"))

	// Force the ball to the receiver's current spot rather than waiting
	// on flight convergence, which only isolates arrival resolution
	// (spec.md §4.16 step 7/9) from the unrelated lead-time accuracy of
	// ball.ThrowTo's constant-velocity prediction.
	target := e.state.FindPlayer("WR1")
	require.NotNil(t, target)
	e.state.Ball.Position = target.Position

	e.Tick(1.0 / 600.0)
	gs := e.GetGameState()
	assert.Equal(t, model.PhasePlayOver, gs.Phase)
	assert.NotNil(t, gs.Outcome)
}

func TestSendInMotion_QueuesACoverageResponseAdjustment(t *testing.T) {
	e := newTestEngine(1)
	require.True(t, e.SetPlayConcept("spread-2x2", "four-verts", 30, model.HashMiddle))
	require.True(t, e.SetCoverageByType(model.Cover3))

	gs := e.GetGameState()
	var flankID string
	for _, o := range gs.Offense() {
		if o.Type == model.WR {
			flankID = o.ID
			break
		}
	}
	require.NotEmpty(t, flankID)

	assert.True(t, e.SendInMotion(flankID, model.MotionFly))
	gsAfter := e.GetGameState()
	require.NotNil(t, gsAfter.ActiveMotion)
	assert.Equal(t, flankID, gsAfter.ActiveMotion.PlayerID)
}

func TestResetPlay_ReturnsToPreSnapAndPreservesDrive(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 30)
	require.True(t, e.Snap())
	for i := 0; i < 30; i++ {
		e.Tick(1.0 / 60.0)
	}
	before := e.GetGameState()

	require.True(t, e.ResetPlay())
	after := e.GetGameState()
	assert.Equal(t, model.PhasePreSnap, after.Phase)
	assert.Equal(t, 0.0, after.TimeElapsed)
	assert.Nil(t, after.Outcome)
	assert.Equal(t, before.Down, after.Down)
	assert.Equal(t, before.LOS, after.LOS)
}

func TestNextPlay_FourthDownIncompleteIsTurnoverOnDowns(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 50)
	e.drive = &drive.State{Down: 4, YardsToGo: 5, LOS: 50, BallOn: 50, Hash: model.HashMiddle}
	e.state.Down, e.state.YardsToGo, e.state.LOS = 4, 5, 50

	require.True(t, e.Snap())
	outcome := model.OutcomeIncomplete
	e.state.Outcome = &outcome
	e.state.Phase = model.PhasePlayOver
	e.state.BallOnY = 50

	require.True(t, e.NextPlay())
	gs := e.GetGameState()
	assert.Equal(t, 1, gs.Down)
	assert.Equal(t, 10.0, gs.YardsToGo)
	assert.Equal(t, 50.0, gs.LOS)
	assert.Equal(t, model.PhasePreSnap, gs.Phase)
}

func TestNextPlay_SafetyPlacesBallOnThe30(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 2)
	e.drive = &drive.State{Down: 1, YardsToGo: 10, LOS: 2, BallOn: 2, Hash: model.HashMiddle}
	e.state.Down, e.state.YardsToGo, e.state.LOS = 1, 10, 2

	require.True(t, e.Snap())
	outcome := model.OutcomeSafety
	e.state.Outcome = &outcome
	e.state.Phase = model.PhasePlayOver
	e.state.BallOnY = 0

	require.True(t, e.NextPlay())
	gs := e.GetGameState()
	assert.Equal(t, drive.PostScoreSpot, gs.LOS)
}

func TestGetGameState_ReturnsIndependentSnapshot(t *testing.T) {
	e := newTestEngine(1)
	setupSlantFlatCover1(t, e, 30)
	snap := e.GetGameState()
	snap.LOS = 999
	snap.Players[0].Position.X = 999

	fresh := e.GetGameState()
	assert.NotEqual(t, 999.0, fresh.LOS)
	assert.NotEqual(t, 999.0, fresh.Players[0].Position.X)
}

func TestDeterminism_SameSeedAndCommandsProduceIdenticalSnapshots(t *testing.T) {
	run := func(seed uint64) *model.GameState {
		e := New(Config{Catalog: catalog.New(), RNGSeed: seed})
		e.SetPlayConcept("trips-right", "slant-flat", 30, model.HashMiddle)
		e.SetCoverageByType(model.Cover3)
		e.Snap()
		for i := 0; i < 90; i++ {
			e.Tick(1.0 / 60.0)
		}
		return e.GetGameState()
	}

	a, b := run(42), run(42)
	assert.Equal(t, a.TimeElapsed, b.TimeElapsed)
	assert.Equal(t, a.Outcome, b.Outcome)
	require.Equal(t, len(a.Players), len(b.Players))
	for i := range a.Players {
		require.Equal(t, a.Players[i].ID, b.Players[i].ID, "player order at index %d must be stable across runs", i)
		assert.Equal(t, a.Players[i].Position, b.Players[i].Position)
	}
}

func TestSetPlayConcept_OffenseOrderIsStableAcrossRepeatedCalls(t *testing.T) {
	ids := func() []string {
		e := newTestEngine(1)
		require.True(t, e.SetPlayConcept("trips-right", "slant-flat", 30, model.HashMiddle))
		var out []string
		for _, p := range e.GetGameState().Offense() {
			out = append(out, p.ID)
		}
		return out
	}

	first := ids()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ids(), "offense slot order must not depend on map iteration order")
	}
}
