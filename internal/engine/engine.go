// Package engine implements the tick loop & engine facade (spec.md
// §4.16): the single entry point that owns a GameState and exposes the
// imperative command API, orchestrating every other package in the
// fixed per-tick order.
package engine

import (
	"sort"

	"github.com/coverageeng/snap-engine/internal/alignment"
	"github.com/coverageeng/snap-engine/internal/ball"
	"github.com/coverageeng/snap-engine/internal/blitz"
	"github.com/coverageeng/snap-engine/internal/catalog"
	"github.com/coverageeng/snap-engine/internal/defense"
	"github.com/coverageeng/snap-engine/internal/drive"
	"github.com/coverageeng/snap-engine/internal/hotroute"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/motion"
	"github.com/coverageeng/snap-engine/internal/personnel"
	"github.com/coverageeng/snap-engine/internal/presnap"
	"github.com/coverageeng/snap-engine/internal/qbmove"
	"github.com/coverageeng/snap-engine/internal/receiver"
	"github.com/coverageeng/snap-engine/internal/rng"
	"github.com/coverageeng/snap-engine/internal/timing"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// Logger is the minimal logging seam the engine needs; wired to
// pkg/logger by the caller (spec.md §7).
type Logger func(component, message string)

// Engine is the single-owner play simulator: one GameState advanced
// synchronously by the public methods below. It is never shared across
// goroutines (spec.md §5: "single-threaded and cooperative").
type Engine struct {
	state *model.GameState
	cat   catalog.Catalog
	rng   *rng.Source
	log   Logger

	presnapCtl *presnap.Controller
	timingSys  *timing.System

	drive *drive.State

	lastAlignment *alignment.Result
	offenseLineup []*model.Player // positions as lined up by SetPlayConcept, for route offsets and ResetPlay

	hotRouteTriggered bool
	blitzPackage      *blitz.Package
	forcedPackage     model.DefensivePackage

	lastUpdateCounter float64
}

// Config configures a new Engine.
type Config struct {
	Catalog     catalog.Catalog
	Logger      Logger
	MaxAudibles int
	Mode        model.GameMode
	RNGSeed     uint64
}

// New constructs an Engine with an empty pre-snap GameState at the
// 25-yard line, middle hash, 1st & 10.
func New(cfg Config) *Engine {
	if cfg.MaxAudibles == 0 {
		cfg.MaxAudibles = presnap.DefaultMaxAudibles
	}
	d := drive.New()
	sackBudget := model.DefaultSackBudget
	if cfg.Mode == model.ModeChallenge {
		sackBudget = model.ChallengeSackBudget
	}

	timingSys := timing.New()
	e := &Engine{
		cat:       cfg.Catalog,
		rng:       rng.New(cfg.RNGSeed),
		log:       cfg.Logger,
		timingSys: timingSys,
		drive:     d,
		state: &model.GameState{
			Phase:               model.PhasePreSnap,
			SackBudget:          sackBudget,
			PressureBudget:      sackBudget - 1.5,
			MaxAudibles:         cfg.MaxAudibles,
			Mode:                cfg.Mode,
			LOS:                 d.LOS,
			Down:                d.Down,
			YardsToGo:           d.YardsToGo,
			DriveStartY:         d.DriveStart,
			BallOnY:             d.BallOn,
			HashPosition:        d.Hash,
			PassProtectionFlags: map[string]bool{},
			RNGSeed:             cfg.RNGSeed,
		},
	}
	e.presnapCtl = presnap.New(cfg.Catalog, timingSys, cfg.MaxAudibles, alignment.Logger(e.logAdapter))
	return e
}

func (e *Engine) logAdapter(component, message string) {
	e.state.LogDiagnostic(component, message)
	if e.log != nil {
		e.log(component, message)
	}
}

func (e *Engine) situation() personnel.Situation {
	return personnel.Situation{Down: e.state.Down, YardsToGo: e.state.YardsToGo, FieldPositionY: e.state.LOS}
}

func (e *Engine) offense() []*model.Player { return e.state.Offense() }
func (e *Engine) defense() []*model.Player { return e.state.Defense() }

func (e *Engine) replaceDefense(defenders []*model.Player) {
	var players []*model.Player
	for _, p := range e.state.Players {
		if p.Team == model.TeamOffense {
			players = append(players, p)
		}
	}
	players = append(players, defenders...)
	e.state.Players = players
}

// SetPlayConcept loads a concept by id (pre-snap only), assigning
// routes to the offense by slot and rebuilding alignment.
func (e *Engine) SetPlayConcept(offenseFormationID, conceptID string, los float64, hash model.Hash) bool {
	if e.state.Phase != model.PhasePreSnap {
		return false
	}
	formationDef, ok := e.cat.GetFormation(offenseFormationID)
	if !ok {
		return false
	}
	concept, ok := e.cat.GetConcept(conceptID)
	if !ok {
		return false
	}

	slots := make([]string, 0, len(formationDef.Positions))
	for slot := range formationDef.Positions {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	var offense []*model.Player
	for _, slot := range slots {
		spec := formationDef.Positions[slot]
		p := &model.Player{
			ID:              slot,
			Team:            model.TeamOffense,
			Type:            spec.PlayerType,
			MaxSpeed:        model.OffenseMaxSpeed[spec.PlayerType],
			SpeedMultiplier: 1.0,
			IsEligible:      spec.PlayerType != model.QB,
			Position:        vector.V2{X: vector.CenterX + spec.OffsetX, Y: los + spec.OffsetY},
		}
		if rt, ok := concept.RoutesBySlot[slot]; ok {
			r := rt
			p.Route = r.Clone()
		}
		offense = append(offense, p)
	}

	e.state.ConceptName = concept.Name
	e.state.LOS = los
	e.state.HashPosition = hash
	e.offenseLineup = cloneAll(offense)

	var prevDefense []*model.Player
	if e.state.Players != nil {
		prevDefense = e.defense()
	}
	var players []*model.Player
	players = append(players, offense...)
	e.state.Players = players

	result := e.presnapCtl.Rebuild(offense, prevDefense, e.state.CoverageType, los, hash, e.situation(), e.rng.Float64(), e.forcedPackage, model.AdjFormation, e.state.TimeElapsed)
	e.replaceDefense(result.Defenders)
	e.commitAlignmentResult(result)
	return true
}

func (e *Engine) commitAlignmentResult(result *alignment.Result) {
	e.lastAlignment = result
	e.state.PersonnelPackage = result.Package
	e.state.CompatibilityWarning = result.Warning
}

func cloneAll(players []*model.Player) []*model.Player {
	out := make([]*model.Player, len(players))
	for i, p := range players {
		out[i] = p.Clone()
	}
	return out
}

// SetCoverageByType changes the defensive coverage (pre-snap only) and
// rebuilds alignment.
func (e *Engine) SetCoverageByType(ct model.CoverageType) bool {
	if e.state.Phase != model.PhasePreSnap {
		return false
	}
	prevDefense := e.defense()
	e.state.CoverageType = ct
	e.state.CoverageName = string(ct)
	result := e.presnapCtl.Rebuild(e.offense(), prevDefense, ct, e.state.LOS, e.state.HashPosition, e.situation(), e.rng.Float64(), e.forcedPackage, model.AdjCoverage, e.state.TimeElapsed)
	e.replaceDefense(result.Defenders)
	e.commitAlignmentResult(result)
	return true
}

// SetCoverageByDef loads a coverage definition by id and applies it.
func (e *Engine) SetCoverageByDef(coverageID string) bool {
	c, ok := e.cat.GetCoverage(coverageID)
	if !ok {
		return false
	}
	e.state.CoverageName = c.Name
	return e.SetCoverageByType(c.Type)
}

// SetPersonnel forces a specific defensive package override (pre-snap
// only); subsequent rebuilds still pass through CompatibilityWarning
// screening against the active coverage.
func (e *Engine) SetPersonnel(pkg model.DefensivePackage) bool {
	if e.state.Phase != model.PhasePreSnap {
		return false
	}
	e.forcedPackage = pkg
	prevDefense := e.defense()
	result := e.presnapCtl.Rebuild(e.offense(), prevDefense, e.state.CoverageType, e.state.LOS, e.state.HashPosition, e.situation(), e.rng.Float64(), e.forcedPackage, model.AdjFormation, e.state.TimeElapsed)
	e.replaceDefense(result.Defenders)
	e.commitAlignmentResult(result)
	return true
}

// UpdatePlayerPosition handles a drag-drop repositioning command,
// clamping/validating per spec.md §4.8 and re-analyzing formation.
func (e *Engine) UpdatePlayerPosition(id string, pos vector.V2) bool {
	if e.state.Phase != model.PhasePreSnap {
		return false
	}
	p := e.state.FindPlayer(id)
	if p == nil || p.Team != model.TeamOffense {
		return false
	}
	clamped, ok := presnap.ValidateDragDrop(p, pos, e.state.LOS)
	if !ok {
		return false
	}
	p.Position = clamped

	prevDefense := e.defense()
	result := e.presnapCtl.Rebuild(e.offense(), prevDefense, e.state.CoverageType, e.state.LOS, e.state.HashPosition, e.situation(), e.rng.Float64(), e.forcedPackage, model.AdjFormation, e.state.TimeElapsed)
	e.replaceDefense(result.Defenders)
	e.commitAlignmentResult(result)
	return true
}

// SendInMotion starts a player's pre-snap motion (pre-snap only).
func (e *Engine) SendInMotion(id string, mt model.MotionType) bool {
	if e.state.Phase != model.PhasePreSnap {
		return false
	}
	p := e.state.FindPlayer(id)
	if p == nil {
		return false
	}
	qb := e.state.QBPlayer()
	qbPos := p.Position
	if qb != nil {
		qbPos = qb.Position
	}
	if !e.presnapCtl.SendInMotion(p, mt, qbPos) {
		return false
	}
	e.state.ActiveMotion = p.MotionPath
	e.state.ActiveMotion.PlayerID = id

	targets, execTime := motion.CoverageResponse(e.state.CoverageType, p.MotionPath.CrossesFormation, e.state.ActiveMotion, e.defense())
	for defID, target := range targets {
		d := e.state.FindPlayer(defID)
		if d == nil {
			continue
		}
		e.timingSys.QueueWithExecution(defID, model.AdjMotion, d.Position, target, execTime, e.state.TimeElapsed)
	}
	return true
}

// SetQBMovement selects the QB's drop/rollout type (pre-snap only).
func (e *Engine) SetQBMovement(dropType model.QBDropType) bool {
	if e.state.Phase != model.PhasePreSnap {
		return false
	}
	qb := e.state.QBPlayer()
	if qb == nil {
		return false
	}
	e.state.QBMovement = qbmove.NewState(dropType, 0, qb.Position)
	return true
}

// AudibleRoute swaps a receiver's route (pre-snap only; honors
// maxAudibles).
func (e *Engine) AudibleRoute(playerID string, rt model.RouteType) bool {
	if e.state.Phase != model.PhasePreSnap {
		return false
	}
	p := e.state.FindPlayer(playerID)
	if p == nil {
		return false
	}
	if !e.presnapCtl.AudibleRoute(p, rt) {
		return false
	}
	e.state.AudiblesUsed = e.presnapCtl.AudiblesUsed
	return true
}

// Snap transitions pre-snap -> post-snap, starts timers, applies motion
// boosts, and initializes QB movement if none was chosen.
func (e *Engine) Snap() bool {
	if e.state.Phase != model.PhasePreSnap {
		return false
	}
	e.state.Phase = model.PhasePostSnap
	e.state.TimeElapsed = 0

	for _, p := range e.offense() {
		if p.HasMotion {
			p.HasMotionBoost = true
			p.MotionBoostRemaining = model.MotionBoostDuration
			p.HasMotion = false
			p.MotionPath = nil
		}
	}
	e.state.ActiveMotion = nil
	e.presnapCtl.MotionActive = false

	if qb := e.state.QBPlayer(); qb != nil {
		if e.state.QBMovement == nil {
			e.state.QBMovement = qbmove.NewState(qbmove.DefaultDrop, 0, qb.Position)
		}
		e.state.Ball.State = model.BallHeld
		e.state.Ball.Carrier = qb.ID
		e.state.Ball.Position = qb.Position
		qb.HasBall = true
	}

	pkg, blitzing := blitz.DecideBlitz(e.state.CoverageType, e.defense(), e.rng)
	if blitzing {
		e.blitzPackage = pkg
	}
	return true
}

// Tick advances the play by dt seconds, running the nine-step ordering
// from spec.md §4.16.
func (e *Engine) Tick(dt float64) {
	if e.state.Phase != model.PhasePostSnap && e.state.Phase != model.PhaseBallThrown {
		return
	}

	// 1. Advance time counters.
	e.state.TimeElapsed += dt
	e.lastUpdateCounter += dt
	e.state.LastUpdate = e.lastUpdateCounter
	for _, p := range e.offense() {
		if p.HasMotionBoost {
			p.MotionBoostRemaining -= dt
			if p.MotionBoostRemaining <= 0 {
				p.HasMotionBoost = false
				p.MotionBoostRemaining = 0
			}
		}
	}

	// 2. Pre-snap adjustments only apply pre-snap; nothing to do here
	// once we're ticking post-snap.

	// 3. Update QB movement.
	qb := e.state.QBPlayer()
	if qb != nil && e.state.QBMovement != nil && e.state.QBMovement.Active {
		qb.Position = qbmove.PositionAt(e.state.QBMovement, e.state.TimeElapsed)
		if e.state.QBMovement.ShouldTriggerPlayActionResponse(e.state.TimeElapsed) && !e.state.QBMovement.PAResponseFired {
			e.state.QBMovement.PAResponseFired = true
			e.triggerPlayActionFreeze()
		}
	}

	// 4. Update each eligible receiver's route.
	lineup := map[string]vector.V2{}
	for _, p := range e.offenseLineup {
		lineup[p.ID] = p.Position
	}
	for _, p := range e.offense() {
		if !p.IsReceiverEligible() || p.Route == nil {
			continue
		}
		start, ok := lineup[p.ID]
		if !ok {
			start = p.Position
		}
		lev := e.leverageFor(p)
		receiver.Update(p, start, e.state.TimeElapsed, lev)
		p.SpeedMultiplier = e.speedMultiplierFor(p)
	}

	// 5. For each defender: compute desired position via technique,
	// overlay any active timing-system adjustment, commit, clamp.
	w := &defense.World{
		Receivers:        e.offense(),
		HasBallCarrier:   e.state.Ball.Carrier != "",
		PlayActionFreeze: e.playActionFreezeActive(),
		Elapsed:          e.state.TimeElapsed,
		DT:               dt,
	}
	if qb != nil {
		w.QBPosition = qb.Position
	}
	if carrier := e.state.FindPlayer(e.state.Ball.Carrier); carrier != nil {
		w.BallCarrierPos = carrier.Position
	}
	for _, d := range e.defense() {
		desired := defense.ComputeDesiredPosition(d, w)
		if adj, ok := e.timingSys.GetAdjustedPosition(d.ID, e.state.TimeElapsed); ok {
			desired = adj
		}
		d.Position = vector.ClampToField(desired)
	}

	// 6. Advance defensive timing system.
	e.timingSys.Advance(e.state.TimeElapsed)

	// 7. If ball thrown, advance ball and test arrival.
	if e.state.Ball.State == model.BallThrown {
		ball.Advance(&e.state.Ball, dt)
		target := e.state.FindPlayer(e.state.Ball.TargetPlayer)
		if target != nil && ball.HasArrived(&e.state.Ball, target.Position) {
			e.resolveArrival(target)
		}
	}

	// 8. Evaluate hot-route triggers, pressure effects.
	e.evaluateHotRoutes()

	// 9. Check sack/timeout/touchdown/safety.
	e.evaluateTerminalConditions()

	e.state.ClampAll()
}

func (e *Engine) leverageFor(p *model.Player) model.Leverage {
	for _, d := range e.defense() {
		if d.CoverageResponsibility != nil && d.CoverageResponsibility.Kind == model.RespMan &&
			d.CoverageResponsibility.ManTargetID == p.ID {
			return d.Leverage
		}
	}
	return ""
}

func (e *Engine) speedMultiplierFor(p *model.Player) float64 {
	if p.HasMotionBoost {
		if p.MotionBoostRemaining <= model.MotionBoostFade {
			frac := p.MotionBoostRemaining / model.MotionBoostFade
			return 1.0 + (model.MotionBoostMultiplier-1.0)*frac
		}
		return model.MotionBoostMultiplier
	}
	return 1.0
}

func (e *Engine) triggerPlayActionFreeze() {
	for _, d := range e.defense() {
		if d.Type == model.LB || d.Type == model.S {
			e.timingSys.QueueWithExecution(d.ID, model.AdjPlayAction, d.Position, d.Position, 0.4, e.state.TimeElapsed)
		}
	}
}

func (e *Engine) playActionFreezeActive() bool {
	for _, d := range e.defense() {
		if e.timingSys.IsDefenderFrozen(d.ID) {
			return true
		}
	}
	return false
}

func (e *Engine) evaluateHotRoutes() {
	if e.hotRouteTriggered {
		return
	}
	if e.state.TimeElapsed > 2.0 {
		return
	}
	if hotroute.DetectBlitz(e.defense()) || hotroute.ShouldAutoFire(e.defense(), e.state.TimeElapsed) {
		if hotroute.ConvertAll(e.offense(), e.cat) {
			e.hotRouteTriggered = true
			e.state.SackBudget = blitz.EffectiveSackBudget(e.state.SackBudget, true)
		}
	}
}

func (e *Engine) evaluateTerminalConditions() {
	if e.state.Outcome != nil {
		return
	}
	if blitz.IsSack(e.state.TimeElapsed, e.state.SackBudget, e.state.Ball.State) {
		o := model.OutcomeSack
		e.state.Outcome = &o
		e.state.Phase = model.PhasePlayOver
		qb := e.state.QBPlayer()
		if qb != nil {
			e.state.BallOnY = qb.Position.Y
		}
		return
	}
	if blitz.IsTimeout(e.state.TimeElapsed, e.state.SackBudget, e.state.Ball.State) {
		o := model.OutcomeTimeout
		e.state.Outcome = &o
		e.state.Phase = model.PhasePlayOver
		return
	}
}

// ThrowTo throws the ball at the given receiver; only valid post-snap,
// while held, QB in throwing position.
func (e *Engine) ThrowTo(targetID string) bool {
	if e.state.Phase != model.PhasePostSnap {
		return false
	}
	if e.state.Ball.State != model.BallHeld {
		return false
	}
	qb := e.state.QBPlayer()
	if qb == nil || e.state.QBMovement == nil || !qbmove.IsInThrowingPosition(e.state.QBMovement, e.state.TimeElapsed) {
		return false
	}
	target := e.state.FindPlayer(targetID)
	if target == nil || !target.IsReceiverEligible() {
		return false
	}
	velocity, _ := ball.ThrowTo(qb.Position, target)
	e.state.Ball.Position = qb.Position
	e.state.Ball.Velocity = velocity
	e.state.Ball.State = model.BallThrown
	e.state.Ball.TargetPlayer = targetID
	e.state.Ball.Carrier = ""
	qb.HasBall = false
	e.state.Phase = model.PhaseBallThrown
	return true
}

func (e *Engine) resolveArrival(target *model.Player) {
	nearestDef, defDist := ball.NearestDefender(target.Position, e.defense())
	recvDist := vector.Distance(target.Position, e.state.Ball.Position)
	depth := 0.0
	if target.Route != nil {
		depth = target.Route.Depth()
	}
	level, effect := blitz.EvaluatePressure(e.state.TimeElapsed, e.state.SackBudget)
	_ = level
	accuracy := 1.0
	if e.state.QBMovement != nil {
		accuracy = e.state.QBMovement.AccuracyModifierAt(e.state.TimeElapsed)
	}
	catchProb := ball.CatchProbability(depth, routeTypeOf(target), accuracy, effect.Accuracy)

	defPos := target.Position
	if nearestDef != nil {
		defPos = nearestDef.Position
	}
	res := ball.Resolve(target.Position, defPos, defDist, recvDist, catchProb, e.rng)

	outcome := res.Outcome
	e.state.Outcome = &outcome
	e.state.Ball.Position = res.Position
	switch outcome {
	case model.OutcomeCatch:
		e.state.Ball.State = model.BallCaught
		e.state.Ball.Carrier = target.ID
		target.HasBall = true
		e.state.BallOnY = res.Position.Y
	case model.OutcomeInterception:
		e.state.Ball.State = model.BallIntercepted
		if nearestDef != nil {
			e.state.Ball.Carrier = nearestDef.ID
		}
		e.state.BallOnY = res.Position.Y
	case model.OutcomeIncomplete:
		e.state.Ball.State = model.BallIncomplete
		e.state.BallOnY = e.state.LOS
	}

	if drive.IsTouchdown(e.state.BallOnY) && outcome == model.OutcomeCatch {
		td := model.OutcomeTouchdown
		e.state.Outcome = &td
	}
	if drive.IsSafety(e.state.BallOnY) && outcome == model.OutcomeInterception {
		sf := model.OutcomeSafety
		e.state.Outcome = &sf
	}

	e.state.Phase = model.PhasePlayOver
}

func routeTypeOf(p *model.Player) model.RouteType {
	if p.Route == nil {
		return ""
	}
	return p.Route.Type
}

// ResetPlay returns to pre-snap, clearing motion/adjustment state;
// drive state is preserved.
func (e *Engine) ResetPlay() bool {
	e.state.Phase = model.PhasePreSnap
	e.state.TimeElapsed = 0
	e.state.Outcome = nil
	e.state.Ball = model.Ball{}
	e.timingSys.CancelAll(0)
	e.presnapCtl.MotionActive = false
	e.state.ActiveMotion = nil
	e.state.QBMovement = nil
	e.hotRouteTriggered = false
	e.blitzPackage = nil
	for _, p := range e.offense() {
		p.HasMotion = false
		p.MotionPath = nil
		p.HasMotionBoost = false
		p.MotionBoostRemaining = 0
		p.HasBall = false
		p.Position = lineupPositionOf(p.ID, e.offenseLineup)
	}
	return true
}

func lineupPositionOf(id string, lineup []*model.Player) vector.V2 {
	for _, p := range lineup {
		if p.ID == id {
			return p.Position
		}
	}
	return vector.V2{}
}

// NextPlay requires phase play-over; updates down/distance/LOS per
// outcome and recomputes hash from the ball's end position.
func (e *Engine) NextPlay() bool {
	if e.state.Phase != model.PhasePlayOver || e.state.Outcome == nil {
		return false
	}
	e.drive = drive.Advance(e.drive, *e.state.Outcome, e.state.BallOnY)
	e.state.Down = e.drive.Down
	e.state.YardsToGo = e.drive.YardsToGo
	e.state.LOS = e.drive.LOS
	e.state.DriveStartY = e.drive.DriveStart
	e.state.BallOnY = e.drive.BallOn
	e.state.IsFirstDown = e.drive.IsFirstDown
	e.state.HashPosition = e.drive.Hash

	e.presnapCtl.ResetAudibles()
	e.state.AudiblesUsed = 0
	return e.ResetPlay()
}

// GetGameState returns a fresh, deep-cloned snapshot (spec.md §3
// invariant 9, §4.16). LastUpdate is bumped on every call so that two
// snapshots are never equal even when no Tick ran between them (§8's
// "snapshots are byte-identical only for identical histories" implies
// strict monotonicity of LastUpdate across observations).
func (e *Engine) GetGameState() *model.GameState {
	e.lastUpdateCounter += lastUpdateEpsilon
	e.state.LastUpdate = e.lastUpdateCounter
	return e.state.Snapshot()
}

// lastUpdateEpsilon is the minimal LastUpdate bump GetGameState applies
// per call; far below a tick's 1/60s so it never accumulates into
// visible drift.
const lastUpdateEpsilon = 1e-9
