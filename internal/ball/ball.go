// Package ball implements ball flight and outcome resolution (spec.md
// §4.15): throw lead-time computation, fixed-speed flight, and the
// catch/interception/incomplete roll on arrival.
package ball

import (
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/rng"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// Speed is the ball's fixed flight speed in yards/sec (spec.md §4.15).
const Speed = model.BallFlightSpeed

// BaseCatchProbability is the per-depth-band base catch rate before QB
// accuracy, pressure, and route-type modifiers.
var BaseCatchProbability = map[DepthBand]float64{
	DepthShort:        0.85,
	DepthIntermediate: 0.72,
	DepthDeep:         0.58,
}

// DepthBand classifies a route's declared depth for catch-probability
// lookup.
type DepthBand string

const (
	DepthShort        DepthBand = "short"
	DepthIntermediate DepthBand = "intermediate"
	DepthDeep         DepthBand = "deep"
)

// ClassifyDepth buckets a declared route depth in yards.
func ClassifyDepth(depth float64) DepthBand {
	switch {
	case depth < 8:
		return DepthShort
	case depth < 16:
		return DepthIntermediate
	default:
		return DepthDeep
	}
}

// RouteTypeModifier is a per-route-type multiplier applied to catch
// probability, reflecting how contested each route shape tends to be.
var RouteTypeModifier = map[model.RouteType]float64{
	model.RouteSlant:    1.05,
	model.RouteFlat:     1.08,
	model.RouteHitch:    1.05,
	model.RouteDrag:     1.05,
	model.RouteGo:       0.92,
	model.RouteFade:     0.85,
	model.RouteCorner:   0.90,
	model.RoutePost:     0.95,
	model.RouteSeam:     0.90,
	model.RouteWheel:    0.93,
	model.RouteOut:      1.00,
	model.RouteIn:       1.00,
	model.RouteDig:      0.98,
	model.RouteCurl:     1.00,
	model.RouteComeback: 1.00,
	model.RouteSpeedOut: 1.02,
}

// ThrowTo computes the ball's launch velocity toward the receiver's
// predicted position (current position plus velocity * leadTime, where
// leadTime = distance / Speed), and returns the lead time used.
func ThrowTo(from vector.V2, receiver *model.Player) (velocity vector.V2, leadTime float64) {
	dist := vector.Distance(from, receiver.Position)
	leadTime = dist / Speed
	predicted := receiver.Position.Add(receiver.Velocity.Scale(leadTime))
	dir := predicted.Sub(from)
	mag := dir.Magnitude()
	if mag < vector.Epsilon {
		return vector.V2{}, leadTime
	}
	unit := dir.Scale(1 / mag)
	return unit.Scale(Speed), leadTime
}

// Advance moves the ball one tick along its current velocity.
func Advance(b *model.Ball, dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// HasArrived reports whether the ball has reached its target position
// within a small tolerance.
func HasArrived(b *model.Ball, target vector.V2) bool {
	return vector.Distance(b.Position, target) <= 0.75
}

// Openness computes the openness score in [0,100] from the nearest
// defender's separation from the receiver at arrival.
func Openness(separation float64) float64 {
	v := 50 + (separation-1.0)*25
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// CatchProbability combines the base rate, QB accuracy, pressure
// modifier and route-type modifier into a final probability in [0,1].
func CatchProbability(depth float64, rt model.RouteType, qbAccuracy, pressureModifier float64) float64 {
	base := BaseCatchProbability[ClassifyDepth(depth)]
	mod := RouteTypeModifier[rt]
	if mod == 0 {
		mod = 1.0
	}
	p := base * qbAccuracy * pressureModifier * mod
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// NearestDefender returns the closest defender to the receiver's
// position and its distance.
func NearestDefender(receiverPos vector.V2, defenders []*model.Player) (*model.Player, float64) {
	var best *model.Player
	bestDist := -1.0
	for _, d := range defenders {
		dist := vector.Distance(receiverPos, d.Position)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best, bestDist
}

// Resolution is the outcome of a ball arriving at its target.
type Resolution struct {
	Outcome   model.Outcome
	Position  vector.V2
	Openness  float64
	Separation float64
}

// InterceptionCloserMargin is how much closer a defender must be than
// the receiver, combined with a sufficiently low openness score, to
// trigger an interception roll (spec.md §4.15).
const InterceptionCloserMargin = 0.2

// InterceptionOpennessCeiling is the openness threshold below which an
// interception becomes possible at all.
const InterceptionOpennessCeiling = 30.0

// Resolve rolls the arrival outcome per spec.md §4.15: an interception
// roll when a defender is significantly closer than the receiver and
// openness is low, otherwise a catch/incomplete roll against
// catchProbability.
func Resolve(receiverPos vector.V2, defenderPos vector.V2, defenderDist, receiverDist float64, catchProbability float64, src *rng.Source) Resolution {
	separation := vector.Distance(receiverPos, defenderPos)
	openness := Openness(separation)

	if defenderDist < receiverDist-InterceptionCloserMargin && openness < InterceptionOpennessCeiling {
		intProb := (InterceptionOpennessCeiling - openness) / InterceptionOpennessCeiling
		if src.Chance(intProb) {
			return Resolution{Outcome: model.OutcomeInterception, Position: defenderPos, Openness: openness, Separation: separation}
		}
	}

	if src.Chance(catchProbability) {
		return Resolution{Outcome: model.OutcomeCatch, Position: receiverPos, Openness: openness, Separation: separation}
	}
	return Resolution{Outcome: model.OutcomeIncomplete, Position: receiverPos, Openness: openness, Separation: separation}
}
