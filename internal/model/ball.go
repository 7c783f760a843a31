package model

import "github.com/coverageeng/snap-engine/internal/vector"

// BallFlightSpeed is the fixed speed, in yards/sec, a thrown ball
// travels at (spec.md §4.15 / §6: "Ball speed 25 yd/s").
const BallFlightSpeed = 25.0

// Ball models the single game ball.
type Ball struct {
	Position     vector.V2
	Velocity     vector.V2
	State        BallState
	TargetPlayer string // player id, empty if none
	Carrier      string // player id, empty if none
	TimeInAir    float64
}

// Clone deep-copies the ball (value type, but kept for symmetry and to
// make snapshot semantics explicit).
func (b Ball) Clone() Ball { return b }
