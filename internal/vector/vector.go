// Package vector implements the field and vector primitives the rest of
// the engine builds on: yard-based 2D vectors, field constants, and the
// trig/Bezier helpers used by zone coordination and defensive movement.
package vector

import "math"

// Field dimensions and landmarks, all in yards.
const (
	FieldLength  = 120.0
	FieldWidth   = 53.33
	CenterX      = FieldWidth / 2
	HashOffset   = 3.08
	NumbersOffset = 13.33
	EndZoneDepth = 10.0

	// Epsilon is the numeric tolerance used for float comparisons across
	// the engine.
	Epsilon = 1e-6
)

// V2 is a yard-based 2D vector. X runs sideline to sideline, Y runs from
// the offense's own end zone toward the opponent's.
type V2 struct {
	X float64
	Y float64
}

func New(x, y float64) V2 { return V2{X: x, Y: y} }

func (a V2) Add(b V2) V2      { return V2{a.X + b.X, a.Y + b.Y} }
func (a V2) Sub(b V2) V2      { return V2{a.X - b.X, a.Y - b.Y} }
func (a V2) Scale(s float64) V2 { return V2{a.X * s, a.Y * s} }

func (a V2) Magnitude() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

func Distance(a, b V2) float64 {
	return a.Sub(b).Magnitude()
}

func Dot(a, b V2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Normalize returns the unit vector in the direction of a, or the zero
// vector if a is within Epsilon of zero length.
func (a V2) Normalize() V2 {
	m := a.Magnitude()
	if m < Epsilon {
		return V2{}
	}
	return a.Scale(1 / m)
}

// MoveToward advances current toward target by at most step yards,
// never overshooting.
func MoveToward(current, target V2, step float64) V2 {
	delta := target.Sub(current)
	dist := delta.Magnitude()
	if dist <= step || dist < Epsilon {
		return target
	}
	return current.Add(delta.Scale(step / dist))
}

// ClampToField clamps a position to the playable field rectangle
// [0,FieldWidth] x [0,FieldLength].
func ClampToField(p V2) V2 {
	return V2{
		X: clamp(p.X, 0, FieldWidth),
		Y: clamp(p.Y, 0, FieldLength),
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BezierQuadratic evaluates a quadratic Bezier curve with control point
// ctrl at parameter t in [0,1], used to smooth zone-drop paths of 5 yards
// or more.
func BezierQuadratic(start, ctrl, end V2, t float64) V2 {
	u := 1 - t
	p := start.Scale(u * u)
	p = p.Add(ctrl.Scale(2 * u * t))
	p = p.Add(end.Scale(t * t))
	return p
}

// EaseInOutQuad is the standard smoothstep-style easing curve used by
// the defensive timing system to interpolate adjustment execution.
func EaseInOutQuad(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b V2, t float64) V2 {
	return a.Add(b.Sub(a).Scale(t))
}

// AngleBetween returns the angle in degrees between vectors a and b,
// both measured from the origin.
func AngleBetween(a, b V2) float64 {
	na, nb := a.Normalize(), b.Normalize()
	d := Dot(na, nb)
	if d > 1 {
		d = 1
	}
	if d < -1 {
		d = -1
	}
	return math.Acos(d) * 180 / math.Pi
}
