package model

import "github.com/coverageeng/snap-engine/internal/vector"

// MotionDuration is the fixed duration table for each motion type, in
// seconds, per spec.md §4.7.
var MotionDuration = map[MotionType]float64{
	MotionJet:    1.3,
	MotionFly:    1.4,
	MotionOrbit:  1.7,
	MotionAcross: 2.0,
	MotionGlide:  1.2,
	MotionReturn: 1.8,
	MotionShift:  1.2 + 1.0, // + 1s set per spec.md
}

// Motion is the runtime record of an in-progress or completed pre-snap
// motion.
type Motion struct {
	Type           MotionType
	PlayerID       string
	Start          vector.V2
	End            vector.V2
	Path           []vector.V2
	Duration       float64
	CurrentTime    float64
	CrossesFormation bool
}

// IsComplete reports whether the motion has finished.
func (m *Motion) IsComplete() bool {
	return m.CurrentTime >= m.Duration-vector.Epsilon
}

// PositionAt returns the interpolated position along the motion path at
// the given elapsed time, clamped to [0, Duration].
func (m *Motion) PositionAt(t float64) vector.V2 {
	if t <= 0 || len(m.Path) == 0 {
		return m.Start
	}
	if t >= m.Duration {
		return m.End
	}
	frac := t / m.Duration
	// Piecewise-linear interpolation across the path waypoints.
	n := len(m.Path)
	segLen := 1.0 / float64(n-1+1) // guard n==1
	if n == 1 {
		return vector.Lerp(m.Start, m.Path[0], frac)
	}
	segFrac := frac / segLen
	idx := int(segFrac)
	if idx >= n-1 {
		return m.Path[n-1]
	}
	localT := segFrac - float64(idx)
	return vector.Lerp(m.Path[idx], m.Path[idx+1], localT)
}
