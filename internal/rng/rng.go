// Package rng concentrates every probabilistic decision the engine
// makes through a single seedable source (Design Notes: "Randomness:
// concentrate all RNG through a single seedable source"), mirroring
// the teacher simulator's convention of passing an explicit *rand.Rand
// rather than reaching for the package-level global.
package rng

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the engine's single RNG handle. It is never a package
// global: internal/engine owns one instance per GameState and threads
// it through every call that needs a roll, so two engines seeded
// identically produce byte-identical outcome sequences.
type Source struct {
	uniform distuv.Uniform
}

// New builds a Source seeded deterministically; the same seed always
// produces the same sequence of rolls.
func New(seed uint64) *Source {
	return &Source{uniform: distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(seed)}}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.uniform.Rand()
}

// Chance reports whether a draw against probability p (clamped to
// [0,1]) succeeds.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}
