package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SameSeedProducesSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestFloat64_StaysInUnitInterval(t *testing.T) {
	s := New(1)
	for i := 0; i < 100; i++ {
		v := s.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestChance_ZeroAndOneAreDeterministic(t *testing.T) {
	s := New(1)
	assert.False(t, s.Chance(0))
	assert.True(t, s.Chance(1))
	assert.True(t, s.Chance(2)) // clamped to 1
	assert.False(t, s.Chance(-1)) // clamped to 0
}
