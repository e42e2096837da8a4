package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPCG32SamplerInRange(t *testing.T) {
	s := NewPCG32Sampler(42, 1)
	for i := 0; i < 10000; i++ {
		u := s.Sample1D()
		assert.GreaterOrEqual(t, u, float32(0))
		assert.Less(t, u, float32(1))
	}
}

func TestPCG32SamplerDeterministic(t *testing.T) {
	a := NewPCG32Sampler(7, 3)
	b := NewPCG32Sampler(7, 3)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Sample1D(), b.Sample1D())
	}
}

func TestPCG32SamplerDistinctStreamsDiverge(t *testing.T) {
	a := NewPCG32Sampler(7, 1)
	b := NewPCG32Sampler(7, 2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Sample1D() != b.Sample1D() {
			same = false
		}
	}
	assert.False(t, same, "distinct streams should diverge")
}
