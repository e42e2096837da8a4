package integrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceHeuristicWeightsSumToOne(t *testing.T) {
	a, b := float32(3), float32(7)
	wa := balanceHeuristic(a, b)
	wb := balanceHeuristic(b, a)
	assert.InDelta(t, 1.0, wa+wb, 1e-6)
}

func TestBalanceHeuristicZeroPdfsIsZero(t *testing.T) {
	assert.Equal(t, float32(0), balanceHeuristic(0, 0))
}

func TestBalanceHeuristicFavorsLargerPdf(t *testing.T) {
	assert.Greater(t, balanceHeuristic(9, 1), balanceHeuristic(1, 9))
}
