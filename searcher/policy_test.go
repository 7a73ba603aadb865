package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		got := policy.evaluate(5, 10)

		expected := 5.0/(10+DivDelta) + math.Sqrt(CSquared*math.Log(100)/(10+DivDelta))
		require.InDelta(t, expected, got, 0.0001,
			"Should compute w/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("unvisited child gets a huge exploration bonus", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		require.Greater(t, policy.evaluate(0, 0), 1e4)
	})

	t.Run("unvisited root yields NaN", func(t *testing.T) {
		policy := newUCT(CSquared, 0)
		require.True(t, math.IsNaN(policy.evaluate(1, 1)))
	})

	t.Run("exploration term increases with root visits", func(t *testing.T) {
		policy1 := newUCT(CSquared, 100)
		policy2 := newUCT(CSquared, 1000)

		require.Greater(t, policy2.evaluate(5, 10), policy1.evaluate(5, 10),
			"More root visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Greater(t, policy.evaluate(0, 10), policy.evaluate(0, 20),
			"More child visits should decrease exploration term")
	})
}

func TestWinRate(t *testing.T) {
	require.InDelta(t, 0.5, winRate(2, 4), 1e-6)
	require.InDelta(t, -0.25, winRate(-1, 4), 1e-6)
	require.Equal(t, 0.0, winRate(0, 0), "Unvisited nodes should not divide by zero")
}
