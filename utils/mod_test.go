package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestSum(t *testing.T) {
	type pair struct{ a, b int }
	pairs := []pair{{1, 2}, {3, 4}}
	require.Equal(t, 4, Sum(pairs, func(p pair) int { return p.a }))
	require.Equal(t, 0, Sum(nil, func(p pair) int { return p.b }))
}
