package searcher

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func newExpandedRoot() *node {
	root := newRoot(game.InitialPosition(), game.White)
	root.expand()
	return root
}

func TestMerge(t *testing.T) {
	t.Run("summing matching children", func(t *testing.T) {
		a := newExpandedRoot()
		b := newExpandedRoot()
		a.children[1].child.wins, a.children[1].child.playouts = 3, 5
		b.children[1].child.wins, b.children[1].child.playouts = -1, 4

		merged := merge([]*node{a, b})

		require.Same(t, a, merged, "Statistics should be merged into the first tree")
		require.Equal(t, 2, merged.children[1].child.wins)
		require.Equal(t, 9, merged.children[1].child.playouts)
		require.Equal(t, -1, b.children[1].child.wins, "Other trees should not change")
	})

	t.Run("merging many trees", func(t *testing.T) {
		roots := []*node{newExpandedRoot(), newExpandedRoot(), newExpandedRoot()}
		for _, root := range roots {
			for _, e := range root.children {
				e.child.wins++
				e.child.playouts += 2
			}
		}

		merged := merge(roots)

		for _, e := range merged.children {
			require.Equal(t, 3, e.child.wins)
			require.Equal(t, 6, e.child.playouts)
		}
	})

	t.Run("merging childless trees", func(t *testing.T) {
		a := newRoot(fullBoard(10), game.Black)
		b := newRoot(fullBoard(10), game.Black)

		merged := merge([]*node{a, b})
		require.Empty(t, merged.children)
	})

	t.Run("panics on mismatched trees", func(t *testing.T) {
		a := newExpandedRoot()
		b := newRoot(game.InitialPosition(), game.White)

		require.Panics(t, func() { merge([]*node{a, b}) })
	})

	t.Run("panics without trees", func(t *testing.T) {
		require.Panics(t, func() { merge(nil) })
	})
}

func TestDecide(t *testing.T) {
	t.Run("picking the best win rate", func(t *testing.T) {
		root := newExpandedRoot()
		stats := [][2]int{{1, 10}, {4, 10}, {-2, 10}, {3, 5}}
		for i, s := range stats {
			root.children[i].child.wins = s[0]
			root.children[i].child.playouts = s[1]
		}

		result := decide(root)

		require.Equal(t, root.children[3].move, result.Move)
		require.Len(t, result.Stats, 4)
		require.Equal(t, MoveStat{Move: root.children[1].move, Wins: 4, Playouts: 10}, result.Stats[1])
	})

	t.Run("keeping the first move on ties", func(t *testing.T) {
		root := newExpandedRoot()
		root.children[1].child.wins, root.children[1].child.playouts = 1, 2
		root.children[2].child.wins, root.children[2].child.playouts = 1, 2

		result := decide(root)

		require.Equal(t, root.children[1].move, result.Move)
	})

	t.Run("unvisited children fall back to the first move", func(t *testing.T) {
		root := newExpandedRoot()
		require.Equal(t, game.Move{Row: 2, Col: 3}, decide(root).Move)
	})

	t.Run("passing without children", func(t *testing.T) {
		root := newRoot(fullBoard(10), game.White)

		result := decide(root)

		require.Equal(t, game.Pass, result.Move)
		require.Empty(t, result.Stats)
	})
}
