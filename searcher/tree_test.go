package searcher

import (
	"othello/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTraverse(t *testing.T) {
	t.Run("returning a childless root", func(t *testing.T) {
		root := newRoot(game.InitialPosition(), game.White)
		require.Same(t, root, traverse(root))
	})

	t.Run("selection is deterministic on an unmodified tree", func(t *testing.T) {
		w := newWorker(0, game.InitialPosition(), game.White, 1)
		for i := 0; i < 300; i++ {
			w.simulate()
		}

		first := traverse(w.root)
		second := traverse(w.root)
		require.Same(t, first, second)
		require.Empty(t, first.children)
	})
}

func TestRollout(t *testing.T) {
	t.Run("scoring a finished game for the node's player", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		require.Equal(t, Win, rollout(newRoot(fullBoard(40), game.Black), rng))
		require.Equal(t, Loss, rollout(newRoot(fullBoard(40), game.White), rng))
		require.Equal(t, Draw, rollout(newRoot(fullBoard(32), game.Black), rng))
	})

	t.Run("rollout leaves the tree untouched", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		root := newRoot(game.InitialPosition(), game.White)
		root.expand()
		child := root.children[1].child
		before := child.position

		result := rollout(child, rng)

		require.Contains(t, []int{Win, Draw, Loss}, result)
		require.Equal(t, before, child.position)
		require.Zero(t, child.playouts)
		require.Zero(t, child.wins)
	})

	t.Run("same stream gives the same outcome", func(t *testing.T) {
		root := newRoot(game.InitialPosition(), game.White)
		for seed := uint64(0); seed < 20; seed++ {
			a := rollout(root, rand.New(rand.NewSource(seed)))
			b := rollout(root, rand.New(rand.NewSource(seed)))
			require.Equal(t, a, b)
		}
	})
}

func TestBackup(t *testing.T) {
	t.Run("alternating the sign up to the root", func(t *testing.T) {
		root := newRoot(game.InitialPosition(), game.White)
		root.expand()
		child := root.children[0].child
		child.expand()
		grandChild := child.children[0].child
		grandChild.expand()
		greatGrandChild := grandChild.children[0].child

		backup(grandChild, Win)
		require.Equal(t, 1, grandChild.wins)
		require.Equal(t, -1, child.wins)
		require.Equal(t, 1, root.wins, "Depth 2 should reach the root unchanged")

		backup(greatGrandChild, Win)
		require.Equal(t, 1, greatGrandChild.wins)
		require.Equal(t, 0, root.wins, "Depth 3 should reach the root negated")

		for _, n := range []*node{root, child, grandChild} {
			require.Equal(t, 2, n.playouts)
		}
		require.Equal(t, 1, greatGrandChild.playouts)
		depth := 0
		for p := greatGrandChild.parent; p != nil; p = p.parent {
			depth++
		}
		require.Equal(t, 3, depth)
	})

	t.Run("draws only count playouts", func(t *testing.T) {
		root := newRoot(game.InitialPosition(), game.White)
		root.expand()
		child := root.children[2].child

		backup(child, Draw)

		require.Zero(t, child.wins)
		require.Zero(t, root.wins)
		require.Equal(t, 1, child.playouts)
		require.Equal(t, 1, *child.rootPlayouts)
	})
}

func TestWorkerRun(t *testing.T) {
	t.Run("stopping at the episode budget", func(t *testing.T) {
		w := newWorker(0, game.InitialPosition(), game.White, 0)
		w.run(time.Now(), 0, 50)

		require.Equal(t, 50, w.episodes)
		require.Equal(t, 50, w.root.playouts)
		total := 0
		for _, e := range w.root.children {
			total += e.child.playouts
		}
		require.Equal(t, 50, total, "Every episode should pass through a root child")
	})

	t.Run("stopping at the deadline", func(t *testing.T) {
		w := newWorker(0, game.InitialPosition(), game.White, 0)
		start := time.Now()
		w.run(start, 20*time.Millisecond, 0)

		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
		require.Greater(t, w.episodes, 0)
	})

	t.Run("expired budget runs nothing", func(t *testing.T) {
		w := newWorker(0, game.InitialPosition(), game.White, 0)
		w.run(time.Now().Add(-time.Second), time.Millisecond, 0)

		require.Zero(t, w.episodes)
	})

	t.Run("terminal root is simulated in place", func(t *testing.T) {
		w := newWorker(0, fullBoard(20), game.White, 0)
		w.run(time.Now(), 0, 5)

		require.Empty(t, w.root.children)
		require.Equal(t, 5, w.root.playouts)
		require.Equal(t, 5, w.root.wins, "White owns most of the board")
	})
}
