package agent

import (
	"othello/game"
	"othello/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluationAgent(t *testing.T) {
	a := NewEvaluationAgent(searcher.NewMCTS(2, searcher.WithEpisodes(100), searcher.WithMetrics()))
	position := game.InitialPosition()

	move, metric := a.FindMove(position, game.Black)

	require.True(t, position.IsLegal(game.Black, move))
	require.Equal(t, 200, metric.Episodes)
}

func TestTrainingAgent(t *testing.T) {
	t.Run("sampling a legal move", func(t *testing.T) {
		a := NewTrainingAgent(searcher.NewMCTS(2, searcher.WithEpisodes(50)), 1.0, 4)
		position := game.InitialPosition()

		for i := 0; i < 5; i++ {
			move, _ := a.FindMove(position, game.White)
			require.True(t, position.IsLegal(game.White, move))
		}
	})

	t.Run("panics on a non-positive temperature", func(t *testing.T) {
		require.Panics(t, func() {
			NewTrainingAgent(searcher.NewMCTS(1, searcher.WithEpisodes(1)), 0, 1)
		})
	})
}

func TestAdjustTemperature(t *testing.T) {
	stats := []searcher.MoveStat{{Playouts: 1}, {Playouts: 3}}

	t.Run("unit temperature is proportional to playouts", func(t *testing.T) {
		got := adjustTemperature(stats, 1.0)
		require.InDeltaSlice(t, []float64{0.25, 0.75}, got, 1e-9)
	})

	t.Run("low temperature sharpens", func(t *testing.T) {
		got := adjustTemperature(stats, 0.5)
		require.InDeltaSlice(t, []float64{0.1, 0.9}, got, 1e-9)
	})

	t.Run("no playouts is uniform", func(t *testing.T) {
		got := adjustTemperature([]searcher.MoveStat{{}, {}}, 1.0)
		require.InDeltaSlice(t, []float64{0.5, 0.5}, got, 1e-9)
	})
}

func TestSample(t *testing.T) {
	policy := []float64{0.25, 0.75}
	require.Equal(t, 0, sample(policy, 0.1))
	require.Equal(t, 1, sample(policy, 0.3))
	require.Equal(t, 1, sample(policy, 0.99999999999))
}

func TestRandomAgent(t *testing.T) {
	t.Run("playing legal moves", func(t *testing.T) {
		a := NewRandomAgent(1)
		position := game.InitialPosition()
		for i := 0; i < 10; i++ {
			move, _ := a.FindMove(position, game.Black)
			require.True(t, position.IsLegal(game.Black, move))
		}
	})

	t.Run("passing when stuck", func(t *testing.T) {
		var grid [game.Size][game.Size]game.Color
		grid[0][0] = game.Black
		grid[0][1] = game.White
		a := NewRandomAgent(1)

		move, _ := a.FindMove(game.NewPosition(grid), game.White)

		require.Equal(t, game.Pass, move)
	})
}
