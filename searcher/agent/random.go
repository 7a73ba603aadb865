package agent

import (
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(position game.Position, player game.Color) (game.Move, metrics.SearchMetric) {
	moves := position.LegalMoves(player)
	if len(moves) == 0 {
		return game.Pass, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
