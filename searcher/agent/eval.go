package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that always plays the move with the
// best merged win rate.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(position game.Position, player game.Color) (game.Move, metrics.SearchMetric) {
	result, metric := a.mcts.Search(position, player)
	return result.Move, metric
}
