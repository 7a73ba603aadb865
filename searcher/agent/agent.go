package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns the move to play for player and the metrics of the
	// search behind it, if any. It returns game.Pass when player cannot move.
	FindMove(position game.Position, player game.Color) (game.Move, metrics.SearchMetric)
}
