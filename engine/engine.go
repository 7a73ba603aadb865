package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Engine interface {
	// Run plays the game till neither player can move or a max number of
	// turns is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
