package agent

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that samples moves in
// proportion to their playouts, sharpened or flattened by temperature.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(position game.Position, player game.Color) (game.Move, metrics.SearchMetric) {
	result, metric := a.mcts.Search(position, player)
	if len(result.Stats) == 0 {
		return result.Move, metric
	}
	policy := adjustTemperature(result.Stats, a.temperature)
	return result.Stats[sample(policy, a.rng.Float64())].Move, metric
}

// adjustTemperature turns playout counts into move probabilities.
func adjustTemperature(stats []searcher.MoveStat, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(stats))
	for i, stat := range stats {
		prob := math.Pow(float64(stat.Playouts), exponent)
		sum += prob
		adjusted[i] = prob
	}
	if sum == 0 { // No playouts at all
		for i := range adjusted {
			adjusted[i] = 1.0 / float64(len(adjusted))
		}
		return adjusted
	}
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

// sample returns the index whose cumulative probability first exceeds u.
func sample(policy []float64, u float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if u < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
