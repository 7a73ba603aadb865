package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(mcts *MCTS)

// MCTS runs root-parallel Monte Carlo tree search: every goroutine grows its
// own tree from the same position and the root statistics are merged once all
// of them are done.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	seed       uint64
	metrics    metrics.Collector
}

// WithDuration bounds every search by wall-clock time.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes bounds every search by the number of episodes per goroutine.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithSeed sets the base seed of the rollout streams. Goroutine i uses seed+i.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

// NewMCTS returns a searcher running the given number of goroutines, or one
// per available CPU when goroutines is not positive.
func NewMCTS(goroutines int, options ...Option) *MCTS {
	if goroutines <= 0 {
		goroutines = runtime.GOMAXPROCS(0)
	}
	m := &MCTS{ // Default values
		goroutines: goroutines,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) Goroutines() int {
	return m.goroutines
}

// Search finds the best move for player in position.
func (m *MCTS) Search(position game.Position, player game.Color) (Result, metrics.SearchMetric) {
	// Roots hold the position right after the opponent moved, so their
	// children are the candidate moves of player.
	workers := make([]*worker, m.goroutines)
	for i := range workers {
		workers[i] = newWorker(i, position, player.Opponent(), m.seed)
	}

	m.metrics.Start(m.goroutines)
	start := time.Now()
	var wg sync.WaitGroup
	for _, w := range workers {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(start, m.duration, m.episodes)
		}()
	}
	wg.Wait()
	log.Debug().Msgf("search over %d trees took %v", m.goroutines, time.Since(start))

	roots := make([]*node, len(workers))
	for i, w := range workers {
		log.Debug().Int("worker", w.id).Int("episodes", w.episodes).Msg("tree complete")
		m.metrics.AddEpisodes(w.episodes)
		roots[i] = w.root
	}

	result := decide(merge(roots))
	for i, stat := range result.Stats {
		log.Debug().Msgf("%d %v: %d/%d = %f", i, stat.Move, stat.Wins, stat.Playouts, stat.WinRate())
	}
	if len(result.Stats) == 0 {
		log.Warn().Msgf("player %v has no continuation from a terminal position, passing", player)
	}

	return result, m.metrics.Complete()
}
