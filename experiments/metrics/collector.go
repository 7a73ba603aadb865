package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Episodes   int
	// MinEpisodes and MaxEpisodes are the fewest and most episodes any single
	// worker completed.
	MinEpisodes int
	MaxEpisodes int
}

type MoveMetric struct {
	Step   int
	Player int // Color of the mover
	Row    int
	Col    int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Color
	Winner         int // Color, 0 on a draw
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(goroutines int)
	AddEpisodes(episodes int)
	Complete() SearchMetric
}

type collector struct {
	goroutines  int
	startTime   time.Time
	episodes    atomic.Int64
	minEpisodes atomic.Int64
	maxEpisodes atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.minEpisodes.Store(-1)
	m.maxEpisodes.Store(0)
}

// AddEpisodes records the episode count of one worker.
func (m *collector) AddEpisodes(episodes int) {
	n := int64(episodes)
	m.episodes.Add(n)
	for {
		cur := m.minEpisodes.Load()
		if cur >= 0 && cur <= n || m.minEpisodes.CompareAndSwap(cur, n) {
			break
		}
	}
	for {
		cur := m.maxEpisodes.Load()
		if cur >= n || m.maxEpisodes.CompareAndSwap(cur, n) {
			break
		}
	}
}

func (m *collector) Complete() SearchMetric {
	minEpisodes := m.minEpisodes.Load()
	if minEpisodes < 0 {
		minEpisodes = 0
	}
	return SearchMetric{
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Episodes:    int(m.episodes.Load()),
		MinEpisodes: int(minEpisodes),
		MaxEpisodes: int(m.maxEpisodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)     {}
func (m *dummyCollector) AddEpisodes(episodes int) {}
func (m *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
