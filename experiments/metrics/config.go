package metrics

import "time"

// AgentConfig describes one MCTS agent taking part in an experiment.
type AgentConfig struct {
	ID          int
	Goroutines  int
	Duration    time.Duration
	Episodes    int
	Temperature float64 // Zero plays the best move
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the black player
	Agent2 int // AgentConfig.ID of the white player
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// MoveRow is the parquet layout of a MoveRecord.
type MoveRow struct {
	Game        int32 `parquet:"game"`
	Step        int32 `parquet:"step"`
	Player      int32 `parquet:"player"`
	Row         int32 `parquet:"row"`
	Col         int32 `parquet:"col"`
	Goroutines  int32 `parquet:"goroutines"`
	DurationNs  int64 `parquet:"duration_ns"`
	Episodes    int64 `parquet:"episodes"`
	MinEpisodes int64 `parquet:"min_episodes"`
	MaxEpisodes int64 `parquet:"max_episodes"`
}

func (r MoveRecord) Parquet() MoveRow {
	return MoveRow{
		Game:        int32(r.Game),
		Step:        int32(r.Step),
		Player:      int32(r.Player),
		Row:         int32(r.Row),
		Col:         int32(r.Col),
		Goroutines:  int32(r.Goroutines),
		DurationNs:  int64(r.Duration),
		Episodes:    int64(r.Episodes),
		MinEpisodes: int64(r.MinEpisodes),
		MaxEpisodes: int64(r.MaxEpisodes),
	}
}
