package experiments

import (
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"othello/searcher/agent"
	"othello/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
	"lukechampine.com/frand"
)

// Summary aggregates the games of one agent against the sequential baseline.
type Summary struct {
	Agent        metrics.AgentConfig
	Games        int
	Wins         int // Games won by Agent
	Draws        int
	WinRate      float64 // Draws count as half a win
	MeanEpisodes float64 // Per search of Agent
	StdEpisodes  float64
}

type matchUp struct {
	baseline metrics.AgentConfig
	agent    metrics.AgentConfig
}

// RunParallelizationExperiment pits every goroutine count of config against a
// sequential agent with the same search budget and stores the records under
// config.OutDir.
func RunParallelizationExperiment(config meta.Experiment) ([]Summary, error) {
	baseline := metrics.AgentConfig{
		ID:          0,
		Goroutines:  1,
		Duration:    config.Duration,
		Episodes:    config.Episodes,
		Temperature: config.Temperature,
	}
	configs := []metrics.AgentConfig{baseline}
	var matchUps []matchUp
	for i, goroutines := range config.Goroutines {
		agentConfig := baseline
		agentConfig.ID = i + 1
		agentConfig.Goroutines = goroutines
		configs = append(configs, agentConfig)
		matchUps = append(matchUps, matchUp{baseline: baseline, agent: agentConfig})
	}

	log.Info().Msgf("starting parallelization experiment with %d match ups of %d games...", len(matchUps), config.Games)

	count := 0
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	summaries := make([]Summary, 0, len(matchUps))

	for mi, m := range matchUps {
		log.Info().Msgf("starting match up %d of %d between baseline=%+v and agent=%+v...", mi+1, len(matchUps), m.baseline, m.agent)

		summary := Summary{Agent: m.agent, Games: config.Games}
		var episodes []float64
		for i := 0; i < config.Games; i++ {
			count++
			// Coin flip for the side of the baseline
			black, white := m.baseline, m.agent
			if frand.Intn(2) == 1 {
				black, white = white, black
			}

			winner, gameMetric, moveMetrics := runGame(black, white, frand.Uint64n(1<<32))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})

			agentColor := game.Black
			if white.ID == m.agent.ID {
				agentColor = game.White
			}
			switch winner {
			case agentColor:
				summary.Wins++
			case game.Empty:
				summary.Draws++
			}

			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
				if mm.Player == int(agentColor) {
					episodes = append(episodes, float64(mm.Episodes))
				}
			}

			log.Info().Msgf("completed match up %d game %d of %d with winner: %v", mi+1, i+1, config.Games, winner)
		}

		if summary.Games > 0 {
			summary.WinRate = (float64(summary.Wins) + 0.5*float64(summary.Draws)) / float64(summary.Games)
		}
		if len(episodes) > 0 {
			summary.MeanEpisodes, summary.StdEpisodes = stat.MeanStdDev(episodes, nil)
		}
		summaries = append(summaries, summary)

		log.Info().Msgf("completed match up %d of %d: win rate %.2f, %.0f±%.0f episodes per search",
			mi+1, len(matchUps), summary.WinRate, summary.MeanEpisodes, summary.StdEpisodes)
	}

	totalMoves := utils.Sum(gameRecords, func(r metrics.GameRecord) int { return r.TotalMoves })
	log.Info().Msgf("completed parallelization experiment: %d games, %d moves", len(gameRecords), totalMoves)

	writer, err := metrics.NewWriter(config.OutDir, "parallelization")
	if err != nil {
		return summaries, errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAll(configs, gameRecords, moveRecords); err != nil {
		return summaries, errors.Wrap(err, "failed to store experiment records")
	}
	log.Info().Msgf("stored experiment records in %s", writer.Dir())

	return summaries, nil
}

// runGame plays one game from the initial position, black to move.
func runGame(black, white metrics.AgentConfig, seed uint64) (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		createAgent(black, seed),
		createAgent(white, seed+uint64(black.Goroutines)),
	}
	e := engine.NewLocalEngine(agents, game.InitialPosition(), game.Black)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	mcts := createMCTS(config, seed)
	if config.Temperature > 0 {
		return agent.NewTrainingAgent(mcts, config.Temperature, seed)
	}
	return agent.NewEvaluationAgent(mcts)
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	return searcher.NewMCTS(
		config.Goroutines,
		searcher.WithDuration(config.Duration),
		searcher.WithEpisodes(config.Episodes),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	)
}
