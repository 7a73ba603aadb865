package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"
	"othello/utils"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	Position game.Position
	Player   game.Color // Player to move
	Agents   [2]agent.Agent
	MaxTurns int
}

// NewLocalEngine sets up a game from position with player to move. agents[0]
// plays black and agents[1] plays white.
func NewLocalEngine(agents []agent.Agent, position game.Position, player game.Color) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if !player.IsValid() {
		panic("starting player must be black or white")
	}

	return &LocalEngine{
		Position: position,
		Player:   player,
		Agents:   [2]agent.Agent{agents[0], agents[1]},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until neither player can move.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Player),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %v is starting", e.Player)

	for turn := 1; turn <= e.MaxTurns && !e.Position.IsTerminal(); turn++ {
		moves := e.Position.LegalMoves(e.Player)
		if len(moves) == 0 {
			log.Debug().Msgf("turn %d: player %v passes", turn, e.Player)
			gameMetric.Passes++
			e.Player = e.Player.Opponent()
			continue
		}

		move, searchMetric := e.Agents[e.Player-1].FindMove(e.Position, e.Player)
		if utils.FindIndex(moves, move) < 0 {
			log.Warn().Msgf("turn %d: player %v chose illegal move %v, playing %v instead", turn, e.Player, move, moves[0])
			move = moves[0]
		}

		e.Position.Play(e.Player, move)
		gameMetric.TotalMoves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(e.Player),
			Row:          move.Row,
			Col:          move.Col,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: player %v plays %v\n%v", turn, e.Player, move, e.Position)

		e.Player = e.Player.Opponent()
	}

	if !e.Position.IsTerminal() {
		log.Warn().Msgf("stopped after %d turns without finishing the game", e.MaxTurns)
	}

	winner := e.Position.Winner()
	gameMetric.Winner = int(winner)
	gameMetric.BlackDiscs = e.Position.Discs[game.Black]
	gameMetric.WhiteDiscs = e.Position.Discs[game.White]
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("game over after %d moves: black %d, white %d", gameMetric.TotalMoves, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
	return winner, gameMetric, moveMetrics
}
