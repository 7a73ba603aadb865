package searcher

import "othello/game"

// MoveStat holds the merged statistics of one candidate move.
type MoveStat struct {
	Move     game.Move
	Wins     int
	Playouts int
}

func (s MoveStat) WinRate() float64 {
	return winRate(s.Wins, s.Playouts)
}

// Result is the outcome of a search: the chosen move and the merged
// statistics of every candidate, in generation order.
type Result struct {
	Move  game.Move
	Stats []MoveStat
	root  *node
}
