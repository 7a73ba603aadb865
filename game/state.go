package game

import "strings"

// DiscCount tallies cells by color and is indexed by Color.
type DiscCount [3]int

// Position is a board together with its running disc tally. The tally is
// maintained incrementally by Play and always matches the board.
type Position struct {
	Board Board
	Discs DiscCount
}

func NewPosition(grid [Size][Size]Color) Position {
	board, discs := EncodeBoard(grid)
	return Position{Board: board, Discs: discs}
}

// InitialPosition returns the standard opening: white on the main diagonal of
// the centre square, black on the anti-diagonal.
func InitialPosition() Position {
	var grid [Size][Size]Color
	grid[Size/2-1][Size/2-1] = White
	grid[Size/2][Size/2] = White
	grid[Size/2-1][Size/2] = Black
	grid[Size/2][Size/2-1] = Black
	return NewPosition(grid)
}

// IsTerminal reports whether neither color can move.
func (p *Position) IsTerminal() bool {
	if p.Discs[Empty] == 0 {
		return true
	}
	return p.Board.IsTerminal()
}

// Score returns the disc difference from player's perspective.
func (p *Position) Score(player Color) int {
	return p.Discs[player] - p.Discs[player.Opponent()]
}

// Winner returns the color with more discs, or Empty on a draw.
func (p *Position) Winner() Color {
	switch score := p.Score(Black); {
	case score > 0:
		return Black
	case score < 0:
		return White
	default:
		return Empty
	}
}

func (p Position) String() string {
	var sb strings.Builder
	sb.WriteString("+---------------+\n")
	for i := 0; i < Size; i++ {
		sb.WriteByte('|')
		for j := 0; j < Size; j++ {
			if j != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.Board.Get(i, j).String())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---------------+")
	return sb.String()
}
