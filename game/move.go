package game

import "fmt"

// Move is a destination cell. Pass marks a forced non-move.
type Move struct {
	Row int
	Col int
}

var Pass = Move{Row: -1, Col: -1}

func (m Move) IsPass() bool {
	return m == Pass
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

func (m Move) add(d direction) Move {
	return Move{Row: m.Row + d.dr, Col: m.Col + d.dc}
}

func (m Move) sub(d direction) Move {
	return Move{Row: m.Row - d.dr, Col: m.Col - d.dc}
}

func (m Move) inBounds() bool {
	return m.Row&^(Size-1) == 0 && m.Col&^(Size-1) == 0
}

type direction struct {
	dr, dc int
}

// Scan order of the neighbourhood. Move generation order, and therefore child
// order in the search tree, depends on it.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
