package game

// Size is the side length of the board.
const Size = 8

// Cells is the number of cells on the board.
const Cells = Size * Size

// Color is the value held by a board cell: Empty or one of the two disc colors.
type Color uint8

const (
	Empty Color = 0
	Black Color = 1
	White Color = 2
)

// Opponent returns the other disc color. It must not be called on Empty.
func (c Color) Opponent() Color {
	return 3 - c
}

func (c Color) IsValid() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	switch c {
	case Black:
		return "O"
	case White:
		return "X"
	default:
		return "."
	}
}
