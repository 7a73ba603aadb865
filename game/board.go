package game

// Board packs the 64 cells into two words of 32 two-bit fields. Rows 0-3 live in
// the first word and rows 4-7 in the second, row-major inside each word.
type Board [2]uint64

func offset(row, col int) uint {
	return uint((((row & 3) << 3) + col) << 1)
}

// Get returns the color of the cell at (row, col).
func (b *Board) Get(row, col int) Color {
	return Color((b[row>>2] >> offset(row, col)) & 3)
}

// Set overwrites the cell at (row, col).
func (b *Board) Set(row, col int, c Color) {
	shift := offset(row, col)
	b[row>>2] &^= 3 << shift
	b[row>>2] |= uint64(c) << shift
}

// Toggle turns a disc over. The cell must not be empty.
func (b *Board) Toggle(row, col int) {
	b[row>>2] ^= 3 << offset(row, col)
}

// EncodeBoard packs a grid and tallies its cells.
func EncodeBoard(grid [Size][Size]Color) (Board, DiscCount) {
	var b Board
	var discs DiscCount
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			discs[grid[i][j]]++
			b[i>>2] |= uint64(grid[i][j]) << offset(i, j)
		}
	}
	return b, discs
}

// Grid unpacks the board into a row-major grid.
func (b *Board) Grid() [Size][Size]Color {
	var grid [Size][Size]Color
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			grid[i][j] = b.Get(i, j)
		}
	}
	return grid
}

// Count tallies the cells of the board from scratch.
func (b *Board) Count() DiscCount {
	var discs DiscCount
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			discs[b.Get(i, j)]++
		}
	}
	return discs
}
