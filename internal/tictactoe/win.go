package tictactoe

// Line is three cells checked for a win, as (row, col) pairs.
type Line [3][2]int

// lines lists columns, then rows, then the two diagonals.
var lines = [8]Line{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// WinningLine returns the first line holding three equal non-Empty marks.
func WinningLine(b Board) (Line, bool) {
	for _, ln := range lines {
		a := b[ln[0][0]][ln[0][1]]
		if a == Empty {
			continue
		}
		if a == b[ln[1][0]][ln[1][1]] && a == b[ln[2][0]][ln[2][1]] {
			return ln, true
		}
	}
	return Line{}, false
}

// IsWinner returns true if any line is completed.
func IsWinner(b Board) bool {
	_, ok := WinningLine(b)
	return ok
}

// Winner returns the mark owning the first completed line.
func Winner(b Board) (Mark, bool) {
	ln, ok := WinningLine(b)
	if !ok {
		return Empty, false
	}
	return b[ln[0][0]][ln[0][1]], true
}

// Contains returns true if (row, col) is one of the line's cells.
func (ln Line) Contains(row, col int) bool {
	for _, c := range ln {
		if c[0] == row && c[1] == col {
			return true
		}
	}
	return false
}
