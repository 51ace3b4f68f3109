package tictactoe

import "testing"

func TestIsWinnerEveryLine(t *testing.T) {
	for _, mark := range []Mark{X, O} {
		for i, ln := range lines {
			var b Board
			for _, c := range ln {
				b[c[0]][c[1]] = mark
			}
			if !IsWinner(b) {
				t.Errorf("IsWinner() = false for %v on line %d:\n%v", mark, i, b)
			}
			got, ok := Winner(b)
			if !ok || got != mark {
				t.Errorf("Winner() = %v, %v, want %v, true", got, ok, mark)
			}
		}
	}
}

func TestIsWinnerNoLine(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{"empty board", EmptyBoard()},
		{
			name: "mixed line",
			board: Board{
				{X, X, O},
				{Empty, Empty, Empty},
				{Empty, Empty, Empty},
			},
		},
		{
			name: "full board without line",
			board: Board{
				{X, O, X},
				{X, O, O},
				{O, X, X},
			},
		},
		{
			name: "two in a row",
			board: Board{
				{X, X, Empty},
				{O, O, Empty},
				{Empty, Empty, Empty},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if IsWinner(tc.board) {
				t.Errorf("IsWinner() = true, want false:\n%v", tc.board)
			}
			if _, ok := Winner(tc.board); ok {
				t.Error("Winner() reported a winner")
			}
		})
	}
}

func TestWinningLineOrder(t *testing.T) {
	// Column 0 and row 0 both complete; columns are checked first.
	b := Board{
		{X, X, X},
		{X, O, O},
		{X, O, O},
	}
	ln, ok := WinningLine(b)
	if !ok {
		t.Fatal("WinningLine() found nothing")
	}
	if ln != lines[0] {
		t.Errorf("WinningLine() = %v, want first column %v", ln, lines[0])
	}
	if !ln.Contains(2, 0) || ln.Contains(0, 1) {
		t.Error("Line.Contains() mismatch")
	}
}
