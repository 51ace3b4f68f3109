package tictactoe

import "testing"

func TestEmptyBoard(t *testing.T) {
	b := EmptyBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.At(row, col) != Empty {
				t.Errorf("EmptyBoard().At(%d, %d) = %v, want Empty", row, col, b.At(row, col))
			}
		}
	}
	if b.IsFull() {
		t.Error("EmptyBoard().IsFull() = true, want false")
	}
}

func TestPlaceCopiesBoard(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			orig := Board{
				{X, Empty, Empty},
				{Empty, O, Empty},
				{Empty, Empty, Empty},
			}
			if orig[row][col] != Empty {
				continue
			}
			before := orig

			got := Place(orig, row, col, O)

			if orig != before {
				t.Fatalf("Place(%d, %d) modified its input:\n%v", row, col, orig)
			}
			for r := 0; r < BoardSize; r++ {
				for c := 0; c < BoardSize; c++ {
					want := orig[r][c]
					if r == row && c == col {
						want = O
					}
					if got[r][c] != want {
						t.Errorf("Place(%d, %d): cell (%d, %d) = %v, want %v", row, col, r, c, got[r][c], want)
					}
				}
			}
		}
	}
}

func TestBoardIsFull(t *testing.T) {
	b := Board{
		{X, O, X},
		{X, O, O},
		{O, X, X},
	}
	if !b.IsFull() {
		t.Error("IsFull() = false for a full board")
	}

	b[1][1] = Empty
	if b.IsFull() {
		t.Error("IsFull() = true with an empty cell")
	}
}

func TestBoardString(t *testing.T) {
	b := Board{
		{X, Empty, O},
		{Empty, X, Empty},
		{O, Empty, Empty},
	}
	want := "X.O\n.X.\nO.."
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPlayerOther(t *testing.T) {
	if PlayerX.Other() != PlayerO {
		t.Error("PlayerX.Other() should be PlayerO")
	}
	if PlayerO.Other() != PlayerX {
		t.Error("PlayerO.Other() should be PlayerX")
	}
	if PlayerX.Mark() != X || PlayerO.Mark() != O {
		t.Error("Player.Mark() mismatch")
	}
	if PlayerX.Symbol() != 'X' || PlayerO.Symbol() != 'O' {
		t.Error("Player.Symbol() mismatch")
	}
}
