// Package tictactoe implements a two-player Tic-Tac-Toe round with animated
// mark drawing and a delayed reset between rounds.
package tictactoe

import "strings"

// BoardSize is the board dimension.
const BoardSize = 3

// Mark is the value occupying a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns the display rune of the mark as a string.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Player is the side to move.
type Player uint8

const (
	PlayerX Player = iota
	PlayerO
)

// Other returns the opponent.
func (p Player) Other() Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Mark returns the board mark placed by this player.
func (p Player) Mark() Mark {
	if p == PlayerX {
		return X
	}
	return O
}

// Symbol returns the display symbol of the player.
func (p Player) Symbol() rune {
	if p == PlayerX {
		return 'X'
	}
	return 'O'
}

func (p Player) String() string {
	return string(p.Symbol())
}

// Board is a 3x3 grid of marks stored row-major.
// It is a value type: assigning or passing a Board copies it.
type Board [BoardSize][BoardSize]Mark

// EmptyBoard returns a board with every cell Empty.
func EmptyBoard() Board {
	return Board{}
}

// Place returns a copy of b with mark set at (row, col).
// The caller must check that the cell is Empty; b itself is never modified.
func Place(b Board, row, col int, mark Mark) Board {
	b[row][col] = mark
	return b
}

// At returns the mark at (row, col).
func (b Board) At(row, col int) Mark {
	return b[row][col]
}

// IsFull returns true if no cell is Empty.
func (b Board) IsFull() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// String renders the board as three lines, e.g. "X.O".
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(b[row][col].String())
		}
	}
	return sb.String()
}
