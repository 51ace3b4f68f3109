package tictactoe

import "time"

// Snapshot captures the complete round state for tests and debugging.
type Snapshot struct {
	Board    Board
	Current  Player
	Turns    int
	Phase    Phase
	Winner   string // "X", "O" or "" while playing or after a draw
	Drawn    bool
	ResetAt  time.Time
	Progress [BoardSize][BoardSize]float64
	XWins    int
	OWins    int
	Draws    int
	Rounds   int // Rounds cleared so far
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.round
	s := Snapshot{
		Board:   r.Board(),
		Current: r.Current(),
		Turns:   r.Turns(),
		Phase:   r.Phase(),
		Drawn:   r.Drawn(),
		ResetAt: r.ResetAt(),
		XWins:   g.xWins,
		OWins:   g.oWins,
		Draws:   g.draws,
		Rounds:  r.Completed(),
	}
	if w, ok := r.Winner(); ok {
		s.Winner = w.String()
	}
	anim := r.Animation()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			s.Progress[row][col] = anim.Progress(row, col)
		}
	}
	return s
}
