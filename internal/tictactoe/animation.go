package tictactoe

import (
	"time"

	"github.com/vovakirdan/tui-tictactoc/internal/core"
)

// Animation tracks mark-drawing progress for every board cell.
// A cell animates from 0.0 to 1.0 over a fixed duration once started and
// cannot be canceled; replacing the whole Animation is how a round clears it.
type Animation struct {
	duration time.Duration
	started  [BoardSize][BoardSize]time.Time
	progress [BoardSize][BoardSize]float64
}

// NewAnimation returns an animation where every cell is at 0.0.
func NewAnimation(duration time.Duration) Animation {
	return Animation{duration: duration}
}

// Start begins drawing the mark at (row, col). Starting an already running or
// finished cell has no effect.
func (a *Animation) Start(row, col int, now time.Time) {
	if !a.started[row][col].IsZero() {
		return
	}
	a.started[row][col] = now
	if a.duration <= 0 {
		a.progress[row][col] = 1
	}
}

// Advance updates every started cell to its progress at now.
func (a *Animation) Advance(now time.Time) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			start := a.started[row][col]
			if start.IsZero() || a.progress[row][col] >= 1 {
				continue
			}
			p := float64(now.Sub(start)) / float64(a.duration)
			a.progress[row][col] = core.ClampF(p, 0, 1)
		}
	}
}

// Progress returns the linear progress of (row, col) in [0, 1].
func (a *Animation) Progress(row, col int) float64 {
	return a.progress[row][col]
}

// Eased returns the progress of (row, col) with ease-out applied, for drawing.
func (a *Animation) Eased(row, col int) float64 {
	return easeOutQuad(a.progress[row][col])
}

// Active returns true while any started cell has not reached 1.0.
func (a *Animation) Active() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !a.started[row][col].IsZero() && a.progress[row][col] < 1 {
				return true
			}
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
