package tictactoe

import (
	"time"

	"github.com/vovakirdan/tui-tictactoc/internal/core"
)

// Default timings.
const (
	DefaultAnimationTime = 500 * time.Millisecond
	DefaultResetDelay    = 3 * time.Second
)

// Phase is the state of the round state machine.
type Phase int

const (
	// PhasePlaying accepts taps.
	PhasePlaying Phase = iota
	// PhaseResolving means the round ended and the board clears after the reset delay.
	PhaseResolving
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// TapResult describes what a tap did to the round.
type TapResult int

const (
	TapIgnored  TapResult = iota // Round is resolving or the cell is off the board
	TapOccupied                  // Cell already holds a mark
	TapPlaced                    // Mark placed, turn passes to the other player
	TapWon                       // Mark placed and completed a line
	TapDrawn                     // Mark placed and filled the board without a line
)

func (r TapResult) String() string {
	switch r {
	case TapIgnored:
		return "ignored"
	case TapOccupied:
		return "occupied"
	case TapPlaced:
		return "placed"
	case TapWon:
		return "won"
	case TapDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// RoundConfig configures a Round. Zero durations fall back to the defaults.
type RoundConfig struct {
	AnimationTime time.Duration
	ResetDelay    time.Duration

	// OnPlayerWin is called once per round that ends in a win.
	OnPlayerWin func(winner Player)
	// OnNewRound is called once per finished round, when the board is cleared.
	OnNewRound func()
}

// Round owns the board, the side to move, the turn counter and the per-cell
// animation, and moves between PhasePlaying and PhaseResolving.
//
// Round is not safe for concurrent use. Taps and Advance are expected to come
// from a single loop, so a tap's mutation always completes before the next
// tap or time step is handled.
type Round struct {
	cfg RoundConfig

	board   Board
	anim    Animation
	current Player
	turns   int
	phase   Phase

	winner    Player
	hasWinner bool
	drawn     bool
	resetAt   time.Time
	rounds    int
}

// NewRound creates a round in PhasePlaying with an empty board and X to move.
func NewRound(cfg RoundConfig) *Round {
	if cfg.AnimationTime <= 0 {
		cfg.AnimationTime = DefaultAnimationTime
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = DefaultResetDelay
	}
	r := &Round{cfg: cfg}
	r.clear()
	return r
}

func (r *Round) clear() {
	r.board = EmptyBoard()
	r.anim = NewAnimation(r.cfg.AnimationTime)
	r.current = PlayerX
	r.turns = 0
	r.phase = PhasePlaying
	r.hasWinner = false
	r.drawn = false
	r.resetAt = time.Time{}
}

// Tap places the current player's mark at (row, col).
// All mutation, including the turn counter, is gated on PhasePlaying; taps on
// occupied cells change nothing and do not count as turns.
func (r *Round) Tap(row, col int, now time.Time) TapResult {
	if r.phase != PhasePlaying {
		return TapIgnored
	}
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return TapIgnored
	}
	if r.board[row][col] != Empty {
		return TapOccupied
	}

	mover := r.current
	r.board = Place(r.board, row, col, mover.Mark())
	r.turns++
	r.anim.Start(row, col, now)

	if IsWinner(r.board) {
		r.winner = mover
		r.hasWinner = true
		r.resolve(now)
		if r.cfg.OnPlayerWin != nil {
			r.cfg.OnPlayerWin(mover)
		}
		return TapWon
	}

	if r.turns >= BoardSize*BoardSize {
		r.drawn = true
		r.resolve(now)
		return TapDrawn
	}

	r.current = mover.Other()
	return TapPlaced
}

// TapAt resolves a tap point inside the viewport and taps that cell.
func (r *Round) TapAt(tap core.Point, viewport core.Size, now time.Time) TapResult {
	row, col := ResolveCell(tap, viewport)
	return r.Tap(row, col, now)
}

func (r *Round) resolve(now time.Time) {
	r.phase = PhaseResolving
	r.resetAt = now.Add(r.cfg.ResetDelay)
}

// Advance moves animations forward to now and, once the reset delay of a
// finished round has passed, clears the board and starts a new round.
// It reports whether a new round started.
func (r *Round) Advance(now time.Time) bool {
	r.anim.Advance(now)

	if r.phase != PhaseResolving || now.Before(r.resetAt) {
		return false
	}

	r.clear()
	r.rounds++
	if r.cfg.OnNewRound != nil {
		r.cfg.OnNewRound()
	}
	return true
}

// Board returns a copy of the current board.
func (r *Round) Board() Board {
	return r.board
}

// Current returns the player to move.
func (r *Round) Current() Player {
	return r.current
}

// Turns returns how many marks have been placed this round.
func (r *Round) Turns() int {
	return r.turns
}

// Phase returns the state machine phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Winner returns the winner of the finished round, if any.
func (r *Round) Winner() (Player, bool) {
	return r.winner, r.hasWinner
}

// Drawn returns true if the finished round filled the board without a line.
func (r *Round) Drawn() bool {
	return r.drawn
}

// ResetAt returns when a resolving round clears. Zero while playing.
func (r *Round) ResetAt() time.Time {
	return r.resetAt
}

// Completed returns how many rounds have been cleared so far.
func (r *Round) Completed() int {
	return r.rounds
}

// Animation returns the per-cell drawing progress.
func (r *Round) Animation() *Animation {
	return &r.anim
}
