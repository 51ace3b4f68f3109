package tictactoe

import (
	"time"

	"github.com/vovakirdan/tui-tictactoc/internal/core"
)

// Outcome is how a finished round ended.
type Outcome string

const (
	OutcomeXWins Outcome = "x"
	OutcomeOWins Outcome = "o"
	OutcomeDraw  Outcome = "draw"
)

// Summary describes a finished round once its board has been cleared.
type Summary struct {
	Outcome   Outcome
	Turns     int
	Board     Board
	StartedAt time.Time
	EndedAt   time.Time
}

// Game ties a Round to the win tally, the keyboard cursor and the board
// layout on screen. The platform feeds it taps and frames.
type Game struct {
	cfg   core.RuntimeConfig
	round *Round

	xWins int
	oWins int
	draws int

	// Banner shown from a win until the board clears.
	banner    Player
	hasBanner bool

	cursorRow int
	cursorCol int

	layout   layout
	tooSmall bool

	startedAt time.Time
	pending   *Summary
	finished  []Summary
}

// New creates a game for the given runtime config.
func New(cfg core.RuntimeConfig, now time.Time) *Game {
	g := &Game{cursorRow: 1, cursorCol: 1}
	g.Reset(cfg, now)
	return g
}

// Reset starts over with an empty board and a zero tally.
func (g *Game) Reset(cfg core.RuntimeConfig, now time.Time) {
	if cfg.MarkSizeRatio <= 0 || cfg.MarkSizeRatio > 1 {
		cfg.MarkSizeRatio = core.DefaultConfig().MarkSizeRatio
	}
	g.cfg = cfg
	g.round = NewRound(RoundConfig{
		AnimationTime: cfg.AnimationTime,
		ResetDelay:    cfg.ResetDelay,
		OnPlayerWin:   g.onPlayerWin,
		OnNewRound:    g.onNewRound,
	})
	g.xWins, g.oWins, g.draws = 0, 0, 0
	g.hasBanner = false
	g.startedAt = now
	g.pending = nil
	g.finished = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the board layout without touching the round.
func (g *Game) Resize(width, height int) {
	g.cfg.ScreenW = width
	g.cfg.ScreenH = height
	g.layout, g.tooSmall = computeLayout(width, height)
}

func (g *Game) onPlayerWin(winner Player) {
	if winner == PlayerX {
		g.xWins++
	} else {
		g.oWins++
	}
	g.banner = winner
	g.hasBanner = true
}

func (g *Game) onNewRound() {
	g.hasBanner = false
	if g.pending != nil {
		g.finished = append(g.finished, *g.pending)
		g.pending = nil
	}
}

// TapScreen handles a click on screen cell (x, y). Clicks outside the board
// are not taps.
func (g *Game) TapScreen(x, y int, now time.Time) TapResult {
	if g.tooSmall || !g.layout.board.Contains(x, y) {
		return TapIgnored
	}
	res := g.round.TapAt(g.layout.board.Local(x, y), g.layout.board.Size(), now)
	if res != TapIgnored && res != TapOccupied {
		g.cursorRow, g.cursorCol = ResolveCell(g.layout.board.Local(x, y), g.layout.board.Size())
	}
	g.afterTap(res, now)
	return res
}

// TapCursor taps the center of the cell under the keyboard cursor.
func (g *Game) TapCursor(now time.Time) TapResult {
	if g.tooSmall {
		return TapIgnored
	}
	cell := g.layout.cell(g.cursorRow, g.cursorCol)
	cx, cy := cell.Center()
	res := g.round.TapAt(g.layout.board.Local(cx, cy), g.layout.board.Size(), now)
	g.afterTap(res, now)
	return res
}

func (g *Game) afterTap(res TapResult, now time.Time) {
	if res != TapWon && res != TapDrawn {
		return
	}
	outcome := OutcomeDraw
	if w, ok := g.round.Winner(); ok {
		outcome = OutcomeXWins
		if w == PlayerO {
			outcome = OutcomeOWins
		}
	} else {
		g.draws++
	}
	g.pending = &Summary{
		Outcome:   outcome,
		Turns:     g.round.Turns(),
		Board:     g.round.Board(),
		StartedAt: g.startedAt,
		EndedAt:   now,
	}
}

// MoveCursor moves the keyboard cursor, staying on the board.
func (g *Game) MoveCursor(dRow, dCol int) {
	g.cursorRow = core.Clamp(g.cursorRow+dRow, 0, BoardSize-1)
	g.cursorCol = core.Clamp(g.cursorCol+dCol, 0, BoardSize-1)
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// Step advances animations and the pending reset to now.
func (g *Game) Step(now time.Time) core.StepResult {
	newRound := g.round.Advance(now)
	if newRound {
		g.startedAt = now
	}
	return core.StepResult{State: g.State(), NewRound: newRound}
}

// TakeFinished returns the rounds cleared since the last call.
func (g *Game) TakeFinished() []Summary {
	out := g.finished
	g.finished = nil
	return out
}

// State returns the running tally.
func (g *Game) State() core.GameState {
	return core.GameState{
		XWins:     g.xWins,
		OWins:     g.oWins,
		Draws:     g.draws,
		Resolving: g.round.Phase() == PhaseResolving,
	}
}

// Round exposes the underlying round for inspection.
func (g *Game) Round() *Round {
	return g.round
}

// BoardRect returns where the board is drawn on screen.
func (g *Game) BoardRect() core.Rect {
	return g.layout.board
}
