package tictactoe

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-tictactoc/internal/core"
)

const (
	hudHeight   = 4 // Title, tally, status, gap
	minCellH    = 3
	maxCellH    = 7
	cellAspect  = 2 // Terminal cells are about twice as tall as wide
	strokeSteps = 48
)

// layout is where the board and its cells sit on screen.
type layout struct {
	board core.Rect
	cellW int
	cellH int
}

// computeLayout fits the board under the HUD, centered horizontally.
// The last screen row is left to the platform for the help bar.
func computeLayout(screenW, screenH int) (layout, bool) {
	availH := screenH - hudHeight - 1
	cellH := min((availH-2)/BoardSize, (screenW-2)/BoardSize/cellAspect, maxCellH)
	if cellH < minCellH {
		return layout{}, true
	}
	cellW := cellH * cellAspect
	boardW := BoardSize*cellW + BoardSize - 1
	boardH := BoardSize*cellH + BoardSize - 1
	return layout{
		board: core.NewRect((screenW-boardW)/2, hudHeight, boardW, boardH),
		cellW: cellW,
		cellH: cellH,
	}, false
}

// cell returns the screen rectangle of (row, col), excluding grid lines.
func (l layout) cell(row, col int) core.Rect {
	return core.NewRect(
		l.board.X+col*(l.cellW+1),
		l.board.Y+row*(l.cellH+1),
		l.cellW,
		l.cellH,
	)
}

// Render draws the HUD, grid and animated marks.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderMarks(dst)
	g.renderCursor(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "TicTacToc", core.ColorCyan)

	b := g.layout.board
	xStr := fmt.Sprintf("X %d", g.xWins)
	oStr := fmt.Sprintf("%d O", g.oWins)
	dst.DrawTextColored(b.X, 1, xStr, core.ColorGreen)
	dst.DrawTextColored(b.Right()-len(oStr), 1, oStr, core.ColorRed)
	if g.draws > 0 {
		dst.DrawTextCentered(1, fmt.Sprintf("draws %d", g.draws), core.ColorGray)
	}

	switch {
	case g.hasBanner:
		dst.DrawTextCentered(2, fmt.Sprintf("Player %c has Won!", g.banner.Symbol()), core.ColorBrightYellow)
	case g.round.Drawn():
		dst.DrawTextCentered(2, "Draw!", core.ColorBrightYellow)
	default:
		dst.DrawTextCentered(2, fmt.Sprintf("%c to move", g.round.Current().Symbol()), markColor(g.round.Current().Mark()))
	}
}

func (g *Game) renderGrid(dst *core.Screen) {
	l := g.layout
	b := l.board
	for i := 1; i < BoardSize; i++ {
		x := b.X + i*(l.cellW+1) - 1
		y := b.Y + i*(l.cellH+1) - 1
		dst.DrawVLine(x, b.Y, b.H, '│', core.ColorWhite)
		dst.DrawHLine(b.X, y, b.W, '─', core.ColorWhite)
	}
	for i := 1; i < BoardSize; i++ {
		for j := 1; j < BoardSize; j++ {
			dst.SetColored(b.X+i*(l.cellW+1)-1, b.Y+j*(l.cellH+1)-1, '┼', core.ColorWhite)
		}
	}
}

func (g *Game) renderMarks(dst *core.Screen) {
	board := g.round.Board()
	anim := g.round.Animation()
	line, won := WinningLine(board)

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			mark := board[row][col]
			if mark == Empty {
				continue
			}
			color := markColor(mark)
			if won && g.round.Phase() == PhaseResolving && line.Contains(row, col) {
				color = brightMarkColor(mark)
			}
			cell := g.layout.cell(row, col)
			progress := anim.Eased(row, col)
			switch mark {
			case X:
				drawX(dst, cell, g.cfg.MarkSizeRatio, progress, color)
			case O:
				drawO(dst, cell, g.cfg.MarkSizeRatio, progress, color)
			}
		}
	}
}

func (g *Game) renderCursor(dst *core.Screen) {
	if g.round.Phase() != PhasePlaying {
		return
	}
	c := g.layout.cell(g.cursorRow, g.cursorCol)
	dst.SetColored(c.X, c.Y, '┌', core.ColorYellow)
	dst.SetColored(c.Right()-1, c.Y, '┐', core.ColorYellow)
	dst.SetColored(c.X, c.Bottom()-1, '└', core.ColorYellow)
	dst.SetColored(c.Right()-1, c.Bottom()-1, '┘', core.ColorYellow)
}

// markExtent returns the cell center and the half extents of the mark box.
func markExtent(cell core.Rect, ratio float64) (cx, cy, hw, hh float64) {
	cx = float64(cell.X) + float64(cell.W-1)/2
	cy = float64(cell.Y) + float64(cell.H-1)/2
	hw = float64(cell.W-1) * ratio / 2
	hh = float64(cell.H-1) * ratio / 2
	return cx, cy, hw, hh
}

// drawX draws both strokes of an X, each grown to progress of its length.
func drawX(dst *core.Screen, cell core.Rect, ratio, progress float64, color core.Color) {
	cx, cy, hw, hh := markExtent(cell, ratio)
	n := int(math.Round(strokeSteps * progress))
	for i := 0; i <= n && progress > 0; i++ {
		t := float64(i) / strokeSteps
		// Top-left to bottom-right.
		plot(dst, cx-hw+2*hw*t, cy-hh+2*hh*t, '╲', color)
		// Bottom-left to top-right.
		plot(dst, cx-hw+2*hw*t, cy+hh-2*hh*t, '╱', color)
	}
}

// drawO draws an arc sweeping progress*360 degrees from the 3 o'clock point.
func drawO(dst *core.Screen, cell core.Rect, ratio, progress float64, color core.Color) {
	cx, cy, hw, hh := markExtent(cell, ratio)
	n := int(math.Round(strokeSteps * progress))
	for i := 0; i <= n && progress > 0; i++ {
		theta := 2 * math.Pi * float64(i) / strokeSteps
		plot(dst, cx+hw*math.Cos(theta), cy+hh*math.Sin(theta), 'o', color)
	}
}

func plot(dst *core.Screen, x, y float64, r rune, color core.Color) {
	dst.SetColored(int(math.Round(x)), int(math.Round(y)), r, color)
}

func markColor(m Mark) core.Color {
	if m == X {
		return core.ColorGreen
	}
	return core.ColorRed
}

func brightMarkColor(m Mark) core.Color {
	if m == X {
		return core.ColorBrightGreen
	}
	return core.ColorBrightRed
}
