package tictactoe

import "github.com/vovakirdan/tui-tictactoc/internal/core"

// ResolveCell maps a tap inside a viewport to the board cell under it.
// Each axis is split into thirds; a tap exactly on a dividing line belongs to
// the upper/left cell. Taps outside the viewport are clamped to the nearest
// edge cell, and an axis with no extent resolves to index 0.
func ResolveCell(tap core.Point, viewport core.Size) (row, col int) {
	return axisIndex(tap.Y, viewport.H), axisIndex(tap.X, viewport.W)
}

func axisIndex(coord, extent float64) int {
	if extent <= 0 {
		return 0
	}
	third := extent / BoardSize
	var idx int
	switch {
	case coord <= third:
		idx = 0
	case coord <= third*2:
		idx = 1
	default:
		idx = 2
	}
	return core.Clamp(idx, 0, BoardSize-1)
}
