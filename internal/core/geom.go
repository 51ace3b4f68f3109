// Package core provides fundamental types and utilities shared by the game
// logic and the terminal platform. It has no Bubble Tea dependency so the
// game stays pure and testable.
package core

// Point is a position in viewport coordinates, e.g. where a tap landed.
type Point struct {
	X, Y float64
}

// Size is the extent of a viewport.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Size returns the rectangle extent as a viewport size.
func (r Rect) Size() Size {
	return Size{W: float64(r.W), H: float64(r.H)}
}

// Local converts a screen cell into a point relative to the rectangle origin.
// The point lands in the middle of the cell so a click on the last column of a
// third is not mistaken for the dividing line.
func (r Rect) Local(x, y int) Point {
	return Point{
		X: float64(x-r.X) + 0.5,
		Y: float64(y-r.Y) + 0.5,
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
