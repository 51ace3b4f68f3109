package core

import "testing"

// boardRect is where an 80x24 terminal draws the board.
var boardRect = NewRect(24, 4, 32, 17)

func TestRectContains(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left cell", 24, 4, true},
		{"centre", 40, 12, true},
		{"last column", 55, 12, true},
		{"last row", 40, 20, true},
		{"right edge is exclusive", 56, 12, false},
		{"bottom edge is exclusive", 40, 21, false},
		{"left of board", 23, 12, false},
		{"HUD row", 40, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := boardRect.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectGeometry(t *testing.T) {
	if got := boardRect.Right(); got != 56 {
		t.Errorf("Right() = %d, want 56", got)
	}
	if got := boardRect.Bottom(); got != 21 {
		t.Errorf("Bottom() = %d, want 21", got)
	}
	if cx, cy := boardRect.Center(); cx != 40 || cy != 12 {
		t.Errorf("Center() = (%d, %d), want (40, 12)", cx, cy)
	}
	if got := boardRect.Size(); got != (Size{W: 32, H: 17}) {
		t.Errorf("Size() = %+v, want {32 17}", got)
	}
}

func TestRectLocal(t *testing.T) {
	tests := []struct {
		x, y int
		want Point
	}{
		{24, 4, Point{X: 0.5, Y: 0.5}},
		{34, 9, Point{X: 10.5, Y: 5.5}},
		{55, 20, Point{X: 31.5, Y: 16.5}},
	}

	for _, tc := range tests {
		if got := boardRect.Local(tc.x, tc.y); got != tc.want {
			t.Errorf("Local(%d, %d) = %+v, want %+v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{1, 0, 2, 1},
		{-1, 0, 2, 0},
		{3, 0, 2, 2},
		{2, 0, 2, 2},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, want float64
	}{
		{0.5, 0.5},
		{-0.25, 0},
		{1.25, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, 0, 1); got != tc.want {
			t.Errorf("ClampF(%v, 0, 1) = %v, want %v", tc.val, got, tc.want)
		}
	}
}
