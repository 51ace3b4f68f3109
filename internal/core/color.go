package core

// Color is the foreground of a screen cell. The platform maps each value to a
// terminal style.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed                // O marks and O's counter
	ColorGreen              // X marks and X's counter
	ColorYellow             // Keyboard cursor
	ColorCyan               // Title
	ColorWhite              // Grid lines
	ColorBrightRed          // O marks on the winning line
	ColorBrightGreen        // X marks on the winning line
	ColorBrightYellow       // Win and draw banners
	ColorGray               // Secondary HUD text
)
