package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second driving animations (default 60)

	MarkSizeRatio float64       // Drawn mark size relative to the cell
	AnimationTime time.Duration // Time to draw one mark
	ResetDelay    time.Duration // Time between a round ending and the board clearing
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      60,
		MarkSizeRatio: 0.75,
		AnimationTime: 500 * time.Millisecond,
		ResetDelay:    3 * time.Second,
	}
}

// GameState is the running tally reported to the platform after each step.
type GameState struct {
	XWins     int  // Rounds won by X
	OWins     int  // Rounds won by O
	Draws     int  // Rounds that filled the board without a line
	Resolving bool // Whether the board is waiting to be cleared
}

// StepResult is returned by the game after each frame.
type StepResult struct {
	State    GameState
	NewRound bool // A finished round was cleared during this step
}
