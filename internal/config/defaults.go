package config

import (
	_ "embed"
)

//go:embed defaults/tictactoc.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			MarkSizeRatio: 0.75,
			TickRate:      60,
		},
		Timing: TimingConfig{
			AnimationMS:  500,
			ResetDelayMS: 3000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
