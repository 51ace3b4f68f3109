// Package config provides YAML-based configuration loading for the game,
// with environment variable overrides.
package config

import (
	"time"

	"github.com/vovakirdan/tui-tictactoc/internal/core"
)

// Config contains all tunable settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
}

// DisplayConfig defines cosmetic settings passed through to rendering.
type DisplayConfig struct {
	MarkSizeRatio float64 `yaml:"mark_size_ratio" env:"TICTACTOC_MARK_SIZE_RATIO"`
	TickRate      int     `yaml:"tick_rate" env:"TICTACTOC_TICK_RATE"`
}

// TimingConfig defines round timings in milliseconds.
type TimingConfig struct {
	AnimationMS  int `yaml:"animation_ms" env:"TICTACTOC_ANIMATION_MS"`
	ResetDelayMS int `yaml:"reset_delay_ms" env:"TICTACTOC_RESET_DELAY_MS"`
}

// Normalize replaces out-of-range values with defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Display.MarkSizeRatio <= 0 || c.Display.MarkSizeRatio > 1 {
		c.Display.MarkSizeRatio = def.Display.MarkSizeRatio
	}
	if c.Display.TickRate <= 0 || c.Display.TickRate > 240 {
		c.Display.TickRate = def.Display.TickRate
	}
	if c.Timing.AnimationMS <= 0 {
		c.Timing.AnimationMS = def.Timing.AnimationMS
	}
	if c.Timing.ResetDelayMS <= 0 {
		c.Timing.ResetDelayMS = def.Timing.ResetDelayMS
	}
}

// Runtime builds the runtime config for a screen of the given size.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:       screenW,
		ScreenH:       screenH,
		TickRate:      c.Display.TickRate,
		MarkSizeRatio: c.Display.MarkSizeRatio,
		AnimationTime: time.Duration(c.Timing.AnimationMS) * time.Millisecond,
		ResetDelay:    time.Duration(c.Timing.ResetDelayMS) * time.Millisecond,
	}
}
