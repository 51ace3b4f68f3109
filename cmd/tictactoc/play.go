package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoc/internal/config"
	"github.com/vovakirdan/tui-tictactoc/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoc/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a two-player game on this terminal.

Controls:
  Click        - Place a mark in the clicked cell
  Arrows/HJKL  - Move the keyboard cursor
  Enter/Space  - Place a mark under the cursor
  Tab          - Show the rounds played this session
  Q/Ctrl+C     - Quit

Examples:
  tictactoc play
  tictactoc play --config ./my-tictactoc.yaml
  TICTACTOC_RESET_DELAY_MS=1500 tictactoc play`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
		cfg.Normalize()
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size before the first resize message arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Round history lives in memory for this session only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("round history disabled", "err", err)
		store = nil
	}

	runErr := tui.Run(cfg.Runtime(width, height), store, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger returns a logger writing to path, or discarding everything when
// path is empty. Stderr is never used while the alt screen is active.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoc",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
