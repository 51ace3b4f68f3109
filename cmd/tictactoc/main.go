// tictactoc is a two-player tic-tac-toe game played with the mouse in the terminal.
//
// Usage:
//
//	tictactoc play           - Play on this terminal
//	tictactoc config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--log-file <path>   - Write logs to a file (default: no logs)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoc",
	Short: "TicTacToc - two-player tic-tac-toe in your terminal",
	Long: `TicTacToc is a two-player tic-tac-toe game for one terminal.
Players take turns clicking the board; X always starts. Three in a row
wins the round, and the board clears itself three seconds later.

Available commands:
  play     - Start a game
  config   - Print the effective configuration

Examples:
  tictactoc play
  tictactoc play --fps 30 --log-file /tmp/tictactoc.log
  tictactoc config --config ./my-tictactoc.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
