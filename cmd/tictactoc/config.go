package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoc/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration play would use, after the config file
search and TICTACTOC_* environment overrides are applied.

Config files are searched in order:
  --config <path>
  ~/.tictactoc/config.yaml
  ./configs/tictactoc.yaml
  built-in defaults

Examples:
  tictactoc config > ~/.tictactoc/config.yaml
  TICTACTOC_MARK_SIZE_RATIO=0.5 tictactoc config`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
		cfg.Normalize()
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
