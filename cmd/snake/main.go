// snake is a grid snake game for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play in the terminal
//	snake window [variant]   - Play in a desktop window
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--fps <rate>       - Override the tick rate
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

const defaultVariant = "snake"

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat apples, grow, don't bite yourself",
	Long: `Snake is the classic grid game. The snake grows by eating apples and
starts over when it runs into itself.

Variants:
  snake           - edges wrap around
  snake_walls     - hitting an edge starts over
  snake_hardcore  - hitting an edge ends the game

Examples:
  snake play
  snake play snake_walls --seed 42
  snake window --fps 10
  snake serve --ssh :2222
  snake config > ~/.snake/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration, applies command-line overrides and
// validates the result.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to the configured file if
// set, otherwise to fallback. The returned close function is never nil.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closeFn := func() error { return nil }
	if cfg.Log.File != "" {
		f, openErr := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig converts the loaded configuration into game settings.
// cellSize is the shell's drawing units per cell.
func runtimeConfig(cfg config.Config, cellSize int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = cfg.TickRate
	rc.Seed = flagSeed
	rc.GridW = cfg.Grid.Width
	rc.GridH = cfg.Grid.Height
	rc.CellSize = cellSize
	return rc
}

// variantArg returns the requested variant, checking it is registered.
func variantArg(args []string) (string, error) {
	id := defaultVariant
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", id)
	}
	return id, nil
}
