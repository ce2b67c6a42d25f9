package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
file, .env file, SNAKE_* environment variables and command-line flags are
applied.

Environment overrides:
  SNAKE_GRID_WIDTH, SNAKE_GRID_HEIGHT, SNAKE_TICK_RATE,
  SNAKE_WINDOW_CELL_SIZE, SNAKE_LOG_LEVEL

Examples:
  snake config
  snake config --defaults > ~/.snake/config.yaml
  SNAKE_GRID_WIDTH=40 snake config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the commented built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
