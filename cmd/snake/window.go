package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the given variant (default: snake).

The window is grid.width*window.cell_size by grid.height*window.cell_size
pixels; the default 32x24 board at 20 px per cell is 640x480.

Controls:
  Arrows/WASD/HJKL  - Steer
  P                 - Pause
  Q/Esc             - Quit

Examples:
  snake window
  snake window snake_walls --fps 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rc, err := window.NewRenderContext(cfg, logger)
	if err != nil {
		return err
	}

	g, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := g.(*snake.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", gameID)
	}

	return window.Run(game, runtimeConfig(cfg, cfg.Window.CellSize), rc)
}
