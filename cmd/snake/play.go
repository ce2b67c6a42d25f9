package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the given variant (default: snake) in the terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  P                 - Pause
  Ctrl+S            - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C          - Quit

The terminal must fit the board plus two status lines and the key help.
The game pauses while it does not.

Examples:
  snake play
  snake play snake_hardcore
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := runtimeConfig(cfg, cfg.Terminal.CellSize)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting game", "game", gameID, "tick_rate", rc.TickRate)
	return tui.Run(game, rc, logger)
}
