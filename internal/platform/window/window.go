// Package window runs a snake game in a desktop window using Ebitengine.
// Each board cell is drawn as a filled square with a thin border.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// RenderContext is everything the window needs to draw a frame.
// It is built once at start-up and passed to the shell.
type RenderContext struct {
	Title    string
	Palette  config.Palette
	TickRate int
	Logger   *log.Logger
}

// NewRenderContext builds a render context from the loaded configuration.
func NewRenderContext(cfg config.Config, logger *log.Logger) (RenderContext, error) {
	palette, err := cfg.Window.Colors.Palette()
	if err != nil {
		return RenderContext{}, fmt.Errorf("window: %w", err)
	}
	return RenderContext{
		Title:    cfg.Window.Title,
		Palette:  palette,
		TickRate: cfg.TickRate,
		Logger:   logger,
	}, nil
}

// keyBinding maps a physical key to a game action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// keyBindings lists the movement and pause keys in polling order.
var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyK, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyJ, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyH, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyL, core.ActionRight},
	{ebiten.KeyP, core.ActionPause},
}

// quitKeys close the window.
var quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}

// Shell implements ebiten.Game around a snake.Game. One Update is one
// game tick; the tick rate is set with ebiten.SetTPS.
type Shell struct {
	rc    RenderContext
	game  *snake.Game
	input core.InputFrame
	err   error

	// justPressed reports key presses; inpututil.IsKeyJustPressed outside tests.
	justPressed func(ebiten.Key) bool
}

var _ ebiten.Game = (*Shell)(nil)

// NewShell resets game with cfg and wraps it for Ebitengine.
// cfg.CellSize is the cell side in pixels.
func NewShell(game *snake.Game, cfg core.RuntimeConfig, rc RenderContext) *Shell {
	game.Reset(cfg)
	// The window always fits the board, so the game never pauses itself.
	game.Resize(game.Grid().PixelWidth()+2, game.Grid().PixelHeight()+4)

	return &Shell{
		rc:          rc,
		game:        game,
		input:       core.NewInputFrame(),
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update polls the keyboard and advances the game by one tick.
func (s *Shell) Update() error {
	for _, k := range quitKeys {
		if s.justPressed(k) {
			return ebiten.Termination
		}
	}
	for _, b := range keyBindings {
		if s.justPressed(b.key) {
			s.input.Set(b.action)
		}
	}

	res := s.game.Step(s.input)
	s.input.Clear()

	for _, e := range res.Events {
		s.rc.Logger.Debug("tick event", "game", s.game.ID(), "event", e, "score", res.State.Score)
	}

	if res.Err != nil {
		s.err = res.Err
		s.rc.Logger.Error("game over", "game", s.game.ID(), "error", res.Err)
		return ebiten.Termination
	}
	return nil
}

// Draw paints the background, the drawables in order, then the status line.
func (s *Shell) Draw(screen *ebiten.Image) {
	screen.Fill(s.rc.Palette.Background)

	canvas := imageCanvas{dst: screen, grid: s.game.Grid(), palette: s.rc.Palette}
	for _, d := range s.game.Drawables() {
		d.Draw(canvas)
	}

	ebitenutil.DebugPrint(screen, s.statusLine())
}

func (s *Shell) statusLine() string {
	r := s.game.Round()
	if r == nil {
		return ""
	}
	line := fmt.Sprintf("%s  length %d  best %d  resets %d",
		s.game.Title(), r.Snake().Length(), r.BestLength(), r.Resets())
	if s.game.State().Paused {
		line += "  [paused]"
	}
	return line
}

// Layout fixes the logical screen to the board's pixel size.
func (s *Shell) Layout(_, _ int) (int, int) {
	g := s.game.Grid()
	return g.PixelWidth(), g.PixelHeight()
}

// Err returns the error that ended the game, if any.
func (s *Shell) Err() error {
	return s.err
}

// Run opens the window and blocks until it is closed or the game ends.
func Run(game *snake.Game, cfg core.RuntimeConfig, rc RenderContext) error {
	shell := NewShell(game, cfg, rc)
	if err := game.Err(); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	g := game.Grid()
	ebiten.SetWindowSize(g.PixelWidth(), g.PixelHeight())
	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetTPS(rc.TickRate)

	rc.Logger.Info("window opened",
		"game", game.ID(),
		"size", fmt.Sprintf("%dx%d", g.PixelWidth(), g.PixelHeight()),
		"tps", rc.TickRate,
	)

	if err := ebiten.RunGame(shell); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return shell.Err()
}

// imageCanvas paints board cells as pixel squares.
type imageCanvas struct {
	dst     *ebiten.Image
	grid    snake.Grid
	palette config.Palette
}

// cellStyle returns the fill colour for p and whether the cell gets a border.
func cellStyle(p snake.Paint, palette config.Palette) (fill color.RGBA, bordered bool) {
	switch p {
	case snake.PaintSnakeHead, snake.PaintSnakeBody:
		return palette.Snake, true
	case snake.PaintApple:
		return palette.Apple, true
	default:
		return palette.Background, false
	}
}

func (c imageCanvas) PaintCell(cell snake.Cell, p snake.Paint) {
	r := c.grid.CellToPixel(cell)
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)

	fill, bordered := cellStyle(p, c.palette)
	vector.DrawFilledRect(c.dst, x, y, w, h, fill, false)
	if bordered {
		vector.StrokeRect(c.dst, x+0.5, y+0.5, w-1, h-1, 1, c.palette.Border, false)
	}
}
