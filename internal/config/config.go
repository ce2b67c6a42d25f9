// Package config provides YAML-based configuration loading for the snake
// game, with .env and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Limits accepted by Validate.
const (
	MinTickRate         = 1
	MaxTickRate         = 240
	MaxTerminalCellSize = 4
)

// Config contains all configuration for the snake game and its shells.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	TickRate int            `yaml:"tick_rate"` // Ticks per second
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`
}

// GridConfig is the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TerminalConfig configures the Bubble Tea and SSH shells.
type TerminalConfig struct {
	CellSize int `yaml:"cell_size"` // Characters per cell side
}

// WindowConfig configures the desktop window shell.
type WindowConfig struct {
	Title    string       `yaml:"title"`
	CellSize int          `yaml:"cell_size"` // Pixels per cell side
	Colors   ColorsConfig `yaml:"colors"`
}

// ColorsConfig holds hex colours for the window shell.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Apple      string `yaml:"apple"`
	Snake      string `yaml:"snake"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Palette is the parsed form of ColorsConfig.
type Palette struct {
	Background color.RGBA
	Border     color.RGBA
	Apple      color.RGBA
	Snake      color.RGBA
}

// Validate checks every field and returns all problems joined together.
func (c Config) Validate() error {
	var errs []error

	if _, err := snake.NewGrid(c.Terminal.CellSize, c.Grid.Width, c.Grid.Height); err != nil {
		errs = append(errs, fmt.Errorf("grid: %w", err))
	}
	if c.Terminal.CellSize > MaxTerminalCellSize {
		errs = append(errs, fmt.Errorf("terminal.cell_size %d out of range 1..%d", c.Terminal.CellSize, MaxTerminalCellSize))
	}
	if c.Window.CellSize <= 0 || c.Window.CellSize > snake.MaxCellSize {
		errs = append(errs, fmt.Errorf("window.cell_size %d out of range 1..%d", c.Window.CellSize, snake.MaxCellSize))
	}
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick_rate %d out of range %d..%d", c.TickRate, MinTickRate, MaxTickRate))
	}
	if _, err := c.Window.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Palette parses the hex colours.
func (c ColorsConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Background, &p.Background},
		{"border", c.Border, &p.Border},
		{"apple", c.Apple, &p.Apple},
		{"snake", c.Snake, &p.Snake},
	}

	for _, f := range fields {
		rgba, err := parseHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("window.colors.%s: %w", f.name, err)
		}
		*f.dst = rgba
	}
	return p, nil
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
