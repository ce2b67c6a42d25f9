package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 32x24 board at 20 ticks
// per second, drawn as a 640x480 window.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		TickRate: 20,
		Terminal: TerminalConfig{
			CellSize: 1,
		},
		Window: WindowConfig{
			Title:    "Snake",
			CellSize: 20,
			Colors: ColorsConfig{
				Background: "#000000",
				Border:     "#5dd8e4",
				Apple:      "#ff0000",
				Snake:      "#00ff00",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
