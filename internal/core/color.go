package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI codes in the terminal renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorCyan
	ColorGray
)
