package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen sizes are in terminal characters; grid sizes are in board cells.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay

	GridW    int // Board width in cells
	GridH    int // Board height in cells
	CellSize int // Size of one cell in the shell's drawing units
}

// DefaultConfig returns a RuntimeConfig matching the classic 32x24 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
		GridW:    32,
		GridH:    24,
		CellSize: 1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event names something notable that happened during a tick.
type Event string

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event

	// Err is set when the tick ended the game for good. Shells stop on it.
	Err error
}
