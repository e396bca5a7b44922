// Package core provides the fundamental types shared by the game logic and
// the terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	Score    int  // Score of the current game
	Best     int  // Highest final score across games this session
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the surface the platform drives. The implementation contains pure
// logic; the platform handles input mapping, timing, and terminal display.
type Game interface {
	// Reset initializes or restarts the game with the given runtime config.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer,
	// clearing it first.
	Render(dst *Screen)

	// State returns the current game state (score, game over, paused).
	State() GameState
}
