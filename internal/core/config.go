package core

// RuntimeConfig contains the frontend-provided values a game needs at reset.
type RuntimeConfig struct {
	ScreenW  int   // Frontend surface width (cells for terminal, pixels for window)
	ScreenH  int   // Frontend surface height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the frontend-facing summary of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // True in any terminal state (lost or won)
	Won      bool // True only when the game ended in a win
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // Input asked to leave; the tick that carried it has completed
}
