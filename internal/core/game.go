package core

// Game is the interface a frontend drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea or ebiten).
// The platform handles input mapping, timing, and presentation.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "invaders").
	// Used for screenshot names and log fields.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Size returns the world dimensions the game draws in.
	Size() (w, h int)

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render issues the draw requests for the current state.
	Render(r Renderer)

	// State returns the current game state (score, game over).
	State() GameState
}
