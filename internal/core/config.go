package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host
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

// GameState is the coarse state a platform needs to drive a game.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the session
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Steps int // Fixed simulation steps executed during the frame
}

// BestStore persists the single best score of a game.
// Implementations must tolerate being called from the simulation goroutine.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// RunSummary describes a finished run for the run history.
type RunSummary struct {
	Score   int
	Cleared int    // obstacles passed
	Ticks   uint64 // fixed steps simulated
	Cause   string // why the run ended
	Seed    int64
}
