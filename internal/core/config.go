package core

import "time"

// RuntimeConfig contains what the platform hands to the simulation at start.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters (terminal adapter)
	ScreenH      int           // Screen height in characters (terminal adapter)
	TickInterval time.Duration // Fixed simulation period
	Seed         int64         // RNG seed, 0 means time based in the platform layer
}

// DefaultConfig returns a RuntimeConfig with the original game's cadence.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 30 * time.Millisecond,
		Seed:         0,
	}
}

// GameState is the externally visible state of a running simulation.
type GameState struct {
	Tick     uint64 // Number of ticks advanced so far
	GameOver bool   // One-way terminal flag
}

// StepResult is returned by every simulation tick.
type StepResult struct {
	State GameState

	// Collisions lists the indices of obstacles that overlapped the
	// player during this tick, in iteration order.
	Collisions []int
}
