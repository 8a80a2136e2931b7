package core

import "time"

// RuntimeConfig is what the platform tells a game at Reset: the terminal
// size, the tick rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; the platform replaces 0 with the current time
}

// DefaultTickRate is used when TickRate is not positive.
const DefaultTickRate = 60

// Frame returns the simulated time covered by one tick.
func (c RuntimeConfig) Frame() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the game status the platform needs between ticks.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Won      bool // Whether the run ended in a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
