package core

import "github.com/vovakirdan/duel-arcade/internal/math2d"

// RuntimeConfig contains configuration passed to the platform drivers.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the headless autopilot
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

// FrameTime returns the fixed frame delta in seconds for the tick rate.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the match summary the platform reads after each tick.
type GameState struct {
	Score         int      // Player 1 KOs scored
	OpponentScore int      // Player 2 (bot) KOs scored
	GameOver      bool     // Whether the match has ended
	Paused        bool     // Whether the match is paused
	Winner        PlayerID // Set when GameOver, zero otherwise
}

// Frame is everything the simulation consumes from the outside for one tick:
// elapsed time, the visible world bounds and the input snapshot.
type Frame struct {
	DT     float64
	Bounds math2d.Bounds
	Input  MultiInputFrame
}
