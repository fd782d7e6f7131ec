package core

// RuntimeConfig contains configuration passed to the game host at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the terminal (default 60)
	Seed     int64 // RNG seed for the platform layout, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the score-facing summary of a running game.
type GameState struct {
	Score    int  // Current score
	MaxScore int  // Best score known to this session
	GameOver bool // Whether the hero has fallen all the way
}
