package core

// RuntimeConfig contains configuration passed to terminal front-ends.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Preview ticks per second (default 60)
	Speed    float64 // Playback speed multiplier applied to elapsed time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Speed:    1.0,
	}
}
