package core

// RuntimeConfig contains configuration passed to the viewer at initialization.
// The simulation itself only consumes Seed; screen size and tick rate drive
// the platform layer.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Auto-advance ticks per second
	Seed     int64 // RNG seed for deterministic matches
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 8,
		Seed:     0, // 0 means use current time in platform layer
	}
}
