package core

import "time"

// RuntimeConfig is what the platform hands to a session at start-up.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform
	Seed     int64 // Seed for generated maps, 0 means time based

	// IterationInterval is the minimum simulated time between two search steps.
	IterationInterval time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:           80,
		ScreenH:           24,
		TickRate:          60,
		IterationInterval: 100 * time.Millisecond,
	}
}

// FrameDuration returns the wall-clock length of one frame at TickRate.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
