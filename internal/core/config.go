package core

// RuntimeConfig carries the platform parameters handed to the engine at
// construction: surface size and simulation cadence.
type RuntimeConfig struct {
	ScreenW  int // Surface width in cells
	ScreenH  int // Surface height in cells
	TickRate int // Simulation ticks per second
	FPS      int // Render/present attempts per second (decoupled from TickRate)
}

// DefaultRuntimeConfig returns sensible defaults for an 80x24 terminal.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		FPS:      30,
	}
}
