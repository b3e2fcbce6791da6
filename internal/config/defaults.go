package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pathfinder.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no file is found.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    32,
			Height:   16,
			CellSize: 1,
		},
		Simulation: SimulationConfig{
			Algorithm:         "bfs",
			IterationInterval: 100 * time.Millisecond,
			TickRate:          60,
		},
		Render: RenderConfig{
			ShowStats: true,
			ShowHelp:  true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
