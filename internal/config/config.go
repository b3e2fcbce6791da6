// Package config provides YAML configuration loading and speed presets
// for the pathfinder.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full pathfinder configuration.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
	Maps       MapsConfig       `yaml:"maps"`
}

// GridConfig sizes the grid. Columns are Width/CellSize, rows Height/CellSize.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SimulationConfig controls step pacing.
type SimulationConfig struct {
	Algorithm         string        `yaml:"algorithm"`
	IterationInterval time.Duration `yaml:"iteration_interval"`
	TickRate          int           `yaml:"tick_rate"` // frames per second
}

// RenderConfig toggles optional panels.
type RenderConfig struct {
	ShowStats bool `yaml:"show_stats"`
	ShowHelp  bool `yaml:"show_help"`
}

// MapsConfig points at user map files.
type MapsConfig struct {
	Dir string `yaml:"dir"` // empty means ~/.pathfinder/maps
}

// Validate rejects sizes and rates that cannot produce a usable grid.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.Grid.CellSize))
	} else if c.Grid.Width < c.Grid.CellSize || c.Grid.Height < c.Grid.CellSize {
		errs = append(errs, errors.New("grid must hold at least one cell"))
	}
	if c.Simulation.IterationInterval < 0 {
		errs = append(errs, fmt.Errorf("iteration_interval must not be negative, got %v", c.Simulation.IterationInterval))
	}
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Simulation.TickRate))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Columns returns the number of grid columns.
func (c Config) Columns() int {
	if c.Grid.CellSize <= 0 {
		return 0
	}
	return c.Grid.Width / c.Grid.CellSize
}

// Rows returns the number of grid rows.
func (c Config) Rows() int {
	if c.Grid.CellSize <= 0 {
		return 0
	}
	return c.Grid.Height / c.Grid.CellSize
}
