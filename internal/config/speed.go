package config

import (
	"fmt"
	"time"
)

// SpeedPreset is a named iteration interval.
type SpeedPreset string

const (
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
	SpeedInstant SpeedPreset = "instant"
)

// SpeedPresets lists the presets from slowest to fastest.
func SpeedPresets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInstant}
}

// IntervalForPreset returns the iteration interval of a preset.
func IntervalForPreset(preset SpeedPreset) (time.Duration, error) {
	switch preset {
	case SpeedSlow:
		return 250 * time.Millisecond, nil
	case SpeedNormal:
		return 100 * time.Millisecond, nil
	case SpeedFast:
		return 25 * time.Millisecond, nil
	case SpeedInstant:
		return 0, nil
	default:
		return 0, fmt.Errorf("config: unknown speed %q", preset)
	}
}

// ApplySpeedPreset sets the iteration interval from a preset.
// An empty preset leaves the config unchanged.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	d, err := IntervalForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Simulation.IterationInterval = d
	return nil
}
