// Package config provides YAML-based game configuration loading and
// difficulty management for the lander.
package config

import (
	"errors"
	"fmt"
)

// LanderConfig contains all configuration for the Lunar Lander game.
type LanderConfig struct {
	World      LanderWorld      `yaml:"world"`
	Physics    LanderPhysics    `yaml:"physics"`
	Ship       LanderShip       `yaml:"ship"`
	Target     LanderTarget     `yaml:"target"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LanderWorld maps the simulated world onto terminal cells.
type LanderWorld struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	HUDRows    int     `yaml:"hud_rows"`
}

// LanderPhysics defines the environment the ship flies in.
type LanderPhysics struct {
	Friction  float64 `yaml:"friction"`
	Gravity   float64 `yaml:"gravity"`
	SafeSpeed float64 `yaml:"safe_speed"`
	TurnSpeed float64 `yaml:"turn_speed"` // degrees per second
}

// LanderShip defines the ship every life starts with.
type LanderShip struct {
	Size            float64 `yaml:"size"`
	Thrust          float64 `yaml:"thrust"`
	Fuel            int     `yaml:"fuel"`
	Lives           int     `yaml:"lives"`
	ExplodeDuration float64 `yaml:"explode_duration"` // seconds
	SpawnX          float64 `yaml:"spawn_x"`
}

// LanderTarget defines the landing pad dimensions and drift behavior.
type LanderTarget struct {
	MinSize   float64 `yaml:"min_size"`
	MaxSize   float64 `yaml:"max_size"`
	DriftMode string  `yaml:"drift_mode"`
}

// Drift modes for LanderTarget.DriftMode.
const (
	DriftClassic = "classic" // sum of two ±1 draws: -2, 0 or +2
	DriftUnit    = "unit"    // a single ±1 draw
)

// DifficultyConfig defines how the game hardens as the score grows.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	GravityDivisor  float64 `yaml:"gravity_divisor"`
	ThrustStepEvery int     `yaml:"thrust_step_every"`
	DriftXAt        int     `yaml:"drift_x_at"`
	DriftYAt        int     `yaml:"drift_y_at"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid lander config")

// Validate checks that the config describes a playable game.
func (c LanderConfig) Validate() error {
	switch {
	case c.World.CellWidth <= 0 || c.World.CellHeight <= 0:
		return fmt.Errorf("%w: cell size must be positive", ErrInvalidConfig)
	case c.World.HUDRows < 0:
		return fmt.Errorf("%w: hud_rows must not be negative", ErrInvalidConfig)
	case c.Physics.SafeSpeed <= 0:
		return fmt.Errorf("%w: safe_speed must be positive", ErrInvalidConfig)
	case c.Ship.Size <= 0:
		return fmt.Errorf("%w: ship size must be positive", ErrInvalidConfig)
	case c.Ship.Fuel < 0:
		return fmt.Errorf("%w: fuel must not be negative", ErrInvalidConfig)
	case c.Ship.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidConfig)
	case c.Ship.ExplodeDuration < 0:
		return fmt.Errorf("%w: explode_duration must not be negative", ErrInvalidConfig)
	case c.Target.MinSize <= 0 || c.Target.MaxSize < c.Target.MinSize:
		return fmt.Errorf("%w: target sizes must satisfy 0 < min_size <= max_size", ErrInvalidConfig)
	}

	switch c.Target.DriftMode {
	case DriftClassic, DriftUnit:
	default:
		return fmt.Errorf("%w: unknown drift_mode %q", ErrInvalidConfig, c.Target.DriftMode)
	}
	return nil
}
