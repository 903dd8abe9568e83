package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default Lunar Lander configuration.
// The values match the classic browser game at 30 ticks per second.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: LanderWorld{
			CellWidth:  10,
			CellHeight: 20,
			HUDRows:    1,
		},
		Physics: LanderPhysics{
			Friction:  0.6,
			Gravity:   4,
			SafeSpeed: 3,
			TurnSpeed: 360,
		},
		Ship: LanderShip{
			Size:            30,
			Thrust:          6,
			Fuel:            250,
			Lives:           3,
			ExplodeDuration: 0.3,
			SpawnX:          15,
		},
		Target: LanderTarget{
			MinSize:   20,
			MaxSize:   120,
			DriftMode: DriftClassic,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			GravityDivisor:  5,
			ThrustStepEvery: 6,
			DriftXAt:        4,
			DriftYAt:        7,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
