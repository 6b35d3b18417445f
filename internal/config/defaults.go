package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default maze chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Timing: ChaseTiming{
			TickMS: 200,
		},
		Scoring: ChaseScoring{
			Pickup:      10,
			PowerPickup: 50,
			Catch:       200,
		},
		Player: ChasePlayer{
			Lives: 3,
		},
		Power: ChasePower{
			DurationTicks: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChaseYAML
}
