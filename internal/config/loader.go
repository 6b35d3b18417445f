package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChase loads the maze chase configuration.
// Search order: customPath -> ~/.mazechase/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadChase(customPath string) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chase.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultChaseConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "chase.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultChaseConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultChaseYAML, &cfg); err != nil {
		return DefaultChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}

// ApplyChasePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Power.DurationTicks = 30
		cfg.Timing.TickMS = 250
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Power.DurationTicks = 12
		cfg.Timing.TickMS = 150
	}
}

// Marshal renders the config as YAML.
func Marshal(cfg ChaseConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
