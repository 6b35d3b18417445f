// Package config provides YAML-based game configuration loading and
// difficulty presets for the maze chase game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ChaseConfig contains all configuration for the maze chase game.
// The board itself is fixed and cannot be configured.
type ChaseConfig struct {
	Timing  ChaseTiming  `yaml:"timing"`
	Scoring ChaseScoring `yaml:"scoring"`
	Player  ChasePlayer  `yaml:"player"`
	Power   ChasePower   `yaml:"power"`
}

// ChaseTiming defines the tick cadence.
type ChaseTiming struct {
	TickMS int `yaml:"tick_ms"`
}

// ChaseScoring defines point values.
type ChaseScoring struct {
	Pickup      int `yaml:"pickup"`
	PowerPickup int `yaml:"power_pickup"`
	Catch       int `yaml:"catch"`
}

// ChasePlayer defines player parameters.
type ChasePlayer struct {
	Lives int `yaml:"lives"`
}

// ChasePower defines power mode parameters.
type ChasePower struct {
	DurationTicks int `yaml:"duration_ticks"`
}

// TickInterval returns the configured time between ticks.
func (c ChaseConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Validate reports every out-of-range value in the config.
func (c ChaseConfig) Validate() error {
	var errs []error
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player.lives must be positive, got %d", c.Player.Lives))
	}
	if c.Power.DurationTicks <= 0 {
		errs = append(errs, fmt.Errorf("power.duration_ticks must be positive, got %d", c.Power.DurationTicks))
	}
	if c.Scoring.Pickup < 0 || c.Scoring.PowerPickup < 0 || c.Scoring.Catch < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset.
// An empty string selects normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}
