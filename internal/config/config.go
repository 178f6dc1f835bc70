// Package config provides YAML-based game configuration loading and
// difficulty management for the crossing game.
package config

import (
	"errors"
	"fmt"
)

// CrossingConfig contains all configuration for the crossing game.
// Distances are in world units of the 1000x800 field.
type CrossingConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Vehicles   VehicleConfig    `yaml:"vehicles"`
	Animals    AnimalConfig     `yaml:"animals"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playing field.
type FieldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	StartY  float64 `yaml:"start_y"`
	FinishY float64 `yaml:"finish_y"`
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	Step float64 `yaml:"step"`
}

// VehicleConfig defines vehicle lanes, spawning and speed.
type VehicleConfig struct {
	Lanes      []float64 `yaml:"lanes"`
	SpawnX     float64   `yaml:"spawn_x"`   // Distance from centre where vehicles enter
	DespawnX   float64   `yaml:"despawn_x"` // Vehicles beyond this are removed
	Length     float64   `yaml:"length"`
	Height     float64   `yaml:"height"`
	BaseSpeed  float64   `yaml:"base_speed"`
	SpeedDelta float64   `yaml:"speed_delta"` // Added to speed on every level-up
	SpawnBase  int       `yaml:"spawn_base"`  // Spawn chance is 1/max(spawn_base-level, 1)
	Colors     []string  `yaml:"colors"`
}

// AnimalConfig defines the wrap-around background animals.
type AnimalConfig struct {
	Count  int      `yaml:"count"`
	Speed  float64  `yaml:"speed"`
	WrapX  float64  `yaml:"wrap_x"`
	SpawnX float64  `yaml:"spawn_x"`
	SpawnY float64  `yaml:"spawn_y"`
	Radius float64  `yaml:"radius"`
	Colors []string `yaml:"colors"`
}

// GameplayConfig defines lives, hit detection and effects.
type GameplayConfig struct {
	Lives      int     `yaml:"lives"`
	HitRadius  float64 `yaml:"hit_radius"`
	FlashTicks int     `yaml:"flash_ticks"`
}

// DifficultyConfig controls per-level scaling.
type DifficultyConfig struct {
	Enabled bool             `yaml:"enabled"`
	Preset  DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned for difficulty names that are not presets.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a CLI value into a preset.
// An empty string yields an empty preset, meaning "keep the config's value".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownPreset, s)
	}
}

// Validate checks that the configuration describes a playable field.
func (c CrossingConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field width and height must be positive"))
	}
	if c.Field.StartY >= c.Field.FinishY {
		errs = append(errs, fmt.Errorf("start_y (%g) must be below finish_y (%g)", c.Field.StartY, c.Field.FinishY))
	}
	if c.Player.Step <= 0 {
		errs = append(errs, errors.New("player step must be positive"))
	}
	if len(c.Vehicles.Lanes) == 0 {
		errs = append(errs, errors.New("at least one vehicle lane is required"))
	}
	if c.Vehicles.DespawnX <= c.Vehicles.SpawnX {
		errs = append(errs, fmt.Errorf("despawn_x (%g) must exceed spawn_x (%g)", c.Vehicles.DespawnX, c.Vehicles.SpawnX))
	}
	if c.Vehicles.BaseSpeed <= 0 {
		errs = append(errs, errors.New("vehicle base_speed must be positive"))
	}
	if c.Vehicles.SpeedDelta < 0 {
		errs = append(errs, errors.New("vehicle speed_delta must not be negative"))
	}
	if c.Vehicles.SpawnBase < 1 {
		errs = append(errs, errors.New("vehicle spawn_base must be at least 1"))
	}
	if c.Animals.Count < 0 {
		errs = append(errs, errors.New("animal count must not be negative"))
	}
	if c.Animals.Count > 0 && c.Animals.WrapX <= 0 {
		errs = append(errs, errors.New("animal wrap_x must be positive"))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, errors.New("gameplay lives must be at least 1"))
	}
	if c.Gameplay.HitRadius <= 0 {
		errs = append(errs, errors.New("gameplay hit_radius must be positive"))
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid crossing config: %w", errors.Join(errs...))
	}
	return nil
}
