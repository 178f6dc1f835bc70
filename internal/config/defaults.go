package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
// Values mirror the classic turtle-graphics version of the game.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Field: FieldConfig{
			Width:   1000,
			Height:  800,
			StartY:  -370,
			FinishY: 380,
		},
		Player: PlayerConfig{
			Step: 20,
		},
		Vehicles: VehicleConfig{
			Lanes:      []float64{-250, -150, -50, 50, 150, 250},
			SpawnX:     520,
			DespawnX:   540,
			Length:     40,
			Height:     20,
			BaseSpeed:  10,
			SpeedDelta: 5,
			SpawnBase:  6,
			Colors:     []string{"red", "orange", "yellow", "green", "blue", "purple", "pink", "white", "gray"},
		},
		Animals: AnimalConfig{
			Count:  5,
			Speed:  2,
			WrapX:  500,
			SpawnX: 480,
			SpawnY: 350,
			Radius: 10,
			Colors: []string{"yellow", "cyan", "magenta"},
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			HitRadius:  20,
			FlashTicks: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Preset:  DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
