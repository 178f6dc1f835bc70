package config

// LevelScaler derives per-level vehicle parameters from the config.
// The level, not the score or elapsed time, drives difficulty: every
// finish-line crossing makes spawns more likely and vehicles faster.
type LevelScaler struct {
	vehicles VehicleConfig
	enabled  bool
}

// NewLevelScaler creates a scaler for the given vehicle and difficulty settings.
func NewLevelScaler(vehicles VehicleConfig, difficulty DifficultyConfig) *LevelScaler {
	return &LevelScaler{
		vehicles: vehicles,
		enabled:  difficulty.Enabled && difficulty.Preset != DifficultyFixed,
	}
}

// SpawnChance returns N such that a vehicle spawns with probability 1/N
// on a given frame: max(spawn_base - level, 1).
// With progression disabled the level-1 chance is used for every level.
func (s *LevelScaler) SpawnChance(level int) int {
	if !s.enabled {
		level = 1
	}
	chance := s.vehicles.SpawnBase - level
	if chance < 1 {
		chance = 1
	}
	return chance
}

// BaseSpeed returns the vehicle speed at the start of a round.
func (s *LevelScaler) BaseSpeed() float64 {
	return s.vehicles.BaseSpeed
}

// SpeedStep returns the speed added on every level-up.
func (s *LevelScaler) SpeedStep() float64 {
	if !s.enabled {
		return 0
	}
	return s.vehicles.SpeedDelta
}
