package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file name looked up in the user and local config directories.
const ConfigFileName = "crossing.yaml"

// LoadCrossing loads the crossing game configuration.
// Search order: customPath -> ~/.roadcross/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial YAML only overrides the
// keys it names. A broken custom file is an error; a broken file in the
// search directories is skipped with a warning on logger, which may be nil.
func LoadCrossing(customPath string, logger *log.Logger) (CrossingConfig, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCrossingConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultCrossingConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{filepath.Join("configs", ConfigFileName)}
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, ok := loadOptional(path, logger); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCrossingYAML)
	if err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadOptional reads a config file that may not exist.
func loadOptional(path string, logger *log.Logger) (CrossingConfig, bool) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return CrossingConfig{}, false
	}
	if err != nil {
		logger.Warn("cannot read config, skipping", "path", path, "error", err)
		return CrossingConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		logger.Warn("malformed config, skipping", "path", path, "error", err)
		return CrossingConfig{}, false
	}
	return cfg, true
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg CrossingConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadcross", "configs", filename)
}

// SelectPreset applies override when set, otherwise the preset named in the
// config file. A file preset of normal keeps the file's vehicle and
// progression settings.
func SelectPreset(cfg *CrossingConfig, override DifficultyPreset) {
	if override != "" {
		ApplyCrossingPreset(cfg, override)
		return
	}
	if cfg.Difficulty.Preset != DifficultyNormal {
		ApplyCrossingPreset(cfg, cfg.Difficulty.Preset)
	}
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset

	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust vehicle pressure based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Vehicles.BaseSpeed = 6
		cfg.Vehicles.SpeedDelta = 3
		cfg.Vehicles.SpawnBase = 7
	case DifficultyHard:
		cfg.Vehicles.BaseSpeed = 14
		cfg.Vehicles.SpeedDelta = 7
		cfg.Vehicles.SpawnBase = 5
	}
}
