package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultCrossingConfig().Validate(); err != nil {
		t.Fatalf("DefaultCrossingConfig().Validate() = %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Errorf("embedded YAML drifted from DefaultCrossingConfig():\n got %+v\nwant %+v", cfg, DefaultCrossingConfig())
	}
}

func TestLoadCrossingFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCrossing("", nil)
	if err != nil {
		t.Fatalf("LoadCrossing(\"\") failed: %v", err)
	}
	if cfg.Field.StartY != -370 || cfg.Field.FinishY != 380 {
		t.Errorf("unexpected track bounds: %+v", cfg.Field)
	}
	if len(cfg.Vehicles.Lanes) != 6 {
		t.Errorf("expected 6 lanes, got %d", len(cfg.Vehicles.Lanes))
	}
}

func TestLoadCrossingUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".roadcross", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("gameplay:\n  lives: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing("", nil)
	if err != nil {
		t.Fatalf("LoadCrossing failed: %v", err)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("user config should set lives to 2, got %d", cfg.Gameplay.Lives)
	}
}

func TestLoadCrossingWarnsOnMalformedUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".roadcross", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("gameplay: [not, a, map\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cfg, err := LoadCrossing("", log.New(&buf))
	if err != nil {
		t.Fatalf("LoadCrossing failed: %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("malformed user config should fall back to defaults, got lives %d", cfg.Gameplay.Lives)
	}

	out := buf.String()
	if !strings.Contains(out, "malformed config") || !strings.Contains(out, ConfigFileName) {
		t.Errorf("expected a warning naming the file, got %q", out)
	}
}

func TestLoadCrossingCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "vehicles:\n  base_speed: 12\n  lanes: [-100, 100]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing(path, nil)
	if err != nil {
		t.Fatalf("LoadCrossing(%s) failed: %v", path, err)
	}
	if cfg.Vehicles.BaseSpeed != 12 {
		t.Errorf("BaseSpeed = %v, expected 12", cfg.Vehicles.BaseSpeed)
	}
	if !reflect.DeepEqual(cfg.Vehicles.Lanes, []float64{-100, 100}) {
		t.Errorf("Lanes = %v, expected [-100 100]", cfg.Vehicles.Lanes)
	}
	// Keys not in the file keep their defaults
	if cfg.Gameplay.HitRadius != 20 {
		t.Errorf("HitRadius = %v, expected default 20", cfg.Gameplay.HitRadius)
	}
}

func TestLoadCrossingCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCrossing(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [not, a, map]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(bad, nil); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  start_y: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadCrossing(invalid, nil)
	if err == nil || !strings.Contains(err.Error(), "start_y") {
		t.Errorf("invalid bounds should be reported, got %v", err)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Player.Step = 0
	cfg.Vehicles.Lanes = nil
	cfg.Gameplay.Lives = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"step", "lane", "lives"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnknownPreset) {
			t.Errorf("ParsePreset(%q) error should wrap ErrUnknownPreset", tc.in)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	easy := DefaultCrossingConfig()
	ApplyCrossingPreset(&easy, DifficultyEasy)
	if easy.Vehicles.BaseSpeed >= 10 || easy.Vehicles.SpawnBase <= 6 {
		t.Errorf("easy should slow vehicles and lower spawn rate: %+v", easy.Vehicles)
	}

	hard := DefaultCrossingConfig()
	ApplyCrossingPreset(&hard, DifficultyHard)
	if hard.Vehicles.BaseSpeed <= 10 || hard.Vehicles.SpeedDelta <= 5 {
		t.Errorf("hard should speed vehicles up: %+v", hard.Vehicles)
	}

	fixed := DefaultCrossingConfig()
	ApplyCrossingPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	untouched := DefaultCrossingConfig()
	ApplyCrossingPreset(&untouched, "")
	if !reflect.DeepEqual(untouched, DefaultCrossingConfig()) {
		t.Error("empty preset should leave config untouched")
	}
}

func TestSelectPresetFromFile(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		override  DifficultyPreset
		preset    DifficultyPreset
		baseSpeed float64
		enabled   bool
	}{
		{"file hard", "difficulty:\n  preset: hard\n", "", DifficultyHard, 14, true},
		{"flag wins over file", "difficulty:\n  preset: hard\n", DifficultyEasy, DifficultyEasy, 6, true},
		{"file fixed", "difficulty:\n  preset: fixed\n", "", DifficultyFixed, 10, false},
		{"file normal keeps file values", "vehicles:\n  base_speed: 12\ndifficulty:\n  enabled: false\n  preset: normal\n", "", DifficultyNormal, 12, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			SelectPreset(&cfg, tc.override)

			if cfg.Difficulty.Preset != tc.preset {
				t.Errorf("preset = %q, expected %q", cfg.Difficulty.Preset, tc.preset)
			}
			if cfg.Vehicles.BaseSpeed != tc.baseSpeed {
				t.Errorf("base speed = %v, expected %v", cfg.Vehicles.BaseSpeed, tc.baseSpeed)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultCrossingConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCrossingConfig()) {
		t.Error("marshalled config should parse back to defaults")
	}
}
