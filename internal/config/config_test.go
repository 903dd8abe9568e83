package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseLander(DefaultYAML())
	if err != nil {
		t.Fatalf("parseLander(embedded) failed: %v", err)
	}

	if cfg != DefaultLanderConfig() {
		t.Errorf("Embedded YAML and DefaultLanderConfig() differ:\nyaml=%+v\ncode=%+v", cfg, DefaultLanderConfig())
	}
}

func TestLoadLanderFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadLander("")
	if err != nil {
		t.Fatalf("LoadLander(\"\") failed: %v", err)
	}
	if cfg.Ship.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Ship.Lives)
	}
}

func TestLoadLanderLocalOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalConfigPath, []byte("ship:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLander("")
	if err != nil {
		t.Fatalf("LoadLander(\"\") failed: %v", err)
	}
	if cfg.Ship.Lives != 7 {
		t.Errorf("Lives = %d, expected local override 7", cfg.Ship.Lives)
	}
}

func TestLoadLanderCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yamlData := "physics:\n  gravity: 9\ntarget:\n  drift_mode: unit\n"
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLander(path)
	if err != nil {
		t.Fatalf("LoadLander() failed: %v", err)
	}

	if cfg.Physics.Gravity != 9 {
		t.Errorf("Gravity = %v, expected 9", cfg.Physics.Gravity)
	}
	if cfg.Target.DriftMode != DriftUnit {
		t.Errorf("DriftMode = %q, expected %q", cfg.Target.DriftMode, DriftUnit)
	}
	// Untouched keys keep their defaults
	if cfg.Ship.Fuel != 250 {
		t.Errorf("Fuel = %d, expected default 250", cfg.Ship.Fuel)
	}
}

func TestLoadLanderCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLander(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLander() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadLander(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadLander() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LanderConfig)
		valid  bool
	}{
		{"defaults", func(*LanderConfig) {}, true},
		{"zero cell width", func(c *LanderConfig) { c.World.CellWidth = 0 }, false},
		{"no lives", func(c *LanderConfig) { c.Ship.Lives = 0 }, false},
		{"negative fuel", func(c *LanderConfig) { c.Ship.Fuel = -1 }, false},
		{"zero fuel", func(c *LanderConfig) { c.Ship.Fuel = 0 }, true},
		{"inverted target sizes", func(c *LanderConfig) { c.Target.MinSize = 50; c.Target.MaxSize = 10 }, false},
		{"unknown drift", func(c *LanderConfig) { c.Target.DriftMode = "zigzag" }, false},
		{"zero safe speed", func(c *LanderConfig) { c.Physics.SafeSpeed = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLanderConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyLanderPreset(t *testing.T) {
	easy := DefaultLanderConfig()
	ApplyLanderPreset(&easy, DifficultyEasy)
	if easy.Ship.Lives != 5 || easy.Ship.Fuel != 400 {
		t.Errorf("Easy preset = lives %d fuel %d, expected 5 and 400", easy.Ship.Lives, easy.Ship.Fuel)
	}

	hard := DefaultLanderConfig()
	ApplyLanderPreset(&hard, DifficultyHard)
	if hard.Ship.Lives != 2 || hard.Physics.Gravity != 5 {
		t.Errorf("Hard preset = lives %d gravity %v, expected 2 and 5", hard.Ship.Lives, hard.Physics.Gravity)
	}

	normal := DefaultLanderConfig()
	ApplyLanderPreset(&normal, DifficultyNormal)
	if normal != DefaultLanderConfig() {
		t.Error("Normal preset should keep the defaults")
	}

	fixed := DefaultLanderConfig()
	ApplyLanderPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("Fixed preset should disable the difficulty ramp")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v, expected nil", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
