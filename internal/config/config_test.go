package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultTetrisConfig(t *testing.T) {
	cfg := DefaultTetrisConfig()

	if cfg.Field.Width != 12 {
		t.Errorf("Field.Width = %d, want 12", cfg.Field.Width)
	}
	if cfg.Field.Height != 18 {
		t.Errorf("Field.Height = %d, want 18", cfg.Field.Height)
	}
	if cfg.Speed.Level != 20 {
		t.Errorf("Speed.Level = %d, want 20", cfg.Speed.Level)
	}
	if cfg.Scoring.LockBonus != 25 {
		t.Errorf("Scoring.LockBonus = %d, want 25", cfg.Scoring.LockBonus)
	}
	if cfg.Scoring.LineBase != 100 {
		t.Errorf("Scoring.LineBase = %d, want 100", cfg.Scoring.LineBase)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tetris"), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg.Field.Width != 12 || cfg.Field.Height != 18 {
		t.Errorf("embedded field = %dx%d, want 12x18", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Speed.Level != 20 {
		t.Errorf("embedded speed level = %d, want 20", cfg.Speed.Level)
	}
}

func TestFallInterval(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{20, 1.0},
		{10, 0.5},
		{1, 0.05},
		{28, 1.4},
	}

	for _, tt := range tests {
		cfg := DefaultTetrisConfig()
		cfg.Speed.Level = tt.level
		if got := cfg.FallInterval(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FallInterval(level=%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := []byte("field:\n  width: 10\n  height: 20\nspeed:\n  level: 8\nscoring:\n  lock_bonus: 50\n  line_base: 200\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}

	if cfg.Field.Width != 10 || cfg.Field.Height != 20 {
		t.Errorf("field = %dx%d, want 10x20", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Speed.Level != 8 {
		t.Errorf("speed level = %d, want 8", cfg.Speed.Level)
	}
	if cfg.Scoring.LockBonus != 50 || cfg.Scoring.LineBase != 200 {
		t.Errorf("scoring = %d/%d, want 50/200", cfg.Scoring.LockBonus, cfg.Scoring.LineBase)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLoadTetrisPartialConfigBackfilled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	// Only the field size is given; the rest should fall back to defaults
	data := []byte("field:\n  width: 16\n  height: 24\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris failed: %v", err)
	}

	if cfg.Field.Width != 16 || cfg.Field.Height != 24 {
		t.Errorf("field = %dx%d, want 16x24", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Speed.Level != 20 {
		t.Errorf("speed level not backfilled: got %d, want 20", cfg.Speed.Level)
	}
	if cfg.Scoring.LockBonus != 25 || cfg.Scoring.LineBase != 100 {
		t.Errorf("scoring not backfilled: got %d/%d", cfg.Scoring.LockBonus, cfg.Scoring.LineBase)
	}
}

func TestSpeedLevelForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   int
	}{
		{DifficultyEasy, 28},
		{DifficultyNormal, 20},
		{DifficultyHard, 10},
		{DifficultyFixed, 0},
		{DifficultyPreset(""), 0},
	}

	for _, tt := range tests {
		if got := SpeedLevelForPreset(tt.preset); got != tt.want {
			t.Errorf("SpeedLevelForPreset(%q) = %d, want %d", tt.preset, got, tt.want)
		}
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, "hard")
	if cfg.Speed.Level != 10 {
		t.Errorf("hard preset level = %d, want 10", cfg.Speed.Level)
	}

	cfg = DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, "fixed")
	if cfg.Speed.Level != 20 {
		t.Errorf("fixed preset should keep config level, got %d", cfg.Speed.Level)
	}

	cfg = DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, "")
	if cfg.Speed.Level != 20 {
		t.Errorf("empty preset should keep config level, got %d", cfg.Speed.Level)
	}
}
