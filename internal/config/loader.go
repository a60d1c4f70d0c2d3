package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize backfills zero values with defaults so a partial YAML file
// still yields a playable config.
func normalize(cfg TetrisConfig) TetrisConfig {
	def := DefaultTetrisConfig()
	if cfg.Field.Width < 6 {
		cfg.Field.Width = def.Field.Width
	}
	if cfg.Field.Height < 6 {
		cfg.Field.Height = def.Field.Height
	}
	if cfg.Speed.Level <= 0 {
		cfg.Speed.Level = def.Speed.Level
	}
	if cfg.Scoring.LockBonus <= 0 {
		cfg.Scoring.LockBonus = def.Scoring.LockBonus
	}
	if cfg.Scoring.LineBase <= 0 {
		cfg.Scoring.LineBase = def.Scoring.LineBase
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Only the fall-speed level changes; "fixed" and unknown presets keep
// the config's own level.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if level := SpeedLevelForPreset(preset); level > 0 {
		cfg.Speed.Level = level
	}
}
