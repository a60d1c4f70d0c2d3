package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
// The 12x18 field, speed level 20, and scoring values reproduce the
// classic behavior exactly.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: TetrisField{
			Width:  12,
			Height: 18,
		},
		Speed: TetrisSpeed{
			Level: 20, // 1.0s fall interval
		},
		Scoring: TetrisScoring{
			LockBonus: 25,
			LineBase:  100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
