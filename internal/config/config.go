// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

// TetrisConfig contains all configuration for the tetris rules engine.
type TetrisConfig struct {
	Field   TetrisField   `yaml:"field"`
	Speed   TetrisSpeed   `yaml:"speed"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisField defines the playfield dimensions, borders included.
type TetrisField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisSpeed defines the automatic fall timing.
// The fall interval is level * 0.05 seconds, so level 20 means one
// gravity step per second. A single fixed interval per game; there is
// no mid-game progression.
type TetrisSpeed struct {
	Level int `yaml:"level"`
}

// TetrisScoring defines the score increments.
type TetrisScoring struct {
	LockBonus int `yaml:"lock_bonus"` // Added on every piece lock
	LineBase  int `yaml:"line_base"`  // Clearing n lines adds 2^n * line_base
}

// FallInterval returns the gravity interval in seconds for this config.
func (c TetrisConfig) FallInterval() float64 {
	return float64(c.Speed.Level) * 0.05
}

// DifficultyPreset represents a named difficulty level.
// Presets only select the fall interval; nothing changes mid-game.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SpeedLevelForPreset returns the fall-speed level for a difficulty preset.
// Higher levels mean a longer interval between gravity steps.
func SpeedLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 28 // 1.4s per step
	case DifficultyNormal:
		return 20 // 1.0s per step
	case DifficultyHard:
		return 10 // 0.5s per step
	default:
		return 0 // keep the config's level
	}
}
