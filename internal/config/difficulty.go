package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the name maps to a known preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy plays slower with more lives, hard faster with fewer.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.Display.SequenceSpeed = 1500
		cfg.Display.SpeedDecrement = 30
		cfg.Display.MaxInputTime = 20000
	case DifficultyNormal:
		cfg.Lives = 3
		cfg.Display.SequenceSpeed = 1000
		cfg.Display.SpeedDecrement = 50
		cfg.Display.MaxInputTime = 10000
	case DifficultyHard:
		cfg.Lives = 2
		cfg.Display.SequenceSpeed = 600
		cfg.Display.SpeedDecrement = 75
		cfg.Display.MaxInputTime = 5000
	}
}
