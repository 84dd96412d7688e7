package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultConfig returns the default Simon configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Alphabet:      []string{"A", "B", "C", "D"},
		InitialLength: 1,
		Lives:         3,
		Display: DisplayConfig{
			SequenceSpeed:    1000,
			MinSequenceSpeed: 300,
			SpeedDecrement:   50,
			MaxInputTime:     10000,
			SoundEnabled:     true,
		},
		Leaderboard: LeaderboardConfig{
			MaxEntries: 10,
			Path:       "~/.simon/scores.dat",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "~/.simon/history.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSimonYAML
}
