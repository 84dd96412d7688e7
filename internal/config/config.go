// Package config provides YAML-based game configuration loading and
// difficulty presets for the Simon memory game.
package config

import "fmt"

// GameConfig contains all configuration for a Simon game.
type GameConfig struct {
	Alphabet      []string          `yaml:"alphabet"`
	InitialLength int               `yaml:"initial_length"`
	Lives         int               `yaml:"lives"`
	Display       DisplayConfig     `yaml:"display"`
	Leaderboard   LeaderboardConfig `yaml:"leaderboard"`
	History       HistoryConfig     `yaml:"history"`
}

// DisplayConfig defines sequence presentation parameters.
type DisplayConfig struct {
	SequenceSpeed    int  `yaml:"sequence_speed"`     // ms per shown symbol
	MinSequenceSpeed int  `yaml:"min_sequence_speed"` // speed floor after level-ups
	SpeedDecrement   int  `yaml:"speed_decrement"`    // ms shaved per level
	MaxInputTime     int  `yaml:"max_input_time"`     // ms allowed per input round
	SoundEnabled     bool `yaml:"sound_enabled"`
}

// LeaderboardConfig defines high-score persistence parameters.
type LeaderboardConfig struct {
	MaxEntries int    `yaml:"max_entries"`
	Path       string `yaml:"path"`
}

// HistoryConfig defines session-history persistence parameters.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Validate checks that the configuration can start a game.
func (c GameConfig) Validate() error {
	if len(c.Alphabet) == 0 {
		return fmt.Errorf("config: alphabet is empty")
	}
	seen := make(map[string]bool, len(c.Alphabet))
	for _, symbol := range c.Alphabet {
		if symbol == "" {
			return fmt.Errorf("config: alphabet contains an empty symbol")
		}
		if seen[symbol] {
			return fmt.Errorf("config: duplicate alphabet symbol %q", symbol)
		}
		seen[symbol] = true
	}

	if c.InitialLength < 1 {
		return fmt.Errorf("config: initial_length must be at least 1, got %d", c.InitialLength)
	}
	if c.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Lives)
	}
	if c.Leaderboard.MaxEntries < 1 {
		return fmt.Errorf("config: leaderboard max_entries must be at least 1, got %d", c.Leaderboard.MaxEntries)
	}
	return nil
}
