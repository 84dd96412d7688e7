package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"empty alphabet", func(c *GameConfig) { c.Alphabet = nil }},
		{"empty symbol", func(c *GameConfig) { c.Alphabet = []string{"A", ""} }},
		{"duplicate symbol", func(c *GameConfig) { c.Alphabet = []string{"A", "A"} }},
		{"zero initial length", func(c *GameConfig) { c.InitialLength = 0 }},
		{"zero lives", func(c *GameConfig) { c.Lives = 0 }},
		{"zero leaderboard bound", func(c *GameConfig) { c.Leaderboard.MaxEntries = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simon.yaml")
	content := `
alphabet: ["1", "2", "3"]
initial_length: 2
lives: 4
display:
  sequence_speed: 800
  min_sequence_speed: 300
  speed_decrement: 40
  max_input_time: 8000
  sound_enabled: false
leaderboard:
  max_entries: 5
  path: "scores.dat"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cfg.Alphabet) != 3 || cfg.InitialLength != 2 || cfg.Lives != 4 {
		t.Errorf("custom config not applied: %+v", cfg)
	}
	if cfg.Display.SequenceSpeed != 800 || cfg.Display.SoundEnabled {
		t.Errorf("display config not applied: %+v", cfg.Display)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("alphabet: []\ninitial_length: 1\nlives: 3\n"), 0o644)

	if _, err := Load(path); err == nil {
		t.Error("invalid custom config should fail")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if len(DefaultYAML()) == 0 {
		t.Fatal("embedded default YAML is empty")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Lives != 2 || cfg.Display.SequenceSpeed != 600 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}

	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Lives != 5 || cfg.Display.SequenceSpeed != 1500 {
		t.Errorf("easy preset not applied: %+v", cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("preset result should validate: %v", err)
	}
}

func TestValidPreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard"} {
		if !ValidPreset(name) {
			t.Errorf("%s should be a valid preset", name)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("unknown preset should be invalid")
	}
}
