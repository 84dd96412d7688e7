// Command simon is a terminal memory game. A growing sequence of
// symbols is flashed once per round and the player must repeat it
// from memory.
//
// Usage:
//
//	simon                    # interactive menu
//	simon play --name Alice  # jump straight into a game
//	simon scores             # show the leaderboard
//	simon history            # show recent game sessions
//	simon serve              # host the game over SSH
package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/engine"
	"github.com/vovakirdan/tui-simon/internal/game"
	"github.com/vovakirdan/tui-simon/internal/leaderboard"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagSeed       int64
	flagScoresFile string
	flagDBPath     string
	flagConfigPath string
	flagLives      int
	flagDifficulty string
)

var rootCmd = &cobra.Command{
	Use:     "simon",
	Short:   "Simon - a terminal memory game",
	Version: "1.0.0",
	Long: `Simon is a memory game played in the terminal.

Each round the game shows a sequence of symbols, one at a time, then
hides it. Repeat the sequence from memory to advance; every completed
round appends one more random symbol. Wrong answers and sequence
reveals cost a life.

Examples:
  simon                          # interactive menu
  simon play --name Alice        # start a game immediately
  simon play --difficulty hard   # fewer lives, faster display
  simon scores --limit 5         # top 5 leaderboard entries
  simon history --player alice   # past sessions for one player
  simon serve --ssh :2222        # serve the game over SSH`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed for sequence generation (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", "", "Path to the leaderboard file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the session history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagLives, "lives", 0, "Number of lives (overrides config and difficulty)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig resolves the effective game configuration from the
// config file search path plus the difficulty and override flags.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(strings.ToLower(flagDifficulty))
		if !config.ValidPreset(string(preset)) {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagLives > 0 {
		cfg.Lives = flagLives
	}
	if flagScoresFile != "" {
		cfg.Leaderboard.Path = flagScoresFile
	}
	if flagDBPath != "" {
		cfg.History.Path = flagDBPath
		cfg.History.Enabled = true
	}
	return cfg, nil
}

// newEngine builds the sequence engine, seeded when --seed is set so
// runs are reproducible.
func newEngine(cfg config.GameConfig) (*engine.Engine, error) {
	if flagSeed != 0 {
		return engine.NewSeeded(cfg.Alphabet, cfg.InitialLength, flagSeed)
	}
	return engine.New(cfg.Alphabet, cfg.InitialLength)
}

// openBoard opens the leaderboard at the configured path. The board
// degrades to memory-only when the path is unusable, so this never
// fails; callers that care check Persistent.
func openBoard(cfg config.GameConfig) *leaderboard.Board {
	return leaderboard.Open(expandHome(cfg.Leaderboard.Path), cfg.Leaderboard.MaxEntries)
}

// openStore opens the session history database, or returns nil when
// history is disabled or the database cannot be opened.
func openStore(cfg config.GameConfig) *storage.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

// newController wires a controller from the resolved configuration.
func newController(cfg config.GameConfig) (*game.Controller, *leaderboard.Board, *storage.Store, error) {
	eng, err := newEngine(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	board := openBoard(cfg)
	ctrl := game.New(eng, board, game.Config{
		Lives:            cfg.Lives,
		SequenceSpeed:    cfg.Display.SequenceSpeed,
		MinSequenceSpeed: cfg.Display.MinSequenceSpeed,
		SpeedDecrement:   cfg.Display.SpeedDecrement,
		MaxInputTime:     cfg.Display.MaxInputTime,
		SoundEnabled:     cfg.Display.SoundEnabled,
	})
	store := openStore(cfg)
	if store != nil {
		ctrl.AttachStore(store)
	}
	return ctrl, board, store, nil
}

// expandHome resolves a leading ~ in a path to the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	usr, err := user.Current()
	if err != nil {
		return path
	}
	return filepath.Join(usr.HomeDir, path[1:])
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
