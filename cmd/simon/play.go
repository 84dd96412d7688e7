package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/platform/tui"
)

var flagPlayerName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game immediately",
	Long: `Start a game, skipping the menu.

Controls:
  1-9 or symbol keys  - Answer with a symbol
  R                   - Reveal the sequence (costs a life)
  P                   - Pause
  Ctrl+R              - Restart (after game over)
  Esc                 - Forfeit to the menu
  Ctrl+C              - Quit

Difficulty presets:
  easy   - 5 lives, slow display, generous input time
  normal - 3 lives, default pacing
  hard   - 2 lives, fast display, tight input time

Examples:
  simon play --name Alice
  simon play --difficulty hard
  simon play --seed 42 --name Alice
  simon play --config ./my-simon.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayerName, "name", "", "Player name (asked interactively if omitted)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctrl, _, store, err := newController(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.RunPlay(ctrl, flagPlayerName, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
