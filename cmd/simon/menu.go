package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Simon in interactive menu mode.

From the menu you can start a game, browse the leaderboard and session
history, and tweak settings. After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc/B        - Back
  Q/Ctrl+C     - Quit

Examples:
  simon menu
  simon menu --scores-file ./scores.dat
  simon menu --difficulty easy`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctrl, board, store, err := newController(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunSession(ctrl, board, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
