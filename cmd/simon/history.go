package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagHistoryPlayer string
	flagHistoryLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past game sessions",
	Long: `Display recent game sessions from the history database.

Examples:
  simon history
  simon history --player alice
  simon history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", "", "Only show sessions for the named player")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of sessions to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var records []storage.SessionRecord
	if flagHistoryPlayer != "" {
		records, err = store.PlayerSessions(flagHistoryPlayer, flagHistoryLimit)
	} else {
		records, err = store.RecentSessions(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Game History")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-20s  %-8s  %-6s  %-6s  %s\n",
		"Played", "Player", "Score", "Level", "Acc %", "Ended")
	fmt.Printf("  %-16s  %-20s  %-8s  %-6s  %-6s  %s\n",
		"------", "------", "-----", "-----", "-----", "-----")

	for _, rec := range records {
		fmt.Printf("  %-16s  %-20s  %-8d  %-6d  %-6.1f  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.Player,
			rec.Score, rec.Level, rec.Accuracy, rec.Outcome)
	}

	totals, err := store.AllTotals()
	if err == nil && totals.GamesPlayed > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Sequences: %d  Best level: %d  High score: %d\n",
			totals.GamesPlayed, totals.SequencesCompleted, totals.BestLevel, totals.HighScore)
	}
}
