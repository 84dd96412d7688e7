package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/leaderboard"
)

var (
	flagScoresLimit  int
	flagScoresExport string
	flagScoresImport string
	flagScoresMerge  bool
	flagScoresClear  bool
	flagRemovePlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show and manage the leaderboard",
	Long: `Display the leaderboard, or manage it with the flags below.

Examples:
  simon scores                         # top 10
  simon scores --limit 5
  simon scores --export backup.txt     # dump to a portable text file
  simon scores --import backup.txt     # replace entries from a file
  simon scores --import other.txt --merge
  simon scores --remove-player alice
  simon scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show (-1 for all)")
	scoresCmd.Flags().StringVar(&flagScoresExport, "export", "", "Write the leaderboard to a file ('-' for stdout)")
	scoresCmd.Flags().StringVar(&flagScoresImport, "import", "", "Load leaderboard entries from a file")
	scoresCmd.Flags().BoolVar(&flagScoresMerge, "merge", false, "Merge imported entries instead of replacing")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Remove every leaderboard entry")
	scoresCmd.Flags().StringVar(&flagRemovePlayer, "remove-player", "", "Remove every entry for the named player")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	board := openBoard(cfg)

	switch {
	case flagScoresExport != "":
		exportScores(board, flagScoresExport)
	case flagScoresImport != "":
		importScores(board, flagScoresImport, flagScoresMerge)
	case flagScoresClear:
		board.Clear()
		fmt.Println("Leaderboard cleared.")
	case flagRemovePlayer != "":
		removed := board.RemovePlayer(flagRemovePlayer)
		fmt.Printf("Removed %d entries for %q.\n", removed, flagRemovePlayer)
	default:
		printScores(board, flagScoresLimit)
	}
}

func printScores(board *leaderboard.Board, limit int) {
	entries := board.Scores(limit)

	fmt.Println("Simon Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'simon play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-7s  %-6s  %s\n",
		"Rank", "Player", "Score", "Level", "Streak", "Acc %", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-7s  %-6s  %s\n",
		"----", "------", "-----", "-----", "------", "-----", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-20s  %-8d  %-6d  %-7d  %-6.1f  %s\n",
			i+1, e.Name, e.Score, e.Level, e.Streak, e.Accuracy, e.Date)
	}

	if top, ok := board.TopScore(); ok {
		fmt.Println()
		fmt.Printf("Best: %d by %s\n", top.Score, top.Name)
	}
}

func exportScores(board *leaderboard.Board, dest string) {
	data := board.Export()
	if dest == "-" {
		fmt.Print(data)
		return
	}
	if err := os.WriteFile(dest, []byte(data), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d entries to %s\n", board.Len(), dest)
}

func importScores(board *leaderboard.Board, src string, merge bool) {
	data, err := os.ReadFile(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	result := board.Import(string(data), merge)
	if result.Err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d entries (%d total).\n", result.Imported, result.Total)
	if !result.Saved && board.Persistent() {
		fmt.Fprintln(os.Stderr, "Warning: leaderboard file could not be written")
	}
}
