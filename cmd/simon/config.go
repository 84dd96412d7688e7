package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/game"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Export or import game settings",
	Long: `Export the effective game settings as a portable key=value
blob, or validate and apply a previously exported blob.

Examples:
  simon config export                  # print settings to stdout
  simon config export settings.txt
  simon config import settings.txt`,
}

var configExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export settings as a key=value blob",
	Args:  cobra.MaximumNArgs(1),
	Run:   runConfigExport,
}

var configImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate and apply a settings blob",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigImport,
}

func init() {
	configCmd.AddCommand(configExportCmd)
	configCmd.AddCommand(configImportCmd)
}

func runConfigExport(_ *cobra.Command, args []string) {
	ctrl := settingsController()
	blob := ctrl.ExportConfig()

	if len(args) == 0 {
		fmt.Print(blob)
		return
	}
	if err := os.WriteFile(args[0], []byte(blob), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Settings exported to %s\n", args[0])
}

func runConfigImport(_ *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctrl := settingsController()
	if err := ctrl.ImportConfig(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Settings applied:")
	fmt.Print(ctrl.ExportConfig())
}

// settingsController builds a controller only to carry settings; the
// leaderboard behind it is memory-only and never written.
func settingsController() *game.Controller {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Leaderboard.Path = ""
	cfg.History.Enabled = false
	ctrl, _, _, err := newController(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return ctrl
}
