package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/export"
	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
	"github.com/vovakirdan/tui-sketch/internal/registry"
)

var flagConfig string

var runCmd = &cobra.Command{
	Use:   "run <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo full-screen.

Controls (rect):
  Arrows/WASD  - Move the square
  R            - Back to the start position

Controls (intersect):
  Left drag    - Draw the circle, then the segment
  R/Right click - Clear the drawing

Everywhere:
  Ctrl+S       - Save a screenshot to ~/.sketch/screenshots
  B/Esc, Q     - Quit

Examples:
  sketch run rect
  sketch run intersect
  sketch run rect --config ./fast-rect.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
}

func runRun(_ *cobra.Command, args []string) error {
	demoID := args[0]
	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q (run 'sketch list' to see available demos)", demoID)
	}

	logger, closer, err := newTUILogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	export.SetLogger(slog.New(logger))

	demo, err := registry.Create(demoID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(demo, store, runtimeConfig(flagConfig), logger); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}
