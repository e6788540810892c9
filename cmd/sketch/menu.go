package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/export"
	"github.com/vovakirdan/tui-sketch/internal/platform/tui"
	"github.com/vovakirdan/tui-sketch/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start sketch with a demo picker menu",
	Long: `Start sketch in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a demo.
Leaving a demo with B or Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select demo
  Tab          - Session history
  Q            - Quit

Examples:
  sketch menu
  sketch menu --fps 30
  sketch menu --db ./sessions.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newTUILogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	export.SetLogger(slog.New(logger))

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig("")

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		demo, err := registry.Create(menuResult.DemoID)
		if err != nil {
			logger.Error("cannot create demo", "demo", menuResult.DemoID, "error", err)
			continue
		}

		if err := tui.Run(demo, store, cfg, logger); err != nil {
			logger.Error("demo failed", "demo", demo.ID(), "error", err)
		}
	}
}
