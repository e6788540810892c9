package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketch/internal/registry"
	"github.com/vovakirdan/tui-sketch/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [demo]",
	Short: "Show recent sessions",
	Long: `Display the most recent sessions from the session log, optionally
for a single demo, followed by per-demo totals.

Examples:
  sketch history
  sketch history intersect --limit 5
  sketch history rect --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the sessions instead of showing them")
}

func runHistory(cmd *cobra.Command, args []string) error {
	demoID := ""
	if len(args) == 1 {
		demoID = args[0]
		if !registry.Exists(demoID) {
			return fmt.Errorf("unknown demo %q (run 'sketch list' to see available demos)", demoID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagHistoryClear {
		if err := store.ClearSessions(demoID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Sessions cleared.")
		return nil
	}

	sessions, err := store.RecentSessions(demoID, flagHistoryLimit)
	if err != nil {
		return err
	}

	title := "Recent sessions"
	if demoID != "" {
		title += " - " + registry.Title(demoID)
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'sketch run <demo>' to start one.")
		return nil
	}

	fmt.Fprintf(out, "  %-10s  %6s  %6s  %6s  %6s  %s\n", "Demo", "Moves", "Shapes", "Points", "Secs", "Date")
	fmt.Fprintf(out, "  %-10s  %6s  %6s  %6s  %6s  %s\n", "----", "-----", "------", "------", "----", "----")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-10s  %6d  %6d  %6d  %6d  %s\n",
			s.DemoID, s.Moves, s.Shapes, s.Intersections, s.DurationSecs,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.AllDemoStats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	for _, d := range registry.List() {
		st, ok := stats[d.ID]
		if !ok || (demoID != "" && d.ID != demoID) {
			continue
		}
		fmt.Fprintf(out, "%s: %d sessions, %d moves, %d shapes, %d points\n",
			d.Title, st.Sessions, st.TotalMoves, st.TotalShapes, st.TotalIntersections)
	}

	return nil
}
