// sketch runs small interactive geometry demos in the terminal.
//
// Usage:
//
//	sketch list              - List available demos
//	sketch run <demo>        - Run a demo full-screen
//	sketch menu              - Pick demos interactively
//	sketch serve             - Start SSH server for remote use
//	sketch history [demo]    - Show recent sessions
//	sketch export            - Render a circle and segment to PNG
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set session log path (default: ~/.sketch/sessions.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/storage"

	// Import demos to register them
	_ "github.com/vovakirdan/tui-sketch/internal/demos/intersect"
	_ "github.com/vovakirdan/tui-sketch/internal/demos/rect"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Sketch - geometry demos in your terminal",
	Long: `Sketch runs small interactive geometry demos in the terminal:
a square you steer with the arrow keys, and a tool that intersects a
circle and a line segment drawn with the mouse.

Available commands:
  list     - Show all available demos
  run      - Run a specific demo directly
  menu     - Interactive demo picker
  serve    - Start SSH server for remote use
  history  - View recent sessions
  export   - Render a circle and segment to PNG

Examples:
  sketch list
  sketch run intersect
  sketch menu
  sketch serve --ssh :2222
  sketch export --circle 0,0,0.5 --segment -1,0,1,0.3 -o out.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to session log database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
}

// newLogger creates the stderr logger used by non-interactive commands.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// newTUILogger returns a logger for full-screen commands. The terminal is
// the UI, so logs go to ~/.sketch/debug.log at debug level and nowhere
// otherwise. The returned closer is never nil.
func newTUILogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if level > log.DebugLevel {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	path := filepath.Join(home, ".sketch", "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log: %w", err)
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "sketch",
		Level:           level,
	}), f, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(configPath string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.ConfigPath = configPath
	return cfg
}

// openStore opens the session log. A failure is logged and nil returned:
// demos still run, they just are not recorded.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session log", "error", err)
		return nil
	}
	return store
}
