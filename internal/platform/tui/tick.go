// Package tui provides the Bubble Tea integration for the sketch platform.
// It runs the demo loop, maps keys and mouse to demo input, and hosts the
// menu, the session history and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a demo step.
// Gen identifies the tick loop so a demo ignores ticks left over from an
// earlier demo in the same program.
type TickMsg struct {
	Time time.Time
	Gen  int64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
