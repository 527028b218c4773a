// Package tui provides the Bubble Tea integration for River Raid: the local
// game model, the high-score table and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent on each simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after the tick interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
