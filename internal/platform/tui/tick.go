// Package tui provides the Bubble Tea integration for Egg Hunt.
// It owns the terminal loop, key hold tracking, the title screen and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a simulation tick. The title
// screen animates from it; the game itself only counts ticks.
type TickMsg time.Time

// tickCmd schedules the next tick one frame from now.
func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
