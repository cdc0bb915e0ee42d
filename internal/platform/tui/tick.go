// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/clock"
)

// TickMsg delivers a scheduled tick back to the game that armed it.
type TickMsg struct {
	Ticket clock.Ticket
	At     time.Time
}

// tickCmd returns a Bubble Tea command that fires the ticket after its delay.
func tickCmd(t clock.Ticket) tea.Cmd {
	return tea.Tick(t.Delay, func(at time.Time) tea.Msg {
		return TickMsg{Ticket: t, At: at}
	})
}
