// Package tui provides the Bubble Tea integration for the lander.
// It handles the terminal UI loop, held-key input, the scoreboard and
// remote play over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lunar-lander/internal/schedule"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(schedule.Period(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
