// Package tui is the Bubble Tea presentation and input adapter for the game.
// It owns the terminal, the tick timer and the key bindings; the simulation
// itself has no knowledge of any of them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// the given interval. The model re-arms it after every tick while the game
// is running.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
