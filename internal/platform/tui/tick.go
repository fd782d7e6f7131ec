// Package tui hosts Stick Hero in a terminal: the Bubble Tea model that turns
// frames and input into scheduler calls, the key bindings, the scoreboard and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one host frame. Its timestamp is passed to the scheduler.
type TickMsg time.Time

// tickCmd requests the next frame at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameNow requests a frame immediately. The first frame after a press only
// records the start time, so there is no point in waiting for it.
func frameNow() tea.Msg {
	return TickMsg(time.Now())
}
