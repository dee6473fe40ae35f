// Package tui provides the Bubble Tea integration for the rain
// animation: the frame loop, input mapping, and cell rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one animation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that delivers the next frame
// after the given delay. It is re-armed every frame with the live
// delay, so speed adjustments take effect immediately.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
