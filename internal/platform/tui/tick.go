// Package tui hosts survival modes in Bubble Tea: fixed-rate ticks, key and
// mouse mapping, colored screen output, run history and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the frame period for rate ticks per second. Rates below
// one run at one tick per second.
func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
