// Package tui runs the game on top of Bubble Tea, locally or over SSH.
// It maps key messages to game keys, schedules ticks and renders the
// game's screen buffer with lipgloss styles.
package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// bellCmd rings the terminal bell by writing BEL to w. Over SSH w is the
// session, which has no terminal file to ring through; locally it is stdout.
// The renderer writes whole frames to the same output from its own
// goroutine, so the lone BEL byte may land between two frames but never
// inside an escape sequence.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // The bell is best-effort
		io.WriteString(w, "\a")
		return nil
	}
}
