package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the game's key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Pause     key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default bindings: arrows, p and q.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
		),
		// Ctrl+C bypasses the tick and quits at once.
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// Key translates a key message to a game key.
// Unbound keys map to core.KeyNone.
func (k KeyMap) Key(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Pause):
		return core.KeyPause
	case key.Matches(msg, k.Quit):
		return core.KeyQuit
	default:
		return core.KeyNone
	}
}
