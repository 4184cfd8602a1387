package core

// Key is a semantic key press, abstracted from the terminal's encoding.
// Drivers translate raw input into Keys; unrecognized keys never become Keys.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // Up arrow
	KeyDown      // Down arrow
	KeyLeft      // Left arrow
	KeyRight     // Right arrow
	KeyPause     // p - pause/resume
	KeyQuit      // q, Ctrl+C - exit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPause:
		return "Pause"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the key is one of the four arrows.
func (k Key) IsDirection() bool {
	return k >= KeyUp && k <= KeyRight
}

// KeyLatch holds at most one key between two ticks.
//
// The first key pushed after a Next call wins; later keys are dropped until
// the latch is read again. A burst of key presses between two ticks therefore
// yields only its first key.
type KeyLatch struct {
	key  Key
	full bool
}

// Push records k unless a key is already waiting. KeyNone is ignored.
func (l *KeyLatch) Push(k Key) {
	if l.full || k == KeyNone {
		return
	}
	l.key = k
	l.full = true
}

// Next returns the waiting key, or KeyNone, and empties the latch.
// It never blocks.
func (l *KeyLatch) Next() Key {
	k := l.key
	l.key = KeyNone
	l.full = false
	return k
}
