// Package rawterm runs the game as a plain loop on a raw-mode terminal:
// read a key, advance the game, paint the frame, sleep. It is the
// dependency-light alternative to the Bubble Tea driver.
package rawterm

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/term"
)

// Escape sequences used to take over and hand back the screen.
const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[H\x1b[2J"
)

// Session owns the terminal while a game runs. Open puts the terminal in
// raw mode; Close restores it exactly once, however often it is called.
type Session struct {
	fd    int
	state *term.State
	out   io.Writer
	once  sync.Once
	err   error
}

// Open switches the terminal behind fd to raw mode, enters the alternate
// screen and hides the cursor. Callers must defer Close.
func Open(fd int, out io.Writer) (*Session, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("rawterm: cannot enable raw mode: %w", err)
	}

	s := &Session{fd: fd, state: state, out: out}
	if _, err := io.WriteString(out, enterAltScreen+hideCursor+clearScreen); err != nil {
		s.Close()
		return nil, fmt.Errorf("rawterm: cannot prepare screen: %w", err)
	}
	return s, nil
}

// Close shows the cursor, leaves the alternate screen and restores the
// terminal mode saved by Open.
func (s *Session) Close() error {
	s.once.Do(func() {
		//nolint:errcheck // Mode restore below matters more than the cursor
		io.WriteString(s.out, showCursor+leaveAltScreen)
		if err := term.Restore(s.fd, s.state); err != nil {
			s.err = fmt.Errorf("rawterm: cannot restore terminal: %w", err)
		}
	})
	return s.err
}

// Size returns the terminal's width and height.
func (s *Session) Size() (int, int, error) {
	w, h, err := term.GetSize(s.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("rawterm: cannot get terminal size: %w", err)
	}
	return w, h, nil
}
