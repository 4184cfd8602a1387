package rawterm

import (
	"bufio"
	"io"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Stream delivers input bytes read by a background goroutine.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadKey drains every pending byte without blocking and returns the first
// key among them that accept allows (any recognized key when accept is nil).
// The rest of the burst is discarded.
func (s *Stream) ReadKey(accept func(core.Key) bool) core.Key {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return DecodeFirst(buf, accept)
}

// Closed reports whether the input reached EOF.
func (s *Stream) Closed() bool {
	return s.closed
}

// DecodeFirst returns the first recognized key in buf that accept allows,
// or core.KeyNone. A nil accept allows every key.
// Arrow keys arrive as CSI (ESC [ A) or SS3 (ESC O A) sequences.
func DecodeFirst(buf []byte, accept func(core.Key) bool) core.Key {
	for i := 0; i < len(buf); i++ {
		k := core.KeyNone

		switch b := buf[i]; {
		case b == '\x1b' && i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O'):
			j := i + 2
			// Skip parameter bytes up to the final byte.
			for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
				j++
			}
			if j >= len(buf) {
				return core.KeyNone
			}
			k = arrow(buf[j])
			i = j
		case b == 'p':
			k = core.KeyPause
		case b == 'q', b == '\x03': // Ctrl+C arrives as a byte in raw mode
			k = core.KeyQuit
		}

		if k != core.KeyNone && (accept == nil || accept(k)) {
			return k
		}
	}
	return core.KeyNone
}

// arrow maps the final byte of an arrow key sequence to a key.
func arrow(final byte) core.Key {
	switch final {
	case 'A':
		return core.KeyUp
	case 'B':
		return core.KeyDown
	case 'C':
		return core.KeyRight
	case 'D':
		return core.KeyLeft
	default:
		return core.KeyNone
	}
}
