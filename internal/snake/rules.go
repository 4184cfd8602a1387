package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Outcome reports what happened during one tick.
type Outcome struct {
	Exit    bool // Quit was pressed; nothing else happened
	Moved   bool // The snake advanced one step
	Ate     bool // The new head reached the food
	Died    bool // The new head hit the border or the body
	Paused  bool // The game entered the paused state
	Resumed bool // The game left the paused state
}

// Bell reports whether the tick should sound the terminal bell.
func (o Outcome) Bell() bool {
	return o.Ate || o.Died
}

// Tick advances s by one step given the key read for this tick.
// It returns the next state and leaves s, including its Snake slice, untouched.
//
// Order of evaluation: quit, pause, direction change, movement, food, collision.
// Food and collision are both judged against the same new head, so a tick can
// eat and die at once.
func Tick(s State, key core.Key, food FoodSource) (State, Outcome) {
	var out Outcome

	if key == core.KeyQuit {
		out.Exit = true
		return s, out
	}

	switch s.Status {
	case StatusOver:
		return s, out
	case StatusPaused:
		// Only a second pause press resumes; the tick then carries on.
		if key != core.KeyPause {
			return s, out
		}
		s.Status = StatusRunning
		out.Resumed = true
		key = core.KeyNone
	default:
		if key == core.KeyPause && s.Started() {
			s.Status = StatusPaused
			out.Paused = true
			return s, out
		}
	}

	if d := directionFor(key); d != DirNone && d != s.Direction.Opposite() {
		s.Direction = d
		if s.Status == StatusNotStarted {
			s.Status = StatusRunning
		}
	}

	if !s.Started() {
		return s, out
	}

	head := s.Head().Add(s.Direction.Step())
	body := make([]Cell, 0, len(s.Snake)+1)
	body = append(body, head)
	body = append(body, s.Snake...)
	out.Moved = true

	if eats(head, s.Food) {
		out.Ate = true
		s.Food = food.Sample(s.Arena)
		s.Score++
	} else {
		body = body[:len(body)-1]
	}
	s.Snake = body

	if s.Arena.OnBorder(head) || s.bites(head) {
		out.Died = true
		s.Status = StatusOver
	}

	return s, out
}

// eats reports whether a head at h reaches food at f. Food sits on single
// columns while the head moves two at a time, so one column of slack is allowed.
func eats(h, f Cell) bool {
	return h.Row == f.Row && core.Abs(h.Col-f.Col) <= 1
}

// directionFor maps an arrow key to a heading; other keys map to DirNone.
func directionFor(k core.Key) Direction {
	switch k {
	case core.KeyUp:
		return DirUp
	case core.KeyDown:
		return DirDown
	case core.KeyLeft:
		return DirLeft
	case core.KeyRight:
		return DirRight
	default:
		return DirNone
	}
}
