package snake

// Status is the lifecycle stage of a game.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Arena is the bordered play region. Height and Width include the border.
type Arena struct {
	Height int
	Width  int
}

// OnBorder reports whether c lies on or beyond the border.
func (a Arena) OnBorder(c Cell) bool {
	return c.Row <= 0 || c.Row >= a.Height-1 || c.Col <= 0 || c.Col >= a.Width-1
}

// Center returns the cell the snake starts on.
func (a Arena) Center() Cell {
	return Cell{Row: a.Height / 2, Col: a.Width / 2}
}

// State is the complete game state. It is owned by a single game loop.
type State struct {
	Arena     Arena
	Snake     []Cell // Head at index 0
	Direction Direction
	Food      Cell
	Score     int
	Status    Status
}

// NewState returns a not-yet-started game: a one-segment snake in the middle
// of the arena, no heading and freshly placed food.
func NewState(arena Arena, food FoodSource) State {
	return State{
		Arena:  arena,
		Snake:  []Cell{arena.Center()},
		Food:   food.Sample(arena),
		Status: StatusNotStarted,
	}
}

// Head returns the snake's head cell.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Len returns the number of segments.
func (s State) Len() int {
	return len(s.Snake)
}

// Started reports whether a direction has been set.
func (s State) Started() bool {
	return s.Direction != DirNone
}

// bites reports whether c coincides with any segment other than the head.
func (s State) bites(c Cell) bool {
	for _, seg := range s.Snake[1:] {
		if seg == c {
			return true
		}
	}
	return false
}
