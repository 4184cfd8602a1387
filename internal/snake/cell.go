package snake

// Cell addresses one character position of the arena, border included.
// Row 0 is the arena's top border and column 0 its left border.
type Cell struct {
	Row, Col int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Direction is the snake's heading. DirNone means no arrow key has been
// accepted yet.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Horizontal steps cover two columns and vertical steps one row: terminal
// cells are about twice as tall as they are wide.
const (
	rowStep = 1
	colStep = 2
)

// Step returns the offset of one move in direction d.
func (d Direction) Step() Cell {
	switch d {
	case DirUp:
		return Cell{Row: -rowStep}
	case DirDown:
		return Cell{Row: rowStep}
	case DirLeft:
		return Cell{Col: -colStep}
	case DirRight:
		return Cell{Col: colStep}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
