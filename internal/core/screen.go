package core

import (
	"strings"
)

// Cell is one character position of the screen with its style.
type Cell struct {
	Rune  rune
	Color Color
	Bold  bool
}

// blank is the content of a cleared cell.
var blank = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
// The buffer is persistent: cells keep their content until overwritten or
// cleared, so a frame can be partially repainted.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the rectangle covering the whole screen.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	s.ClearRect(s.Bounds())
}

// ClearRect blanks every cell of r that lies on the screen.
func (s *Screen) ClearRect(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, blank)
		}
	}
}

// SetStyled places a colored rune at the given position.
func (s *Screen) SetStyled(x, y int, r rune, c Color, bold bool) {
	s.SetCell(x, y, Cell{Rune: r, Color: c, Bold: bold})
}

// SetCell stores a full cell. Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), one rune per cell.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyledText(x, y, text, ColorDefault, false)
}

// DrawStyledText writes a styled string horizontally starting at (x, y).
func (s *Screen) DrawStyledText(x, y int, text string, c Color, bold bool) {
	i := 0
	for _, r := range text {
		s.SetStyled(x+i, y, r, c, bold)
		i++
	}
}

// DrawTextCentered draws text centered horizontally within r on row y.
func (s *Screen) DrawTextCentered(r Rect, y int, text string) {
	x := r.X + (r.W-len([]rune(text)))/2
	s.DrawText(x, y, text)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}

	// Corners
	s.SetStyled(r.X, r.Y, '┌', c, false)
	s.SetStyled(r.Right()-1, r.Y, '┐', c, false)
	s.SetStyled(r.X, r.Bottom()-1, '└', c, false)
	s.SetStyled(r.Right()-1, r.Bottom()-1, '┘', c, false)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetStyled(x, r.Y, '─', c, false)
		s.SetStyled(x, r.Bottom()-1, '─', c, false)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetStyled(r.X, y, '│', c, false)
		s.SetStyled(r.Right()-1, y, '│', c, false)
	}
}

// String converts the screen buffer to plain text.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
