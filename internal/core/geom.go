// Package core provides the terminal-independent building blocks of the game:
// a character screen buffer, rectangles, colors and the key abstraction.
// Drivers depend on it; it depends on nothing but the standard library.
package core

// Rect is a block of screen cells. X and Y name the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the w×h block whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the block.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the block.
func (r Rect) Bottom() int { return r.Y + r.H }

// Abs returns |x|.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
