package snake

import (
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Overlay messages shown inside the arena.
const (
	MsgStart    = "Press any arrow key to start"
	MsgPaused   = "Game paused"
	MsgGameOver = "Game over"
)

// Theme selects the glyphs and colors used to paint the arena.
type Theme struct {
	SnakeGlyph  rune
	FoodGlyph   rune
	SnakeColor  core.Color
	FoodColor   core.Color
	BorderColor core.Color
}

// DefaultTheme returns the classic monochrome look: '*' segments, '#' food.
func DefaultTheme() Theme {
	return Theme{
		SnakeGlyph: '*',
		FoodGlyph:  '#',
	}
}

// Renderer paints the three screen regions: the score bar on the first row,
// the bordered arena in the middle and the control legend on the last row.
// It only draws; it never changes game state.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a renderer using theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// ArenaRect returns the arena region of dst: every row but the first and last.
func ArenaRect(dst *core.Screen) core.Rect {
	return core.NewRect(0, 1, dst.Width(), dst.Height()-2)
}

// ArenaFor returns the arena dimensions for a screen of the given size.
func ArenaFor(screenW, screenH int) Arena {
	return Arena{Height: screenH - 2, Width: screenW}
}

// DrawScore writes " Score: N" on the first row.
func (r *Renderer) DrawScore(dst *core.Screen, score int) {
	dst.ClearRect(core.NewRect(0, 0, dst.Width(), 1))
	dst.DrawStyledText(0, 0, " Score:", core.ColorDefault, true)
	dst.DrawText(8, 0, strconv.Itoa(score))
}

// DrawLegend writes the control legend on the last row. It is drawn once.
func (r *Renderer) DrawLegend(dst *core.Screen) {
	y := dst.Height() - 1
	w := dst.Width()

	dst.DrawStyledText(0, y, " Controls: ", core.ColorDefault, true)
	dst.DrawText(11, y, "↑ ↓ ← →")
	dst.DrawStyledText(w-26, y, "Pause/Resume:", core.ColorDefault, true)
	dst.DrawText(w-12, y, "p")
	dst.DrawStyledText(w-8, y, "Quit:", core.ColorDefault, true)
	dst.DrawText(w-2, y, "q")
}

// DrawBorder outlines the arena.
func (r *Renderer) DrawBorder(dst *core.Screen) {
	dst.DrawBox(ArenaRect(dst), r.theme.BorderColor)
}

// DrawArena repaints the arena for s.
//
// While the game is active the arena is cleared first so the old tail
// disappears. Once the game is over nothing is cleared and the snake is not
// redrawn, which freezes the final frame. Before the first arrow key only
// the snake is painted, on top of the start screen.
func (r *Renderer) DrawArena(dst *core.Screen, s State) {
	area := ArenaRect(dst)
	over := s.Status == StatusOver

	if s.Started() {
		if !over {
			dst.ClearRect(area)
		}
		r.DrawBorder(dst)
		r.drawCell(dst, s.Food, r.theme.FoodGlyph, r.theme.FoodColor)
	}
	if over {
		return
	}
	for _, seg := range s.Snake {
		r.drawCell(dst, seg, r.theme.SnakeGlyph, r.theme.SnakeColor)
	}
}

// DrawMessage overlays a centered one-line message near the bottom of the arena.
func (r *Renderer) DrawMessage(dst *core.Screen, text string) {
	area := ArenaRect(dst)
	row := area.Y + area.H - 3
	dst.DrawTextCentered(area, row, text)
}

// drawCell paints an arena cell, translating arena coordinates to the screen.
func (r *Renderer) drawCell(dst *core.Screen, c Cell, glyph rune, color core.Color) {
	area := ArenaRect(dst)
	dst.SetStyled(area.X+c.Col, area.Y+c.Row, glyph, color, false)
}
