// Package snake implements the snake game: its state, the per-tick rules and
// the renderer that paints it into a core.Screen. Drivers in internal/platform
// feed it keys and wait between ticks for the delay it asks for.
package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Loop timings.
const (
	TickInterval  = 200 * time.Millisecond // One movement step
	PausePoll     = 100 * time.Millisecond // Key polling while paused
	GameOverDelay = 3 * time.Second        // Final frame display before exit
)

// Game is the main loop state machine: NotStarted -> Running <-> Paused,
// Running -> Over -> exit, and any state -> exit on quit.
//
// It owns the game state and a persistent screen buffer. Each Advance reads
// one key, applies Tick and repaints only what the new state requires.
type Game struct {
	state    State
	food     FoodSource
	renderer *Renderer
	screen   *core.Screen
	tick     uint64
}

// New creates a game sized for cfg and paints the start screen.
func New(cfg core.RuntimeConfig, theme Theme, food FoodSource) *Game {
	g := &Game{
		state:    NewState(ArenaFor(cfg.ScreenW, cfg.ScreenH), food),
		food:     food,
		renderer: NewRenderer(theme),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}

	g.renderer.DrawScore(g.screen, g.state.Score)
	g.renderer.DrawBorder(g.screen)
	g.renderer.DrawMessage(g.screen, MsgStart)
	g.renderer.DrawLegend(g.screen)
	return g
}

// Advance runs one tick with key and returns what happened together with
// the time to wait before the next Advance. After the game-over delay the
// next Advance reports Exit.
func (g *Game) Advance(key core.Key) (Outcome, time.Duration) {
	if g.state.Status == StatusOver {
		return Outcome{Exit: true}, 0
	}

	g.tick++
	next, out := Tick(g.state, key, g.food)
	g.state = next
	if out.Exit {
		return out, 0
	}

	g.render(out)

	switch {
	case out.Died:
		return out, GameOverDelay
	case g.state.Status == StatusPaused:
		return out, PausePoll
	default:
		return out, TickInterval
	}
}

// render repaints the screen after a tick.
func (g *Game) render(out Outcome) {
	switch {
	case out.Paused:
		g.renderer.DrawMessage(g.screen, MsgPaused)
		return
	case g.state.Status == StatusPaused:
		return
	}

	// The game-over message goes under the final border and food.
	if out.Died {
		g.renderer.DrawMessage(g.screen, MsgGameOver)
	}
	g.renderer.DrawArena(g.screen, g.state)
	g.renderer.DrawScore(g.screen, g.state.Score)
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Screen returns the screen buffer holding the current frame.
func (g *Game) Screen() *core.Screen {
	return g.screen
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// Paused reports whether the game is waiting for a second pause press.
func (g *Game) Paused() bool {
	return g.state.Status == StatusPaused
}

// Accepts reports whether key can affect the next Advance. While paused the
// game only listens for pause and quit, so drivers drop arrows instead of
// letting them shadow a later pause or quit in the same tick.
func (g *Game) Accepts(key core.Key) bool {
	if key == core.KeyNone {
		return false
	}
	return !(g.Paused() && key.IsDirection())
}

// Started reports whether the first arrow key has been accepted.
func (g *Game) Started() bool {
	return g.state.Started()
}
