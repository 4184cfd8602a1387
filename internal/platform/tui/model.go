package tui

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures a game model.
type Options struct {
	Theme  snake.Theme
	Bell   bool        // Ring the terminal bell on food and death
	Output io.Writer   // Where the bell is written; defaults to os.Stdout
	Logger *log.Logger // Defaults to a discarding logger
}

// Model is the Bubble Tea model running one snake game.
//
// Key messages only fill the key latch; the game reads it once per tick, so
// a burst of keys between two ticks yields its first key.
type Model struct {
	game     *snake.Game
	food     snake.FoodSource
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	latch    core.KeyLatch
	quitting bool
}

// NewModel creates a new Bubble Tea model for a game sized by cfg.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	food := snake.NewRandomFood(cfg.Seed)
	return Model{
		game:   snake.New(cfg, opts.Theme, food),
		food:   food,
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
	}
}

// Init starts the tick loop. The first tick fires immediately.
func (m Model) Init() tea.Cmd {
	m.opts.Logger.Info("game started", "width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.opts.Logger.Info("interrupted", m.game.Snapshot().KeyVals()...)
		m.quitting = true
		return m, tea.Quit
	}

	if k := m.keys.Key(msg); m.game.Accepts(k) {
		m.latch.Push(k)
	}
	return m, nil
}

// handleResize rebuilds the game for the new size until the first arrow key.
// Once a game is under way the arena keeps its size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if m.game.Started() {
		return m, nil
	}
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.game = snake.New(m.config, m.opts.Theme, m.food)
	m.opts.Logger.Debug("arena resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one game tick and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	out, wait := m.game.Advance(m.latch.Next())

	if out.Exit {
		m.opts.Logger.Info("game ended", m.game.Snapshot().KeyVals()...)
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case out.Died:
		m.opts.Logger.Info("game over", m.game.Snapshot().KeyVals()...)
	case out.Ate:
		m.opts.Logger.Debug("food eaten", "score", m.game.Score())
	case out.Paused:
		m.opts.Logger.Debug("paused")
	case out.Resumed:
		m.opts.Logger.Debug("resumed")
	}

	cmds := []tea.Cmd{tickCmd(wait)}
	if m.opts.Bell && out.Bell() {
		cmds = append(cmds, bellCmd(m.opts.Output))
	}
	return m, tea.Batch(cmds...)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.game.Screen())
}

// Game returns the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run plays one game on the local terminal and returns when it ends.
// Bubble Tea restores the terminal on every exit path, panics included.
func Run(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
