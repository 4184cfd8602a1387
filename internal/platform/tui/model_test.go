package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestModel(t *testing.T) (Model, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}
	m := NewModel(cfg, Options{Theme: snake.DefaultTheme(), Bell: true, Output: &out})
	return m, &out
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitSchedulesTick(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init should schedule the first tick")
	}
}

func TestModelFirstKeyOfBurstWins(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, cmd := update(t, m, TickMsg{})

	if isQuit(cmd) {
		t.Fatal("quit was pressed after the first key and should have been dropped")
	}
	if got := m.Game().State().Direction; got != snake.DirUp {
		t.Errorf("direction = %v, expected up", got)
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg{})

	if got := m.Game().State().Direction; got != snake.DirRight {
		t.Errorf("direction = %v, expected right (unbound key should not occupy the latch)", got)
	}
}

func TestModelQuitOnNextTick(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Error("q should wait for the next tick")
	}

	m, cmd = update(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Fatal("tick after q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty once quitting")
	}
}

// pausedModel returns a model whose game is running upwards and then paused.
func pausedModel(t *testing.T) Model {
	t.Helper()
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = update(t, m, TickMsg{})

	if !m.Game().Paused() {
		t.Fatalf("status = %v, expected paused", m.Game().State().Status)
	}
	return m
}

func TestModelPausedArrowDoesNotShadowResume(t *testing.T) {
	m := pausedModel(t)
	head := m.Game().State().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = update(t, m, TickMsg{})

	st := m.Game().State()
	if st.Status != snake.StatusRunning {
		t.Fatalf("status = %v, expected running after p", st.Status)
	}
	if st.Direction != snake.DirUp {
		t.Errorf("direction = %v, arrows pressed while paused should be dropped", st.Direction)
	}
	if st.Head() == head {
		t.Error("the resuming tick should also move the snake")
	}
}

func TestModelPausedArrowDoesNotShadowQuit(t *testing.T) {
	m := pausedModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	_, cmd := update(t, m, TickMsg{})

	if !isQuit(cmd) {
		t.Error("q pressed while paused should quit on the next tick")
	}
}

func TestModelCtrlCQuitsImmediately(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit at once")
	}
}

func TestModelTickKeepsRunning(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil || isQuit(cmd) {
		t.Fatal("an idle tick should schedule the next tick")
	}
	if !strings.Contains(m.View(), snake.MsgStart) {
		t.Error("start message should be visible")
	}
}

func TestModelResizeBeforeStart(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if w := m.Game().Screen().Width(); w != 100 {
		t.Fatalf("screen width = %d, expected 100 after resize", w)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if w := m.Game().Screen().Width(); w != 100 {
		t.Errorf("screen width = %d, running game should keep its size", w)
	}
}

func TestBellCmd(t *testing.T) {
	var buf bytes.Buffer
	if msg := bellCmd(&buf)(); msg != nil {
		t.Errorf("bellCmd returned %v, expected nil", msg)
	}
	if buf.String() != "\a" {
		t.Errorf("bell wrote %q, expected BEL", buf.String())
	}
}
