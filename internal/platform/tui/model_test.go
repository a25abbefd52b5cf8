package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wallsnake/internal/config"
	"github.com/vovakirdan/wallsnake/internal/core"
	"github.com/vovakirdan/wallsnake/internal/games/snake"
)

func newTestModel(t *testing.T, cfg config.SnakeConfig, logger *log.Logger) Model {
	t.Helper()
	game, err := snake.NewSeeded(cfg, 1)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 8, Seed: 1}
	return NewModel(game, rc, logger)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, config.DefaultSnakeConfig(), nil)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Game().TickCount() != 1 {
		t.Errorf("TickCount() = %d, expected 1", m.Game().TickCount())
	}
	if m.Game().Head() != core.P(6, 5) {
		t.Errorf("head at %v, expected (6,5)", m.Game().Head())
	}
}

func TestModelKeyTurnsOnNextTick(t *testing.T) {
	m := newTestModel(t, config.DefaultSnakeConfig(), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Game().Direction() != core.DirRight {
		t.Error("direction should not change before the tick")
	}

	m, _ = update(t, m, TickMsg{})
	if m.Game().Direction() != core.DirUp || m.Game().Head() != core.P(5, 4) {
		t.Errorf("snake at %v facing %v, expected (5,4) up", m.Game().Head(), m.Game().Direction())
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, config.DefaultSnakeConfig(), nil)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if !m.Game().Paused() || m.Game().TickCount() != 0 {
		t.Errorf("paused game ticked: paused=%v ticks=%d", m.Game().Paused(), m.Game().TickCount())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultSnakeConfig(), nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, config.DefaultSnakeConfig(), nil)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the HUD score")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the key legend")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show the too-small message")
	}
}

func TestModelLogsRunEnd(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	cfg := config.DefaultSnakeConfig()
	cfg.Snake.StartX, cfg.Snake.StartY = 9, 10
	cfg.Walls.Size = 1
	m := newTestModel(t, cfg, logger)

	// Step right into the single-cell wall at (10,10)
	update(t, m, TickMsg{})

	if !strings.Contains(buf.String(), "run ended") {
		t.Errorf("expected a run ended log line, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "wall_collision") {
		t.Errorf("expected the collision cause in the log, got %q", buf.String())
	}
}
