package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wallsnake/internal/core"
	"github.com/vovakirdan/wallsnake/internal/games/snake"
)

// Model is the Bubble Tea model for one wallsnake session.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a model driving game at cfg.TickRate.
// A nil logger discards session events.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "state", m.game.DebugState())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("session quit", "score", m.game.Score(), "ticks", m.game.TickCount())
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	score := m.game.Score()
	empowered := m.game.Empowered()
	destroyed := m.game.DestroyedWalls()
	ticks := m.game.TickCount()

	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.game.TickCount() != ticks {
		m.logOutcome(score, empowered, destroyed)
	}
	return m, tickCmd(m.config.TickRate)
}

// logOutcome reports run-ending collisions, wall destruction and power changes.
func (m Model) logOutcome(prevScore int, wasEmpowered bool, prevDestroyed int) {
	switch action := m.game.LastAction(); action {
	case snake.ActionSelfCollision:
		m.logger.Info("run ended", "cause", action, "score", prevScore)
	case snake.ActionWallCollision:
		if wasEmpowered {
			m.logger.Debug("wall destroyed",
				"head", m.game.Head(),
				"walls", len(m.game.Walls()),
				"destroyed", prevDestroyed+1,
			)
		} else {
			m.logger.Info("run ended", "cause", action, "score", prevScore)
		}
	case snake.ActionAteFruit:
		m.logger.Debug("fruit eaten", "score", m.game.Score(), "walls", len(m.game.Walls()))
	}

	switch empowered := m.game.Empowered(); {
	case empowered && !wasEmpowered:
		m.logger.Info("empowered", "score", m.game.Score())
	case !empowered && wasEmpowered:
		m.logger.Debug("power lost", "score", m.game.Score())
	}
}

// View renders the game and the key legend.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	h := max(m.config.ScreenH-lipgloss.Height(helpView), 0)
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != h {
		m.screen.Resize(m.config.ScreenW, h)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Game returns the driven game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program in the alternate screen.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
