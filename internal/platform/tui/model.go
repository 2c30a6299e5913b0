package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kaya/internal/core"
	"github.com/vovakirdan/kaya/internal/games/rocket"
)

// Model is the Bubble Tea model hosting one rocket scene.
type Model struct {
	game     *rocket.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a Bubble Tea model for the given scene.
func NewModel(game *rocket.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		config: cfg,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.sceneRows())
	return m
}

// helpHeight returns the rows the help view occupies under the scene.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = core.Max(rows, len(col))
	}
	return rows
}

// sceneRows returns the rows left for the scene after the help view.
func (m Model) sceneRows() int {
	return core.Max(m.config.ScreenH-m.helpHeight(), 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameDuration())
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

// handleKey processes keyboard input. Taps reach the scene immediately,
// between frames, the way touches do.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionTap:
		m.game.Tap()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.sceneRows())
	case core.ActionScreenshot:
		m.saveScreenshot()
	}
	return m, nil
}

// handleResize only rescales the view. The scene keeps its fixed geometry.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.sceneRows())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the scene by one fixed step and schedules the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.config.FrameSeconds())
	return m, tickCmd(m.config.FrameDuration())
}

// saveScreenshot writes the current frame to the XDG state directory.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	name := fmt.Sprintf("kaya/screenshots/rocket_%s.txt", time.Now().Format("20060102_150405"))
	path, err := xdg.StateFile(name)
	if err != nil {
		m.logger.Warn("screenshot directory unavailable", "err", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given scene.
func Run(game *rocket.Game, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
