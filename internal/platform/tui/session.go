package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-cycle/internal/core"
)

// SessionOptions configures a menu -> game -> menu session.
type SessionOptions struct {
	Title   string
	Levels  []string
	NewGame GameFactory
	Runtime core.RuntimeConfig

	// StartLevel skips the menu when set.
	StartLevel string

	// Renderer is the lipgloss renderer of the client terminal.
	// Nil means the local terminal.
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// SessionModel manages the full session flow: menu -> game -> menu.
// The same model is used locally and for every SSH connection.
type SessionModel struct {
	opts      SessionOptions
	config    core.RuntimeConfig
	renderer  *ScreenRenderer
	menu      LevelMenuModel
	gameModel *GameModel
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Title == "" {
		opts.Title = "Snake Cycle"
	}
	renderer := NewScreenRenderer(opts.Renderer)
	m := SessionModel{
		opts:     opts,
		config:   opts.Runtime,
		renderer: renderer,
	}
	m.menu = m.newMenu()
	if opts.StartLevel != "" {
		m.startGame(opts.StartLevel)
	}
	return m
}

func (m SessionModel) newMenu() LevelMenuModel {
	return NewLevelMenuModel(m.opts.Title, m.opts.Levels, m.config.ScreenW, m.config.ScreenH, m.renderer)
}

func (m *SessionModel) startGame(level string) {
	gm := NewGameModel(m.opts.NewGame(level), m.config, m.renderer, m.opts.Logger)
	m.gameModel = &gm
	m.inGame = true
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.inGame {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(LevelMenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if choice := m.menu.Selected(); choice != nil {
		m.opts.Logger.Debug("starting game", "level", choice.Level)
		m.startGame(choice.Level)
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// Run starts a local session on the current terminal.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
