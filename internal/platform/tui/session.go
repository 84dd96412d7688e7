package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/game"
	"github.com/vovakirdan/tui-simon/internal/leaderboard"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

// sessionScreen identifies the active submodel.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPlay
	screenScores
	screenHistory
	screenSettings
)

// SessionModel manages the full flow: menu -> play/scores/history/
// settings -> menu. It is the top-level model for both SSH sessions
// and the local interactive mode.
type SessionModel struct {
	ctrl     *game.Controller
	board    *leaderboard.Board
	store    *storage.Store
	username string
	width    int
	height   int

	screen   sessionScreen
	menu     MenuModel
	play     PlayModel
	scores   ScoreboardModel
	history  HistoryModel
	settings SettingsModel
	quitting bool
}

// NewSessionModel creates a new session model. The username seeds the
// player name prompt for SSH connections; pass "" locally.
func NewSessionModel(ctrl *game.Controller, board *leaderboard.Board, store *storage.Store, username string, width, height int) SessionModel {
	return SessionModel{
		ctrl:     ctrl,
		board:    board,
		store:    store,
		username: username,
		width:    width,
		height:   height,
		menu:     NewMenuModel(width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenSettings:
		return m.updateSettings(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is visible.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		name := m.ctrl.PlayerName()
		if name == "" {
			name = m.username
		}
		m.play = NewPlayModel(m.ctrl, name, m.width, m.height)
		m.screen = screenPlay
		return m, m.play.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.board, m.width, m.height)
		m.screen = screenScores
		return m, m.scores.Init()

	case ChoiceHistory:
		m.history = NewHistoryModel(m.store, m.width, m.height)
		m.screen = screenHistory
		return m, m.history.Init()

	case ChoiceSettings:
		m.settings = NewSettingsModel(m.ctrl, m.width, m.height)
		m.screen = screenSettings
		return m, m.settings.Init()
	}

	return m, cmd
}

func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = playModel
	}

	if m.play.BackToMenu() {
		return m.backToMenu()
	}
	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if model, ok := newModel.(ScoreboardModel); ok {
		m.scores = model
	}

	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if model, ok := newModel.(HistoryModel); ok {
		m.history = model
	}

	if m.history.IsGoingBack() {
		return m.backToMenu()
	}
	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if model, ok := newModel.(SettingsModel); ok {
		m.settings = model
	}

	if m.settings.IsGoingBack() {
		return m.backToMenu()
	}
	if m.settings.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.width, m.height)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenScores:
		return m.scores.View()
	case screenHistory:
		return m.history.View()
	case screenSettings:
		return m.settings.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the full interactive flow in the local terminal.
func RunSession(ctrl *game.Controller, board *leaderboard.Board, store *storage.Store, width, height int) error {
	model := NewSessionModel(ctrl, board, store, "", width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
