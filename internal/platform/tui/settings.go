package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/game"
)

const speedStep = 100

// SettingsModel is the Bubble Tea model for the settings screen. All
// changes route through the controller's clamped setters.
type SettingsModel struct {
	ctrl      *game.Controller
	cursor    int
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(ctrl *game.Controller, width, height int) SettingsModel {
	return SettingsModel{
		ctrl:   ctrl,
		width:  width,
		height: height,
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "esc", "b":
		m.goingBack = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < 2 {
			m.cursor++
		}

	case "left", "h":
		m.adjust(-1)

	case "right", "l":
		m.adjust(1)

	case "enter", " ":
		if m.cursor == 0 {
			m.ctrl.SetSoundEnabled(!m.ctrl.SoundEnabled())
		}
	}

	return m, nil
}

// adjust changes the setting under the cursor by one step in the
// given direction.
func (m *SettingsModel) adjust(direction int) {
	switch m.cursor {
	case 0:
		m.ctrl.SetSoundEnabled(!m.ctrl.SoundEnabled())
	case 1:
		m.ctrl.SetSequenceSpeed(m.ctrl.SequenceSpeed() + direction*speedStep)
	case 2:
		m.ctrl.SetMaxInputTime(m.ctrl.MaxInputTime() + direction*1000)
	}
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	sound := "off"
	if m.ctrl.SoundEnabled() {
		sound = "on"
	}

	rows := []string{
		fmt.Sprintf("Sound           %s", sound),
		fmt.Sprintf("Sequence speed  %d ms", m.ctrl.SequenceSpeed()),
		fmt.Sprintf("Input time      %d ms", m.ctrl.MaxInputTime()),
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Left/Right: adjust  |  Esc: back"), m.width))
	b.WriteString("\n")

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SettingsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}
