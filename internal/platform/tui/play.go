package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/game"
)

// playPhase tracks which screen the play model is rendering.
type playPhase int

const (
	phaseNameEntry playPhase = iota
	phaseShowing
	phaseInput
	phasePaused
	phaseGameOver
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	symbolStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// PlayModel is the Bubble Tea model for one game of Simon.
type PlayModel struct {
	ctrl      *game.Controller
	keyMapper *KeyMapper
	nameInput textinput.Model

	phase      playPhase
	showIndex  int // next sequence position to flash
	round      int // input round counter, tags timeout messages
	message    string
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewPlayModel creates a play model. With a non-empty player name the
// game starts immediately; otherwise a name prompt is shown first.
func NewPlayModel(ctrl *game.Controller, playerName string, width, height int) PlayModel {
	ti := textinput.New()
	ti.Placeholder = "Anonymous"
	ti.CharLimit = 20
	ti.Width = 24
	ti.Focus()

	m := PlayModel{
		ctrl:      ctrl,
		keyMapper: NewKeyMapper(),
		nameInput: ti,
		phase:     phaseNameEntry,
		width:     width,
		height:    height,
	}

	if playerName != "" {
		m.startGame(playerName)
	}
	return m
}

func (m *PlayModel) startGame(name string) {
	if err := m.ctrl.StartNewGame(name); err != nil {
		m.message = err.Error()
		return
	}
	m.phase = phaseShowing
	m.showIndex = 0
	m.message = ""
}

// Init starts the sequence display or the name prompt cursor.
func (m PlayModel) Init() tea.Cmd {
	if m.phase == phaseShowing {
		return showTickCmd(m.ctrl.SequenceSpeed())
	}
	return textinput.Blink
}

// Update handles messages and advances the play loop.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ShowTickMsg:
		return m.handleShowTick()

	case InputTimeoutMsg:
		return m.handleInputTimeout(msg)
	}

	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseNameEntry {
		return m.handleNameKey(msg)
	}

	action, symbol := m.keyMapper.MapPlayKey(msg, m.ctrl.Alphabet())

	switch action {
	case PlayActionQuit:
		m.ctrl.Forfeit()
		m.quitting = true
		return m, tea.Quit

	case PlayActionForfeit:
		if m.phase == phaseGameOver {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.ctrl.Forfeit()
		m.backToMenu = true
		return m, tea.Quit

	case PlayActionPause:
		return m.handlePauseToggle()

	case PlayActionRestart:
		if m.phase != phaseGameOver {
			return m, nil
		}
		if err := m.ctrl.Restart(); err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.phase = phaseShowing
		m.showIndex = 0
		m.message = ""
		return m, showTickCmd(m.ctrl.SequenceSpeed())

	case PlayActionReveal:
		return m.handleReveal()

	case PlayActionSymbol:
		return m.handleSymbol(symbol)
	}

	return m, nil
}

func (m PlayModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.backToMenu = msg.String() == "esc"
		m.quitting = !m.backToMenu
		return m, tea.Quit
	case "enter":
		m.startGame(m.nameInput.Value())
		if m.phase == phaseShowing {
			return m, showTickCmd(m.ctrl.SequenceSpeed())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m PlayModel) handlePauseToggle() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseShowing, phaseInput:
		if m.ctrl.TogglePause() {
			m.phase = phasePaused
		}
	case phasePaused:
		m.ctrl.TogglePause()
		// Re-show the sequence from the start so the player is not
		// dropped mid-round after a pause.
		if m.ctrl.State() == game.StateWaitingInput {
			m.phase = phaseInput
			m.round++
			return m, inputTimeoutCmd(m.ctrl.MaxInputTime(), m.round)
		}
		m.phase = phaseShowing
		m.showIndex = 0
		return m, showTickCmd(m.ctrl.SequenceSpeed())
	}
	return m, nil
}

func (m PlayModel) handleReveal() (tea.Model, tea.Cmd) {
	res := m.ctrl.RevealSequence()
	if !res.Allowed {
		return m, nil
	}

	if res.GameOver {
		m.phase = phaseGameOver
		m.message = "Out of lives."
		return m, nil
	}

	m.message = fmt.Sprintf("Sequence revealed. One life lost (%d left).", res.LivesRemaining)
	m.phase = phaseShowing
	m.showIndex = 0
	return m, showTickCmd(m.ctrl.SequenceSpeed())
}

func (m PlayModel) handleSymbol(symbol string) (tea.Model, tea.Cmd) {
	if m.phase != phaseInput {
		return m, nil
	}

	res := m.ctrl.ProcessInput(symbol)
	switch res.Outcome {
	case game.InputCorrect:
		m.message = ""
		return m, nil

	case game.InputWrong:
		if res.GameOver {
			m.phase = phaseGameOver
			m.message = "Wrong symbol. Game over."
			return m, nil
		}
		m.message = fmt.Sprintf("Wrong symbol at position %d. %d lives left.", res.Position+1, res.LivesRemaining)
		m.phase = phaseShowing
		m.showIndex = 0
		m.round++
		return m, showTickCmd(m.ctrl.SequenceSpeed())

	case game.InputSequenceComplete:
		m.message = fmt.Sprintf("Sequence complete! +%d points.", res.PointsEarned)
		m.phase = phaseShowing
		m.showIndex = 0
		m.round++
		return m, showTickCmd(m.ctrl.SequenceSpeed())

	case game.InputCapacityWin:
		m.phase = phaseGameOver
		m.message = "You memorized the longest possible sequence. You win!"
		return m, nil
	}

	return m, nil
}

func (m PlayModel) handleShowTick() (tea.Model, tea.Cmd) {
	if m.phase != phaseShowing {
		return m, nil
	}

	m.showIndex++
	if m.showIndex <= len(m.ctrl.Sequence()) {
		return m, showTickCmd(m.ctrl.SequenceSpeed())
	}

	// Display finished: collect input.
	m.ctrl.BeginInput()
	m.phase = phaseInput
	m.round++
	return m, inputTimeoutCmd(m.ctrl.MaxInputTime(), m.round)
}

func (m PlayModel) handleInputTimeout(msg InputTimeoutMsg) (tea.Model, tea.Cmd) {
	if m.phase != phaseInput || msg.Round != m.round {
		return m, nil
	}

	// Ran out of time: treated like a reveal, one life down.
	res := m.ctrl.RevealSequence()
	if res.GameOver {
		m.phase = phaseGameOver
		m.message = "Time ran out. Game over."
		return m, nil
	}

	m.message = fmt.Sprintf("Time ran out. One life lost (%d left).", res.LivesRemaining)
	m.phase = phaseShowing
	m.showIndex = 0
	return m, showTickCmd(m.ctrl.SequenceSpeed())
}

// View renders the current play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseNameEntry:
		return m.viewNameEntry()
	case phasePaused:
		return m.viewPaused()
	case phaseGameOver:
		return m.viewGameOver()
	default:
		return m.viewPlaying()
	}
}

func (m PlayModel) viewNameEntry() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S I M O N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("What is your name?", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.nameInput.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Enter: start  |  Esc: back"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m PlayModel) viewPaused() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render("PAUSED"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("P: resume  |  Esc: forfeit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m PlayModel) viewPlaying() string {
	stats := m.ctrl.PlayerStats()
	info := m.ctrl.SequenceInfo()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S I M O N"), m.width))
	b.WriteString("\n\n")

	status := fmt.Sprintf("%s  |  Score %d  |  Level %d  |  Lives %s  |  Streak %d",
		stats.Name, stats.Score, stats.Level, strings.Repeat("♥", stats.Lives), stats.CurrentStreak)
	b.WriteString(centerText(status, m.width))
	b.WriteString("\n\n")

	if m.phase == phaseShowing {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Watch the sequence (%d symbols)...", info.Length)), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.renderFlash(), m.width))
	} else {
		b.WriteString(centerText(fmt.Sprintf("Your turn: repeat all %d symbols.", info.Length), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.renderProgress(), m.width))
	}
	b.WriteString("\n\n")

	if m.message != "" {
		style := goodStyle
		if strings.Contains(m.message, "Wrong") || strings.Contains(m.message, "lost") {
			style = badStyle
		}
		b.WriteString(centerText(style.Render(m.message), m.width))
		b.WriteString("\n\n")
	}

	keys := strings.Join(m.ctrl.Alphabet(), " ")
	b.WriteString(centerText(dimStyle.Render(
		fmt.Sprintf("Keys: %s  |  R: reveal (costs a life)  |  P: pause  |  Esc: forfeit", keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// renderFlash shows the symbol currently being flashed, with its note
// when sound is enabled.
func (m PlayModel) renderFlash() string {
	seq := m.ctrl.Sequence()
	if m.showIndex >= len(seq) {
		return dimStyle.Render("...")
	}

	symbol := seq[m.showIndex]
	flash := symbolStyle.Render(symbol)
	if m.ctrl.SoundEnabled() {
		if note := symbolNote(symbol, m.ctrl.Alphabet()); note != "" {
			flash += "  " + dimStyle.Render(note)
		}
	}
	return fmt.Sprintf("%s  (%d/%d)", flash, m.showIndex+1, len(seq))
}

// renderProgress shows filled slots for entered symbols and blanks for
// the rest, without revealing the remaining sequence.
func (m PlayModel) renderProgress() string {
	total := m.ctrl.SequenceInfo().Length
	entered := m.ctrl.InputPosition()

	slots := make([]string, total)
	for i := 0; i < total; i++ {
		if i < entered {
			slots[i] = goodStyle.Render("●")
		} else {
			slots[i] = dimStyle.Render("○")
		}
	}
	return strings.Join(slots, " ")
}

func (m PlayModel) viewGameOver() string {
	stats := m.ctrl.PlayerStats()
	commit := m.ctrl.FinishGame()

	var b strings.Builder
	b.WriteString("\n")
	heading := "GAME OVER"
	if m.ctrl.Outcome() == game.OutcomeCapacityWin {
		heading = "YOU WIN"
	}
	b.WriteString(centerText(titleStyle.Render(heading), m.width))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(centerText(m.message, m.width))
		b.WriteString("\n\n")
	}

	lines := []string{
		fmt.Sprintf("Player    %s", stats.Name),
		fmt.Sprintf("Score     %d", stats.Score),
		fmt.Sprintf("Level     %d", stats.Level),
		fmt.Sprintf("Streak    %d (best)", stats.BestStreak),
		fmt.Sprintf("Accuracy  %.1f%%", stats.Accuracy),
		fmt.Sprintf("Duration  %s", stats.FormattedDuration),
	}
	for _, line := range lines {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if commit.IsNewRecord {
		b.WriteString(centerText(goodStyle.Render("NEW HIGH SCORE!"), m.width))
		b.WriteString("\n")
	}
	if commit.Rank > 0 {
		b.WriteString(centerText(fmt.Sprintf("Leaderboard rank: #%d", commit.Rank), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(centerText(dimStyle.Render("Ctrl+R: play again  |  Esc: menu  |  Ctrl+C: quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// IsQuitting reports whether the user asked to exit entirely.
func (m PlayModel) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the user asked to return to the menu.
func (m PlayModel) BackToMenu() bool { return m.backToMenu }

// RunPlay runs one interactive game in the local terminal.
func RunPlay(ctrl *game.Controller, playerName string, width, height int) error {
	model := NewPlayModel(ctrl, playerName, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
