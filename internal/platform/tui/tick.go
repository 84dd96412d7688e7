// Package tui provides the Bubble Tea integration for the Simon game.
// It handles the terminal UI loop, input mapping, and play orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ShowTickMsg advances the timed sequence display by one symbol.
type ShowTickMsg time.Time

// InputTimeoutMsg fires when the player runs out of input time. Round
// identifies the input round the deadline belongs to, so a stale
// timeout from an already-finished round is ignored.
type InputTimeoutMsg struct {
	Round int
}

// showTickCmd schedules the next sequence display step.
func showTickCmd(speedMs int) tea.Cmd {
	return tea.Tick(time.Duration(speedMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return ShowTickMsg(t)
	})
}

// inputTimeoutCmd schedules the input deadline for the given round.
func inputTimeoutCmd(maxInputMs, round int) tea.Cmd {
	return tea.Tick(time.Duration(maxInputMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return InputTimeoutMsg{Round: round}
	})
}
