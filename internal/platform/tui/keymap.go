package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// PlayAction represents an in-game action derived from input.
type PlayAction int

const (
	PlayActionNone PlayAction = iota
	PlayActionSymbol
	PlayActionReveal
	PlayActionPause
	PlayActionRestart
	PlayActionForfeit
	PlayActionQuit
)

// MapPlayKey translates a key to a play action. Symbol keys match
// case-insensitively against the alphabet; number keys 1..9 select
// symbols by position. The matched symbol is returned alongside.
func (km *KeyMapper) MapPlayKey(msg tea.KeyMsg, alphabet []string) (PlayAction, string) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return PlayActionQuit, ""
	case "esc":
		return PlayActionForfeit, ""
	case "p":
		return PlayActionPause, ""
	case "r":
		return PlayActionReveal, ""
	case "ctrl+r":
		return PlayActionRestart, ""
	}

	// Number keys pick by alphabet position.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(alphabet) {
			return PlayActionSymbol, alphabet[idx]
		}
	}

	for _, symbol := range alphabet {
		if strings.EqualFold(key, symbol) {
			return PlayActionSymbol, symbol
		}
	}

	return PlayActionNone, ""
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
