package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/biomass/internal/core"
)

// KeyMapper translates Bubble Tea key messages to host actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"ctrl+c": core.ActionQuit,
		"q":      core.ActionQuit,
		"up":     core.ActionUp,
		"w":      core.ActionUp,
		"k":      core.ActionUp,
		"down":   core.ActionDown,
		"s":      core.ActionDown,
		"j":      core.ActionDown,
		" ":      core.ActionEat,
		"e":      core.ActionEat,
		"f":      core.ActionClick,
		"enter":  core.ActionConfirm,
		"tab":    core.ActionTab,
		"b":      core.ActionBack,
		"esc":    core.ActionBack,
		"p":      core.ActionPause,
		"r":      core.ActionRestart,
	}}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame adds the key's action to frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}
