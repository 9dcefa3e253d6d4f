package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested sandbox action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionStop
	ActionPause
	ActionRegenerate
	ActionNextArena
	ActionPrevArena
	ActionQuit
)

// keyToAction maps a tcell key event to a sandbox action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyTab:
		return ActionNextArena
	case tcell.KeyBacktab:
		return ActionPrevArena
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 'y', 'Y':
		return ActionMoveNW
	case 'u', 'U':
		return ActionMoveNE
	case 'b', 'B':
		return ActionMoveSW
	case 'n', 'N':
		return ActionMoveSE
	case ' ', '.':
		return ActionStop
	case 'p', 'P':
		return ActionPause
	case 'r', 'R':
		return ActionRegenerate
	case ']':
		return ActionNextArena
	case '[':
		return ActionPrevArena
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to a steering direction.
// The second result is false for non-movement actions.
func actionToDelta(a Action) (int, int, bool) {
	switch a {
	case ActionMoveN:
		return 0, -1, true
	case ActionMoveS:
		return 0, 1, true
	case ActionMoveE:
		return 1, 0, true
	case ActionMoveW:
		return -1, 0, true
	case ActionMoveNE:
		return 1, -1, true
	case ActionMoveNW:
		return -1, -1, true
	case ActionMoveSE:
		return 1, 1, true
	case ActionMoveSW:
		return -1, 1, true
	case ActionStop:
		return 0, 0, true
	}
	return 0, 0, false
}
