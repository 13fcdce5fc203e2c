package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k
	ActionDown           // S, Down arrow, j
	ActionLeft           // A, Left arrow, h
	ActionRight          // D, Right arrow, l
	ActionConfirm        // Enter, Space
	ActionBack           // Esc
	ActionYes            // Y
	ActionNo             // N
	ActionScores         // Tab
	ActionQuit           // Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerMotion PointerKind = iota
	PointerPress
	PointerRelease
)

// PointerEvent is a pointer action at a position in screen cells.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}
