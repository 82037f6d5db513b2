package core

// Action represents a semantic input, abstracted from physical key presses.
// Both adapters translate their native key events into actions.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W
	ActionDown         // Down arrow, S
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionQuit         // Q, Esc, Ctrl+C
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action moves the player.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}
