package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionTap               // Space, Up, W, Enter - the single game input
	ActionHelp              // ? - toggle the full help view
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the current frame to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
