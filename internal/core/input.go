package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse buttons. The game only ever sees these, never raw terminal events.
type Action int

const (
	ActionNone       Action = iota
	ActionPress             // Mouse button down - start stretching the stick
	ActionRelease           // Mouse button up - drop the stick
	ActionStretch           // Space, Enter - press when idle, release while stretching
	ActionReset             // R key - restart the game
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the screen to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPress:
		return "Press"
	case ActionRelease:
		return "Release"
	case ActionStretch:
		return "Stretch"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
