package core

// Action represents a semantic viewer action, abstracted from physical key presses.
// The arena is advanced by an external driver, so actions steer the driver
// rather than any robot.
type Action int

const (
	ActionNone    Action = iota
	ActionStep           // Space, Enter, N - advance exactly one tick
	ActionAuto           // A - toggle auto-advance at the configured tick rate
	ActionRestart        // R - start a new match after the current one ends
	ActionHistory        // H - open the results history
	ActionBack           // B, Escape - leave the history view
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStep:
		return "Step"
	case ActionAuto:
		return "Auto"
	case ActionRestart:
		return "Restart"
	case ActionHistory:
		return "History"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
