package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation only consumes the intent actions (Left through Start); the
// platform handles the rest itself.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - steer left
	ActionRight        // D, Right arrow - steer right
	ActionUp           // W, Up arrow - throttle up
	ActionDown         // S, Down arrow - throttle down
	ActionFire         // Space - fire
	ActionStart        // Enter - start from menu, restart after game over
	ActionPause        // P - pause/unpause (platform)
	ActionBack         // B, Escape - leave the current screen (platform)
	ActionQuit         // Q, Ctrl+C - exit game/session (platform)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the intent flags for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
