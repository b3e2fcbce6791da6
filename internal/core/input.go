package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // move the cursor up
	ActionDown            // move the cursor down
	ActionLeft            // move the cursor left
	ActionRight           // move the cursor right
	ActionPrimary         // place start, then goal, then launch the search
	ActionObstacle        // place an obstacle under the cursor
	ActionReset           // cancel the run and clear the grid
	ActionNextAlgo        // switch to the next algorithm while idle
	ActionQuit            // leave the session
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
	case ActionPrimary:
		return "Primary"
	case ActionObstacle:
		return "Obstacle"
	case ActionReset:
		return "Reset"
	case ActionNextAlgo:
		return "NextAlgo"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one frame.
type InputFrame struct {
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
