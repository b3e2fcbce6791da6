package session

// Phase is where the user is in setting up and running a search.
// SetStart -> SetGoal -> StartSimulation -> EndSimulation; Reset goes back
// to SetStart.
type Phase uint8

const (
	PhaseSetStart Phase = iota
	PhaseSetGoal
	PhaseStartSimulation
	PhaseEndSimulation
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetStart:
		return "set start"
	case PhaseSetGoal:
		return "set goal"
	case PhaseStartSimulation:
		return "start simulation"
	case PhaseEndSimulation:
		return "simulation"
	default:
		return "unknown"
	}
}

// Hint is the instruction shown to the user in this phase.
func (p Phase) Hint() string {
	switch p {
	case PhaseSetStart:
		return "Place the start point"
	case PhaseSetGoal:
		return "Place the goal point"
	case PhaseStartSimulation:
		return "Add walls, then start the search"
	default:
		return ""
	}
}
