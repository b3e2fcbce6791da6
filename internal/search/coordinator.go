package search

import (
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// DefaultInterval is the simulated time between two search steps.
const DefaultInterval = 100 * time.Millisecond

// State is the lifecycle of a run.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Coordinator paces a run and tracks whether it is finished.
// Idle -> Running -> Completed; Completed is final.
type Coordinator struct {
	state       State
	found       bool
	steps       uint32
	accumulated time.Duration
	interval    time.Duration
}

// NewCoordinator creates an idle coordinator that allows one step per interval.
func NewCoordinator(interval time.Duration) *Coordinator {
	if interval < 0 {
		interval = 0
	}
	return &Coordinator{interval: interval}
}

// StartProcessing moves an idle coordinator to running.
func (c *Coordinator) StartProcessing() {
	if c.state == StateIdle {
		c.state = StateRunning
	}
}

// IsReadyToExecute accumulates dt and reports whether a step is due.
// The accumulator restarts from zero each time a step is granted.
func (c *Coordinator) IsReadyToExecute(dt time.Duration) bool {
	if c.state != StateRunning {
		return false
	}
	c.accumulated += dt
	if c.accumulated < c.interval {
		return false
	}
	c.accumulated = 0
	return true
}

// ProcessGoalReached completes the run when current is the goal.
func (c *Coordinator) ProcessGoalReached(current, goal grid.Coord) bool {
	if current != goal {
		return false
	}
	c.found = true
	c.state = StateCompleted
	return true
}

// MarkUnreachable completes the run without a path.
func (c *Coordinator) MarkUnreachable() {
	c.found = false
	c.state = StateCompleted
}

// IncreaseStepCount counts one processed frontier entry.
func (c *Coordinator) IncreaseStepCount() {
	c.steps++
}

// State returns the current lifecycle state.
func (c *Coordinator) State() State { return c.state }

// HasCompleted reports whether the run reached a terminal state.
func (c *Coordinator) HasCompleted() bool { return c.state == StateCompleted }

// Found reports whether the run ended on the goal.
func (c *Coordinator) Found() bool { return c.found }

// Steps returns the number of processed frontier entries.
func (c *Coordinator) Steps() uint32 { return c.steps }

// Interval returns the pacing interval.
func (c *Coordinator) Interval() time.Duration { return c.interval }
