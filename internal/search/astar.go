package search

import (
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// AStar orders the frontier by cost so far plus the Manhattan estimate to
// the goal. Equal estimates prefer the cell nearer the goal.
type AStar struct {
	runner
	costs map[grid.Coord]int
}

func newAStar(o options) *AStar {
	a := &AStar{runner: newRunner(KindAStar, o, func() frontier { return &priorityQueue{} })}
	a.costs = make(map[grid.Coord]int)
	return a
}

// Start seeds the queue with the start cell.
func (a *AStar) Start(g *grid.Grid) error {
	if err := a.begin(g, g.Heuristic); err != nil {
		return err
	}
	a.costs[a.start] = 0
	return nil
}

// ExecuteStep processes at most one queued cell.
func (a *AStar) ExecuteStep(g *grid.Grid, dt time.Duration) {
	a.step(g, dt, a.expand)
}

// Reset drops the cost table along with the shared state.
func (a *AStar) Reset(g *grid.Grid) {
	a.runner.Reset(g)
	a.costs = make(map[grid.Coord]int)
}

func (a *AStar) expand(g *grid.Grid, current grid.Coord) {
	for _, n := range g.Neighbors(current) {
		if a.closed[n] {
			continue
		}
		cost := a.costs[current] + g.Cost(current, n)
		if known, seen := a.costs[n]; seen && cost >= known {
			continue
		}
		a.costs[n] = cost
		h := g.Heuristic(n, a.goal)
		a.enqueue(g, n, current, cost+h, h)
	}
}
