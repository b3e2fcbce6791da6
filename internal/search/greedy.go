package search

import (
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Greedy always expands the cell that looks closest to the goal. Paths are
// found quickly but are not guaranteed to be shortest.
type Greedy struct {
	runner
}

func newGreedy(o options) *Greedy {
	return &Greedy{runner: newRunner(KindGreedy, o, func() frontier { return &priorityQueue{} })}
}

// Start seeds the queue with the start cell.
func (s *Greedy) Start(g *grid.Grid) error {
	return s.begin(g, g.Heuristic)
}

// ExecuteStep processes at most one queued cell.
func (s *Greedy) ExecuteStep(g *grid.Grid, dt time.Duration) {
	s.step(g, dt, s.expand)
}

func (s *Greedy) expand(g *grid.Grid, current grid.Coord) {
	for _, n := range g.Neighbors(current) {
		if s.finder.Has(n) {
			continue
		}
		s.enqueue(g, n, current, g.Heuristic(n, s.goal), 0)
	}
}
