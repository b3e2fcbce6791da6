package search

import (
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Dijkstra expands the cheapest known cell first.
type Dijkstra struct {
	runner
	costs map[grid.Coord]int
}

func newDijkstra(o options) *Dijkstra {
	d := &Dijkstra{runner: newRunner(KindDijkstra, o, func() frontier { return &priorityQueue{} })}
	d.costs = make(map[grid.Coord]int)
	return d
}

// Start seeds the queue with the start cell at cost zero.
func (d *Dijkstra) Start(g *grid.Grid) error {
	if err := d.begin(g, zeroPriority); err != nil {
		return err
	}
	d.costs[d.start] = 0
	return nil
}

// ExecuteStep processes at most one queued cell.
func (d *Dijkstra) ExecuteStep(g *grid.Grid, dt time.Duration) {
	d.step(g, dt, d.expand)
}

// Reset drops the cost table along with the shared state.
func (d *Dijkstra) Reset(g *grid.Grid) {
	d.runner.Reset(g)
	d.costs = make(map[grid.Coord]int)
}

func (d *Dijkstra) expand(g *grid.Grid, current grid.Coord) {
	for _, n := range g.Neighbors(current) {
		if d.closed[n] {
			continue
		}
		cost := d.costs[current] + g.Cost(current, n)
		if known, seen := d.costs[n]; seen && cost >= known {
			continue
		}
		d.costs[n] = cost
		d.enqueue(g, n, current, cost, 0)
	}
}
