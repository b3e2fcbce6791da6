package search

import (
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// BFS expands cells in discovery order. On a unit-cost grid the first path
// it finds is a shortest one.
type BFS struct {
	runner
}

func newBFS(o options) *BFS {
	return &BFS{runner: newRunner(KindBFS, o, func() frontier { return &fifo{} })}
}

// Start seeds the queue with the grid's start cell.
func (b *BFS) Start(g *grid.Grid) error {
	return b.begin(g, zeroPriority)
}

// ExecuteStep processes at most one queued cell.
func (b *BFS) ExecuteStep(g *grid.Grid, dt time.Duration) {
	b.step(g, dt, b.expand)
}

func (b *BFS) expand(g *grid.Grid, current grid.Coord) {
	for _, n := range g.Neighbors(current) {
		if b.finder.Has(n) {
			continue
		}
		b.enqueue(g, n, current, 0, 0)
	}
}
