package search

import "github.com/vovakirdan/tui-pathfinder/internal/grid"

// Pathfinder keeps the predecessor of every discovered cell and rebuilds
// the route once the goal is reached.
type Pathfinder struct {
	preds map[grid.Coord]*grid.Coord
	path  []grid.Coord
}

// NewPathfinder creates an empty predecessor map.
func NewPathfinder() *Pathfinder {
	return &Pathfinder{preds: make(map[grid.Coord]*grid.Coord)}
}

// Record sets the predecessor of c. A nil pred marks the start cell.
func (p *Pathfinder) Record(c grid.Coord, pred *grid.Coord) {
	if pred == nil {
		p.preds[c] = nil
		return
	}
	prev := *pred
	p.preds[c] = &prev
}

// Has reports whether c has been discovered.
func (p *Pathfinder) Has(c grid.Coord) bool {
	_, ok := p.preds[c]
	return ok
}

// Len returns the number of discovered cells.
func (p *Pathfinder) Len() int {
	return len(p.preds)
}

// Reconstruct walks from goal back to start and returns the cells in
// goal-to-start order. A goal that was never discovered yields an empty path.
// Any other gap in the chain panics with *BrokenChainError.
func (p *Pathfinder) Reconstruct(start, goal grid.Coord) []grid.Coord {
	p.path = nil
	if !p.Has(goal) {
		return nil
	}

	path := []grid.Coord{goal}
	current := goal
	for current != start {
		pred, ok := p.preds[current]
		switch {
		case !ok:
			panic(&BrokenChainError{At: current, Reason: "no recorded predecessor"})
		case pred == nil:
			panic(&BrokenChainError{At: current, Reason: "chain ends before the start"})
		case len(path) > len(p.preds):
			panic(&BrokenChainError{At: current, Reason: "cycle in predecessor map"})
		}
		current = *pred
		path = append(path, current)
	}

	p.path = path
	return path
}

// Path returns the last reconstructed path, goal first.
func (p *Pathfinder) Path() []grid.Coord {
	return p.path
}
