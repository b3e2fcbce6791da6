package search

import (
	"container/heap"
	"sort"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// frontier is the open set of a run.
type frontier interface {
	push(c grid.Coord, priority, tie int)
	pop() (grid.Coord, bool)
	len() int
	// entries lists queued cells in the order they would be popped.
	entries() []grid.Coord
}

// fifo is the breadth-first queue; priorities are ignored.
type fifo struct {
	items []grid.Coord
}

func (q *fifo) push(c grid.Coord, _, _ int) {
	q.items = append(q.items, c)
}

func (q *fifo) pop() (grid.Coord, bool) {
	if len(q.items) == 0 {
		return grid.Coord{}, false
	}
	c := q.items[0]
	q.items = q.items[1:]
	return c, true
}

func (q *fifo) len() int { return len(q.items) }

func (q *fifo) entries() []grid.Coord {
	out := make([]grid.Coord, len(q.items))
	copy(out, q.items)
	return out
}

// pqItem orders by priority, then tie, then insertion sequence, which keeps
// equal-priority pops deterministic.
type pqItem struct {
	cell     grid.Coord
	priority int
	tie      int
	seq      uint64
}

func (a pqItem) less(b pqItem) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.tie != b.tie {
		return a.tie < b.tie
	}
	return a.seq < b.seq
}

type pqHeap []pqItem

func (h pqHeap) Len() int           { return len(h) }
func (h pqHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h pqHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pqHeap) Push(x any) { *h = append(*h, x.(pqItem)) }

func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// priorityQueue is a min-heap without decrease-key: a cheaper rediscovery
// pushes a second entry and the stale one is dropped when popped.
type priorityQueue struct {
	items pqHeap
	seq   uint64
}

func (q *priorityQueue) push(c grid.Coord, priority, tie int) {
	q.seq++
	heap.Push(&q.items, pqItem{cell: c, priority: priority, tie: tie, seq: q.seq})
}

func (q *priorityQueue) pop() (grid.Coord, bool) {
	if len(q.items) == 0 {
		return grid.Coord{}, false
	}
	item := heap.Pop(&q.items).(pqItem)
	return item.cell, true
}

func (q *priorityQueue) len() int { return len(q.items) }

func (q *priorityQueue) entries() []grid.Coord {
	sorted := make(pqHeap, len(q.items))
	copy(sorted, q.items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].less(sorted[j]) })

	out := make([]grid.Coord, len(sorted))
	for i, item := range sorted {
		out[i] = item.cell
	}
	return out
}
