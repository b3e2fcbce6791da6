// Package search implements the step-paced grid search algorithms.
//
// Every algorithm follows the same contract: Start seeds the frontier from
// the grid's start cell, ExecuteStep pops at most one cell per call once the
// pacing interval has elapsed, and the run ends either on the goal or when the
// frontier runs dry.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Algorithm is one search strategy driven frame by frame.
type Algorithm interface {
	Name() string
	ID() string
	Start(g *grid.Grid) error
	ExecuteStep(g *grid.Grid, dt time.Duration)
	Reset(g *grid.Grid)
	HasCompleted() bool
	Statistics() string
	Stats() Stats
	Snapshot() Snapshot
}

// Kind names one member of the fixed set of algorithms.
type Kind uint8

const (
	KindBFS Kind = iota
	KindDijkstra
	KindGreedy
	KindAStar
)

// Kinds returns every algorithm kind in menu order.
func Kinds() []Kind {
	return []Kind{KindBFS, KindDijkstra, KindGreedy, KindAStar}
}

// ID returns the short identifier used by the CLI and storage.
func (k Kind) ID() string {
	switch k {
	case KindBFS:
		return "bfs"
	case KindDijkstra:
		return "dijkstra"
	case KindGreedy:
		return "greedy"
	case KindAStar:
		return "astar"
	default:
		return "unknown"
	}
}

// Name returns the display name.
func (k Kind) Name() string {
	switch k {
	case KindBFS:
		return "BFS"
	case KindDijkstra:
		return "Dijkstra"
	case KindGreedy:
		return "Greedy Best First Search"
	case KindAStar:
		return "A*"
	default:
		return "Unknown"
	}
}

// ParseKind maps an identifier back to its kind.
func ParseKind(id string) (Kind, error) {
	for _, k := range Kinds() {
		if k.ID() == id {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, id)
}

type options struct {
	interval time.Duration
}

// Option configures a new algorithm.
type Option func(*options)

// WithInterval sets the simulated time between two steps.
// Zero makes every ExecuteStep call a step.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.interval = d
		}
	}
}

// New constructs an idle algorithm of the given kind.
func New(k Kind, opts ...Option) (Algorithm, error) {
	o := options{interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}

	switch k {
	case KindBFS:
		return newBFS(o), nil
	case KindDijkstra:
		return newDijkstra(o), nil
	case KindGreedy:
		return newGreedy(o), nil
	case KindAStar:
		return newAStar(o), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
}

// Stats are the numbers behind Statistics.
type Stats struct {
	Algorithm  string
	Found      bool
	Completed  bool
	PathLength int
	Steps      uint32
	Visited    int
	Interval   time.Duration
	Elapsed    time.Duration
}

// Snapshot is a copy of a run's observable state.
type Snapshot struct {
	State    State
	Found    bool
	Steps    uint32
	Frontier []grid.Coord
	Visited  []grid.Coord
	Path     []grid.Coord
}

// FormatStatistics renders the summary shown once a run ends.
func FormatStatistics(name string, s Stats) string {
	var b strings.Builder
	if s.Completed && !s.Found {
		b.WriteString("Goal is unreachable!\n\n")
	}
	fmt.Fprintf(&b, "%s Statistics:\n\n", name)
	fmt.Fprintf(&b, " - Path length: %d\n", s.PathLength)
	fmt.Fprintf(&b, " - Steps taken: %d\n", s.Steps)
	fmt.Fprintf(&b, " - Visited nodes: %d\n", s.Visited)
	fmt.Fprintf(&b, " - Time per iteration: %.2f sec\n", s.Interval.Seconds())
	fmt.Fprintf(&b, " - Total time: %.2f sec", s.Elapsed.Seconds())
	return b.String()
}

// expandFunc applies a variant's relaxation rule to the neighbors of current.
type expandFunc func(g *grid.Grid, current grid.Coord)

// runner is the state and step loop shared by every variant.
type runner struct {
	kind   Kind
	opts   options
	coord  *Coordinator
	finder *Pathfinder
	open   frontier
	newQ   func() frontier
	closed map[grid.Coord]bool
	order  []grid.Coord
	start  grid.Coord
	goal   grid.Coord
}

func newRunner(k Kind, o options, newQ func() frontier) runner {
	r := runner{kind: k, opts: o, newQ: newQ}
	r.clear()
	return r
}

func (r *runner) clear() {
	r.coord = NewCoordinator(r.opts.interval)
	r.finder = NewPathfinder()
	r.open = r.newQ()
	r.closed = make(map[grid.Coord]bool)
	r.order = nil
	r.start, r.goal = grid.Coord{}, grid.Coord{}
}

func (r *runner) Name() string { return r.kind.Name() }

func (r *runner) ID() string { return r.kind.ID() }

// priorityFunc gives the frontier priority of the start cell.
type priorityFunc func(start, goal grid.Coord) int

func zeroPriority(_, _ grid.Coord) int { return 0 }

// begin validates the endpoints and seeds the frontier with the start cell.
// A start outside the grid is never traversed: the run starts with an empty
// frontier and completes unreachable on its first step.
func (r *runner) begin(g *grid.Grid, priority priorityFunc) error {
	start, okStart := g.Start()
	goal, okGoal := g.Goal()
	if !okStart || !okGoal {
		return ErrInvalidInput
	}
	if r.coord.State() != StateIdle {
		return nil
	}
	r.start, r.goal = start, goal
	if !g.IsObstacle(start) {
		r.finder.Record(start, nil)
		r.open.push(start, priority(start, goal), 0)
	}
	r.coord.StartProcessing()
	return nil
}

// step runs the shared iteration and defers neighbor handling to expand.
func (r *runner) step(g *grid.Grid, dt time.Duration, expand expandFunc) {
	if !r.coord.IsReadyToExecute(dt) {
		return
	}

	current, ok := r.popOpen()
	if !ok {
		r.coord.MarkUnreachable()
		return
	}
	r.coord.IncreaseStepCount()

	if r.coord.ProcessGoalReached(current, r.goal) {
		for _, c := range r.finder.Reconstruct(r.start, r.goal) {
			g.MarkPath(c)
		}
		return
	}

	r.closed[current] = true
	r.order = append(r.order, current)
	g.MarkVisited(current)
	expand(g, current)

	if r.open.len() == 0 {
		r.coord.MarkUnreachable()
	}
}

// popOpen pops the next cell that has not been expanded yet.
func (r *runner) popOpen() (grid.Coord, bool) {
	for {
		c, ok := r.open.pop()
		if !ok {
			return grid.Coord{}, false
		}
		if !r.closed[c] {
			return c, true
		}
	}
}

// enqueue adds c to the frontier and shows it on the grid.
func (r *runner) enqueue(g *grid.Grid, c grid.Coord, from grid.Coord, priority, tie int) {
	r.finder.Record(c, &from)
	r.open.push(c, priority, tie)
	g.MarkFrontier(c)
}

func (r *runner) Reset(g *grid.Grid) {
	r.clear()
	if g != nil {
		g.Reset()
	}
}

func (r *runner) HasCompleted() bool { return r.coord.HasCompleted() }

func (r *runner) Stats() Stats {
	return Stats{
		Algorithm:  r.kind.ID(),
		Found:      r.coord.Found(),
		Completed:  r.coord.HasCompleted(),
		PathLength: len(r.finder.Path()),
		Steps:      r.coord.Steps(),
		Visited:    len(r.order),
		Interval:   r.coord.Interval(),
		Elapsed:    time.Duration(r.coord.Steps()) * r.coord.Interval(),
	}
}

func (r *runner) Statistics() string {
	return FormatStatistics(r.kind.Name(), r.Stats())
}

func (r *runner) Snapshot() Snapshot {
	visited := make([]grid.Coord, len(r.order))
	copy(visited, r.order)
	var path []grid.Coord
	if p := r.finder.Path(); len(p) > 0 {
		path = make([]grid.Coord, len(p))
		copy(path, p)
	}
	return Snapshot{
		State:    r.coord.State(),
		Found:    r.coord.Found(),
		Steps:    r.coord.Steps(),
		Frontier: r.open.entries(),
		Visited:  visited,
		Path:     path,
	}
}
