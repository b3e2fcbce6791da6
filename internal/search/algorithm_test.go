package search

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

const maxSteps = 10000

// newGrid builds a unit-cell grid with the given endpoints and obstacles.
func newGrid(w, h int, start, goal grid.Coord, walls ...grid.Coord) *grid.Grid {
	g := grid.New(w, h, 1)
	g.SetDesignation(start, grid.RoleStart)
	g.SetDesignation(goal, grid.RoleGoal)
	for _, c := range walls {
		g.SetDesignation(c, grid.RoleObstacle)
	}
	return g
}

func mustNew(t *testing.T, k Kind) Algorithm {
	t.Helper()
	alg, err := New(k, WithInterval(0))
	if err != nil {
		t.Fatalf("New(%v): %v", k, err)
	}
	return alg
}

// run drives alg to completion with a fixed frame delta.
func run(t *testing.T, alg Algorithm, g *grid.Grid) {
	t.Helper()
	if err := alg.Start(g); err != nil {
		t.Fatalf("%s: Start: %v", alg.Name(), err)
	}
	for i := 0; i < maxSteps && !alg.HasCompleted(); i++ {
		alg.ExecuteStep(g, time.Millisecond)
	}
	if !alg.HasCompleted() {
		t.Fatalf("%s: not completed after %d steps", alg.Name(), maxSteps)
	}
}

// edges returns the number of moves on a goal-to-start path.
func edges(path []grid.Coord) int {
	if len(path) == 0 {
		return -1
	}
	return len(path) - 1
}

// distance is a plain breadth-first oracle over the grid's obstacle map.
func distance(g *grid.Grid, from, to grid.Coord) int {
	if g.IsObstacle(from) || g.IsObstacle(to) {
		return -1
	}
	dist := map[grid.Coord]int{from: 0}
	queue := []grid.Coord{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			return dist[c]
		}
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := grid.C(c.X+d[0], c.Y+d[1])
			if _, seen := dist[n]; seen || g.IsObstacle(n) {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

// checkPath verifies that path is a walkable chain from goal back to start.
func checkPath(t *testing.T, g *grid.Grid, path []grid.Coord, start, goal grid.Coord) {
	t.Helper()
	if path[0] != goal || path[len(path)-1] != start {
		t.Fatalf("path %v does not run goal -> start", path)
	}
	for i, c := range path {
		if g.IsObstacle(c) {
			t.Fatalf("path crosses obstacle at %v", c)
		}
		if i == 0 {
			continue
		}
		if g.Heuristic(c, path[i-1]) != 1 {
			t.Fatalf("path jumps from %v to %v", path[i-1], c)
		}
	}
}

func randomGrid(seed int64, w, h int, density float64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := grid.New(w, h, 1)
	start := grid.C(rng.Intn(w), rng.Intn(h))
	goal := grid.C(rng.Intn(w), rng.Intn(h))
	g.SetDesignation(start, grid.RoleStart)
	g.SetDesignation(goal, grid.RoleGoal)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				g.SetDesignation(grid.C(x, y), grid.RoleObstacle)
			}
		}
	}
	return g
}

func TestKindIdentifiers(t *testing.T) {
	want := map[Kind][2]string{
		KindBFS:      {"bfs", "BFS"},
		KindDijkstra: {"dijkstra", "Dijkstra"},
		KindGreedy:   {"greedy", "Greedy Best First Search"},
		KindAStar:    {"astar", "A*"},
	}
	for _, k := range Kinds() {
		if got := [2]string{k.ID(), k.Name()}; got != want[k] {
			t.Errorf("kind %d = %v, want %v", k, got, want[k])
		}
		parsed, err := ParseKind(k.ID())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.ID(), parsed, err)
		}
		alg := mustNew(t, k)
		if alg.ID() != k.ID() || alg.Name() != k.Name() {
			t.Errorf("New(%v) = %s/%s", k, alg.ID(), alg.Name())
		}
	}

	if _, err := ParseKind("dfs"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(dfs) error = %v, want ErrUnknownKind", err)
	}
	if _, err := New(Kind(42)); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("New(42) error = %v, want ErrUnknownKind", err)
	}
}

func TestStartRequiresEndpoints(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.ID(), func(t *testing.T) {
			alg := mustNew(t, k)
			g := grid.New(5, 5, 1)
			fresh := alg.Start(g)
			if !errors.Is(fresh, ErrInvalidInput) {
				t.Fatalf("fresh Start error = %v, want ErrInvalidInput", fresh)
			}

			g.SetDesignation(grid.C(0, 0), grid.RoleStart)
			if err := alg.Start(g); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Start without goal error = %v, want ErrInvalidInput", err)
			}

			g.SetDesignation(grid.C(4, 4), grid.RoleGoal)
			run(t, alg, g)

			alg.Reset(g)
			if _, ok := g.Start(); ok {
				t.Fatal("Reset must clear the start designation")
			}
			if g.Count(grid.TilePath) != 0 || g.Count(grid.TileFrontier) != 0 {
				t.Fatal("Reset must clear the tile marks")
			}
			again := alg.Start(g)
			if !errors.Is(again, ErrInvalidInput) || again.Error() != fresh.Error() {
				t.Fatalf("Start after Reset error = %v, want %v", again, fresh)
			}
			if alg.HasCompleted() || alg.Stats().Steps != 0 {
				t.Fatal("Reset must discard the run")
			}
		})
	}
}

func TestStepIsPaced(t *testing.T) {
	alg, err := New(KindBFS)
	if err != nil {
		t.Fatal(err)
	}
	g := newGrid(5, 5, grid.C(0, 0), grid.C(4, 4))
	if err := alg.Start(g); err != nil {
		t.Fatal(err)
	}

	alg.ExecuteStep(g, 60*time.Millisecond)
	if got := alg.Stats().Steps; got != 0 {
		t.Fatalf("steps after 60ms = %d, want 0", got)
	}
	alg.ExecuteStep(g, 60*time.Millisecond)
	if got := alg.Stats().Steps; got != 1 {
		t.Fatalf("steps after 120ms = %d, want 1", got)
	}
	alg.ExecuteStep(g, 10*time.Second)
	if got := alg.Stats().Steps; got != 2 {
		t.Fatalf("one call must pop at most one cell, steps = %d", got)
	}
}

func TestStepBeforeStartIsNoop(t *testing.T) {
	alg := mustNew(t, KindAStar)
	g := newGrid(3, 3, grid.C(0, 0), grid.C(2, 2))
	alg.ExecuteStep(g, time.Second)
	if alg.Stats().Steps != 0 || alg.HasCompleted() {
		t.Fatal("ExecuteStep before Start must do nothing")
	}
}

func TestBFSFirstStepUnreachableGoal(t *testing.T) {
	g := newGrid(10, 10, grid.C(3, 3), grid.C(10, 10))
	alg := mustNew(t, KindBFS)
	if err := alg.Start(g); err != nil {
		t.Fatal(err)
	}
	alg.ExecuteStep(g, DefaultInterval)

	snap := alg.Snapshot()
	want := []grid.Coord{grid.C(3, 2), grid.C(3, 4), grid.C(2, 3), grid.C(4, 3)}
	if diff := cmp.Diff(want, snap.Frontier); diff != "" {
		t.Fatalf("frontier mismatch (-want +got):\n%s", diff)
	}
	if snap.Steps != 1 {
		t.Fatalf("steps = %d, want 1", snap.Steps)
	}
	for _, c := range want {
		if g.Tile(c).Kind != grid.TileFrontier {
			t.Errorf("tile %v = %v, want frontier", c, g.Tile(c).Kind)
		}
	}
	if !g.Tile(grid.C(3, 3)).IsEndpoint() {
		t.Fatal("start tile must keep its designation")
	}

	run(t, alg, g)
	stats := alg.Stats()
	if stats.Found || stats.PathLength != 0 {
		t.Fatalf("stats = %+v, want unreachable", stats)
	}
	if stats.Visited != 100 {
		t.Fatalf("visited = %d, want every cell", stats.Visited)
	}
}

func TestAStarOpenGrid(t *testing.T) {
	start, goal := grid.C(0, 0), grid.C(4, 4)

	astarGrid := newGrid(5, 5, start, goal)
	astar := mustNew(t, KindAStar)
	run(t, astar, astarGrid)

	bfsGrid := newGrid(5, 5, start, goal)
	bfs := mustNew(t, KindBFS)
	run(t, bfs, bfsGrid)

	a, b := astar.Stats(), bfs.Stats()
	if !a.Found || a.PathLength != 9 {
		t.Fatalf("A* stats = %+v, want path length 9", a)
	}
	if a.Visited > b.Visited {
		t.Fatalf("A* visited %d cells, BFS visited %d", a.Visited, b.Visited)
	}
	checkPath(t, astarGrid, astar.Snapshot().Path, start, goal)
	if got := astarGrid.Count(grid.TilePath); got != 7 {
		t.Fatalf("path tiles = %d, want 7 between the endpoints", got)
	}
}

func TestBFSMatchesManhattanOnOpenGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 40; i++ {
		w, h := 1+rng.Intn(12), 1+rng.Intn(12)
		start := grid.C(rng.Intn(w), rng.Intn(h))
		goal := grid.C(rng.Intn(w), rng.Intn(h))
		if start == goal {
			continue
		}
		t.Run(fmt.Sprintf("%dx%d %v->%v", w, h, start, goal), func(t *testing.T) {
			g := newGrid(w, h, start, goal)
			alg := mustNew(t, KindBFS)
			run(t, alg, g)

			path := alg.Snapshot().Path
			if got, want := edges(path), g.Heuristic(start, goal); got != want {
				t.Fatalf("path edges = %d, want Manhattan %d", got, want)
			}
			checkPath(t, g, path, start, goal)
		})
	}
}

func TestCostAwareVariantsAreOptimal(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		base := randomGrid(seed, 14, 10, 0.28)
		start, _ := base.Start()
		goal, _ := base.Goal()
		if start == goal {
			continue
		}
		want := distance(base, start, goal)

		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			got := make(map[Kind]int)
			for _, k := range Kinds() {
				g := base.Clone()
				alg := mustNew(t, k)
				run(t, alg, g)

				path := alg.Snapshot().Path
				if want < 0 {
					if len(path) != 0 || alg.Stats().Found {
						t.Fatalf("%s found a path on an unreachable grid", k.Name())
					}
					continue
				}
				checkPath(t, g, path, start, goal)
				got[k] = edges(path)
			}
			if want < 0 {
				return
			}

			for _, k := range []Kind{KindBFS, KindDijkstra, KindAStar} {
				if got[k] != want {
					t.Errorf("%s path edges = %d, want %d", k.Name(), got[k], want)
				}
			}
			if got[KindGreedy] < want {
				t.Errorf("greedy path edges = %d, below the minimum %d", got[KindGreedy], want)
			}
		})
	}
}

func TestEnclosedGoal(t *testing.T) {
	walls := []grid.Coord{grid.C(3, 2), grid.C(3, 4), grid.C(2, 3), grid.C(4, 3)}
	for _, k := range Kinds() {
		t.Run(k.ID(), func(t *testing.T) {
			g := newGrid(7, 7, grid.C(0, 0), grid.C(3, 3), walls...)
			alg := mustNew(t, k)
			run(t, alg, g)

			snap := alg.Snapshot()
			if snap.Found || len(snap.Path) != 0 {
				t.Fatalf("snapshot = %+v, want no path", snap)
			}
			if snap.State != StateCompleted {
				t.Fatalf("state = %v, want completed", snap.State)
			}
			if g.Count(grid.TilePath) != 0 {
				t.Fatal("no tile may be marked as path")
			}
			if !strings.HasPrefix(alg.Statistics(), "Goal is unreachable!") {
				t.Fatalf("statistics = %q", alg.Statistics())
			}
		})
	}
}

func TestStartOnGoalOutsideGrid(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.ID(), func(t *testing.T) {
			g := grid.New(3, 3, 1)
			g.SetDesignation(grid.C(5, 5), grid.RoleStart)
			g.SetDesignation(grid.C(5, 5), grid.RoleGoal)

			alg := mustNew(t, k)
			run(t, alg, g)
			stats := alg.Stats()
			if stats.Found || stats.PathLength != 0 || stats.Steps != 0 {
				t.Fatalf("stats = %+v, want unreachable without steps", stats)
			}
		})
	}
}

func TestStartOutsideGridIsNotTraversed(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.ID(), func(t *testing.T) {
			g := grid.New(3, 3, 1)
			g.SetDesignation(grid.C(-1, 0), grid.RoleStart)
			g.SetDesignation(grid.C(2, 0), grid.RoleGoal)

			alg := mustNew(t, k)
			run(t, alg, g)

			snap := alg.Snapshot()
			if snap.Found || len(snap.Path) != 0 {
				t.Fatalf("snapshot = %+v, want no path", snap)
			}
			for _, c := range snap.Visited {
				if !g.InBounds(c) {
					t.Fatalf("visited %v outside the grid", c)
				}
			}
			if len(snap.Visited) != 0 || g.Count(grid.TilePath) != 0 {
				t.Fatalf("visited = %v, want nothing expanded", snap.Visited)
			}
			if !strings.HasPrefix(alg.Statistics(), "Goal is unreachable!") {
				t.Fatalf("statistics = %q", alg.Statistics())
			}
		})
	}
}

func TestDeterministicTraces(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.ID(), func(t *testing.T) {
			trace := func() (Snapshot, string) {
				g := randomGrid(99, 16, 12, 0.2)
				alg, err := New(k, WithInterval(30*time.Millisecond))
				if err != nil {
					t.Fatal(err)
				}
				if err := alg.Start(g); err != nil {
					t.Fatal(err)
				}
				deltas := []time.Duration{10 * time.Millisecond, 25 * time.Millisecond, 40 * time.Millisecond}
				for i := 0; i < maxSteps && !alg.HasCompleted(); i++ {
					alg.ExecuteStep(g, deltas[i%len(deltas)])
				}
				var screen strings.Builder
				for y := 0; y < g.Rows(); y++ {
					for x := 0; x < g.Columns(); x++ {
						screen.WriteString(g.Tile(grid.C(x, y)).Kind.String())
					}
				}
				return alg.Snapshot(), screen.String()
			}

			first, firstTiles := trace()
			second, secondTiles := trace()
			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("runs diverged (-first +second):\n%s", diff)
			}
			if firstTiles != secondTiles {
				t.Fatal("tile states diverged")
			}
		})
	}
}

func TestParallelRunsDoNotInterfere(t *testing.T) {
	base := randomGrid(5, 20, 20, 0.15)
	want := make(map[Kind]Snapshot)
	for _, k := range Kinds() {
		alg := mustNew(t, k)
		run(t, alg, base.Clone())
		want[k] = alg.Snapshot()
	}

	var (
		mu  sync.Mutex
		got = make(map[Kind]Snapshot)
		wg  sync.WaitGroup
	)
	for _, k := range Kinds() {
		wg.Add(1)
		go func(k Kind) {
			defer wg.Done()
			alg, _ := New(k, WithInterval(0))
			g := base.Clone()
			_ = alg.Start(g)
			for i := 0; i < maxSteps && !alg.HasCompleted(); i++ {
				alg.ExecuteStep(g, time.Millisecond)
			}
			mu.Lock()
			got[k] = alg.Snapshot()
			mu.Unlock()
		}(k)
	}
	wg.Wait()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parallel runs diverged (-want +got):\n%s", diff)
	}
}

func TestStatisticsText(t *testing.T) {
	s := Stats{
		Found:      true,
		Completed:  true,
		PathLength: 9,
		Steps:      12,
		Visited:    11,
		Interval:   100 * time.Millisecond,
		Elapsed:    1200 * time.Millisecond,
	}
	want := "A* Statistics:\n\n" +
		" - Path length: 9\n" +
		" - Steps taken: 12\n" +
		" - Visited nodes: 11\n" +
		" - Time per iteration: 0.10 sec\n" +
		" - Total time: 1.20 sec"
	if got := FormatStatistics("A*", s); got != want {
		t.Fatalf("statistics mismatch:\n%s", cmp.Diff(want, got))
	}

	s.Found = false
	if got := FormatStatistics("BFS", s); !strings.HasPrefix(got, "Goal is unreachable!\n\nBFS Statistics:") {
		t.Fatalf("unreachable statistics = %q", got)
	}
}

func TestStatsTrackElapsedTime(t *testing.T) {
	alg, err := New(KindGreedy, WithInterval(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	g := newGrid(6, 1, grid.C(0, 0), grid.C(5, 0))
	if err := alg.Start(g); err != nil {
		t.Fatal(err)
	}
	for !alg.HasCompleted() {
		alg.ExecuteStep(g, 50*time.Millisecond)
	}

	got := alg.Stats()
	want := Stats{
		Algorithm:  "greedy",
		Found:      true,
		Completed:  true,
		PathLength: 6,
		Steps:      6,
		Visited:    5,
		Interval:   50 * time.Millisecond,
		Elapsed:    300 * time.Millisecond,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}
