// Package bench drives algorithms headlessly: a single solve to completion,
// or every algorithm side by side on copies of the same grid.
package bench

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
	"github.com/vovakirdan/tui-pathfinder/internal/search"
)

// ErrNoCompletion is returned when a run does not finish within its frame budget.
var ErrNoCompletion = errors.New("bench: run did not complete")

// Result is the outcome of one headless run.
type Result struct {
	Algorithm string
	Name      string
	Stats     search.Stats
	Path      []grid.Coord
	Grid      *grid.Grid    // the grid with visited, frontier and path marks
	Wall      time.Duration // real time spent computing
}

// Solve runs algorithm id on g until it completes. Each frame advances the
// simulated clock by interval, so every frame is exactly one step.
func Solve(ctx context.Context, g *grid.Grid, id string, interval time.Duration) (Result, error) {
	alg, err := registry.Create(id, search.WithInterval(interval))
	if err != nil {
		return Result{}, err
	}
	if err := alg.Start(g); err != nil {
		return Result{}, fmt.Errorf("bench: %s: %w", id, err)
	}

	began := time.Now()
	// a run pops each cell at most once, plus the final empty pop
	budget := g.Columns()*g.Rows() + 2
	for frame := 0; !alg.HasCompleted(); frame++ {
		if frame >= budget {
			return Result{}, fmt.Errorf("%w: %s after %d frames", ErrNoCompletion, id, frame)
		}
		if frame%256 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		alg.ExecuteStep(g, interval)
	}

	return Result{
		Algorithm: id,
		Name:      alg.Name(),
		Stats:     alg.Stats(),
		Path:      alg.Snapshot().Path,
		Grid:      g,
		Wall:      time.Since(began),
	}, nil
}

// CompareConfig selects what Compare runs.
type CompareConfig struct {
	Algorithms []string // empty means every registered algorithm
	Interval   time.Duration
	Parallel   int // concurrent runs, 0 means one per algorithm
}

// Compare runs each algorithm on its own clone of g concurrently.
// Results are ordered by visited cells, then path length, then ID.
func Compare(ctx context.Context, g *grid.Grid, cfg CompareConfig) ([]Result, error) {
	ids := cfg.Algorithms
	if len(ids) == 0 {
		ids = registry.IDs()
	}
	for _, id := range ids {
		if !registry.Exists(id) {
			return nil, fmt.Errorf("%w %q", registry.ErrUnknownAlgorithm, id)
		}
	}

	results := make([]Result, len(ids))
	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Parallel > 0 {
		eg.SetLimit(cfg.Parallel)
	}
	for i, id := range ids {
		clone := g.Clone()
		eg.Go(func() error {
			r, err := Solve(egCtx, clone, id, cfg.Interval)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	SortResults(results)
	return results, nil
}

// SortResults orders results by visited cells, then path length, then ID.
// Runs that found a path come first.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Stats, results[j].Stats
		if a.Found != b.Found {
			return a.Found
		}
		if a.Visited != b.Visited {
			return a.Visited < b.Visited
		}
		if a.PathLength != b.PathLength {
			return a.PathLength < b.PathLength
		}
		return results[i].Algorithm < results[j].Algorithm
	})
}
