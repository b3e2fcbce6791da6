package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfinder/internal/bench"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
	"github.com/vovakirdan/tui-pathfinder/internal/search"
	"github.com/vovakirdan/tui-pathfinder/internal/session"
)

var (
	flagSolveMap    string
	flagSolveSpeed  string
	flagSolveNoSave bool
	flagSolveQuiet  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <algorithm>",
	Short: "Solve a map without the UI",
	Long: `Run an algorithm on a map to completion and print the explored grid
and its statistics. The run is recorded in the history database.

The interval only affects the reported time; every frame is one step.

Examples:
  pathfinder solve bfs --map maze
  pathfinder solve astar --map ./my-map.yaml --speed slow
  pathfinder solve greedy --map random --seed 42 --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveMap, "map", "maze", "Map ID, map file or 'random'")
	solveCmd.Flags().StringVar(&flagSolveSpeed, "speed", "", "Speed preset: slow, normal, fast, instant")
	solveCmd.Flags().Duration("interval", 0, "Time between search steps, overrides --speed")
	solveCmd.Flags().BoolVar(&flagSolveNoSave, "no-save", false, "Do not record the run")
	solveCmd.Flags().BoolVarP(&flagSolveQuiet, "quiet", "q", false, "Only print statistics")
}

func runSolve(cmd *cobra.Command, args []string) {
	algorithmID := args[0]
	if !registry.Exists(algorithmID) {
		fail("unknown algorithm %q\nRun 'pathfinder list' to see available algorithms.", algorithmID)
	}

	cfg := loadConfig()
	applySpeed(cmd, &cfg, flagSolveSpeed)
	logger := newLogger(os.Stderr)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := resolveMap(cfg, flagSolveMap, seed)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("solving", "algorithm", algorithmID, "map", m.ID, "interval", cfg.Simulation.IterationInterval)
	res, err := bench.Solve(ctx, m.ToGrid(), algorithmID, cfg.Simulation.IterationInterval)
	if err != nil {
		fail("%v", err)
	}

	if !flagSolveQuiet {
		fmt.Println(renderGrid(res.Grid))
		fmt.Println()
	}
	fmt.Println(search.FormatStatistics(res.Name, res.Stats))

	if flagSolveNoSave {
		return
	}
	store := openStore(logger)
	if store == nil {
		return
	}
	defer store.Close()

	rec := session.NewRunRecord(res.Stats, m.ID, res.Grid.Columns(), res.Grid.Rows(), "solve")
	id, err := store.SaveRun(rec)
	if err != nil {
		logger.Error("cannot save run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id, "algorithm", algorithmID, "map", m.ID)
}

// renderGrid draws g with its search marks. Colors are used only on a terminal.
func renderGrid(g *grid.Grid) string {
	b := g.Bounds(0, 0)
	screen := core.NewScreen(b.W, b.H)
	g.Render(screen, 0, 0, nil)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.RenderScreen(screen)
	}
	return screen.String()
}
