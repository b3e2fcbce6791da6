package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/bench"
)

var (
	flagCompareMap      string
	flagCompareAlgs     []string
	flagCompareParallel int
	flagCompareSpeed    string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every algorithm on the same map",
	Long: `Run the algorithms side by side on copies of one map and print a
table ordered by the number of visited cells.

Examples:
  pathfinder compare --map maze
  pathfinder compare --map random --seed 7
  pathfinder compare --map wall --algorithms bfs,astar`,
	Args: cobra.NoArgs,
	Run:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&flagCompareMap, "map", "maze", "Map ID, map file or 'random'")
	compareCmd.Flags().StringSliceVar(&flagCompareAlgs, "algorithms", nil, "Algorithms to run (default: all)")
	compareCmd.Flags().IntVar(&flagCompareParallel, "parallel", 0, "Concurrent runs (0 = one per algorithm)")
	compareCmd.Flags().StringVar(&flagCompareSpeed, "speed", "", "Speed preset used for the reported time")
	compareCmd.Flags().Duration("interval", 0, "Time between search steps, overrides --speed")
}

func runCompare(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	applySpeed(cmd, &cfg, flagCompareSpeed)
	logger := newLogger(os.Stderr)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := resolveMap(cfg, flagCompareMap, seed)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := bench.Compare(ctx, m.ToGrid(), bench.CompareConfig{
		Algorithms: flagCompareAlgs,
		Interval:   cfg.Simulation.IterationInterval,
		Parallel:   flagCompareParallel,
	})
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("compare finished", "map", m.ID, "runs", len(results))

	fmt.Printf("Map: %s (%dx%d)\n\n", m.Name, m.Width, m.Height)
	fmt.Println(compareTable(results))
}

func compareTable(results []bench.Result) *table.Table {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		path := "-"
		if r.Stats.Found {
			path = strconv.Itoa(r.Stats.PathLength)
		}
		rows = append(rows, []string{
			r.Name,
			path,
			strconv.Itoa(r.Stats.Visited),
			strconv.FormatUint(uint64(r.Stats.Steps), 10),
			fmt.Sprintf("%.2f sec", r.Stats.Elapsed.Seconds()),
			r.Wall.Round(time.Microsecond).String(),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("Algorithm", "Path", "Visited", "Steps", "Sim time", "Wall").
		Rows(rows...)
}
