package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryMap   string
	flagHistoryClear bool
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [algorithm]",
	Short: "Show recorded runs",
	Long: `Display recent runs, for one algorithm or for all of them, followed
by per-algorithm totals.

Examples:
  pathfinder history
  pathfinder history astar --map maze
  pathfinder history --tui
  pathfinder history bfs --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().StringVar(&flagHistoryMap, "map", "", "Show the best run on this map")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded runs")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the history interactively")
}

func runHistory(_ *cobra.Command, args []string) {
	algorithmID := ""
	if len(args) > 0 {
		algorithmID = args[0]
		if !registry.Exists(algorithmID) {
			fail("unknown algorithm %q\nRun 'pathfinder list' to see available algorithms.", algorithmID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	if flagHistoryTUI {
		rt := runtimeConfig(loadConfig())
		if _, err := tui.RunHistory(store, rt.ScreenW, rt.ScreenH); err != nil {
			fail("%v", err)
		}
		return
	}

	if flagHistoryClear {
		if err := store.ClearRuns(algorithmID); err != nil {
			fail("%v", err)
		}
		newLogger(os.Stderr).Info("runs deleted", "algorithm", algorithmID)
		return
	}

	runs, err := store.RecentRuns(algorithmID, flagHistoryLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	title := "Recent runs"
	if algorithmID != "" {
		info, _ := registry.Lookup(algorithmID)
		title = "Recent runs - " + info.Title
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish a session or run 'pathfinder solve <algorithm>' to record one.")
		return
	}
	fmt.Println(runsTable(runs))

	if algorithmID != "" && flagHistoryMap != "" {
		printBest(os.Stdout, store, algorithmID, flagHistoryMap)
	}

	stats, err := store.AllAlgorithmStats()
	if err != nil {
		fail("retrieving totals: %v", err)
	}
	fmt.Println()
	printTotals(os.Stdout, stats)
}

func runsTable(runs []storage.RunRecord) *table.Table {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		result, path := "found", strconv.Itoa(r.PathLength)
		if !r.Found {
			result, path = "no path", "-"
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Algorithm,
			r.MapID,
			fmt.Sprintf("%dx%d", r.Columns, r.Rows),
			result,
			path,
			strconv.Itoa(r.Visited),
			r.Source,
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("#", "Algorithm", "Map", "Size", "Result", "Path", "Visited", "Source", "Date").
		Rows(rows...)
}

func printBest(w io.Writer, store *storage.Store, algorithmID, mapID string) {
	best, err := store.BestRun(algorithmID, mapID)
	if err != nil {
		fail("retrieving best run: %v", err)
	}
	fmt.Fprintln(w)
	if best == nil {
		fmt.Fprintf(w, "No successful %s run on %s yet.\n", algorithmID, mapID)
		return
	}
	fmt.Fprintf(w, "Best on %s: path %d, %d visited, %d steps (%s)\n",
		mapID, best.PathLength, best.Visited, best.Steps, best.CreatedAt.Format("2006-01-02 15:04"))
}

func printTotals(w io.Writer, stats map[string]*storage.AlgorithmStats) {
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintln(w, "Totals:")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(w, "  %-10s %4d runs  %4d found  avg visited %6.1f  avg path %5.1f\n",
			id, s.Runs, s.Found, s.AvgVisited, s.AvgPath)
	}
}
