package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
)

var (
	flagRunMap   string
	flagRunSpeed string
)

var runCmd = &cobra.Command{
	Use:   "run [algorithm]",
	Short: "Run an interactive session",
	Long: `Open the grid with the given algorithm (default from config).

Controls:
  Arrows/hjkl      - Move the cursor
  Enter/Click      - Place start, then goal, then start the search
  X/Right click    - Place a wall (drag to draw)
  Tab              - Next algorithm (before the search starts)
  Esc/R            - Reset
  Ctrl+S           - Screenshot to ~/.pathfinder/screenshots
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Speed options:
  slow     - 250ms per step
  normal   - 100ms per step
  fast     - 25ms per step
  instant  - one step per frame

Examples:
  pathfinder run
  pathfinder run astar --map maze
  pathfinder run greedy --map random --seed 42
  pathfinder run dijkstra --speed fast
  pathfinder run bfs --interval 50ms`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunMap, "map", "", "Map ID, map file or 'random' (default: blank grid)")
	runCmd.Flags().StringVar(&flagRunSpeed, "speed", "", "Speed preset: slow, normal, fast, instant")
	runCmd.Flags().Duration("interval", 0, "Time between search steps, overrides --speed")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	applySpeed(cmd, &cfg, flagRunSpeed)

	algorithmID := cfg.Simulation.Algorithm
	if len(args) > 0 {
		algorithmID = args[0]
	}
	if !registry.Exists(algorithmID) {
		fail("unknown algorithm %q\nRun 'pathfinder list' to see available algorithms.", algorithmID)
	}

	logger, closeLog := newFileLogger()
	defer closeLog()

	sel := tui.Selection{
		AlgorithmID: algorithmID,
		Map:         tui.MapChoice{ID: tui.MapBlank},
	}
	if flagRunMap != "" {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		m, err := resolveMap(cfg, flagRunMap, seed)
		if err != nil {
			fail("%v", err)
		}
		sel.Map = tui.MapChoice{ID: m.ID, Title: m.Name, Map: &m}
	}

	store := openStore(logger)
	launcher := tui.Launcher{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Source: "tui",
		Seed:   flagSeed,
	}

	sess, err := launcher.NewSession(sel)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fail("%v", err)
	}

	runErr := tui.Run(sess, runtimeConfig(cfg), cfg.Render.ShowHelp)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running session: %v", runErr)
	}
}
