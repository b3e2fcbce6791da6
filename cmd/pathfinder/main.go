// pathfinder visualizes grid search algorithms in the terminal.
//
// Usage:
//
//	pathfinder list                  - List algorithms and maps
//	pathfinder run [algorithm]       - Run an interactive session
//	pathfinder menu                  - Pick algorithm and map interactively
//	pathfinder solve <algorithm>     - Solve a map headlessly and print the result
//	pathfinder compare               - Run every algorithm on the same map
//	pathfinder history [algorithm]   - Show recorded runs
//	pathfinder config                - Show or write the configuration
//	pathfinder serve                 - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--seed <value>       - Set seed for random maps
//	--db <path>          - Set database path (default: ~/.pathfinder/runs.db)
//	--config <path>      - Use a custom config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/maps"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Pathfinder - watch grid search algorithms at work",
	Long: `Pathfinder animates BFS, Dijkstra, Greedy Best First Search and A*
on a grid in your terminal. Place a start, a goal and some walls, then
watch the frontier grow until the path is found.

Available commands:
  list     - Show algorithms and maps
  run      - Interactive session with one algorithm
  menu     - Interactive algorithm and map picker
  solve    - Solve a map without the UI
  compare  - Run every algorithm on the same map
  history  - View recorded runs
  config   - Show or write the configuration
  serve    - Start SSH server for remote sessions

Examples:
  pathfinder run astar --map maze
  pathfinder menu
  pathfinder solve bfs --map wall
  pathfinder compare --map maze
  pathfinder serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed for random maps (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pathfinder/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the logger for headless commands.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathfinder",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// newFileLogger builds the logger for the interactive UI. Logs go to
// ~/.pathfinder/pathfinder.log so they do not tear the alt screen.
func newFileLogger() (*log.Logger, func()) {
	dir := config.HomeDir()
	if dir == "" {
		return newLogger(io.Discard), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "pathfinder.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagFPS > 0 {
		cfg.Simulation.TickRate = flagFPS
	}
	return cfg
}

// applySpeed applies --speed and --interval on top of cfg.
func applySpeed(cmd *cobra.Command, cfg *config.Config, speed string) {
	if err := config.ApplySpeedPreset(cfg, config.SpeedPreset(speed)); err != nil {
		fail("%v", err)
	}
	if cmd.Flags().Changed("interval") {
		d, err := cmd.Flags().GetDuration("interval")
		if err != nil {
			fail("%v", err)
		}
		cfg.Simulation.IterationInterval = d
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
}

// openStore opens the run database. Interactive commands keep working
// without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the UI to the current terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:           width,
		ScreenH:           height,
		TickRate:          cfg.Simulation.TickRate,
		Seed:              flagSeed,
		IterationInterval: cfg.Simulation.IterationInterval,
	}
}

// resolveMap finds a map by ID or path; "random" generates one.
func resolveMap(cfg config.Config, ref string, seed int64) (maps.Map, error) {
	if ref == "random" {
		params := maps.DefaultGenParams()
		params.Width = cfg.Columns()
		params.Height = cfg.Rows()
		params.Seed = uint64(seed)
		return maps.Generate(params)
	}
	return maps.NewLoader(cfg.MapsDir()).Resolve(ref)
}

// catalog returns user maps and built-ins, falling back to built-ins only.
func catalog(cfg config.Config, logger *log.Logger) []maps.Map {
	all, err := maps.NewLoader(cfg.MapsDir()).Catalog()
	if err != nil {
		logger.Warn("could not load user maps", "error", err)
		return maps.Builtins()
	}
	return all
}
