package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an algorithm and map picker",
	Long: `Start pathfinder in interactive menu mode.

Use Up/Down to choose an algorithm, Left/Right to choose a map and
Enter to open the grid. Press B in a session to return to the menu.

Controls:
  Up/Down/j/k     - Choose algorithm
  Left/Right/h/l  - Choose map
  Enter/Space     - Start
  Tab             - Run history
  Q               - Quit

Examples:
  pathfinder menu
  pathfinder menu --fps 30
  pathfinder menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := newFileLogger()
	defer closeLog()

	store := openStore(logger)
	launcher := tui.Launcher{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Source: "tui",
		Seed:   flagSeed,
	}

	runErr := tui.RunApp(launcher, catalog(cfg, logger), runtimeConfig(cfg))

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("%v", runErr)
	}
}
