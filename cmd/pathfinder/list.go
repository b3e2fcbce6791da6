package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List algorithms and maps",
	Long:  `Shows every registered algorithm and every map found in the maps directory or built in.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	algs := registry.List()

	fmt.Println("Algorithms:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, a := range algs {
		maxIDLen = max(maxIDLen, len(a.ID))
	}

	fmt.Printf("  %-*s  %-26s %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-26s %s\n", maxIDLen, "--", "-----", "-----------")
	for _, a := range algs {
		fmt.Printf("  %-*s  %-26s %s\n", maxIDLen, a.ID, a.Title, a.Description)
	}

	cfg := loadConfig()
	all := catalog(cfg, newLogger(io.Discard))

	fmt.Println()
	fmt.Println("Maps:")
	fmt.Println()

	maxIDLen = len("random")
	for _, m := range all {
		maxIDLen = max(maxIDLen, len(m.ID))
	}
	for _, m := range all {
		fmt.Printf("  %-*s  %-18s %3dx%-3d %s\n", maxIDLen, m.ID, m.Name, m.Width, m.Height, m.Description())
	}
	fmt.Printf("  %-*s  %-18s %7s %s\n", maxIDLen, "random", "Random obstacles", "", "seeded by --seed")

	fmt.Println()
	fmt.Println("Run 'pathfinder run <algorithm> --map <map>' to start.")
}
