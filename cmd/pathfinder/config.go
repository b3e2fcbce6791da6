package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
)

var flagConfigForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the configuration",
	Long: `Print the default configuration, or write it to
~/.pathfinder/configs/pathfinder.yaml with 'config init'.

Examples:
  pathfinder config
  pathfinder config init
  pathfinder config init --force`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the user config file",
	Args:  cobra.NoArgs,
	Run:   runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) {
	dir := config.HomeDir()
	if dir == "" {
		fail("cannot determine home directory")
	}
	path := filepath.Join(dir, "configs", config.FileName)

	if _, err := os.Stat(path); err == nil && !flagConfigForce {
		fail("%s already exists, use --force to overwrite", path)
	}

	if err := config.Save(path, loadConfig()); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}
