package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pathfinder SSH server",
	Long: `Start an SSH server that lets users connect and run simulations.

Each SSH connection gets its own session with the algorithm and map
picker. Runs are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pathfinder/host_key

Examples:
  pathfinder serve                           # Listen on :23234 with auto-generated key
  pathfinder serve --ssh :2222               # Listen on port 2222
  pathfinder serve --host-key ./my_host_key  # Use specific host key
  pathfinder serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		App:         loadConfig(),
	}

	logger := newLogger(os.Stderr)
	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("pathfinder-ssh"))
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting pathfinder SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
