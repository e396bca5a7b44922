package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajai-sharma-backup/2048/internal/config"
	"github.com/ajai-sharma-backup/2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each SSH connection gets its own game; scores are stored per-server
(all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.2048/host_key

Examples:
  2048 serve                           # Listen on :23234 with auto-generated key
  2048 serve --ssh :2222               # Listen on port 2222
  2048 serve --host-key ./my_host_key  # Use specific host key
  2048 serve --db ./scores.db          # Use specific database

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
	rules, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Rules:       rules,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting 2048 SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
