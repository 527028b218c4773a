package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/river-raid/internal/games/raid"
	"github.com/vovakirdan/river-raid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the River Raid SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Runs are recorded under the SSH
user name and all users share the same high-score table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.raid/host_key

Examples:
  raid serve                           # Listen on :23234 with auto-generated key
  raid serve --ssh :2222               # Listen on port 2222
  raid serve --host-key ./my_host_key  # Use specific host key
  raid serve --difficulty hard         # Every session flies the hard preset

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "raid-ssh")
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		NewGame: func() tui.Game {
			return raid.New(gameCfg)
		},
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("cannot start server: %w", err)
	}

	fmt.Printf("Starting River Raid SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
