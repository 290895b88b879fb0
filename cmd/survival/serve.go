package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survival/internal/config"
	"github.com/vovakirdan/tui-survival/internal/games/survival"
	"github.com/vovakirdan/tui-survival/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeMode   string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the survival SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own world, generated from a fresh seed.
Runs are stored per-server (all users share the same run history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.survival/host_key

Examples:
  survival serve                           # Listen on :23234 with auto-generated key
  survival serve --ssh :2222               # Listen on port 2222
  survival serve --mode survival_endless   # Every session plays endless
  survival serve --host-key ./my_host_key  # Use specific host key
  survival serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", survival.ModeSurvival, "Game mode for every session")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 32, "Concurrent session cap (0 for none)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("survival-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	survival.SetLogger(logger)

	gameCfg, cfgErr := config.LoadSurvival(flagConfig)
	if cfgErr != nil {
		logger.Warn("config", "error", cfgErr)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		GameID:      flagServeMode,
		TickRate:    flagFPS,
		Hold:        time.Duration(gameCfg.Input.HoldMillis) * time.Millisecond,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxSessions: flagMaxSessions,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting survival SSH server on %s\n", cfg.Address)
	if _, port, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
