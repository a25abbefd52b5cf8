package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wallsnake/internal/config"
	"github.com/vovakirdan/wallsnake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wallsnake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wallsnake/host_key

Environment (also read from ./.env):
  WALLSNAKE_SSH_ADDR      - Listen address, used when --ssh is not set
  WALLSNAKE_HOST_KEY      - Host key path, used when --host-key is not set
  WALLSNAKE_IDLE_TIMEOUT  - Idle timeout as a duration (e.g. 45m), used when
                            --idle-timeout is not set

Examples:
  wallsnake serve                           # Listen on :23234 with auto-generated key
  wallsnake serve --ssh :2222               # Listen on port 2222
  wallsnake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr, "wallsnake-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close
	defer closeLog()

	if envErr := godotenv.Load(); envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", envErr)
	}

	gameCfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg, err := serverConfig(cmd, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting wallsnake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// serverConfig merges flags with WALLSNAKE_* environment variables.
// An explicitly set flag always wins.
func serverConfig(cmd *cobra.Command, gameCfg config.SnakeConfig) (tui.SSHServerConfig, error) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Game = gameCfg
	cfg.TickRate = flagFPS
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	flags := cmd.Flags()
	if v := os.Getenv("WALLSNAKE_SSH_ADDR"); v != "" && !flags.Changed("ssh") {
		cfg.Address = v
	}
	if v := os.Getenv("WALLSNAKE_HOST_KEY"); v != "" && !flags.Changed("host-key") {
		cfg.HostKeyPath = v
	}
	if v := os.Getenv("WALLSNAKE_IDLE_TIMEOUT"); v != "" && !flags.Changed("idle-timeout") {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid WALLSNAKE_IDLE_TIMEOUT: %w", err)
		}
		cfg.IdleTimeout = d
	}
	return cfg, nil
}
