package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egghunt/internal/platform/tui"
	"github.com/vovakirdan/egghunt/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSSHHold     time.Duration
	flagSSHRepeat   time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Egg Hunt SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own hunt, starting at the title screen.
Runs are stored per-server under the SSH user name (all users share the
same run history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.egghunt/host_key

Examples:
  egghunt serve                           # Listen on :23234 with auto-generated key
  egghunt serve --ssh :2222               # Listen on port 2222
  egghunt serve --host-key ./my_host_key  # Use specific host key
  egghunt serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagSSHHold, "hold-window", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat")
	serveCmd.Flags().DurationVar(&flagSSHRepeat, "repeat-delay", tui.DefaultRepeatDelay, "How long after a key event the same key still counts as auto-repeat")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = registry.Default()
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.HoldWindow = flagSSHHold
	cfg.RepeatDelay = flagSSHRepeat

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Egg Hunt SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
