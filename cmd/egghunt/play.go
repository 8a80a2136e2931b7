package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/egghunt/internal/core"
	"github.com/vovakirdan/egghunt/internal/platform/tui"
	"github.com/vovakirdan/egghunt/internal/registry"
	"github.com/vovakirdan/egghunt/internal/storage"
)

var (
	flagLogPath     string
	flagNoTitle     bool
	flagHoldWindow  time.Duration
	flagRepeatDelay time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hunt",
	Long: `Start a hunt in this terminal.

Controls:
  WASD/Arrows  - Move one tile
  Space        - Throw an egg
  P/Esc        - Pause
  R            - Restart (after the hunt is cleared)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow, sleepy chicks
  normal - The stock hunt
  hard   - Quick, skittish chicks
  fixed  - No progression, stays at config's initial level

Examples:
  egghunt play
  egghunt play --difficulty hard
  egghunt play --config ./my-hunt.yaml --log ./hunt.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	cmd.Flags().BoolVar(&flagNoTitle, "no-title", false, "Skip the title screen")
	cmd.Flags().DurationVar(&flagHoldWindow, "hold-window", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat")
	cmd.Flags().DurationVar(&flagRepeatDelay, "repeat-delay", tui.DefaultRepeatDelay, "How long after a key event the same key still counts as auto-repeat")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameID := registry.Default()
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []tui.Option{
		tui.WithHoldWindow(flagHoldWindow),
		tui.WithRepeatDelay(flagRepeatDelay),
	}
	if flagNoTitle {
		opts = append(opts, tui.WithoutTitle())
	}
	if user := os.Getenv("USER"); user != "" {
		opts = append(opts, tui.WithPlayer(user))
	}

	// The TUI owns the terminal, so logs only go to a file.
	if flagLogPath != "" {
		f, logErr := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", logErr)
			os.Exit(1)
		}
		defer f.Close()

		logger := log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          gameID,
			Level:           log.DebugLevel,
		})
		opts = append(opts, tui.WithLogger(logger))
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, opts...)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
