package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/egghunt/internal/platform/tui"
	"github.com/vovakirdan/egghunt/internal/registry"
	"github.com/vovakirdan/egghunt/internal/storage"
)

var (
	flagFastest     bool
	flagInteractive bool
	flagLimit       int
	flagRunID       string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best runs by score, or the fastest cleared hunts.

Examples:
  egghunt scores
  egghunt scores --fastest --limit 5
  egghunt scores --run 3f1c...     # Show a single run
  egghunt scores -i                # Browse in the terminal UI
  egghunt scores --clear           # Delete the run history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagFastest, "fastest", false, "Rank cleared hunts by clear time")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in the terminal UI")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show the run with this ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	gameID := registry.Default()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagRunID != "" {
		printRun(store, flagRunID)
		return
	}

	var (
		runs    []storage.RunEntry
		heading string
	)
	if flagFastest {
		heading = "Fastest Clears"
		runs, err = store.FastestClears(gameID, flagLimit)
	} else {
		heading = "High Scores"
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Egg Hunt\n", heading)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'egghunt play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Chicks", "Clear", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "------", "-----", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-6d  %-8s  %-12s  %s\n",
			i+1, r.Score, r.Chicks, clearText(r), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Wins: %d", stats.HighScore, stats.RunsCount, stats.Wins)
		if stats.BestClear > 0 {
			fmt.Printf("  Fastest clear: %.1fs", stats.BestClear.Seconds())
		}
		fmt.Println()
	}
}

func printRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run %q\n", runID)
		os.Exit(1)
	}

	fmt.Printf("Run     %s\n", run.RunID)
	fmt.Printf("Player  %s\n", run.Player)
	fmt.Printf("Score   %d\n", run.Score)
	fmt.Printf("Chicks  %d\n", run.Chicks)
	fmt.Printf("Cleared %s\n", clearText(*run))
	fmt.Printf("Date    %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
}

func clearText(r storage.RunEntry) string {
	if !r.Won {
		return "-"
	}
	return fmt.Sprintf("%.1fs", r.ClearTime.Seconds())
}
