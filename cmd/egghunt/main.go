// egghunt is a terminal arcade game: hunt the chicks, beat the legendary one.
//
// Usage:
//
//	egghunt                  - Play (same as "egghunt play")
//	egghunt play             - Play a hunt in this terminal
//	egghunt serve            - Start SSH server for remote play
//	egghunt scores           - Show run history
//	egghunt config           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.egghunt/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/egghunt/internal/config"
	"github.com/vovakirdan/egghunt/internal/games/egghunt"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "egghunt",
	Short: "Egg Hunt - a backyard hunt in your terminal",
	Long: `Egg Hunt is a terminal arcade game. Step around the lawn, throw eggs
at the wandering chicks, and once they are all down take on the legendary
chick that descends from the sky.

Available commands:
  play     - Play a hunt (default)
  serve    - Start SSH server for remote play
  scores   - View run history
  config   - Print the effective game config

Examples:
  egghunt
  egghunt play --difficulty hard
  egghunt serve --ssh :2222
  egghunt scores --fastest`,
	PersistentPreRunE: applyGameFlags,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.egghunt/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags validates the shared flags and hands them to the game.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	egghunt.SetConfigPath(flagConfig)
	egghunt.SetDifficultyPreset(flagDifficulty)
	return nil
}
