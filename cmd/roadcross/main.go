// roadcross is a "cross the road" arcade game for the terminal and the desktop.
//
// Usage:
//
//	roadcross                - Play in the terminal (same as "play")
//	roadcross play           - Play in the terminal
//	roadcross window         - Play in a desktop window
//	roadcross scores         - Show the round history
//	roadcross highscore      - Show or reset the highscore
//	roadcross config         - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 10)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set round history path (default: ~/.roadcross/rounds.db)
//	--highscore <path>     - Set highscore file (default: ~/.roadcross/highscore.txt)
//	--log <path>           - Write the game log to a file
//	--config <path>        - Load a custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagHighScore  string
	flagLogPath    string
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
	Use:   "roadcross",
	Short: "Roadcross - get the turtle across the road",
	Long: `Roadcross is an arcade game: walk the turtle up across six lanes of
traffic. Every crossing raises the level and speeds the traffic up; every
collision costs one of three lives. The best level ever reached is kept as
the highscore.

Available commands:
  play       - Play in the terminal (default)
  window     - Play in a desktop window
  scores     - View the round history
  highscore  - Show or reset the highscore
  config     - Print the effective configuration

Examples:
  roadcross
  roadcross window --difficulty hard
  roadcross scores --plain
  roadcross highscore --reset`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadcross/rounds.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.roadcross/highscore.txt", "Path to highscore file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write the game log to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(configCmd)
}
