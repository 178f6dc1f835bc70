package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadcross/internal/storage"
)

var (
	flagReset   bool
	flagHistory bool
)

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show or reset the highscore",
	Long: `Print the highscore, the best level ever reached.

With --reset the highscore file is removed; add --history to clear the
round history as well.

Examples:
  roadcross highscore
  roadcross highscore --reset
  roadcross highscore --reset --history`,
	Args: cobra.NoArgs,
	Run:  runHighscore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Remove the highscore file")
	highscoreCmd.Flags().BoolVar(&flagHistory, "history", false, "With --reset, also clear the round history")
}

func runHighscore(cmd *cobra.Command, args []string) {
	hs, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		fail("%v", err)
	}

	if flagReset {
		if err := hs.Reset(); err != nil {
			fail("%v", err)
		}
		color.Green("Highscore reset (%s)", hs.Path())

		if flagHistory {
			if err := clearHistory(flagDBPath); err != nil {
				fail("%v", err)
			}
			color.Green("Round history cleared")
		}
		return
	}

	best, err := hs.Load()
	if err != nil {
		fail("%v", err)
	}

	fmt.Print("Highscore: ")
	colorBest.Printf("level %d\n", best)
	colorDim.Println(hs.Path())

	// The history is optional here; a missing or broken database only hides the line.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return
	}
	defer store.Close()
	if recorded, err := store.BestLevel(); err == nil && recorded > 0 {
		fmt.Print("Best recorded round: ")
		colorBest.Printf("level %d\n", recorded)
	}
}

// clearHistory deletes every recorded round from the database at path.
func clearHistory(path string) error {
	store, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("opening round history: %w", err)
	}
	defer store.Close()
	return store.ClearRounds()
}
