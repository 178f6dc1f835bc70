package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadcross/internal/platform/tui"
	"github.com/vovakirdan/roadcross/internal/storage"
)

var errRoundNotFound = errors.New("no round with that ID")

var (
	flagPlain bool
	flagLimit int
	flagID    string
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorBest  = color.New(color.FgYellow)
	colorDim   = color.New(color.FgHiBlack)
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Show the best finished rounds.

In a terminal this opens an interactive table; with --plain, or when the
output is not a terminal, it prints a text table.

Examples:
  roadcross scores
  roadcross scores --plain --limit 5
  roadcross scores --id 3f6c1a2e-...`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text table instead of the interactive view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().StringVar(&flagID, "id", "", "Show a single round by ID")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening round history: %v", err)
	}

	err = showScores(store)
	// fail exits, so close before it
	store.Close()
	if err != nil {
		fail("%v", err)
	}
}

// showScores prints a single round, opens the history view, or prints the
// top rounds, depending on the flags.
func showScores(store *storage.Store) error {
	if flagID != "" {
		r, err := store.RoundByID(flagID)
		if err != nil {
			return fmt.Errorf("retrieving round: %w", err)
		}
		if r == nil {
			return fmt.Errorf("%w: %s", errRoundNotFound, flagID)
		}
		printRounds([]storage.Round{*r})
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, flagLimit, width, height)
	}

	rounds, err := store.TopRounds(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}
	printRounds(rounds)
	return nil
}

// printRounds writes the plain text history table.
func printRounds(rounds []storage.Round) {
	colorTitle.Println("Round History")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'roadcross' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-8s  %-9s  %s\n", "Rank", "Level", "Preset", "Front end", "Date")
	colorDim.Printf("  %-4s  %-6s  %-8s  %-9s  %s\n", "----", "-----", "------", "---------", "----")

	for i, r := range rounds {
		line := fmt.Sprintf("  %-4d  %-6d  %-8s  %-9s  %s",
			i+1, r.Level, r.Preset, r.Frontend, r.CreatedAt.Format("2006-01-02 15:04"))
		if i == 0 {
			colorBest.Println(line)
		} else {
			fmt.Println(line)
		}
	}
}
