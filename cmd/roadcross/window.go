package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadcross/internal/games/crossing"
	"github.com/vovakirdan/roadcross/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 1000x800 window and play there.

Controls:
  Up/W       - Step forward
  Down/S     - Step back
  R          - Restart the round
  P          - Pause
  Click      - Close the window

Examples:
  roadcross window
  roadcross window --fps 15 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	setup, err := newGameSetup(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	game := crossing.New(setup.cfg, setup.best)
	field := setup.cfg.Field
	runErr := window.Run(game, setup.recorder("window"), setup.runtime(int(field.Width), int(field.Height)))

	setup.Close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
