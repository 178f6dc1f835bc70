package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadcross/internal/games/crossing"
	"github.com/vovakirdan/roadcross/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play the game in the terminal.

Controls:
  Up/W       - Step forward
  Down/S     - Step back
  R          - Restart the round
  P/Esc      - Pause
  Ctrl+S     - Save a screenshot to ~/.roadcross/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower traffic that speeds up gently
  normal - The classic speeds
  hard   - Fast traffic from the first level
  fixed  - Traffic never speeds up

Examples:
  roadcross play
  roadcross play --difficulty easy
  roadcross play --config ./my-crossing.yaml --log game.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Logs would corrupt the terminal UI, so they need --log
	setup, err := newGameSetup(io.Discard)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := crossing.New(setup.cfg, setup.best)
	runErr := tui.Run(game, setup.recorder("terminal"), setup.runtime(width, height))

	// Close store before potential exit
	setup.Close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
