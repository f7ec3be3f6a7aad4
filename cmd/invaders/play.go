package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Up         - Fire
  R                - Restart (after a win or loss)
  Q/Esc/Ctrl+C     - Quit
  Ctrl+S           - Save a text screenshot to ~/.arcade/screenshots
  Ctrl+Y           - Copy the current frame to the clipboard
  ?                - Toggle full help

Examples:
  invaders play
  invaders play --fps 30
  invaders play --config ./my-invaders.yaml --log-file invaders.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the UI; logs go nowhere unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(game, runtimeConfig(width, height), logger)
}
