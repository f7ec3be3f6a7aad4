package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Fire
  R                - Restart (after a win or loss)
  Q/Esc            - Quit

Examples:
  invaders window
  invaders window --scale 1.5 --debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	w, h := game.Size()
	opts := window.Options{Scale: flagScale, Debug: flagDebug}
	return window.Run(game, runtimeConfig(w, h), opts, logger)
}
