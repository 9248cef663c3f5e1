package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/games/dash"
	"github.com/vovakirdan/dash-runner/internal/platform/gfx"
)

var windowCmd = &cobra.Command{
	Use:   "window <course>",
	Short: "Play a course in a desktop window",
	Long: `Open a desktop window and play the specified course with pixel graphics.

Controls:
  Space/Up/W/Click/Tap  - Jump
  P                     - Pause
  R                     - Restart (after game over)
  Esc/Q                 - Quit

Examples:
  dash window dash
  dash window dash-blocks --difficulty easy`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	v, err := variantFor(args[0])
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr)
	dash.UseLogger(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if err := gfx.Run(dash.New(v), store, cfg, logger); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
