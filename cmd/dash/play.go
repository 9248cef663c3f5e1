package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/games/dash"
	"github.com/vovakirdan/dash-runner/internal/platform/tui"
	"github.com/vovakirdan/dash-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <course>",
	Short: "Play a course in the terminal",
	Long: `Start playing the specified course.

Controls:
  Space/Up/W   - Jump (hold for a repeat jump on landing)
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back (when paused or after game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentle ramp, wide gaps
  normal - Configured values
  hard   - Faster start, steeper ramp, tighter gaps
  fixed  - No speed ramp

Examples:
  dash play dash
  dash play dash-blocks --difficulty hard
  dash play dash --seed 42
  dash play dash --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if _, err := variantFor(gameID); err != nil {
		return err
	}

	logger, closeLog := fileLogger()
	defer closeLog()
	dash.UseLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating course: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running course: %w", err)
	}
	return nil
}
