package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/games/dash"
	"github.com/vovakirdan/dash-runner/internal/platform/tui"
	"github.com/vovakirdan/dash-runner/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a course picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a course.
Press B on the pause or game over screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select course
  Tab          - High scores
  Q            - Quit

Examples:
  dash menu
  dash menu --fps 30
  dash menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := fileLogger()
	defer closeLog()
	dash.UseLogger(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		if _, err := variantFor(gameID); err != nil {
			logger.Error("course unavailable", "game", gameID, "err", err)
			return err
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating course: %w", err)
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			logger.Error("course failed", "game", gameID, "err", err)
			continue
		}
		if !back {
			return nil
		}
	}
}
