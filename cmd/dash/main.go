// dash is a side-scrolling reflex runner for the terminal, the desktop and SSH.
//
// Usage:
//
//	dash list              - List available courses
//	dash play <course>     - Play a course in the terminal
//	dash window <course>   - Play a course in a desktop window
//	dash menu              - Start menu to pick courses interactively
//	dash serve             - Start SSH server for remote play
//	dash scores <course>   - Show high scores for a course
//	dash sim <course>      - Run a headless autopilot and print the result
//	dash config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.dash/scores.db)
//	--config <path>       - Load a custom runner YAML
//	--difficulty <name>   - Apply a difficulty preset
//	--log-level <level>   - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/games/dash"
	"github.com/vovakirdan/dash-runner/internal/registry"
	"github.com/vovakirdan/dash-runner/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Dash - a one-button runner for your terminal",
	Long: `Dash is a side-scrolling reflex runner. The world scrolls towards you;
jump over spikes, land on blocks and see how far you get.

Available commands:
  list     - Show all available courses
  play     - Play a course in the terminal
  window   - Play a course in a desktop window
  menu     - Interactive course picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless autopilot
  config   - Print the default configuration

Examples:
  dash list
  dash play dash
  dash play dash-blocks --difficulty hard
  dash menu
  dash serve --ssh :2222
  dash scores dash`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		dash.SetConfigPath(flagConfig)
		if err := dash.SetDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the --log-level writing to w.
func newLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "dash",
	})
}

// fileLogger logs to ~/.dash/dash.log. Terminal sessions own stdout and
// stderr, so anything logged there would corrupt the screen.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".dash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "dash.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// openStore opens the scores database and wires it in as the best-score
// store of every course. A missing database only costs persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	useStore(store)
	return store
}

func useStore(store *storage.Store) {
	dash.UseBestStore(func(gameID string) core.BestStore {
		return storage.NewBestScore(store, gameID)
	})
}

// variantFor resolves a course ID and checks its configuration up front.
func variantFor(gameID string) (dash.Variant, error) {
	if !registry.Exists(gameID) {
		return dash.Variant{}, fmt.Errorf("unknown course %q (run 'dash list' to see available courses)", gameID)
	}
	for _, v := range dash.Variants {
		if v.ID == gameID {
			if _, err := dash.Configure(v); err != nil {
				return v, err
			}
			return v, nil
		}
	}
	return dash.Variant{}, fmt.Errorf("course %q is not a runner", gameID)
}
