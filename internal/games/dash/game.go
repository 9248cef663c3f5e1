// Package dash implements the side-scrolling runner as registry games.
// The simulation lives in package sim; this package loads configuration,
// maps platform input to simulation commands and draws snapshots to a
// character screen.
package dash

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/games/dash/sim"
	"github.com/vovakirdan/dash-runner/internal/registry"
)

// Variant describes one registered flavour of the runner.
type Variant struct {
	ID          string
	Title       string
	Summary     string
	SolidChance float64 // used when the loaded config does not set one
}

// Variants lists every registered runner.
var Variants = []Variant{
	{ID: "dash", Title: "Dash", Summary: "Jump the spikes."},
	{
		ID:          "dash-blocks",
		Title:       "Dash: Blocks",
		Summary:     "Spikes and blocks. Land on the blocks, not against them.",
		SolidChance: config.DefaultBlocksSolidChance,
	},
}

// Package settings, set once from the CLI before any game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	bestStores       func(gameID string) core.BestStore
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every reset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// UseBestStore sets the factory that provides best-score persistence per game ID.
func UseBestStore(f func(gameID string) core.BestStore) {
	bestStores = f
}

// UseLogger sets the logger handed to every session.
func UseLogger(l *log.Logger) {
	logger = l
}

// Configure loads the configuration for a variant with the package settings
// applied and validates it. Callers use it to fail fast before opening a UI.
func Configure(v Variant) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	if cfg.Obstacles.SolidChance == 0 {
		cfg.Obstacles.SolidChance = v.SolidChance
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("dash: %s: %w", v.ID, err)
	}
	return cfg, nil
}

// Game adapts a simulation session to the registry.Game interface.
type Game struct {
	variant Variant
	session *sim.Session
}

// New creates a runner game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset starts a fresh session. A config that fails to load or validate
// falls back to the built-in defaults; Configure reports such errors up front.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := Configure(g.variant)
	if err != nil {
		g.log().Warn("using default config", "game", g.variant.ID, "err", err)
		cfg = config.DefaultRunnerConfig()
		if cfg.Obstacles.SolidChance == 0 {
			cfg.Obstacles.SolidChance = g.variant.SolidChance
		}
	}

	opts := []sim.Option{sim.WithLogger(g.log().With("game", g.variant.ID))}
	if bestStores != nil {
		opts = append(opts, sim.WithBestStore(bestStores(g.variant.ID)))
	}

	session, err := sim.NewSession(cfg, runtime.Seed, opts...)
	if err != nil {
		// Defaults always validate.
		panic(fmt.Sprintf("dash: default config rejected: %v", err))
	}
	g.session = session
}

// Step feeds one frame to the session.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	steps := g.session.Frame(dt, Commands(in))
	return core.StepResult{State: g.State(), Steps: steps}
}

// Commands converts a platform input frame into simulation commands.
func Commands(in core.InputFrame) sim.Commands {
	return sim.Commands{
		JumpPressed:      in.Has(core.ActionJump),
		JumpHeld:         in.IsHeld(core.ActionJump),
		PauseToggle:      in.Has(core.ActionPause),
		RestartRequested: in.Has(core.ActionRestart),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return g.session.Snapshot().State()
}

// Summary describes the current run for the run history.
func (g *Game) Summary() core.RunSummary {
	snap := g.session.Snapshot()
	return core.RunSummary{
		Score:   snap.Score,
		Cleared: snap.Cleared,
		Ticks:   snap.Tick,
		Cause:   snap.Cause.String(),
		Seed:    g.session.Seed(),
	}
}

// Snapshot returns a read-only copy of the simulation state.
func (g *Game) Snapshot() sim.Snapshot {
	return g.session.Snapshot()
}

// Session exposes the underlying simulation, for autopilots and tools.
func (g *Game) Session() *sim.Session {
	return g.session
}

func (g *Game) log() *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

func init() {
	for _, v := range Variants {
		info := registry.Info{ID: v.ID, Title: v.Title, Summary: v.Summary}
		registry.Register(info, func() registry.Game {
			return New(v)
		})
	}
}
