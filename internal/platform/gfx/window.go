// Package gfx runs a runner game in a desktop window using Ebitengine.
// It is the pixel counterpart of package tui: same games, same input frame,
// drawn with vector rectangles in world units instead of terminal cells.
package gfx

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/games/dash"
	"github.com/vovakirdan/dash-runner/internal/games/dash/sim"
	"github.com/vovakirdan/dash-runner/internal/registry"
	"github.com/vovakirdan/dash-runner/internal/storage"
)

// Runner is a game that exposes its simulation snapshot for drawing.
type Runner interface {
	registry.Game
	Snapshot() sim.Snapshot
	Summary() core.RunSummary
}

// Input reports the state of the window's keys and pointer.
type Input interface {
	KeyJustPressed(k ebiten.Key) bool
	KeyPressed(k ebiten.Key) bool
	PointerJustPressed() bool
	PointerPressed() bool
}

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

// Window implements ebiten.Game for one runner.
type Window struct {
	game   Runner
	input  Input
	now    func() time.Time
	store  *storage.Store
	logger *log.Logger

	frame    core.InputFrame
	state    core.GameState
	lastTick time.Time
	runSaved bool
}

// Option configures a Window.
type Option func(*Window)

// WithInput replaces the Ebitengine input source.
func WithInput(in Input) Option {
	return func(w *Window) {
		w.input = in
	}
}

// WithClock replaces the wall clock used to measure frame deltas.
func WithClock(now func() time.Time) Option {
	return func(w *Window) {
		w.now = now
	}
}

// NewWindow resets game with cfg and wraps it. store and logger may be nil.
func NewWindow(game Runner, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, opts ...Option) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &Window{
		game:   game,
		input:  ebitenInput{},
		now:    time.Now,
		store:  store,
		logger: logger,
		frame:  core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(w)
	}

	game.Reset(cfg)
	w.state = game.State()
	return w
}

// Update reads input and feeds one frame to the game.
func (w *Window) Update() error {
	if w.input.KeyJustPressed(ebiten.KeyEscape) || w.input.KeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	w.readInput()

	now := w.now()
	var dt time.Duration
	if !w.lastTick.IsZero() {
		dt = now.Sub(w.lastTick)
	}
	w.lastTick = now

	result := w.game.Step(w.frame, dt)
	w.state = result.State

	switch {
	case w.state.GameOver && !w.runSaved:
		w.saveRun()
		w.runSaved = true
	case !w.state.GameOver:
		w.runSaved = false
	}

	w.frame.Clear()
	return nil
}

func (w *Window) readInput() {
	held := w.input.PointerPressed()
	pressed := w.input.PointerJustPressed()
	for _, k := range jumpKeys {
		held = held || w.input.KeyPressed(k)
		pressed = pressed || w.input.KeyJustPressed(k)
	}
	if pressed {
		w.frame.Set(core.ActionJump)
	}
	w.frame.Hold(core.ActionJump, held)

	if w.input.KeyJustPressed(ebiten.KeyP) {
		w.frame.Set(core.ActionPause)
	}
	if w.input.KeyJustPressed(ebiten.KeyR) {
		w.frame.Set(core.ActionRestart)
	}
}

// saveRun records the finished run. Failures are logged; play goes on.
func (w *Window) saveRun() {
	summary := w.game.Summary()
	w.logger.Info("run over", "game", w.game.ID(), "score", summary.Score, "cause", summary.Cause)
	if w.store == nil || summary.Score <= 0 {
		return
	}
	_, err := w.store.SaveRun(storage.RunRecord{
		GameID:  w.game.ID(),
		Score:   summary.Score,
		Cleared: summary.Cleared,
		Ticks:   summary.Ticks,
		Cause:   summary.Cause,
		Seed:    summary.Seed,
	})
	if err != nil {
		w.logger.Error("could not save run", "err", err)
	}
}

// State returns the game state after the last update.
func (w *Window) State() core.GameState {
	return w.state
}

// Layout maps the window to the simulation viewport, one pixel per world unit.
func (w *Window) Layout(_, _ int) (int, int) {
	snap := w.game.Snapshot()
	return int(snap.ViewportW), int(snap.ViewportH)
}

var (
	colorSky    = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	colorGround = core.ColorDarkGray.RGBA()
	colorEdge   = core.ColorGray.RGBA()
	colorMover  = core.ColorBrightYellow.RGBA()
	colorDead   = core.ColorRed.RGBA()
	colorHazard = core.ColorBrightRed.RGBA()
	colorSolid  = core.ColorBlue.RGBA()
	colorPassed = core.ColorGray.RGBA()
	colorShade  = color.RGBA{A: 150}
)

// Draw paints the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(colorSky)

	floor := float32(snap.FloorY)
	width, height := float32(snap.ViewportW), float32(snap.ViewportH)
	vector.DrawFilledRect(screen, 0, floor, width, height-floor, colorGround, false)
	vector.StrokeLine(screen, 0, floor, width, floor, 2, colorEdge, false)

	for _, o := range snap.Objects {
		fillRect(screen, o.Rect, objectColor(o))
	}

	mover := colorMover
	if snap.Phase == sim.GameOver {
		mover = colorDead
	}
	fillRect(screen, snap.Mover, mover)

	hud := fmt.Sprintf("Score: %d  Best: %d  Speed: %.0f  Cleared: %d", snap.Score, snap.Best, snap.ScrollSpeed, snap.Cleared)
	ebitenutil.DebugPrintAt(screen, hud, 12, 10)

	switch snap.Phase {
	case sim.Paused:
		overlay(screen, width, height, "PAUSED", "Press P to resume")
	case sim.GameOver:
		overlay(screen, width, height, "GAME OVER  "+dash.CauseText(snap.Cause), "Space or R to restart, Esc to quit")
	}
}

func objectColor(o sim.ObjectView) color.RGBA {
	switch {
	case o.Passed:
		return colorPassed
	case o.Kind == sim.Solid:
		return colorSolid
	default:
		return colorHazard
	}
}

func fillRect(dst *ebiten.Image, r core.RectF, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func overlay(dst *ebiten.Image, width, height float32, title, hint string) {
	vector.DrawFilledRect(dst, 0, 0, width, height, colorShade, false)
	// DebugPrint glyphs are 6px wide.
	x := func(s string) int { return int(width)/2 - len(s)*3 }
	y := int(height) / 2
	ebitenutil.DebugPrintAt(dst, title, x(title), y-12)
	ebitenutil.DebugPrintAt(dst, hint, x(hint), y+8)
}

// Run opens a window and plays game until it is closed.
func Run(game Runner, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := NewWindow(game, store, cfg, logger)
	width, height := w.Layout(0, 0)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}

// ebitenInput reads keyboard, mouse and touch state from Ebitengine.
type ebitenInput struct{}

func (ebitenInput) KeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) KeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }

func (ebitenInput) PointerJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (ebitenInput) PointerPressed() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(ebiten.AppendTouchIDs(nil)) > 0
}
