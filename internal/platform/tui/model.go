package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/registry"
	"github.com/vovakirdan/dash-runner/internal/storage"
)

// holdWindow is how long after the last jump key event the key still counts
// as held. Terminals report held keys only as auto-repeat presses.
const holdWindow = 150 * time.Millisecond

// summarizer is implemented by games that can describe a finished run.
type summarizer interface {
	Summary() core.RunSummary
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	screens    *ScreenRenderer
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	lastJump   time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		screens:    defaultScreens,
		inputFrame: core.NewInputFrame(),
	}
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// WithRenderer renders through r, typically a per-connection renderer.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.screens = NewScreenRenderer(r)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Only a paused or finished run can be left.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionJump:
		// Auto-repeat of a held key is not a new press.
		now := time.Now()
		if !m.jumpHeld(now) {
			m.inputFrame.Set(core.ActionJump)
		}
		m.lastJump = now
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

func (m Model) jumpHeld(now time.Time) bool {
	return !m.lastJump.IsZero() && now.Sub(m.lastJump) <= holdWindow
}

// handleResize processes window resize events. The game scales its world to
// the screen, so a resize never restarts the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick feeds one frame to the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.inputFrame.Hold(core.ActionJump, m.jumpHeld(now))
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun()
		m.runSaved = true
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged; play goes on.
func (m Model) saveRun() {
	summary := core.RunSummary{Score: m.gameState.Score}
	if s, ok := m.game.(summarizer); ok {
		summary = s.Summary()
	}
	m.logger.Info("run over", "game", m.game.ID(), "score", summary.Score, "cause", summary.Cause)

	if m.store == nil || summary.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:  m.game.ID(),
		Score:   summary.Score,
		Cleared: summary.Cleared,
		Ticks:   summary.Ticks,
		Cause:   summary.Cause,
		Seed:    summary.Seed,
	})
	if err != nil {
		m.logger.Error("could not save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	path, err := WriteScreenshot(m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// WriteScreenshot stores the plain-text screen under ~/.dash/screenshots.
func WriteScreenshot(gameID string, screen *core.Screen, at time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".dash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return m.screens.Render(m.screen)
}

// Run plays game in its own Bubble Tea program. It reports whether the
// player left for the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	p := tea.NewProgram(NewModel(game, store, cfg, logger), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
