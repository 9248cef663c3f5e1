package sim

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/core"
)

// Session owns all mutable state of one game: the mover, the world, the
// clock and the run state machine. It is not safe for concurrent use; the
// host loop drives it from a single goroutine.
type Session struct {
	cfg    config.RunnerConfig
	res    resolver
	mover  Mover
	world  *World
	clock  *Clock
	dt     float64 // fixed step in seconds
	store  core.BestStore
	logger *log.Logger

	phase   Phase
	cause   EndCause
	score   float64
	best    int
	speed   float64
	cleared int
	ticks   uint64
	seed    int64
	runs    int64
	saveErr error

	jumpQueued bool // edge latched until the next step
	jumpHeld   bool
}

// Option configures a Session.
type Option func(*Session)

// WithBestStore attaches the persistence adapter for the best score.
func WithBestStore(store core.BestStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger sets the logger used for persistence failures and run events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession validates cfg and starts the first run. The seed fixes the
// obstacle sequence; restarts derive their seeds from it.
func NewSession(cfg config.RunnerConfig, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: invalid config: %w", err)
	}

	s := &Session{
		cfg:   cfg,
		res:   newResolver(cfg),
		world: NewWorld(cfg, seed),
		clock: NewClock(cfg.Clock.Step(), cfg.Clock.MaxFrame, cfg.Clock.MaxSteps),
		dt:    1 / float64(cfg.Clock.Rate),
		seed:  seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	if s.store != nil {
		best, err := s.store.LoadBest()
		if err != nil {
			s.logger.Warn("could not load best score", "err", err)
		} else {
			s.best = best
		}
	}

	s.reset()
	return s, nil
}

// reset puts every run-scoped value back to its initial state.
func (s *Session) reset() {
	s.mover = Mover{
		X: s.cfg.Player.X,
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
	s.mover.land(s.cfg.Viewport.FloorY())

	s.world.Reset(s.seed + s.runs)
	s.clock.Reset()
	s.phase = Running
	s.cause = CauseNone
	s.score = 0
	s.speed = s.cfg.Physics.BaseSpeed
	s.cleared = 0
	s.ticks = 0
	s.saveErr = nil
	s.jumpQueued = false
	s.jumpHeld = false
}

// Restart begins a new run. It only acts in GameOver, so repeated requests
// within one frame restart once.
func (s *Session) Restart() bool {
	if s.phase != GameOver {
		return false
	}
	s.runs++
	s.reset()
	s.logger.Debug("run restarted", "run", s.runs)
	return true
}

// TogglePause switches between Running and Paused. It is ignored after game over.
func (s *Session) TogglePause() bool {
	switch s.phase {
	case Running:
		s.phase = Paused
	case Paused:
		s.phase = Running
	default:
		return false
	}
	return true
}

// Frame feeds one host frame: commands first, then as many fixed steps as
// the clock grants for delta. It returns the number of steps simulated.
// While paused or over, delta is discarded.
func (s *Session) Frame(delta time.Duration, cmd Commands) int {
	s.apply(cmd)
	if s.phase != Running {
		return 0
	}

	n := s.clock.Advance(delta)
	ran := 0
	for ran < n && s.phase == Running {
		s.step()
		ran++
	}
	return ran
}

// Step applies cmd and runs exactly one fixed step, bypassing the clock.
// It reports whether a step ran.
func (s *Session) Step(cmd Commands) bool {
	s.apply(cmd)
	if s.phase != Running {
		return false
	}
	s.step()
	return true
}

func (s *Session) apply(cmd Commands) {
	if s.phase == GameOver {
		if cmd.RestartRequested || (cmd.JumpPressed && s.cfg.Input.JumpRestarts) {
			s.Restart()
		}
		return
	}

	s.jumpHeld = cmd.JumpHeld
	if cmd.PauseToggle {
		s.TogglePause()
	}
	if cmd.JumpPressed && s.phase == Running {
		s.jumpQueued = true
	}
}

// step advances the run by one fixed step.
func (s *Session) step() {
	dt := s.dt
	m := &s.mover
	s.ticks++

	fresh := s.jumpQueued
	s.jumpQueued = false
	if fresh || (s.jumpHeld && s.cfg.Input.HoldToJump) {
		s.res.tryJump(m, fresh)
	}

	prevBottom := m.Bottom()
	s.res.integrate(m, dt)
	if s.res.outOfBounds(*m) {
		s.end(CauseOutOfBounds)
		return
	}
	s.res.clampFloor(m)

	s.world.Tick(dt, s.speed)
	if cause := s.res.collide(m, s.world.objects, prevBottom); cause != CauseNone {
		s.end(cause)
		return
	}

	passed := markPassed(*m, s.world.objects)
	s.cleared += passed
	s.score += s.cfg.Score.Rate*dt + float64(passed)*s.cfg.Score.PassBonus
	s.speed += s.cfg.Physics.SpeedRamp * dt
}

// end moves the run to GameOver and records a new best score.
func (s *Session) end(cause EndCause) {
	s.phase = GameOver
	s.cause = cause

	final := s.Score()
	if final > s.best {
		s.best = final
		if s.store != nil {
			if err := s.store.SaveBest(final); err != nil {
				s.saveErr = err
				s.logger.Warn("could not save best score", "score", final, "err", err)
			}
		}
	}
	s.logger.Debug("run ended", "cause", cause, "score", final, "ticks", s.ticks)
}

// Place stages an exact object in the world (inspection and tests).
func (s *Session) Place(obj LevelObject) {
	s.world.Place(obj)
}

// SpawnAt generates an obstacle at x from the run's random stream.
func (s *Session) SpawnAt(x float64) LevelObject {
	return s.world.SpawnAt(x)
}

// SetSpeed raises the scroll speed. Lower values are ignored so speed never
// decreases within a run.
func (s *Session) SetSpeed(v float64) {
	s.speed = math.Max(s.speed, v)
}

// Phase returns the current run phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Cause returns why the last run ended, or CauseNone while it is live.
func (s *Session) Cause() EndCause {
	return s.cause
}

// Score returns the whole points accrued in the current run.
func (s *Session) Score() int {
	return int(math.Floor(s.score))
}

// Best returns the best score known to the session.
func (s *Session) Best() int {
	return s.best
}

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 {
	return s.speed
}

// Mover returns a copy of the mover.
func (s *Session) Mover() Mover {
	return s.mover
}

// Ticks returns the fixed steps simulated in the current run.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Seed returns the seed of the current run's obstacle sequence.
func (s *Session) Seed() int64 {
	return s.seed + s.runs
}

// Runs returns how many restarts happened.
func (s *Session) Runs() int64 {
	return s.runs
}

// SaveError returns the last best-score persistence failure of this run.
func (s *Session) SaveError() error {
	return s.saveErr
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
