package sim

import "github.com/vovakirdan/dash-runner/internal/core"

// ObjectView is the read-only view of a level object.
type ObjectView struct {
	Rect   core.RectF
	Kind   Kind
	Passed bool
}

// Snapshot is a copy of everything a renderer needs for one frame.
// Holding on to it never aliases session state.
type Snapshot struct {
	Mover       core.RectF
	Grounded    bool
	Objects     []ObjectView
	Phase       Phase
	Cause       EndCause
	Score       int
	Best        int
	ScrollSpeed float64
	Cleared     int
	Tick        uint64
	FloorY      float64
	ViewportW   float64
	ViewportH   float64
	Alpha       float64 // accumulator fill, for interpolating renderers
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	objects := make([]ObjectView, len(s.world.objects))
	for i, o := range s.world.objects {
		objects[i] = ObjectView{
			Rect:   o.Rect(),
			Kind:   o.Kind,
			Passed: o.Passed,
		}
	}

	return Snapshot{
		Mover:       s.mover.Rect(),
		Grounded:    s.mover.Grounded,
		Objects:     objects,
		Phase:       s.phase,
		Cause:       s.cause,
		Score:       s.Score(),
		Best:        s.best,
		ScrollSpeed: s.speed,
		Cleared:     s.cleared,
		Tick:        s.ticks,
		FloorY:      s.cfg.Viewport.FloorY(),
		ViewportW:   s.cfg.Viewport.Width,
		ViewportH:   s.cfg.Viewport.Height,
		Alpha:       s.clock.Alpha(),
	}
}

// State converts the snapshot to the platform's coarse game state.
func (s Snapshot) State() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Best:     s.Best,
		GameOver: s.Phase == GameOver,
		Paused:   s.Phase == Paused,
	}
}
