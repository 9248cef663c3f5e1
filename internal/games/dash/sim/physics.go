package sim

import (
	"math"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/core"
)

// resolver holds the motion constants of a session and applies them to the
// mover. It never touches the object sequence except to read it.
type resolver struct {
	gravity       float64
	jumpImpulse   float64
	jumpTolerance float64
	landTolerance float64
	floorY        float64
	bottomLimit   float64
}

func newResolver(cfg config.RunnerConfig) resolver {
	return resolver{
		gravity:       cfg.Physics.Gravity,
		jumpImpulse:   cfg.Physics.JumpImpulse,
		jumpTolerance: cfg.Physics.JumpTolerance,
		landTolerance: cfg.Physics.LandTolerance,
		floorY:        cfg.Viewport.FloorY(),
		bottomLimit:   cfg.Viewport.Height,
	}
}

// tryJump applies the jump impulse when the mover stands on something.
// With a non-zero tolerance a fresh press may also jump once while airborne,
// if vertical speed is within the tolerance (near the apex).
func (r resolver) tryJump(m *Mover, fresh bool) bool {
	switch {
	case m.Grounded:
	case fresh && r.jumpTolerance > 0 && !m.airJumped && math.Abs(m.VY) < r.jumpTolerance:
		m.airJumped = true
	default:
		return false
	}
	m.VY = r.jumpImpulse
	m.Grounded = false
	return true
}

// integrate applies gravity for dt (semi-implicit Euler).
func (r resolver) integrate(m *Mover, dt float64) {
	m.VY += r.gravity * dt
	m.Y += m.VY * dt
}

// outOfBounds reports whether the mover has dropped below the visible area.
func (r resolver) outOfBounds(m Mover) bool {
	return m.Y > r.bottomLimit
}

// clampFloor lands the mover on the floor or marks it airborne.
func (r resolver) clampFloor(m *Mover) {
	if m.Bottom() >= r.floorY {
		m.land(r.floorY)
		return
	}
	m.Grounded = false
}

// collide resolves contacts in sequence order. prevBottom is the mover's
// bottom edge before this step's integration. A hazard ends the step at once.
func (r resolver) collide(m *Mover, objects []LevelObject, prevBottom float64) EndCause {
	for i := range objects {
		o := &objects[i]
		if !core.Overlaps(m.Rect(), o.Rect()) {
			continue
		}

		switch o.Kind {
		case Solid:
			// VY == 0 covers resting on a top already landed on this step.
			if m.VY >= 0 && prevBottom <= o.Y+r.landTolerance {
				m.land(o.Y)
				continue
			}
			return CauseCrash
		case Hazard:
			return CauseHazard
		}
	}
	return CauseNone
}

// markPassed flags objects whose right edge is behind the mover and returns
// how many were newly passed.
func markPassed(m Mover, objects []LevelObject) int {
	n := 0
	for i := range objects {
		if !objects[i].Passed && objects[i].Right() < m.X {
			objects[i].Passed = true
			n++
		}
	}
	return n
}
