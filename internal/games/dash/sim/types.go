// Package sim is the fixed-timestep simulation of the runner: the mover, the
// scrolling level geometry, collision resolution and the run state machine.
// It has no terminal, window or storage dependencies.
package sim

import (
	"fmt"

	"github.com/vovakirdan/dash-runner/internal/core"
)

// Kind tags a level object.
type Kind uint8

const (
	// Solid objects can be landed on from above. Any other contact is a crash.
	Solid Kind = iota
	// Hazard objects end the run on any contact.
	Hazard
)

func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Hazard:
		return "hazard"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Phase is the state of the current run.
type Phase uint8

const (
	Running Phase = iota
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// EndCause records why a run ended.
type EndCause uint8

const (
	CauseNone EndCause = iota
	CauseHazard
	CauseCrash       // hit the side of a solid block
	CauseOutOfBounds // fell below the visible area
)

func (c EndCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseHazard:
		return "hazard"
	case CauseCrash:
		return "crash"
	case CauseOutOfBounds:
		return "out of bounds"
	default:
		return fmt.Sprintf("cause(%d)", uint8(c))
	}
}

// Mover is the player-controlled box. Its x never changes; the world scrolls.
type Mover struct {
	X, Y     float64
	W, H     float64
	VY       float64
	Grounded bool

	airJumped bool // one tolerance jump per airborne period
}

// Rect returns the mover's bounding box.
func (m Mover) Rect() core.RectF {
	return core.NewRectF(m.X, m.Y, m.W, m.H)
}

// Bottom returns the y-coordinate of the mover's feet.
func (m Mover) Bottom() float64 {
	return m.Y + m.H
}

// land puts the mover's feet on surface y and stops vertical motion.
func (m *Mover) land(y float64) {
	m.Y = y - m.H
	m.VY = 0
	m.Grounded = true
	m.airJumped = false
}

// LevelObject is one piece of level geometry.
type LevelObject struct {
	X, Y   float64
	W, H   float64
	Kind   Kind
	Passed bool // right edge has scrolled behind the mover
}

// Rect returns the object's bounding box.
func (o LevelObject) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the object's right edge.
func (o LevelObject) Right() float64 {
	return o.X + o.W
}

// Commands is the input snapshot consumed by the simulation.
// JumpPressed, PauseToggle and RestartRequested are edges; JumpHeld is a level.
type Commands struct {
	JumpPressed      bool
	JumpHeld         bool
	PauseToggle      bool
	RestartRequested bool
}
