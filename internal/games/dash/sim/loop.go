package sim

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStopped is returned by a FrameSource that has no more frames.
var ErrStopped = errors.New("sim: frame source stopped")

// FrameSource supplies monotonic frame timestamps, one per host refresh.
type FrameSource interface {
	Next(ctx context.Context) (time.Time, error)
}

// InputSource returns the command snapshot for the coming frame.
type InputSource interface {
	Poll() Commands
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Commands

// Poll calls f.
func (f InputFunc) Poll() Commands {
	return f()
}

// Renderer consumes one snapshot per frame.
type Renderer interface {
	Render(snap Snapshot) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Snapshot) error

// Render calls f.
func (f RenderFunc) Render(snap Snapshot) error {
	return f(snap)
}

// Loop is the explicit host loop: wait for a frame, simulate, render.
type Loop struct {
	session *Session
	frames  FrameSource
	input   InputSource
	render  Renderer
	count   int
}

// NewLoop wires a session to its collaborators. input and render may be nil.
func NewLoop(session *Session, frames FrameSource, input InputSource, render Renderer) *Loop {
	return &Loop{
		session: session,
		frames:  frames,
		input:   input,
		render:  render,
	}
}

// Run drives the session until the frame source stops or ctx is cancelled.
// Both count as a clean stop.
func (l *Loop) Run(ctx context.Context) error {
	last, err := l.frames.Next(ctx)
	if err != nil {
		return stopErr(err)
	}

	for {
		now, err := l.frames.Next(ctx)
		if err != nil {
			return stopErr(err)
		}

		var cmd Commands
		if l.input != nil {
			cmd = l.input.Poll()
		}
		l.session.Frame(now.Sub(last), cmd)
		last = now
		l.count++

		if l.render != nil {
			if err := l.render.Render(l.session.Snapshot()); err != nil {
				return fmt.Errorf("sim: render frame %d: %w", l.count, err)
			}
		}
	}
}

// Frames returns how many frames the loop has processed.
func (l *Loop) Frames() int {
	return l.count
}

func stopErr(err error) error {
	if errors.Is(err, ErrStopped) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
