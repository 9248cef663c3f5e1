package sim

import "time"

// Clock is a fixed-timestep accumulator. Frame deltas go in; a number of
// constant-size steps comes out. Time is kept in integer nanoseconds so the
// split of a duration across frames never changes the step count.
type Clock struct {
	step     time.Duration
	maxFrame time.Duration
	maxSteps int
	acc      time.Duration
}

// NewClock creates a clock. maxFrame clamps a single delta (a stalled host
// does not cause a burst of catch-up), maxSteps bounds the work per frame.
func NewClock(step, maxFrame time.Duration, maxSteps int) *Clock {
	return &Clock{
		step:     step,
		maxFrame: maxFrame,
		maxSteps: maxSteps,
	}
}

// Advance adds a frame delta and returns how many steps to run now.
// Time beyond maxSteps stays in the accumulator for the next frame.
func (c *Clock) Advance(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	if frame > c.maxFrame {
		frame = c.maxFrame
	}
	c.acc += frame

	steps := 0
	for c.acc >= c.step && steps < c.maxSteps {
		c.acc -= c.step
		steps++
	}
	return steps
}

// Step returns the fixed step size.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Pending returns the accumulated time not yet simulated.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

// Alpha returns the fraction of a step waiting in the accumulator, for
// renderers that interpolate.
func (c *Clock) Alpha() float64 {
	if c.step <= 0 {
		return 0
	}
	return float64(c.acc) / float64(c.step)
}

// Reset drops accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
