package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks the configuration for values that would make the
// simulation undefined. All problems are reported together.
func (c RunnerConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	v := c.Viewport
	if v.Width <= 0 || v.Height <= 0 {
		add("viewport: size must be positive, got %gx%g", v.Width, v.Height)
	}
	if v.GroundHeight < 0 || v.GroundHeight >= v.Height {
		add("viewport: ground_height %g must be in [0, height)", v.GroundHeight)
	}

	p := c.Physics
	if p.Gravity <= 0 {
		add("physics: gravity must be positive, got %g", p.Gravity)
	}
	if p.JumpImpulse >= 0 {
		add("physics: jump_impulse must be negative (upward), got %g", p.JumpImpulse)
	}
	if p.JumpTolerance < 0 || p.LandTolerance < 0 {
		add("physics: tolerances must not be negative")
	}
	if p.BaseSpeed <= 0 {
		add("physics: base_speed must be positive, got %g", p.BaseSpeed)
	}
	if p.SpeedRamp < 0 {
		add("physics: speed_ramp must not be negative, got %g", p.SpeedRamp)
	}

	pl := c.Player
	if pl.Width <= 0 || pl.Height <= 0 {
		add("player: size must be positive, got %gx%g", pl.Width, pl.Height)
	}
	if pl.Height > v.FloorY() {
		add("player: height %g does not fit above the floor", pl.Height)
	}

	o := c.Obstacles
	checkRange := func(name string, lo, hi, floor int) {
		if lo < floor {
			add("obstacles: min_%s must be at least %d, got %d", name, floor, lo)
		}
		if lo > hi {
			add("obstacles: min_%s %d exceeds max_%s %d", name, lo, name, hi)
		}
	}
	checkRange("width", o.MinWidth, o.MaxWidth, 1)
	checkRange("height", o.MinHeight, o.MaxHeight, 1)
	checkRange("gap", o.MinGap, o.MaxGap, 0)
	if o.FirstGapMin < 0 || o.FirstGapMin > o.FirstGapMax {
		add("obstacles: first_gap range [%d, %d] is invalid", o.FirstGapMin, o.FirstGapMax)
	}
	if float64(o.MaxHeight) > v.FloorY() {
		add("obstacles: max_height %d does not fit above the floor", o.MaxHeight)
	}
	if o.Cutoff > 0 {
		add("obstacles: cutoff must be at or left of the viewport, got %g", o.Cutoff)
	}
	if o.SolidChance < 0 || o.SolidChance > 1 {
		add("obstacles: solid_chance must be in [0, 1], got %g", o.SolidChance)
	}

	if c.Score.Rate < 0 || c.Score.PassBonus < 0 {
		add("score: rates must not be negative")
	}

	k := c.Clock
	if k.Rate <= 0 {
		add("clock: rate must be positive, got %d", k.Rate)
	}
	if k.MaxSteps <= 0 {
		add("clock: max_steps must be positive, got %d", k.MaxSteps)
	}
	if k.MaxFrame <= 0 {
		add("clock: max_frame must be positive, got %s", k.MaxFrame)
	}
	if k.Rate > 0 && k.MaxSteps > 0 && k.MaxFrame > k.Step()*time.Duration(k.MaxSteps) {
		add("clock: max_frame %s exceeds max_steps*step, the accumulator would grow without bound", k.MaxFrame)
	}

	return errors.Join(errs...)
}
