// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the runner.
package config

import "time"

// RunnerConfig contains all tunables of the runner simulation.
// Distances are in virtual viewport pixels, times in seconds unless typed.
type RunnerConfig struct {
	Viewport  RunnerViewport  `yaml:"viewport"`
	Physics   RunnerPhysics   `yaml:"physics"`
	Player    RunnerPlayer    `yaml:"player"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Score     RunnerScore     `yaml:"score"`
	Clock     RunnerClock     `yaml:"clock"`
	Input     RunnerInput     `yaml:"input"`
}

// RunnerViewport describes the virtual play field.
type RunnerViewport struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // floor sits at Height - GroundHeight
}

// FloorY returns the y-coordinate of the floor surface.
func (v RunnerViewport) FloorY() float64 {
	return v.Height - v.GroundHeight
}

// RunnerPhysics defines motion parameters.
type RunnerPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // px/s^2, positive is down
	JumpImpulse   float64 `yaml:"jump_impulse"`   // px/s, negative is up
	JumpTolerance float64 `yaml:"jump_tolerance"` // |vy| below which one air jump is allowed; 0 disables
	LandTolerance float64 `yaml:"land_tolerance"` // px the previous bottom may sit below a block top and still land
	BaseSpeed     float64 `yaml:"base_speed"`     // initial scroll speed, px/s
	SpeedRamp     float64 `yaml:"speed_ramp"`     // scroll speed gain, px/s per second
}

// RunnerPlayer defines the mover's fixed column and size.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerObstacles defines level object generation.
type RunnerObstacles struct {
	MinWidth      int     `yaml:"min_width"`
	MaxWidth      int     `yaml:"max_width"`
	MinHeight     int     `yaml:"min_height"`
	MaxHeight     int     `yaml:"max_height"`
	MinGap        int     `yaml:"min_gap"`
	MaxGap        int     `yaml:"max_gap"`
	FirstGapMin   int     `yaml:"first_gap_min"`  // respawn range when the world runs empty
	FirstGapMax   int     `yaml:"first_gap_max"`  //
	InitialOffset float64 `yaml:"initial_offset"` // first obstacle after a reset
	Cutoff        float64 `yaml:"cutoff"`         // objects whose right edge passes this x are removed
	SolidChance   float64 `yaml:"solid_chance"`   // share of spawns that are landable blocks
}

// RunnerScore defines scoring.
type RunnerScore struct {
	Rate      float64 `yaml:"rate"`       // points per second survived
	PassBonus float64 `yaml:"pass_bonus"` // points per obstacle cleared
}

// RunnerClock defines the fixed-timestep accumulator.
type RunnerClock struct {
	Rate     int           `yaml:"rate"`      // simulation steps per second
	MaxFrame time.Duration `yaml:"max_frame"` // longest frame delta accepted
	MaxSteps int           `yaml:"max_steps"` // steps per frame before carrying over
}

// Step returns the fixed step as a duration.
func (c RunnerClock) Step() time.Duration {
	if c.Rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Rate)
}

// RunnerInput defines command handling tweaks.
type RunnerInput struct {
	JumpRestarts bool `yaml:"jump_restarts"` // a jump press on game over restarts
	HoldToJump   bool `yaml:"hold_to_jump"`  // a held jump re-jumps on landing
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
