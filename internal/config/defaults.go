package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultBlocksSolidChance is the solid share used by the blocks variant
// when the loaded config does not set one.
const DefaultBlocksSolidChance = 0.35

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: RunnerViewport{
			Width:        960,
			Height:       480,
			GroundHeight: 80,
		},
		Physics: RunnerPhysics{
			Gravity:       1800,
			JumpImpulse:   -700,
			JumpTolerance: 0,
			LandTolerance: 4,
			BaseSpeed:     420,
			SpeedRamp:     0.02,
		},
		Player: RunnerPlayer{
			X:      100,
			Width:  40,
			Height: 40,
		},
		Obstacles: RunnerObstacles{
			MinWidth:      30,
			MaxWidth:      70,
			MinHeight:     30,
			MaxHeight:     120,
			MinGap:        220,
			MaxGap:        520,
			FirstGapMin:   60,
			FirstGapMax:   220,
			InitialOffset: 120,
			Cutoff:        -50,
			SolidChance:   0,
		},
		Score: RunnerScore{
			Rate:      10,
			PassBonus: 0,
		},
		Clock: RunnerClock{
			Rate:     120,
			MaxFrame: 33 * time.Millisecond,
			MaxSteps: 6,
		},
		Input: RunnerInput{
			JumpRestarts: true,
			HoldToJump:   true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `dash config`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
