package config

import "fmt"

// ParsePreset converts a CLI string to a preset. The empty string means
// "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyRunnerPreset adjusts speed, speed ramp and spacing for a preset.
// Fixed keeps the loaded speed but disables the ramp.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.8
		cfg.Obstacles.MinGap += 60
		cfg.Obstacles.MaxGap += 80
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.25
		cfg.Physics.SpeedRamp *= 4
		cfg.Obstacles.MaxGap = max(cfg.Obstacles.MinGap, cfg.Obstacles.MaxGap-120)
	case DifficultyFixed:
		cfg.Physics.SpeedRamp = 0
	}
}
