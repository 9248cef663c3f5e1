package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultRunnerConfigIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseRunner(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML and DefaultRunnerConfig drifted:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("physics:\n  gravity: 2400\nclock:\n  max_frame: 25ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.Gravity != 2400 {
		t.Errorf("gravity = %g, expected override 2400", cfg.Physics.Gravity)
	}
	if cfg.Clock.MaxFrame != 25*time.Millisecond {
		t.Errorf("max_frame = %s, expected 25ms", cfg.Clock.MaxFrame)
	}
	if cfg.Physics.JumpImpulse != -700 {
		t.Errorf("unset fields should keep defaults, jump_impulse = %g", cfg.Physics.JumpImpulse)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadRunnerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("malformed YAML should be an error")
	}
}

func TestValidateRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   string
	}{
		{"inverted width", func(c *RunnerConfig) { c.Obstacles.MinWidth, c.Obstacles.MaxWidth = 80, 20 }, "min_width"},
		{"inverted gap", func(c *RunnerConfig) { c.Obstacles.MinGap = 600 }, "min_gap"},
		{"upward gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1 }, "gravity"},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 10 }, "jump_impulse"},
		{"zero rate", func(c *RunnerConfig) { c.Clock.Rate = 0 }, "rate"},
		{"runaway accumulator", func(c *RunnerConfig) { c.Clock.MaxFrame = time.Second }, "accumulator"},
		{"solid chance", func(c *RunnerConfig) { c.Obstacles.SolidChance = 2 }, "solid_chance"},
		{"tall obstacle", func(c *RunnerConfig) { c.Obstacles.MaxHeight = 1000 }, "max_height"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Physics.Gravity = 0
	cfg.Player.Width = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	if !strings.Contains(err.Error(), "gravity") || !strings.Contains(err.Error(), "player") {
		t.Errorf("all problems should be reported, got %q", err)
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	fixed := base
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Physics.SpeedRamp != 0 {
		t.Error("fixed preset should disable the speed ramp")
	}

	hard := base
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Physics.BaseSpeed <= base.Physics.BaseSpeed {
		t.Error("hard preset should be faster")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	easy := base
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Obstacles.MinGap <= base.Obstacles.MinGap {
		t.Error("easy preset should widen gaps")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestClockStep(t *testing.T) {
	c := RunnerClock{Rate: 120}
	if c.Step() != time.Second/120 {
		t.Errorf("Step() = %s", c.Step())
	}
	if (RunnerClock{}).Step() != 0 {
		t.Error("zero rate should yield zero step")
	}
}
