package dash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/games/dash/sim"
	"github.com/vovakirdan/dash-runner/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// resetSettings restores package settings after a test changes them.
func resetSettings(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath = ""
		difficultyPreset = ""
		bestStores = nil
		logger = nil
	})
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
			continue
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", v.ID, err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title() = %q, expected %q", g.Title(), v.Title)
		}
	}
}

func TestStepRunsClockSteps(t *testing.T) {
	g := New(Variants[0])
	g.Reset(testRuntime(1))

	res := g.Step(core.NewInputFrame(), 25*time.Millisecond)
	if res.Steps != 3 {
		t.Errorf("Steps = %d, expected 3 for 25ms at 120Hz", res.Steps)
	}
	if res.State.GameOver || res.State.Paused {
		t.Errorf("unexpected state %+v", res.State)
	}
}

func TestStepMapsInput(t *testing.T) {
	g := New(Variants[0])
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in, 10*time.Millisecond)
	if g.Snapshot().Grounded {
		t.Error("jump press should leave the ground")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause, 10*time.Millisecond)
	if !res.State.Paused || res.Steps != 0 {
		t.Errorf("pause: state %+v, steps %d", res.State, res.Steps)
	}
}

func TestCommands(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	in.Hold(core.ActionJump, true)

	cmd := Commands(in)
	expected := sim.Commands{JumpHeld: true, RestartRequested: true}
	if cmd != expected {
		t.Errorf("Commands() = %+v, expected %+v", cmd, expected)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() sim.Snapshot {
		g := New(Variants[1])
		g.Reset(testRuntime(12345))
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in, time.Duration(10+i%7)*time.Millisecond)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Score != b.Score || a.Phase != b.Phase || a.Mover != b.Mover {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}

func TestConfigureBlocksVariant(t *testing.T) {
	cfg, err := Configure(Variants[1])
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if cfg.Obstacles.SolidChance != config.DefaultBlocksSolidChance {
		t.Errorf("SolidChance = %v, expected %v", cfg.Obstacles.SolidChance, config.DefaultBlocksSolidChance)
	}

	cfg, err = Configure(Variants[0])
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if cfg.Obstacles.SolidChance != 0 {
		t.Errorf("plain variant should have no solids, got %v", cfg.Obstacles.SolidChance)
	}
}

func TestConfigureRejectsInvalid(t *testing.T) {
	resetSettings(t)

	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  min_gap: 900\n  max_gap: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)

	if _, err := Configure(Variants[0]); err == nil {
		t.Fatal("Configure() should reject an inverted gap range")
	}

	// Reset falls back to defaults rather than failing.
	g := New(Variants[0])
	g.Reset(testRuntime(1))
	if g.Session().Config().Obstacles.MinGap != config.DefaultRunnerConfig().Obstacles.MinGap {
		t.Error("Reset should fall back to the default config")
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	resetSettings(t)

	if err := SetDifficultyPreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
	if err := SetDifficultyPreset("fixed"); err != nil {
		t.Fatalf("SetDifficultyPreset() error = %v", err)
	}

	cfg, err := Configure(Variants[0])
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.SpeedRamp != 0 {
		t.Errorf("fixed preset should disable the ramp, got %v", cfg.Physics.SpeedRamp)
	}
}

func TestBestStoreWiring(t *testing.T) {
	resetSettings(t)

	stores := map[string]*sim.MemoryBest{}
	UseBestStore(func(id string) core.BestStore {
		s := sim.NewMemoryBest(50)
		stores[id] = s
		return s
	})

	g := New(Variants[1])
	g.Reset(testRuntime(1))
	if g.State().Best != 50 {
		t.Errorf("Best = %d, expected 50", g.State().Best)
	}
	if _, ok := stores["dash-blocks"]; !ok {
		t.Error("store should be requested with the game ID")
	}
}

func TestRender(t *testing.T) {
	g := New(Variants[0])
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Best: 0") {
		t.Errorf("HUD row should show best: %q", screen.Row(0))
	}

	// 960x480 onto 80x23 rows: mover spans cols 8-11, rows 18-19, ground on row 20.
	for y := 18; y <= 19; y++ {
		for x := 8; x <= 11; x++ {
			c := screen.GetCell(x, y)
			if c.Rune != MoverChar || c.Color != core.ColorBrightYellow {
				t.Errorf("cell (%d, %d) = %+v, expected mover", x, y, c)
			}
		}
	}
	if screen.Get(0, 20) != GroundChar || screen.Get(79, 20) != GroundChar {
		t.Errorf("ground row = %q", screen.Row(20))
	}
	if screen.Get(0, 21) != DirtChar {
		t.Errorf("below ground = %q", screen.Row(21))
	}
}

func TestRenderObjectsAndOverlays(t *testing.T) {
	snap := sim.Snapshot{
		Mover:     core.NewRectF(100, 360, 40, 40),
		FloorY:    400,
		ViewportW: 960,
		ViewportH: 480,
		Objects: []sim.ObjectView{
			{Rect: core.NewRectF(480, 340, 48, 60), Kind: sim.Hazard},
			{Rect: core.NewRectF(720, 320, 48, 80), Kind: sim.Solid},
			{Rect: core.NewRectF(12, 340, 24, 60), Kind: sim.Hazard, Passed: true},
		},
		Phase: sim.GameOver,
		Cause: sim.CauseCrash,
		Score: 12,
	}

	screen := core.NewScreen(80, 24)
	RenderSnapshot(screen, snap)

	if c := screen.GetCell(40, 19); c.Rune != HazardChar || c.Color != core.ColorBrightRed {
		t.Errorf("hazard cell = %+v", c)
	}
	if c := screen.GetCell(60, 19); c.Rune != SolidChar || c.Color != core.ColorBlue {
		t.Errorf("solid cell = %+v", c)
	}
	if c := screen.GetCell(1, 19); c.Color != core.ColorGray {
		t.Errorf("passed object should be gray, got %+v", c)
	}

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Crashed into a block") {
		t.Errorf("game over overlay missing:\n%s", out)
	}

	snap.Phase = sim.Paused
	RenderSnapshot(screen, snap)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(Variants[0])
	g.Reset(testRuntime(1))

	// Must not panic.
	g.Render(core.NewScreen(0, 0))
	g.Render(core.NewScreen(3, 1))
}
