package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dash-runner/internal/config"
)

func spawnOffsets(seed int64, n int) []float64 {
	cfg := config.DefaultRunnerConfig()
	w := NewWorld(cfg, seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = w.Spawn().X - cfg.Viewport.Width
	}
	return out
}

func TestWorldSpawnDeterministic(t *testing.T) {
	first := spawnOffsets(1234, 10)
	second := spawnOffsets(1234, 10)
	assert.Equal(t, first, second)

	for i, off := range first {
		assert.GreaterOrEqual(t, off, 220.0, "spawn %d", i)
		assert.LessOrEqual(t, off, 520.0, "spawn %d", i)
	}

	other := spawnOffsets(99, 10)
	assert.NotEqual(t, first, other, "different seeds should differ")
}

func TestWorldSpawnAnchoredToFloor(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := NewWorld(cfg, 7)

	for i := 0; i < 50; i++ {
		o := w.Spawn()
		assert.Equal(t, cfg.Viewport.FloorY(), o.Y+o.H)
		assert.GreaterOrEqual(t, o.W, float64(cfg.Obstacles.MinWidth))
		assert.LessOrEqual(t, o.W, float64(cfg.Obstacles.MaxWidth))
		assert.GreaterOrEqual(t, o.H, float64(cfg.Obstacles.MinHeight))
		assert.LessOrEqual(t, o.H, float64(cfg.Obstacles.MaxHeight))
		assert.Equal(t, Hazard, o.Kind)
	}
	assert.Equal(t, 50, w.Spawned())
}

func TestWorldReset(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := NewWorld(cfg, 1)
	w.Spawn()
	w.Spawn()

	w.Reset(5)
	require.Equal(t, 1, w.Len())
	assert.Equal(t, cfg.Viewport.Width+cfg.Obstacles.InitialOffset, w.Objects()[0].X)
	assert.Equal(t, 1, w.Spawned())
}

func TestWorldTickScrollsAndPrunes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := NewWorld(cfg, 3)

	w.Place(LevelObject{X: -65, W: 20, H: 10, Kind: Hazard})
	w.Place(LevelObject{X: 500, W: 300, H: 10, Kind: Hazard})

	w.Tick(0.1, 100) // shift 10
	objs := w.Objects()
	require.Len(t, objs, 1, "object past the cutoff should be pruned")
	assert.InDelta(t, 490, objs[0].X, 1e-9)
}

func TestWorldTickRefillsWhenEmpty(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := NewWorld(cfg, 3)

	w.Tick(1.0/120, 420)
	require.Equal(t, 1, w.Len())
	x := w.Objects()[0].X
	assert.GreaterOrEqual(t, x, cfg.Viewport.Width+float64(cfg.Obstacles.FirstGapMin))
	assert.LessOrEqual(t, x, cfg.Viewport.Width+float64(cfg.Obstacles.FirstGapMax))
}

func TestWorldTickSpawnRule(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	right := cfg.Viewport.Width
	gap := float64(cfg.Obstacles.MinGap)

	tests := []struct {
		name  string
		right float64 // trailing edge of the last object
		spawn bool
	}{
		{"gap below minimum", right - gap + 1, false},
		{"gap exactly minimum", right - gap, true},
		{"gap above minimum", right - gap - 40, true},
		{"object still off screen", right + 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(cfg, 11)
			w.Place(LevelObject{X: tc.right - 50, W: 50, H: 40, Kind: Hazard})
			w.Tick(0, 420)

			if tc.spawn {
				require.Equal(t, 2, w.Len())
				newest := w.Objects()[1]
				assert.GreaterOrEqual(t, newest.X, right+gap)
			} else {
				assert.Equal(t, 1, w.Len())
			}
		})
	}
}

func TestWorldPlaceKeepsOrder(t *testing.T) {
	w := NewWorld(config.DefaultRunnerConfig(), 1)
	w.Place(LevelObject{X: 300})
	w.Place(LevelObject{X: 100})
	w.Place(LevelObject{X: 200})

	var xs []float64
	for _, o := range w.Objects() {
		xs = append(xs, o.X)
	}
	assert.Equal(t, []float64{100, 200, 300}, xs)
}
