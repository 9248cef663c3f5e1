package sim

import (
	"math/rand"

	"github.com/vovakirdan/dash-runner/internal/config"
)

// World owns the ordered sequence of level objects. Objects are appended on
// the right and pruned on the left, so the slice stays sorted by x.
type World struct {
	cfg     config.RunnerObstacles
	right   float64 // viewport right edge
	floorY  float64
	objects []LevelObject
	rng     *rand.Rand
	spawned int
}

// NewWorld creates an empty world for the given configuration and seed.
func NewWorld(cfg config.RunnerConfig, seed int64) *World {
	w := &World{
		cfg:     cfg.Obstacles,
		right:   cfg.Viewport.Width,
		floorY:  cfg.Viewport.FloorY(),
		objects: make([]LevelObject, 0, 8),
	}
	w.reseed(seed)
	return w
}

func (w *World) reseed(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
}

// Reset clears all objects, reseeds the generator and places the first
// obstacle just beyond the right edge.
func (w *World) Reset(seed int64) {
	w.objects = w.objects[:0]
	w.spawned = 0
	w.reseed(seed)
	w.SpawnAt(w.right + w.cfg.InitialOffset)
}

// randInt returns an integer uniformly drawn from [lo, hi].
func (w *World) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

// SpawnAt adds one generated obstacle with its left edge at x.
func (w *World) SpawnAt(x float64) LevelObject {
	width, height := w.drawSize()
	return w.push(x, width, height)
}

// Spawn appends one obstacle a random gap beyond the right edge.
func (w *World) Spawn() LevelObject {
	width, height := w.drawSize()
	x := w.right + float64(w.randInt(w.cfg.MinGap, w.cfg.MaxGap))
	return w.push(x, width, height)
}

func (w *World) drawSize() (int, int) {
	width := w.randInt(w.cfg.MinWidth, w.cfg.MaxWidth)
	height := w.randInt(w.cfg.MinHeight, w.cfg.MaxHeight)
	return width, height
}

func (w *World) push(x float64, width, height int) LevelObject {
	kind := Hazard
	if w.cfg.SolidChance > 0 && w.rng.Float64() < w.cfg.SolidChance {
		kind = Solid
	}

	obj := LevelObject{
		X:    x,
		Y:    w.floorY - float64(height),
		W:    float64(width),
		H:    float64(height),
		Kind: kind,
	}
	w.insert(obj)
	w.spawned++
	return obj
}

// Place adds a caller-built object.
// Used by inspection tools and tests to stage exact geometry.
func (w *World) Place(obj LevelObject) {
	w.insert(obj)
}

// insert keeps objects ordered by x.
func (w *World) insert(obj LevelObject) {
	i := len(w.objects)
	for i > 0 && w.objects[i-1].X > obj.X {
		i--
	}
	w.objects = append(w.objects, LevelObject{})
	copy(w.objects[i+1:], w.objects[i:])
	w.objects[i] = obj
}

// Clear removes every object without spawning.
func (w *World) Clear() {
	w.objects = w.objects[:0]
}

// Tick scrolls every object left by speed*dt, drops the ones past the cutoff
// and spawns when the trailing object has opened a gap on the right.
func (w *World) Tick(dt, speed float64) {
	shift := speed * dt
	kept := w.objects[:0]
	for _, o := range w.objects {
		o.X -= shift
		if o.Right() < w.cfg.Cutoff {
			continue
		}
		kept = append(kept, o)
	}
	w.objects = kept

	if len(w.objects) == 0 {
		w.SpawnAt(w.right + float64(w.randInt(w.cfg.FirstGapMin, w.cfg.FirstGapMax)))
		return
	}

	last := w.objects[len(w.objects)-1]
	if w.right-last.Right() >= float64(w.cfg.MinGap) {
		w.Spawn()
	}
}

// Objects returns the live object sequence. Callers must not retain it
// across ticks.
func (w *World) Objects() []LevelObject {
	return w.objects
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return len(w.objects)
}

// Spawned returns how many objects were generated since the last reset.
func (w *World) Spawned() int {
	return w.spawned
}
