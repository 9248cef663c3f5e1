package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvance(t *testing.T) {
	c := NewClock(10*time.Millisecond, 100*time.Millisecond, 20)

	assert.Equal(t, 0, c.Advance(5*time.Millisecond))
	assert.Equal(t, 5*time.Millisecond, c.Pending())
	assert.InDelta(t, 0.5, c.Alpha(), 1e-12)

	assert.Equal(t, 1, c.Advance(5*time.Millisecond))
	assert.Equal(t, time.Duration(0), c.Pending())

	assert.Equal(t, 3, c.Advance(35*time.Millisecond))
	assert.Equal(t, 5*time.Millisecond, c.Pending())
}

func TestClockClampsFrame(t *testing.T) {
	c := NewClock(10*time.Millisecond, 30*time.Millisecond, 20)

	assert.Equal(t, 3, c.Advance(5*time.Second), "stall should be clamped")
	assert.Equal(t, time.Duration(0), c.Pending())

	assert.Equal(t, 0, c.Advance(-time.Second))
	assert.Equal(t, time.Duration(0), c.Pending())
}

func TestClockStepCapCarriesOver(t *testing.T) {
	c := NewClock(10*time.Millisecond, 100*time.Millisecond, 2)

	assert.Equal(t, 2, c.Advance(50*time.Millisecond))
	assert.Equal(t, 30*time.Millisecond, c.Pending())
	assert.Equal(t, 2, c.Advance(0))
	assert.Equal(t, 1, c.Advance(0))
	assert.Equal(t, 0, c.Advance(0))
	assert.Equal(t, time.Duration(0), c.Pending())
}

func TestClockReset(t *testing.T) {
	c := NewClock(10*time.Millisecond, 100*time.Millisecond, 2)
	c.Advance(7 * time.Millisecond)
	c.Reset()
	assert.Equal(t, time.Duration(0), c.Pending())
}

func TestClockJitterIndependent(t *testing.T) {
	step := time.Second / 120
	total := 600 * step

	for seed := int64(1); seed <= 5; seed++ {
		deltas := JitterDeltas(rand.New(rand.NewSource(seed)), total, time.Millisecond, 30*time.Millisecond)

		var sum time.Duration
		for _, d := range deltas {
			sum += d
		}
		assert.Equal(t, total, sum, "deltas must add up exactly")

		c := NewClock(step, 33*time.Millisecond, 6)
		steps := 0
		for _, d := range deltas {
			steps += c.Advance(d)
		}
		assert.Equal(t, 600, steps, "seed %d", seed)
		assert.Equal(t, time.Duration(0), c.Pending())
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
