package sim

import (
	"context"
	"math/rand"
	"time"
)

// TickerSource produces frames from the wall clock at a fixed interval.
type TickerSource struct {
	ticker *time.Ticker
}

// NewTickerSource starts a ticker. Call Stop when done.
func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{ticker: time.NewTicker(interval)}
}

// Next blocks until the next tick or until ctx is done.
func (t *TickerSource) Next(ctx context.Context) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case now := <-t.ticker.C:
		return now, nil
	}
}

// Stop releases the ticker.
func (t *TickerSource) Stop() {
	t.ticker.Stop()
}

// ScriptedSource replays a fixed list of frame deltas from a synthetic start
// time, then reports ErrStopped. It never blocks.
type ScriptedSource struct {
	now    time.Time
	deltas []time.Duration
	next   int
	primed bool
}

// NewScriptedSource creates a source that yields start, then start+d0, ...
func NewScriptedSource(start time.Time, deltas []time.Duration) *ScriptedSource {
	return &ScriptedSource{now: start, deltas: deltas}
}

// Next returns the next scripted timestamp.
func (s *ScriptedSource) Next(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	if !s.primed {
		s.primed = true
		return s.now, nil
	}
	if s.next >= len(s.deltas) {
		return time.Time{}, ErrStopped
	}
	s.now = s.now.Add(s.deltas[s.next])
	s.next++
	return s.now, nil
}

// JitterDeltas splits total into random frame deltas within [lo, hi].
// The deltas sum to exactly total; the last one may be shorter than lo.
func JitterDeltas(rng *rand.Rand, total, lo, hi time.Duration) []time.Duration {
	var out []time.Duration
	span := int64(hi - lo)
	for total > 0 {
		d := lo
		if span > 0 {
			d += time.Duration(rng.Int63n(span + 1))
		}
		if d > total {
			d = total
		}
		out = append(out, d)
		total -= d
	}
	return out
}
