package sim

import "sync"

// MemoryBest keeps the best score in memory. It is used when no database is
// available and by tests.
type MemoryBest struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryBest creates an in-memory store seeded with score.
func NewMemoryBest(score int) *MemoryBest {
	return &MemoryBest{score: score}
}

// LoadBest returns the stored score.
func (b *MemoryBest) LoadBest() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.score, nil
}

// SaveBest stores score.
func (b *MemoryBest) SaveBest(score int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.score = score
	b.saves++
	return nil
}

// Saves returns how many times SaveBest was called.
func (b *MemoryBest) Saves() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}
