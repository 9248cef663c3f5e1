package storage

import "github.com/vovakirdan/dash-runner/internal/core"

// BestScore adapts a Store to core.BestStore for one game.
type BestScore struct {
	store  *Store
	gameID string
}

var _ core.BestStore = (*BestScore)(nil)

// NewBestScore binds the store to a game ID.
func NewBestScore(store *Store, gameID string) *BestScore {
	return &BestScore{store: store, gameID: gameID}
}

// LoadBest returns the stored best score. When none was stored yet it falls
// back to the best recorded run, so older databases keep their record.
func (b *BestScore) LoadBest() (int, error) {
	best, err := b.store.Best(b.gameID)
	if err != nil || best > 0 {
		return best, err
	}
	return b.store.HighScore(b.gameID)
}

// SaveBest stores a new best score.
func (b *BestScore) SaveBest(score int) error {
	return b.store.SetBest(b.gameID, score)
}
