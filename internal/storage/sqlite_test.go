package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("dash", 10); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	high, err := store.HighScore("dash")
	if err != nil || high != 10 {
		t.Errorf("HighScore() = %d, %v; expected 10", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "dash", Score: 100, Cleared: 4, Ticks: 1200, Cause: "hazard", Seed: 1},
		{GameID: "dash", Score: 50, Cleared: 2, Ticks: 600, Cause: "hazard", Seed: 2},
		{GameID: "dash", Score: 200, Cleared: 9, Ticks: 2400, Cause: "crash", Seed: 3},
		{GameID: "dash-blocks", Score: 500, Cleared: 20, Ticks: 6000, Cause: "out of bounds", Seed: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("dash", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if top[i].Score != want {
			t.Errorf("run %d score = %d, expected %d", i, top[i].Score, want)
		}
	}

	best := top[0]
	if best.Cleared != 9 || best.Ticks != 2400 || best.Cause != "crash" || best.Seed != 3 {
		t.Errorf("run fields not round-tripped: %+v", best)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	blocks, err := store.TopRuns("dash-blocks", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Score != 500 {
		t.Errorf("unexpected dash-blocks runs: %+v", blocks)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("dash", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	top, err := store.TopRuns("dash", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", top[0].Score)
	}

	def, err := store.TopRuns("dash", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(def) != 10 {
		t.Errorf("default limit should be 10, got %d", len(def))
	}

	recent, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 190 {
		t.Errorf("RecentRuns() = %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("dash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty table, got %d", high)
	}

	store.SaveScore("dash", 100)
	store.SaveScore("dash", 300)
	store.SaveScore("dash", 200)

	high, err = store.HighScore("dash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("dash")
	if err != nil || best != 0 {
		t.Fatalf("Best() = %d, %v; expected 0", best, err)
	}

	steps := []struct {
		save, expected int
	}{
		{120, 120},
		{80, 120}, // lower never replaces higher
		{121, 121},
	}
	for _, s := range steps {
		if err := store.SetBest("dash", s.save); err != nil {
			t.Fatalf("SetBest(%d) failed: %v", s.save, err)
		}
		best, err := store.Best("dash")
		if err != nil {
			t.Fatalf("Best() failed: %v", err)
		}
		if best != s.expected {
			t.Errorf("after SetBest(%d): Best() = %d, expected %d", s.save, best, s.expected)
		}
	}

	other, _ := store.Best("dash-blocks")
	if other != 0 {
		t.Errorf("best scores should be per game, got %d", other)
	}
}

func TestBestScoreAdapter(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("dash", 75)

	b := NewBestScore(store, "dash")
	best, err := b.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 75 {
		t.Errorf("LoadBest() should fall back to run history, got %d", best)
	}

	if err := b.SaveBest(90); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	best, _ = b.LoadBest()
	if best != 90 {
		t.Errorf("LoadBest() = %d, expected 90", best)
	}
}

func TestBestScoreAdapterClosedStore(t *testing.T) {
	store := openTestStore(t)
	b := NewBestScore(store, "dash")
	store.Close()

	if err := b.SaveBest(10); err == nil {
		t.Error("SaveBest() on a closed store should fail")
	}
	if _, err := b.LoadBest(); err == nil {
		t.Error("LoadBest() on a closed store should fail")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("dash", 100)
	store.SaveScore("dash", 200)
	store.SaveScore("dash-blocks", 500)
	store.SetBest("dash", 200)

	if err := store.ClearRuns("dash"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("dash", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if best, _ := store.Best("dash"); best != 0 {
		t.Errorf("best score should be cleared, got %d", best)
	}

	// Other games are untouched
	blocks, _ := store.TopRuns("dash-blocks", 10)
	if len(blocks) != 1 {
		t.Errorf("Expected 1 dash-blocks run, got %d", len(blocks))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("dash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "dash", Score: 100, Cleared: 3})
	store.SaveRun(RunRecord{GameID: "dash", Score: 300, Cleared: 7})
	store.SaveRun(RunRecord{GameID: "dash-blocks", Score: 40, Cleared: 1})

	stats, err := store.GetGameStats("dash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.Cleared != 10 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["dash-blocks"].HighScore != 40 {
		t.Errorf("dash-blocks high = %d", all["dash-blocks"].HighScore)
	}
}

func TestRunRecordDuration(t *testing.T) {
	r := RunRecord{Ticks: 240}
	if got := r.Duration(120); got != 2*time.Second {
		t.Errorf("Duration(120) = %v, expected 2s", got)
	}
	if got := r.Duration(0); got != 0 {
		t.Errorf("Duration(0) = %v, expected 0", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.dash/scores.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".dash", "scores.db") {
		t.Errorf("expandHome() = %q", got)
	}

	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
