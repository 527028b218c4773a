package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Pilot: "ann", Score: 100, Level: 1, Distance: 900},
		{Pilot: "bob", Score: 50, Level: 1, Distance: 400},
		{Pilot: "ann", Score: 2200, Level: 4, Distance: 12000.5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 2200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
	if top[0].Pilot != "ann" || top[0].Level != 4 || top[0].Distance != 12000.5 {
		t.Errorf("Run fields not preserved: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled by the database")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{Score: (i + 1) * 100})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}

	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 runs, got %d", len(all))
	}
}

func TestStoreTiesKeepOlderFirst(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Pilot: "first", Score: 300})
	store.SaveRun(Run{Pilot: "second", Score: 300})

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].Pilot != "first" {
		t.Errorf("Expected the older run first on a tie, got %q", top[0].Pilot)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: -1}); err == nil {
		t.Error("SaveRun() should reject a negative score")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an empty table, got %d", high)
	}

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 300})
	store.SaveRun(Run{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{Score: 100, Level: 2, Distance: 1000})
	store.SaveRun(Run{Score: 300, Level: 5, Distance: 3000})

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 300 || st.AvgScore != 200 || st.BestLevel != 5 || st.TotalDistance != 4000 {
		t.Errorf("Unexpected stats: %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
