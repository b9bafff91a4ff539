package stats

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndBestScore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if best, err := store.BestScore(); err != nil || best != 0 {
		t.Fatalf("empty ledger best = %d, err %v, want 0, nil", best, err)
	}

	start := time.Now().Add(-time.Minute)
	if err := store.RecordSession(start, time.Now(), 12, 4, 12); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.RecordSession(start, time.Now(), 31, 10, 31); err != nil {
		t.Fatalf("record: %v", err)
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if best != 31 {
		t.Fatalf("best = %d, want 31", best)
	}
}

func TestNilStoreIsInert(t *testing.T) {
	var store *Store
	if err := store.RecordSession(time.Now(), time.Now(), 1, 1, 1); err != nil {
		t.Fatalf("nil record: %v", err)
	}
	if best, err := store.BestScore(); err != nil || best != 0 {
		t.Fatalf("nil best = %d, err %v", best, err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "nested", "stats.db"))
	if err != nil {
		t.Fatalf("open in missing directory: %v", err)
	}
	store.Close()
}
