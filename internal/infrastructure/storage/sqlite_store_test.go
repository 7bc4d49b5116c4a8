package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestSQLite(t *testing.T, path string) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore(%q) error = %v", path, err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calchub.db")
	want := sampleRecords()

	store := newTestSQLite(t, path)
	if err := store.Persist(want); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening the database sees the persisted collection.
	got, err := newTestSQLite(t, path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteStoreUpsertReplacesSlot(t *testing.T) {
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "calchub.db"))

	if err := store.PersistSearches([]string{"a", "b", "c"}); err != nil {
		t.Fatal(err)
	}
	if err := store.PersistSearches([]string{"d"}); err != nil {
		t.Fatal(err)
	}

	got, err := store.LoadSearches()
	if err != nil {
		t.Fatalf("LoadSearches() error = %v", err)
	}
	if diff := cmp.Diff([]string{"d"}, got); diff != "" {
		t.Errorf("second write should replace the slot (-want +got):\n%s", diff)
	}
}

func TestSQLiteStoreMissingSlotIsEmpty(t *testing.T) {
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "calchub.db"))

	records, err := store.Load()
	if err != nil || records != nil {
		t.Errorf("Load() on fresh database = %v, %v; want nil, nil", records, err)
	}
}

func TestSQLiteStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "calchub.db")
	store := newTestSQLite(t, path)
	if err := store.PersistSearches([]string{"bmi"}); err != nil {
		t.Errorf("PersistSearches() error = %v", err)
	}
}
