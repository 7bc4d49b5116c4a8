package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/ports"
)

// SQLiteStore persists slots in a single-table SQLite database. Each row
// is one slot: the key names the collection, the value carries its JSON.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database at path
// (default ~/.calchub/data/calchub.db).
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = filepath.Join(userHome(), ".calchub", "data", "calchub.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load implements ports.HistoryRepository.
func (s *SQLiteStore) Load() ([]domain.HistoryRecord, error) {
	var records []domain.HistoryRecord
	s.readSlot(historySlot, &records)
	return records, nil
}

// Persist implements ports.HistoryRepository.
func (s *SQLiteStore) Persist(records []domain.HistoryRecord) error {
	return s.writeSlot(historySlot, records)
}

// LoadSearches implements ports.SearchRepository.
func (s *SQLiteStore) LoadSearches() ([]string, error) {
	var entries []string
	s.readSlot(searchesSlot, &entries)
	return entries, nil
}

// PersistSearches implements ports.SearchRepository.
func (s *SQLiteStore) PersistSearches(entries []string) error {
	return s.writeSlot(searchesSlot, entries)
}

func (s *SQLiteStore) readSlot(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var raw string
	if err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&raw); err != nil {
		return
	}
	_ = json.Unmarshal([]byte(raw), v)
}

func (s *SQLiteStore) writeSlot(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(data))
	return err
}

var (
	_ ports.HistoryRepository = (*SQLiteStore)(nil)
	_ ports.SearchRepository  = (*SQLiteStore)(nil)
)
