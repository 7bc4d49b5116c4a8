// Package storage provides the persistence adapters: durable key-value
// slots holding serialized collections. Reads are fail-soft: a missing,
// unreadable, or corrupt slot is treated as empty.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/ports"
)

// Slot keys. Each key owns one serialized collection.
const (
	historySlot  = "calchub-history"
	searchesSlot = "recent-searches"
)

// FileStore keeps each slot as a JSON document under the data directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a store rooted at dir (default ~/.calchub/data).
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = filepath.Join(userHome(), ".calchub", "data")
	}
	return &FileStore{dir: dir}
}

// Load implements ports.HistoryRepository.
func (f *FileStore) Load() ([]domain.HistoryRecord, error) {
	var records []domain.HistoryRecord
	f.readSlot(historySlot, &records)
	return records, nil
}

// Persist implements ports.HistoryRepository.
func (f *FileStore) Persist(records []domain.HistoryRecord) error {
	return f.writeSlot(historySlot, records)
}

// LoadSearches implements ports.SearchRepository.
func (f *FileStore) LoadSearches() ([]string, error) {
	var entries []string
	f.readSlot(searchesSlot, &entries)
	return entries, nil
}

// PersistSearches implements ports.SearchRepository.
func (f *FileStore) PersistSearches(entries []string) error {
	return f.writeSlot(searchesSlot, entries)
}

// readSlot decodes the slot into v, leaving v untouched when the slot is
// missing or its contents do not parse.
func (f *FileStore) readSlot(key string, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.slotPath(key))
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, v)
}

func (f *FileStore) writeSlot(key string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(f.slotPath(key), data, 0o644)
}

func (f *FileStore) slotPath(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var (
	_ ports.HistoryRepository = (*FileStore)(nil)
	_ ports.SearchRepository  = (*FileStore)(nil)
)
