package services

import (
	"strings"
	"sync"

	"github.com/doeshing/calchub/internal/ports"
)

// recentSearchLimit caps the persisted recent-search list.
const recentSearchLimit = 5

// SearchLog keeps the most recent catalog search strings, most recent
// first, deduplicated, persisted under their own slot.
type SearchLog struct {
	repo ports.SearchRepository
	log  ports.Logger

	mu      sync.Mutex
	entries []string
}

// NewSearchLog loads the persisted list; a failed read starts empty.
func NewSearchLog(repo ports.SearchRepository, log ports.Logger) *SearchLog {
	s := &SearchLog{repo: repo, log: log}
	entries, err := repo.LoadSearches()
	if err != nil {
		log.Warn("recent searches load failed, starting empty", map[string]interface{}{"error": err.Error()})
		entries = nil
	}
	if len(entries) > recentSearchLimit {
		entries = entries[:recentSearchLimit]
	}
	s.entries = entries
	return s
}

// Remember records a search string at the front of the list, removing
// any earlier occurrence and trimming to the limit. Blank input is a
// no-op.
func (s *SearchLog) Remember(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]string, 0, recentSearchLimit)
	updated = append(updated, query)
	for _, existing := range s.entries {
		if existing == query {
			continue
		}
		updated = append(updated, existing)
		if len(updated) == recentSearchLimit {
			break
		}
	}
	s.entries = updated

	if err := s.repo.PersistSearches(s.entries); err != nil {
		s.log.Error("recent searches persist failed", err, nil)
	}
}

// Recent returns a copy of the list, most recent first.
func (s *SearchLog) Recent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}
