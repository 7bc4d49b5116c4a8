package services

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/ports"
)

// HistoryService owns the in-memory history collection and is the sole
// writer to its persisted slot. The collection is loaded once at
// construction and kept authoritative for the session: every mutation
// persists synchronously, and a persist failure is logged without rolling
// back the in-memory change.
type HistoryService struct {
	repo ports.HistoryRepository
	log  ports.Logger
	now  func() time.Time

	mu      sync.Mutex
	records []domain.HistoryRecord
	maxID   int
}

// NewHistoryService loads the persisted collection. A failed or corrupt
// read starts the session with an empty collection, never an error.
func NewHistoryService(repo ports.HistoryRepository, log ports.Logger) *HistoryService {
	s := &HistoryService{repo: repo, log: log, now: time.Now}
	records, err := repo.Load()
	if err != nil {
		log.Warn("history load failed, starting empty", map[string]interface{}{"error": err.Error()})
		records = nil
	}
	s.records = records
	for _, rec := range records {
		if rec.ID > s.maxID {
			s.maxID = rec.ID
		}
	}
	return s
}

// Create assigns the next ID from the session high-water-mark (IDs are
// never reused after deletes), stamps a missing timestamp, appends, and
// persists. The stored record is returned.
func (s *HistoryService) Create(rec domain.HistoryRecord) domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.maxID++
	rec.ID = s.maxID
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}
	s.records = append(s.records, cloneRecord(rec))
	s.persist()
	return rec
}

// All returns every record sorted by timestamp descending. The sort is
// recomputed on each call because updates can change timestamps.
func (s *HistoryService) All() []domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByTimestamp(s.records)
}

// ByID returns the record with the given id, or nil when unknown.
func (s *HistoryService) ByID(id int) *domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.ID == id {
			out := cloneRecord(rec)
			return &out
		}
	}
	return nil
}

// ByCalculator filters by calculator id, most recent first.
func (s *HistoryService) ByCalculator(calculatorID string) []domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.HistoryRecord
	for _, rec := range s.records {
		if rec.CalculatorID == calculatorID {
			matched = append(matched, rec)
		}
	}
	return sortedByTimestamp(matched)
}

// Recent returns the first n of All. A zero or negative n yields nothing.
func (s *HistoryService) Recent(n int) []domain.HistoryRecord {
	if n <= 0 {
		return nil
	}
	all := s.All()
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// Update merges a partial patch into the record and persists. Returns
// nil when the id is unknown; nothing is persisted in that case.
func (s *HistoryService) Update(id int, patch domain.HistoryPatch) *domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if patch.CalculatorID != nil {
			s.records[i].CalculatorID = *patch.CalculatorID
		}
		if patch.CalculatorName != nil {
			s.records[i].CalculatorName = *patch.CalculatorName
		}
		if patch.Inputs != nil {
			s.records[i].Inputs = cloneMap(patch.Inputs)
		}
		if patch.Results != nil {
			s.records[i].Results = cloneMap(patch.Results)
		}
		if patch.Timestamp != nil {
			s.records[i].Timestamp = *patch.Timestamp
		}
		s.persist()
		out := cloneRecord(s.records[i])
		return &out
	}
	return nil
}

// Delete removes the record and persists, returning the removed record
// or nil when the id is unknown.
func (s *HistoryService) Delete(id int) *domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		removed := cloneRecord(s.records[i])
		s.records = append(s.records[:i], s.records[i+1:]...)
		s.persist()
		return &removed
	}
	return nil
}

// ClearAll empties the collection and persists the empty state.
// Idempotent. IDs restart at 1 afterwards, matching the reference
// behavior of deriving the high-water-mark from the stored set.
func (s *HistoryService) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.maxID = 0
	s.persist()
}

// Search matches text case-insensitively against the calculator name and
// the serialized form of both inputs and results.
func (s *HistoryService) Search(text string) []domain.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	term := strings.ToLower(strings.TrimSpace(text))
	var matched []domain.HistoryRecord
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.CalculatorName), term) ||
			strings.Contains(serialize(rec.Inputs), term) ||
			strings.Contains(serialize(rec.Results), term) {
			matched = append(matched, rec)
		}
	}
	return sortedByTimestamp(matched)
}

// persist writes the collection through the repository. Failures are
// logged; in-memory state stays the source of truth for the session.
// Callers must hold s.mu.
func (s *HistoryService) persist() {
	if err := s.repo.Persist(s.records); err != nil {
		s.log.Error("history persist failed", err, map[string]interface{}{"records": len(s.records)})
	}
}

// sortedByTimestamp returns an independent copy sorted most recent
// first. Records are cloned so callers cannot reach the stored maps.
func sortedByTimestamp(records []domain.HistoryRecord) []domain.HistoryRecord {
	out := make([]domain.HistoryRecord, len(records))
	for i, rec := range records {
		out[i] = cloneRecord(rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func cloneRecord(rec domain.HistoryRecord) domain.HistoryRecord {
	rec.Inputs = cloneMap(rec.Inputs)
	rec.Results = cloneMap(rec.Results)
	return rec
}

func cloneMap[M ~map[string]any](m M) M {
	if m == nil {
		return nil
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func serialize(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.ToLower(string(raw))
}
