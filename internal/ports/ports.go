// Package ports defines the interfaces between the application core and
// infrastructure adapters. The core depends on these abstractions only;
// concrete storage, config, and logging implementations live under
// internal/infrastructure and internal/pkg.
package ports

import (
	"context"

	"github.com/doeshing/calchub/internal/domain"
)

// HistoryRepository persists the full history collection as one unit under
// a durable key-value slot. Load is fail-soft: an unreadable or corrupt
// slot yields an empty collection, never an error the caller must handle.
type HistoryRepository interface {
	Load() ([]domain.HistoryRecord, error)
	Persist([]domain.HistoryRecord) error
}

// SearchRepository persists the recent-search list under its own slot,
// with the same fail-soft read semantics as HistoryRepository.
type SearchRepository interface {
	LoadSearches() ([]string, error)
	PersistSearches([]string) error
}

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.calchub/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Logger provides structured logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
