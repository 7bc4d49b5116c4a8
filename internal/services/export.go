package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportService renders collections as pretty-printed JSON documents
// with date-stamped filenames.
type ExportService struct {
	History *HistoryService
	Now     func() time.Time
}

func (e *ExportService) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// HistoryDocument serializes the full history collection. The filename
// follows the calchub-history-YYYY-MM-DD.json pattern.
func (e *ExportService) HistoryDocument() ([]byte, string, error) {
	data, err := json.MarshalIndent(e.History.All(), "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal history: %w", err)
	}
	name := fmt.Sprintf("calchub-history-%s.json", e.now().Format("2006-01-02"))
	return data, name, nil
}

// WriteHistory writes the history document into dir and returns the path.
func (e *ExportService) WriteHistory(dir string) (string, error) {
	data, name, err := e.HistoryDocument()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// SeriesDocument serializes a projection's data points for download,
// named after the source calculator.
func SeriesDocument(calculatorName string, data any) ([]byte, string, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal series: %w", err)
	}
	name := strings.ReplaceAll(calculatorName, " ", "_") + "_chart_data.json"
	return raw, name, nil
}
