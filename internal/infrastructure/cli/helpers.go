package cli

import (
	"os"
	"path/filepath"
)

// writeDocument writes an export document into dir, creating it as
// needed, and returns the full path.
func writeDocument(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
