// Package config loads YAML configuration from ~/.calchub/config.yaml
// (overridable via CALCHUB_CONFIG). A missing file is seeded with
// defaults on first run.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/ports"
)

// FileLoader loads the configuration file.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader; path overrides the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("CALCHUB_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".calchub", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Storage: domain.StorageSettings{
			Backend: "file",
			Dir:     filepath.Join(userHomeDir(), ".calchub", "data"),
		},
		History: domain.HistorySettings{
			RecentLimit: 10,
		},
		Export: domain.ExportSettings{
			Dir: ".",
		},
		API: domain.APISettings{
			Addr:           "127.0.0.1:8321",
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
	}
}

// hydrateDefaults fills gaps left by hand-edited config files.
func hydrateDefaults(cfg domain.Config) domain.Config {
	def := defaultConfig()
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = def.Storage.Backend
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = def.Storage.Dir
	}
	if cfg.History.RecentLimit <= 0 {
		cfg.History.RecentLimit = def.History.RecentLimit
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = def.Export.Dir
	}
	if cfg.API.Addr == "" {
		cfg.API.Addr = def.API.Addr
	}
	if len(cfg.API.AllowedOrigins) == 0 {
		cfg.API.AllowedOrigins = def.API.AllowedOrigins
	}
	return cfg
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return path
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
