package app

import (
	"context"
	"path/filepath"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/infrastructure/config"
	"github.com/doeshing/calchub/internal/infrastructure/storage"
	"github.com/doeshing/calchub/internal/pkg/logger"
	"github.com/doeshing/calchub/internal/ports"
	"github.com/doeshing/calchub/internal/registry"
	"github.com/doeshing/calchub/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config   domain.Config
	Logger   ports.Logger
	Registry *registry.Registry
	Catalog  *services.CatalogService
	History  *services.HistoryService
	Searches *services.SearchLog
	Export   *services.ExportService
}

// BuildContainer constructs the dependency graph. The sqlite backend
// falls back to the file store when the database cannot be opened.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)

	var (
		historyRepo ports.HistoryRepository
		searchRepo  ports.SearchRepository
	)
	if cfg.Storage.Backend == "sqlite" {
		store, err := storage.NewSQLiteStore(filepath.Join(cfg.Storage.Dir, "calchub.db"))
		if err != nil {
			log.Warn("sqlite store unavailable, using file store", map[string]interface{}{"error": err.Error()})
			fileStore := storage.NewFileStore(cfg.Storage.Dir)
			historyRepo, searchRepo = fileStore, fileStore
		} else {
			historyRepo, searchRepo = store, store
		}
	} else {
		fileStore := storage.NewFileStore(cfg.Storage.Dir)
		historyRepo, searchRepo = fileStore, fileStore
	}

	reg := registry.New()
	history := services.NewHistoryService(historyRepo, log)

	return &Container{
		Config:   cfg,
		Logger:   log,
		Registry: reg,
		Catalog:  &services.CatalogService{Registry: reg},
		History:  history,
		Searches: services.NewSearchLog(searchRepo, log),
		Export:   &services.ExportService{History: history},
	}, nil
}
