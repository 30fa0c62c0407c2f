// Package app builds the dependency graph shared by the CLI and the TUI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jask/rubrica/internal/config"
	"github.com/jask/rubrica/internal/contact"
	"github.com/jask/rubrica/internal/database"
	"github.com/jask/rubrica/internal/database/repository"
	"github.com/jask/rubrica/internal/service"
)

// Wire bundles the registry and the stores behind it.
type Wire struct {
	Config      config.Config
	Registry    *contact.Registry
	Maintenance *service.MaintenanceService
	Log         zerolog.Logger

	db *sql.DB
}

// NewWire opens storage (when enabled), applies migrations and loads the
// address book.
func NewWire(ctx context.Context, cfg config.Config, log zerolog.Logger) (*Wire, error) {
	w := &Wire{Config: cfg, Log: log}
	order := contact.NewOrdering(cfg.UI.SortByFirstName, cfg.UI.Locale)

	var store contact.Store
	if cfg.Storage.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		if err := database.RunMigrations(cfg.Storage.Path); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.Open(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		w.db = db
		store = repository.NewContactRepo(db)
		w.Maintenance = &service.MaintenanceService{DB: db}
		log.Debug().Str("path", cfg.Storage.Path).Msg("storage opened")
	}

	w.Registry = contact.NewRegistry(order, store, log)
	if err := w.Registry.Load(ctx); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

// Close releases the database, if any.
func (w *Wire) Close() error {
	if w.db == nil {
		return nil
	}
	err := w.db.Close()
	w.db = nil
	return err
}
