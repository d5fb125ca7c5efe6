package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	sharedApplication "github.com/felixgeelhaar/tasker/internal/shared/application"
	"github.com/felixgeelhaar/tasker/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/tasker/internal/shared/infrastructure/migrations"
	sharedPersistence "github.com/felixgeelhaar/tasker/internal/shared/infrastructure/persistence"
	"github.com/felixgeelhaar/tasker/internal/shared/infrastructure/security"
	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/felixgeelhaar/tasker/internal/tracker/infrastructure/persistence"
	"github.com/felixgeelhaar/tasker/pkg/config"
)

// storeBundle is a task store together with the unit of work that guards it.
type storeBundle struct {
	store    task.Store
	uow      sharedApplication.UnitOfWork
	location string
	db       *sql.DB
}

// StoreFactory creates task stores based on the configured driver.
type StoreFactory struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewStoreFactory creates a new store factory.
func NewStoreFactory(cfg *config.Config, logger *slog.Logger) *StoreFactory {
	return &StoreFactory{cfg: cfg, logger: logger}
}

func (f *StoreFactory) create(ctx context.Context) (*storeBundle, error) {
	switch f.cfg.Store.Driver {
	case config.DriverFile:
		return f.fileStore()
	case config.DriverSQLite:
		return f.sqliteStore(ctx)
	case config.DriverMemory:
		return &storeBundle{
			store:    persistence.NewMemoryStore(),
			uow:      sharedApplication.NopUnitOfWork{},
			location: "memory",
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", f.cfg.Store.Driver)
	}
}

func (f *StoreFactory) fileStore() (*storeBundle, error) {
	path, err := security.ResolveDataFile(f.cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid task file: %w", err)
	}
	if err := database.EnsureDirectory(path); err != nil {
		return nil, fmt.Errorf("failed to create task file directory: %w", err)
	}

	return &storeBundle{
		store:    persistence.NewJSONFileStore(path, f.logger),
		uow:      sharedPersistence.NewFileLockUnitOfWork(path, f.cfg.LockTimeout()),
		location: path,
	}, nil
}

func (f *StoreFactory) sqliteStore(ctx context.Context) (*storeBundle, error) {
	path, err := security.ResolveDataFile(f.cfg.Store.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("invalid database file: %w", err)
	}

	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	applied, err := migrations.RunSQLiteMigrations(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if len(applied) > 0 {
		f.logger.DebugContext(ctx, "applied migrations", "path", path, "versions", applied)
	}

	return &storeBundle{
		store:    persistence.NewSQLiteStore(db, path, f.logger),
		uow:      sharedPersistence.NewSQLiteUnitOfWork(db),
		location: path,
		db:       db,
	}, nil
}
