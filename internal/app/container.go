// Package app wires configuration, storage and handlers together.
package app

import (
	"context"
	"database/sql"
	"log/slog"

	sharedApplication "github.com/felixgeelhaar/tasker/internal/shared/application"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/commands"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/queries"
	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/felixgeelhaar/tasker/internal/tracker/infrastructure/persistence"
	"github.com/felixgeelhaar/tasker/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Storage
	Store      task.Store
	UnitOfWork sharedApplication.UnitOfWork
	DB         *sql.DB // set for the sqlite driver only

	// Command Handlers
	AddTaskHandler    *commands.AddTaskHandler
	UpdateTaskHandler *commands.UpdateTaskHandler
	DeleteTaskHandler *commands.DeleteTaskHandler

	// Query Handlers
	ListTasksHandler   *queries.ListTasksHandler
	GetTaskHandler     *queries.GetTaskHandler
	ExportTasksHandler *queries.ExportTasksHandler
}

// NewContainer creates a container for the store driver named in cfg.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bundle, err := NewStoreFactory(cfg, logger).create(ctx)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "task store ready",
		"driver", cfg.Store.Driver,
		"location", bundle.location,
	)

	c := newContainer(cfg, logger, bundle.store, bundle.uow)
	c.DB = bundle.db
	return c, nil
}

// NewMemoryContainer creates a container backed by an in-memory store.
func NewMemoryContainer(logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := config.Default()
	cfg.Store.Driver = config.DriverMemory

	return newContainer(cfg, logger, persistence.NewMemoryStore(), sharedApplication.NopUnitOfWork{})
}

func newContainer(cfg *config.Config, logger *slog.Logger, store task.Store, uow sharedApplication.UnitOfWork) *Container {
	return &Container{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		UnitOfWork: uow,

		AddTaskHandler:    commands.NewAddTaskHandler(store, uow, logger),
		UpdateTaskHandler: commands.NewUpdateTaskHandler(store, uow, logger),
		DeleteTaskHandler: commands.NewDeleteTaskHandler(store, uow, logger),

		ListTasksHandler:   queries.NewListTasksHandler(store),
		GetTaskHandler:     queries.NewGetTaskHandler(store),
		ExportTasksHandler: queries.NewExportTasksHandler(store),
	}
}

// Close cleans up all resources.
func (c *Container) Close() error {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Error("failed to close database", "error", err)
			return err
		}
		c.DB = nil
	}
	return nil
}
