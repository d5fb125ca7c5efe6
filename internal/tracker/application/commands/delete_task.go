package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	sharedApplication "github.com/felixgeelhaar/tasker/internal/shared/application"
)

// DeleteTaskCommand identifies the task to delete.
type DeleteTaskCommand struct {
	TaskID int
}

// DeleteTaskResult reports whether a task was removed.
type DeleteTaskResult struct {
	Deleted bool
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	store  task.Store
	uow    sharedApplication.UnitOfWork
	logger *slog.Logger
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(store task.Store, uow sharedApplication.UnitOfWork, logger *slog.Logger) *DeleteTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeleteTaskHandler{store: store, uow: uow, logger: logger}
}

// Handle executes the DeleteTaskCommand. The store is only written when a
// task was actually removed.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	result := &DeleteTaskResult{}

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		list, err := h.store.Load(txCtx)
		if err != nil {
			return err
		}

		if !list.Remove(cmd.TaskID) {
			return nil
		}

		if err := h.store.Save(txCtx, list); err != nil {
			return err
		}

		result.Deleted = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.DebugContext(ctx, "task delete handled", "task_id", cmd.TaskID, "deleted", result.Deleted)
	return result, nil
}
