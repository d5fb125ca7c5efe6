package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	sharedApplication "github.com/felixgeelhaar/tasker/internal/shared/application"
)

// UpdateTaskCommand contains the data needed to update a task.
// Requiring at least one change is left to the caller; an update with
// neither field still refreshes updated_at.
type UpdateTaskCommand struct {
	TaskID      int
	Description *string      // nil or blank means no change
	Status      *task.Status // nil means no change
}

// UpdateTaskResult reports whether a task with the id existed.
type UpdateTaskResult struct {
	Updated bool
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	store  task.Store
	uow    sharedApplication.UnitOfWork
	logger *slog.Logger
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(store task.Store, uow sharedApplication.UnitOfWork, logger *slog.Logger) *UpdateTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UpdateTaskHandler{store: store, uow: uow, logger: logger}
}

// Handle executes the UpdateTaskCommand. An unknown id is not an error: the
// result has Updated=false and nothing is written.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error) {
	result := &UpdateTaskResult{}

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		list, err := h.store.Load(txCtx)
		if err != nil {
			return err
		}

		t := list.Find(cmd.TaskID)
		if t == nil {
			return nil
		}

		var updatedFields []string

		if cmd.Description != nil && strings.TrimSpace(*cmd.Description) != "" {
			if err := t.SetDescription(*cmd.Description); err != nil {
				return err
			}
			updatedFields = append(updatedFields, "description")
		}

		if cmd.Status != nil {
			if err := t.SetStatus(*cmd.Status); err != nil {
				return err
			}
			updatedFields = append(updatedFields, "status")
		}

		t.Touch()

		if err := h.store.Save(txCtx, list); err != nil {
			return err
		}

		result.Updated = true
		h.logger.DebugContext(txCtx, "task updated", "task_id", cmd.TaskID, "fields", updatedFields)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
