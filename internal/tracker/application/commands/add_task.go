package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	sharedApplication "github.com/felixgeelhaar/tasker/internal/shared/application"
)

// AddTaskCommand contains the data needed to add a task.
type AddTaskCommand struct {
	Description string
	Status      *task.Status // nil means NotDone
}

// AddTaskResult contains the result of adding a task.
type AddTaskResult struct {
	TaskID int
	Status task.Status
}

// AddTaskHandler handles the AddTaskCommand.
type AddTaskHandler struct {
	store  task.Store
	uow    sharedApplication.UnitOfWork
	logger *slog.Logger
}

// NewAddTaskHandler creates a new AddTaskHandler.
func NewAddTaskHandler(store task.Store, uow sharedApplication.UnitOfWork, logger *slog.Logger) *AddTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddTaskHandler{store: store, uow: uow, logger: logger}
}

// Handle executes the AddTaskCommand.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) (*AddTaskResult, error) {
	status := task.StatusNotDone
	if cmd.Status != nil {
		status = *cmd.Status
	}

	var result *AddTaskResult
	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		list, err := h.store.Load(txCtx)
		if err != nil {
			return err
		}

		t, err := list.Add(cmd.Description, status)
		if err != nil {
			return err
		}

		if err := h.store.Save(txCtx, list); err != nil {
			return err
		}

		result = &AddTaskResult{TaskID: t.ID(), Status: t.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.DebugContext(ctx, "task added", "task_id", result.TaskID, "status", result.Status.String())
	return result, nil
}
