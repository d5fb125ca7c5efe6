package queries

import (
	"context"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
)

// GetTaskQuery identifies a single task.
type GetTaskQuery struct {
	TaskID int
}

// GetTaskResult holds the task when Found is true.
type GetTaskResult struct {
	Task  TaskDTO
	Found bool
}

// GetTaskHandler handles the GetTaskQuery.
type GetTaskHandler struct {
	store task.Store
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(store task.Store) *GetTaskHandler {
	return &GetTaskHandler{store: store}
}

// Handle executes the GetTaskQuery. An unknown id is reported through
// Found, not as an error.
func (h *GetTaskHandler) Handle(ctx context.Context, query GetTaskQuery) (*GetTaskResult, error) {
	list, err := h.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	t := list.Find(query.TaskID)
	if t == nil {
		return &GetTaskResult{}, nil
	}
	return &GetTaskResult{Task: toDTO(t), Found: true}, nil
}
