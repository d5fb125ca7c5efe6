package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
)

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID          int
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toDTO(t *task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	Status *task.Status // nil lists every task
}

// ListTasksResult holds the matching tasks in insertion order.
type ListTasksResult struct {
	Tasks     []TaskDTO
	Filter    *task.Status
	StoreSize int // number of tasks in the whole store, before filtering
}

// StoreEmpty reports whether the store held no tasks at all.
func (r *ListTasksResult) StoreEmpty() bool { return r.StoreSize == 0 }

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	store task.Store
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(store task.Store) *ListTasksHandler {
	return &ListTasksHandler{store: store}
}

// Handle executes the ListTasksQuery.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	list, err := h.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	tasks := list.Tasks()
	if query.Status != nil {
		tasks = list.Filter(*query.Status)
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, toDTO(t))
	}

	return &ListTasksResult{
		Tasks:     dtos,
		Filter:    query.Status,
		StoreSize: list.Len(),
	}, nil
}
