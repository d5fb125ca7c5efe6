package task

import (
	"errors"
	"strings"
	"time"

	"github.com/felixgeelhaar/tasker/internal/shared/domain"
)

var (
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrInvalidID        = errors.New("task id must be a positive integer")
)

// TimestampLayout is the persisted and displayed timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// Task represents a single entry on the task list.
type Task struct {
	domain.BaseEntity
	description string
	status      Status
}

// NewTask creates a task with the given id. Both timestamps are set to now.
func NewTask(id int, description string, status Status) (*Task, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Task{
		BaseEntity:  domain.NewBaseEntityWithID(id),
		description: description,
		status:      status,
	}, nil
}

// Rehydrate recreates a task from persisted state without validation.
func Rehydrate(id int, description string, status Status, createdAt, updatedAt time.Time) *Task {
	return &Task{
		BaseEntity:  domain.RehydrateBaseEntity(id, createdAt, updatedAt),
		description: description,
		status:      status,
	}
}

// Getters

func (t *Task) Description() string { return t.description }
func (t *Task) Status() Status      { return t.status }

// SetDescription replaces the description. It does not touch updatedAt.
func (t *Task) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}
	t.description = description
	return nil
}

// SetStatus replaces the status. Any status may follow any other.
func (t *Task) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	t.status = status
	return nil
}
