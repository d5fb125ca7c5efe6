package task

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDuplicateID is returned when a list would hold two tasks with the same id.
	ErrDuplicateID = errors.New("duplicate task id")
	// ErrIDsExhausted is returned by Add when the highest id is already math.MaxInt.
	ErrIDsExhausted = errors.New("no task ids left: highest id is at the integer limit")
)

// List is the full task collection kept in one persisted document.
// Tasks keep their insertion order and ids are unique.
type List struct {
	tasks []*Task
}

// NewList builds a list from tasks in the given order.
func NewList(tasks ...*Task) (*List, error) {
	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID()]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID())
		}
		seen[t.ID()] = struct{}{}
	}
	return &List{tasks: append([]*Task(nil), tasks...)}, nil
}

// Tasks returns the tasks in insertion order. The slice is a copy; the
// tasks are shared.
func (l *List) Tasks() []*Task {
	return append([]*Task(nil), l.tasks...)
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// IsEmpty reports whether the list has no tasks.
func (l *List) IsEmpty() bool { return len(l.tasks) == 0 }

// NextID returns one more than the highest id in the list, or 1 when empty.
// It fails with ErrIDsExhausted instead of overflowing.
func (l *List) NextID() (int, error) {
	maxID := 0
	for _, t := range l.tasks {
		if t.ID() > maxID {
			maxID = t.ID()
		}
	}
	if maxID == math.MaxInt {
		return 0, ErrIDsExhausted
	}
	return maxID + 1, nil
}

// Add creates a task with the next id and appends it.
func (l *List) Add(description string, status Status) (*Task, error) {
	id, err := l.NextID()
	if err != nil {
		return nil, err
	}
	t, err := NewTask(id, description, status)
	if err != nil {
		return nil, err
	}
	l.tasks = append(l.tasks, t)
	return t, nil
}

// Find returns the task with the given id, or nil.
func (l *List) Find(id int) *Task {
	for _, t := range l.tasks {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// Remove deletes every task with the given id and reports whether the
// list shrank.
func (l *List) Remove(id int) bool {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if t.ID() != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) < len(l.tasks)
	for i := len(kept); i < len(l.tasks); i++ {
		l.tasks[i] = nil
	}
	l.tasks = kept
	return removed
}

// Filter returns the tasks with the given status in insertion order.
func (l *List) Filter(status Status) []*Task {
	var out []*Task
	for _, t := range l.tasks {
		if t.Status() == status {
			out = append(out, t)
		}
	}
	return out
}
