package persistence

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
)

// MemoryStore keeps the task list in process memory. It stores copies, so
// a loaded list can be mutated freely without affecting the saved state.
type MemoryStore struct {
	mu      sync.Mutex
	records []taskRecord
	saves   int
	saveErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a fresh copy of the saved list.
func (s *MemoryStore) Load(ctx context.Context) (*task.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return recordsToList(s.records)
}

// Save replaces the saved list with a copy of list.
func (s *MemoryStore) Save(ctx context.Context, list *task.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return &StoreError{Op: "write", Path: "memory", Err: s.saveErr}
	}
	s.records = listToRecords(list)
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// FailSaves makes every following Save fail with err. Pass nil to recover.
func (s *MemoryStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}
