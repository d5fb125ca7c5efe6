package commands

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/stretchr/testify/mock"
)

// mockStore is a mock implementation of task.Store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Load(ctx context.Context) (*task.List, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.List), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, list *task.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

// mockUnitOfWork is a mock implementation of UnitOfWork.
type mockUnitOfWork struct {
	mock.Mock
}

func (m *mockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type txKey struct{}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}
