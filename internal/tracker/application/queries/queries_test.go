package queries

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/felixgeelhaar/tasker/internal/tracker/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
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

var fixedTime = time.Date(2024, 3, 4, 5, 6, 7, 0, time.Local)

func seededStore(t *testing.T) *persistence.MemoryStore {
	t.Helper()
	list, err := task.NewList(
		task.Rehydrate(1, "Buy milk", task.StatusDone, fixedTime, fixedTime),
		task.Rehydrate(4, "Walk dog", task.StatusInProgress, fixedTime, fixedTime),
		task.Rehydrate(2, "File taxes", task.StatusDone, fixedTime, fixedTime),
	)
	require.NoError(t, err)
	store := persistence.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), list))
	return store
}

func statusPtr(s task.Status) *task.Status { return &s }

func TestListTasksHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("lists all tasks in insertion order", func(t *testing.T) {
		handler := NewListTasksHandler(seededStore(t))

		result, err := handler.Handle(ctx, ListTasksQuery{})

		require.NoError(t, err)
		require.Len(t, result.Tasks, 3)
		assert.Equal(t, []int{1, 4, 2}, []int{result.Tasks[0].ID, result.Tasks[1].ID, result.Tasks[2].ID})
		assert.Nil(t, result.Filter)
		assert.Equal(t, 3, result.StoreSize)
	})

	t.Run("filters by status", func(t *testing.T) {
		handler := NewListTasksHandler(seededStore(t))

		result, err := handler.Handle(ctx, ListTasksQuery{Status: statusPtr(task.StatusDone)})

		require.NoError(t, err)
		require.Len(t, result.Tasks, 2)
		assert.Equal(t, 1, result.Tasks[0].ID)
		assert.Equal(t, 2, result.Tasks[1].ID)
		assert.Equal(t, "Done", result.Tasks[0].Status)
		require.NotNil(t, result.Filter)
		assert.Equal(t, task.StatusDone, *result.Filter)
	})

	t.Run("no matches is distinct from empty store", func(t *testing.T) {
		handler := NewListTasksHandler(seededStore(t))

		result, err := handler.Handle(ctx, ListTasksQuery{Status: statusPtr(task.StatusNotDone)})

		require.NoError(t, err)
		assert.Empty(t, result.Tasks)
		assert.False(t, result.StoreEmpty())

		empty, err := NewListTasksHandler(persistence.NewMemoryStore()).Handle(ctx, ListTasksQuery{})
		require.NoError(t, err)
		assert.True(t, empty.StoreEmpty())
	})

	t.Run("propagates load errors", func(t *testing.T) {
		store := new(mockStore)
		loadErr := errors.New("read failed")
		store.On("Load", ctx).Return(nil, loadErr)

		_, err := NewListTasksHandler(store).Handle(ctx, ListTasksQuery{})

		assert.ErrorIs(t, err, loadErr)
		store.AssertExpectations(t)
	})

	t.Run("never saves", func(t *testing.T) {
		store := seededStore(t)
		_, err := NewListTasksHandler(store).Handle(ctx, ListTasksQuery{})
		require.NoError(t, err)
		assert.Equal(t, 1, store.Saves())
	})
}

func TestGetTaskHandler_Handle(t *testing.T) {
	ctx := context.Background()
	handler := NewGetTaskHandler(seededStore(t))

	t.Run("found", func(t *testing.T) {
		result, err := handler.Handle(ctx, GetTaskQuery{TaskID: 4})

		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.Equal(t, "Walk dog", result.Task.Description)
		assert.Equal(t, "InProgress", result.Task.Status)
		assert.True(t, result.Task.CreatedAt.Equal(fixedTime))
	})

	t.Run("not found", func(t *testing.T) {
		result, err := handler.Handle(ctx, GetTaskQuery{TaskID: 3})

		require.NoError(t, err)
		assert.False(t, result.Found)
	})
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"", ExportJSON, false},
		{"JSON", ExportJSON, false},
		{"yaml", ExportYAML, false},
		{" yml ", ExportYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExportFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownExportFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportTasksHandler_Handle(t *testing.T) {
	ctx := context.Background()
	handler := NewExportTasksHandler(seededStore(t))

	t.Run("json", func(t *testing.T) {
		data, err := handler.Handle(ctx, ExportTasksQuery{Format: ExportJSON, Status: statusPtr(task.StatusInProgress)})

		require.NoError(t, err)
		assert.JSONEq(t, `{"tasks": [{
			"id": 4,
			"task": "Walk dog",
			"status": "InProgress",
			"created_at": "2024-03-04 05:06:07",
			"updated_at": "2024-03-04 05:06:07"
		}]}`, string(data))
	})

	t.Run("json export loads as a task list", func(t *testing.T) {
		data, err := handler.Handle(ctx, ExportTasksQuery{Format: ExportJSON})
		require.NoError(t, err)

		var doc struct {
			Tasks []map[string]any `json:"tasks"`
		}
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Len(t, doc.Tasks, 3)
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := handler.Handle(ctx, ExportTasksQuery{Format: ExportYAML})
		require.NoError(t, err)

		var doc exportDocument
		require.NoError(t, yaml.Unmarshal(data, &doc))
		require.Len(t, doc.Tasks, 3)
		assert.Equal(t, "File taxes", doc.Tasks[2].Task)
		assert.Equal(t, "Done", doc.Tasks[2].Status)
		assert.Equal(t, "2024-03-04 05:06:07", doc.Tasks[2].CreatedAt)
	})

	t.Run("empty filter result exports an empty list", func(t *testing.T) {
		data, err := handler.Handle(ctx, ExportTasksQuery{Format: ExportJSON, Status: statusPtr(task.StatusNotDone)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"tasks": []}`, string(data))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := handler.Handle(ctx, ExportTasksQuery{Format: "xml"})
		assert.ErrorIs(t, err, ErrUnknownExportFormat)
	})
}
