package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	sharedPersistence "github.com/felixgeelhaar/tasker/internal/shared/infrastructure/persistence"
)

// SQLiteStore keeps the task list in the tasks table. The position column
// preserves insertion order.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a store on an already migrated database. path is
// only used in error messages.
func NewSQLiteStore(db *sql.DB, path string, logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteStore{db: db, path: path, logger: logger}
}

// Load reads all tasks in insertion order. Rows that cannot be turned back
// into tasks make the whole list load as empty, like a malformed JSON document.
func (s *SQLiteStore) Load(ctx context.Context) (*task.List, error) {
	rows, err := sharedPersistence.Executor(ctx, s.db).QueryContext(ctx,
		`SELECT id, description, status, created_at, updated_at FROM tasks ORDER BY position, id`)
	if err != nil {
		return nil, &StoreError{Op: "read", Path: s.path, Err: err}
	}
	defer rows.Close()

	var records []taskRecord
	for rows.Next() {
		var r taskRecord
		if err := rows.Scan(&r.ID, &r.Task, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, &StoreError{Op: "read", Path: s.path, Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "read", Path: s.path, Err: err}
	}

	list, err := recordsToList(records)
	if err != nil {
		s.logger.WarnContext(ctx, "ignoring malformed task rows", "path", s.path, "error", err)
		return task.NewList()
	}
	return list, nil
}

// Save replaces every row with the tasks in list. Without a transaction in
// ctx it opens its own so the table is never left half written.
func (s *SQLiteStore) Save(ctx context.Context, list *task.List) (err error) {
	exec := sharedPersistence.Executor(ctx, s.db)

	if _, ok := sharedPersistence.SQLiteTxInfoFromContext(ctx); !ok {
		tx, beginErr := s.db.BeginTx(ctx, nil)
		if beginErr != nil {
			return &StoreError{Op: "write", Path: s.path, Err: beginErr}
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if cerr := tx.Commit(); cerr != nil {
				err = &StoreError{Op: "write", Path: s.path, Err: cerr}
			}
		}()
		exec = tx
	}

	if _, err := exec.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return &StoreError{Op: "write", Path: s.path, Err: err}
	}

	for i, r := range listToRecords(list) {
		_, err := exec.ExecContext(ctx,
			`INSERT INTO tasks (id, position, description, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, i, r.Task, r.Status, r.CreatedAt, r.UpdatedAt)
		if err != nil {
			return &StoreError{Op: "write", Path: s.path, Err: fmt.Errorf("insert task %d: %w", r.ID, err)}
		}
	}

	s.logger.DebugContext(ctx, "task list saved", "path", s.path, "tasks", list.Len())
	return nil
}
