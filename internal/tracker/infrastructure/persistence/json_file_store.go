package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/felixgeelhaar/tasker/pkg/config"
)

const filePerm = 0o644

// JSONFileStore keeps the task list in a single JSON document on disk.
type JSONFileStore struct {
	path   string
	logger *slog.Logger
}

// NewJSONFileStore creates a store for the document at path.
func NewJSONFileStore(path string, logger *slog.Logger) *JSONFileStore {
	if path == "" {
		path = config.DefaultStorePath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONFileStore{path: path, logger: logger}
}

// Path returns the document path.
func (s *JSONFileStore) Path() string {
	return s.path
}

// Load reads the document. A missing or malformed document loads as an
// empty list.
func (s *JSONFileStore) Load(ctx context.Context) (*task.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return task.NewList()
		}
		return nil, &StoreError{Op: "read", Path: s.path, Err: err}
	}

	list, err := decodeDocument(data)
	if err != nil {
		s.logger.WarnContext(ctx, "ignoring malformed task list",
			"path", s.path,
			"error", err,
		)
		return task.NewList()
	}

	s.logger.DebugContext(ctx, "task list loaded", "path", s.path, "tasks", list.Len())
	return list, nil
}

// Save replaces the document with list. The write goes to a temporary file
// in the same directory that is synced and renamed over the document, so
// the document is either the old or the new version, never a mix.
func (s *JSONFileStore) Save(ctx context.Context, list *task.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeDocument(list)
	if err != nil {
		return &StoreError{Op: "write", Path: s.path, Err: err}
	}

	if err := atomicWrite(s.path, data); err != nil {
		return &StoreError{Op: "write", Path: s.path, Err: err}
	}

	s.logger.DebugContext(ctx, "task list saved", "path", s.path, "tasks", list.Len())
	return nil
}

// atomicWrite writes data to path using write-then-rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	// Sync before rename so the new content is on disk when it becomes visible
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, filePerm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
