package persistence

import "fmt"

// StoreError reports a failed read or write of the persisted task list.
// A failed write means the mutation was not durably applied.
type StoreError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s task store %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}
