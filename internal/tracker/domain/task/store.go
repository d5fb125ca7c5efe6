package task

import "context"

// Store loads and saves the whole task list as one unit.
//
// Load never returns a nil list. Absent or malformed state loads as an empty
// list; only I/O failures are reported as errors. Save overwrites the
// persisted state with the given list.
type Store interface {
	Load(ctx context.Context) (*List, error)
	Save(ctx context.Context, list *List) error
}
