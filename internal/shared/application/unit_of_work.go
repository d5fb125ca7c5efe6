// Package application holds the plumbing shared by command and query handlers.
package application

import "context"

// UnitOfWork brackets a load-modify-save cycle against a store. Begin may
// take a lock or open a transaction and returns the context the work must run in.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UnitOfWorkFunc is a function that executes within a unit of work.
type UnitOfWorkFunc func(ctx context.Context) error

// WithUnitOfWork executes fn within a unit of work. The rollback error, if
// any, is dropped in favour of the error returned by fn.
func WithUnitOfWork(ctx context.Context, uow UnitOfWork, fn UnitOfWorkFunc) error {
	if uow == nil {
		uow = NopUnitOfWork{}
	}

	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		_ = uow.Rollback(txCtx)
		return err
	}

	return uow.Commit(txCtx)
}

// NopUnitOfWork runs the work without any locking. Used with stores that
// are private to one process, such as the in-memory store.
type NopUnitOfWork struct{}

func (NopUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (NopUnitOfWork) Commit(context.Context) error                       { return nil }
func (NopUnitOfWork) Rollback(context.Context) error                     { return nil }
