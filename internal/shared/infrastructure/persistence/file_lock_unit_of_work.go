package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// ErrLockTimeout is returned when the store lock could not be acquired in time.
var ErrLockTimeout = errors.New("timed out waiting for task store lock")

// DefaultLockTimeout bounds how long Begin waits for another process.
const DefaultLockTimeout = 5 * time.Second

const lockRetryDelay = 25 * time.Millisecond

type fileLockKey struct{}

type fileLockInfo struct {
	lock  *flock.Flock
	owned bool
}

// FileLockUnitOfWork serializes load-modify-save cycles across processes
// with an advisory lock on a sibling "<path>.lock" file.
type FileLockUnitOfWork struct {
	lockPath string
	timeout  time.Duration
}

// NewFileLockUnitOfWork creates a unit of work guarding the document at path.
func NewFileLockUnitOfWork(path string, timeout time.Duration) *FileLockUnitOfWork {
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	return &FileLockUnitOfWork{
		lockPath: path + ".lock",
		timeout:  timeout,
	}
}

// LockPath returns the path of the lock file.
func (u *FileLockUnitOfWork) LockPath() string {
	return u.lockPath
}

// Begin acquires the exclusive lock. A lock already held through ctx is reused.
func (u *FileLockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if info, ok := ctx.Value(fileLockKey{}).(fileLockInfo); ok {
		return context.WithValue(ctx, fileLockKey{}, fileLockInfo{lock: info.lock}), nil
	}

	lock := flock.New(u.lockPath)

	lockCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil || !locked {
		_ = lock.Close()
	}
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, u.lockPath)
		}
		return nil, fmt.Errorf("lock %s: %w", u.lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLockTimeout, u.lockPath)
	}

	return context.WithValue(ctx, fileLockKey{}, fileLockInfo{lock: lock, owned: true}), nil
}

// Commit releases the lock if this unit owns it.
func (u *FileLockUnitOfWork) Commit(ctx context.Context) error {
	return u.release(ctx)
}

// Rollback releases the lock if this unit owns it. Writes already made by
// the store are not undone.
func (u *FileLockUnitOfWork) Rollback(ctx context.Context) error {
	return u.release(ctx)
}

func (u *FileLockUnitOfWork) release(ctx context.Context) error {
	info, ok := ctx.Value(fileLockKey{}).(fileLockInfo)
	if !ok {
		return ErrNoTransaction
	}
	if !info.owned {
		return nil
	}
	return info.lock.Unlock()
}
