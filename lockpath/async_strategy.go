package lockpath

import "context"

// AsyncStrategy is the asynchronous twin of Strategy: acquisition takes a
// context and suspends the calling goroutine instead of blocking a thread
// uncooperatively. A cancelled or expired context aborts the wait, returns
// the context's error, and leaves the lock untouched.
type AsyncStrategy[C, T any] interface {
	// LockRead acquires shared access, suspending until the lock is granted
	// or ctx is done. The release function must be called exactly once on
	// success.
	LockRead(ctx context.Context, c *C) (*T, func(), error)

	// LockWrite acquires exclusive access with the same contract.
	LockWrite(ctx context.Context, c *C) (*T, func(), error)
}

// SemMutexStrategy acquires a SemMutex container. The flavor has no failure
// mode of its own; the only error it surfaces is the context's.
// A semaphore mutex has no shared mode, so LockRead and LockWrite are
// identical.
type SemMutexStrategy[T any] struct{}

func (SemMutexStrategy[T]) LockRead(ctx context.Context, c *SemMutex[T]) (*T, func(), error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}
	return &c.value, func() { c.sem.Release(1) }, nil
}

func (SemMutexStrategy[T]) LockWrite(ctx context.Context, c *SemMutex[T]) (*T, func(), error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}
	return &c.value, func() { c.sem.Release(1) }, nil
}

// SemRWMutexStrategy acquires a SemRWMutex container: one permit for shared
// access, all permits for exclusive access.
type SemRWMutexStrategy[T any] struct{}

func (SemRWMutexStrategy[T]) LockRead(ctx context.Context, c *SemRWMutex[T]) (*T, func(), error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}
	return &c.value, func() { c.sem.Release(1) }, nil
}

func (SemRWMutexStrategy[T]) LockWrite(ctx context.Context, c *SemRWMutex[T]) (*T, func(), error) {
	if err := c.sem.Acquire(ctx, semMaxReaders); err != nil {
		return nil, nil, err
	}
	return &c.value, func() { c.sem.Release(semMaxReaders) }, nil
}
