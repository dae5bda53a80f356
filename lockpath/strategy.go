package lockpath

// Strategy is the pluggable logic that acquires and releases one blocking
// lock flavor. Given a container handle it yields the guarded value, a
// release function, and an error for fallible flavors; infallible flavors
// never return a non-nil error.
//
// Strategies are stateless. A strategy value exists only to select the
// flavor; all state lives in the container.
type Strategy[C, T any] interface {
	// LockRead acquires shared access to the guarded value. The returned
	// release function must be called exactly once, after which the value
	// pointer must no longer be used.
	LockRead(c *C) (*T, func(), error)

	// LockWrite acquires exclusive access to the guarded value, with the
	// same release contract as LockRead.
	LockWrite(c *C) (*T, func(), error)
}

// MutexStrategy acquires a Mutex container. The flavor has no failure mode:
// acquisition blocks until the lock is granted and never returns an error.
// sync.Mutex has no shared mode, so LockRead and LockWrite are identical.
type MutexStrategy[T any] struct{}

func (MutexStrategy[T]) LockRead(c *Mutex[T]) (*T, func(), error) {
	c.mu.Lock()
	return &c.value, c.mu.Unlock, nil
}

func (MutexStrategy[T]) LockWrite(c *Mutex[T]) (*T, func(), error) {
	c.mu.Lock()
	return &c.value, c.mu.Unlock, nil
}

// RWMutexStrategy acquires an RWMutex container, taking the read lock for
// shared access and the write lock for exclusive access. Infallible.
type RWMutexStrategy[T any] struct{}

func (RWMutexStrategy[T]) LockRead(c *RWMutex[T]) (*T, func(), error) {
	c.mu.RLock()
	return &c.value, c.mu.RUnlock, nil
}

func (RWMutexStrategy[T]) LockWrite(c *RWMutex[T]) (*T, func(), error) {
	c.mu.Lock()
	return &c.value, c.mu.Unlock, nil
}

// TryMutexStrategy is the fallible flavor over a Mutex container: it
// attempts the lock without blocking and reports ErrLockUnavailable when
// the lock is already held. Callers needing bounded waits build them into
// a strategy like this one rather than into the path.
type TryMutexStrategy[T any] struct{}

func (TryMutexStrategy[T]) LockRead(c *Mutex[T]) (*T, func(), error) {
	if !c.mu.TryLock() {
		return nil, nil, ErrLockUnavailable
	}
	return &c.value, c.mu.Unlock, nil
}

func (TryMutexStrategy[T]) LockWrite(c *Mutex[T]) (*T, func(), error) {
	if !c.mu.TryLock() {
		return nil, nil, ErrLockUnavailable
	}
	return &c.value, c.mu.Unlock, nil
}
