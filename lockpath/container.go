package lockpath

import "sync"

// Mutex is a lock container: a blocking mutual-exclusion lock wrapping a
// payload. Containers are always held by pointer; copying the *Mutex[T]
// handle is a shallow clone that refers to the same underlying lock and
// never touches the payload.
type Mutex[T any] struct {
	mu    sync.Mutex
	value T
}

// NewMutex returns a handle to a new mutex container guarding value.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// WithLock runs fn with the payload under the lock. It is the container's
// direct access form, independent of any path.
func (m *Mutex[T]) WithLock(fn func(*T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.value)
}

// RWMutex is a lock container wrapping a payload in a blocking
// read-write lock. Handles are shared by pointer, like Mutex.
type RWMutex[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewRWMutex returns a handle to a new read-write lock container guarding value.
func NewRWMutex[T any](value T) *RWMutex[T] {
	return &RWMutex[T]{value: value}
}

// WithRLock runs fn with the payload under the read lock.
func (m *RWMutex[T]) WithRLock(fn func(*T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(&m.value)
}

// WithLock runs fn with the payload under the write lock.
func (m *RWMutex[T]) WithLock(fn func(*T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.value)
}
