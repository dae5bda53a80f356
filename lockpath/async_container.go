package lockpath

import "golang.org/x/sync/semaphore"

// semMaxReaders bounds concurrent readers of a SemRWMutex. A writer takes
// every permit at once, so the value also sets the writer's acquisition
// weight.
const semMaxReaders = 1 << 30

// SemMutex is the asynchronous lock container: a mutual-exclusion lock
// backed by a weighted semaphore whose acquisition suspends the calling
// goroutine cooperatively and honors context cancellation. Cancelling an
// acquisition before the permit is granted leaves the lock untouched.
//
// Like the blocking containers, handles are shared by pointer and copying
// one never touches the payload.
type SemMutex[T any] struct {
	sem   *semaphore.Weighted
	value T
}

// NewSemMutex returns a handle to a new asynchronous mutex guarding value.
func NewSemMutex[T any](value T) *SemMutex[T] {
	return &SemMutex[T]{sem: semaphore.NewWeighted(1), value: value}
}

// TryWithLock runs fn with the payload if the lock is immediately
// available, reporting whether it ran. It exists for lock-free probing in
// tests and diagnostics; path traversal goes through SemMutexStrategy.
func (m *SemMutex[T]) TryWithLock(fn func(*T)) bool {
	if !m.sem.TryAcquire(1) {
		return false
	}
	defer m.sem.Release(1)
	fn(&m.value)
	return true
}

// SemRWMutex is the asynchronous read-write lock container. Readers share
// the payload by each holding one of semMaxReaders permits; a writer holds
// all of them.
type SemRWMutex[T any] struct {
	sem   *semaphore.Weighted
	value T
}

// NewSemRWMutex returns a handle to a new asynchronous read-write lock
// guarding value.
func NewSemRWMutex[T any](value T) *SemRWMutex[T] {
	return &SemRWMutex[T]{sem: semaphore.NewWeighted(semMaxReaders), value: value}
}
