/*
Package lockpath threads keypath navigation through synchronization
primitives. A LockPath is a triple: a plain path from the root to a lock
container, a Strategy that knows how to acquire one lock flavor, and a plain
path from the unlocked value onward. Invoking it acquires the lock, navigates,
hands the target to a caller-supplied visitor, and releases the lock when the
visitor returns, so the whole read-modify-write happens inside one critical
section.

Lock containers (Mutex, RWMutex and their semaphore-backed asynchronous twins
SemMutex, SemRWMutex) are held by pointer: copying the handle is O(1) and
never touches the guarded payload, and every copy refers to the same
underlying lock.

AsyncLockPath is the asynchronous counterpart. Acquisition takes a
context.Context and suspends the calling goroutine cooperatively; cancelling
the context before the lock is granted returns the context's error and leaves
the lock untouched.

Paths of all three flavors compose. Lift and Extend grow the plain segments
before and after a lock; Nest and its async variants chain two lock-bearing
paths so the outer critical section encloses the inner one, with the inner
lock released before the outer. Any composite touching an asynchronous lock
is itself asynchronous.

Two hazards are the caller's responsibility and are not detected: re-entering
the same lock from inside a path's inner segment self-deadlocks, and holding
a blocking lock across an inner asynchronous acquisition pins the executor's
worker thread for the duration of the await.
*/
package lockpath
