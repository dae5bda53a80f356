package lockpath

import (
	"github.com/akashsoni01/keypaths/keypath"
	"github.com/akashsoni01/keypaths/logger"
)

// Guarded is the uniform access surface of every synchronous lock-bearing
// path. The visitor callback runs inside the critical section; the value
// pointer it receives must not be retained past its return, as the lock is
// released when the visitor (and the traversal around it) completes.
//
// All three methods report failure through the uniform absence signal:
// ErrAbsent for a missing link, ErrLockUnavailable (which matches ErrAbsent)
// for a fallible flavor that could not acquire.
type Guarded[Root, Value any] interface {
	// Get acquires shared access, navigates to the value and runs fn on it.
	Get(root *Root, fn func(*Value)) error

	// GetMut acquires exclusive access, navigates and runs fn on the value.
	GetMut(root *Root, fn func(*Value)) error

	// Set is the write-through-updater form: it acquires exclusive access
	// once and applies updater in place, guaranteeing the whole
	// read-modify-write happens under a single critical section.
	Set(root *Root, updater func(*Value)) error
}

// LockPath navigates through a blocking lock: a plain path from the root to
// the lock container, a Strategy for the container's flavor, and a plain
// path from the unlocked value to the target.
//
// A LockPath is immutable and cheap to copy. Copying it copies three
// function-bearing values and the container handle type; the guarded
// payload is never cloned.
type LockPath[Root, C, Mid, Value any] struct {
	prev     keypath.Path[Root, *C]
	strategy Strategy[C, Mid]
	next     keypath.Path[Mid, Value]
	cfg      Config
}

// NewLockPath assembles a LockPath from its three parts.
func NewLockPath[Root, C, Mid, Value any](
	prev keypath.Path[Root, *C],
	strategy Strategy[C, Mid],
	next keypath.Path[Mid, Value],
	opts ...Option,
) LockPath[Root, C, Mid, Value] {
	return LockPath[Root, C, Mid, Value]{
		prev:     prev,
		strategy: strategy,
		next:     next,
		cfg:      newConfig(opts),
	}
}

// config returns the path's Config with nil collaborators replaced by
// no-ops, so a zero-constructed path still has well-defined behavior.
func (lp LockPath[Root, C, Mid, Value]) config() Config {
	cfg := lp.cfg
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNoOpLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NewNoOpMetrics()
	}
	if cfg.Clock == nil {
		cfg.Clock = NewStandardClock()
	}
	return cfg
}

// Get implements Guarded.Get. The sequence is: navigate to the container,
// shallow-clone the handle, acquire shared access, navigate the inner path,
// run fn, release. The lock is held only for the duration of the call.
func (lp LockPath[Root, C, Mid, Value]) Get(root *Root, fn func(*Value)) error {
	return lp.traverse(root, false, fn)
}

// GetMut implements Guarded.GetMut, mirroring Get with exclusive access.
func (lp LockPath[Root, C, Mid, Value]) GetMut(root *Root, fn func(*Value)) error {
	return lp.traverse(root, true, fn)
}

// Set implements Guarded.Set. It is GetMut under another name: one
// acquisition, one in-place update, one release.
func (lp LockPath[Root, C, Mid, Value]) Set(root *Root, updater func(*Value)) error {
	return lp.traverse(root, true, updater)
}

func (lp LockPath[Root, C, Mid, Value]) traverse(root *Root, exclusive bool, fn func(*Value)) error {
	cfg := lp.config()

	var (
		handlePtr **C
		ok        bool
	)
	if exclusive {
		handlePtr, ok = lp.prev.GetMut(root)
	} else {
		handlePtr, ok = lp.prev.Get(root)
	}
	if !ok {
		return ErrAbsent
	}

	// Shallow clone: the handle is copied, the payload is not.
	handle := *handlePtr
	if handle == nil {
		return ErrAbsent
	}

	start := cfg.Clock.Now()
	var (
		mid     *Mid
		release func()
		err     error
	)
	if exclusive {
		mid, release, err = lp.strategy.LockWrite(handle)
	} else {
		mid, release, err = lp.strategy.LockRead(handle)
	}
	if err != nil {
		cfg.Metrics.IncrAcquire(false, exclusive)
		cfg.Logger.Debugw("lock acquisition failed", "exclusive", exclusive, "error", err)
		return err
	}
	cfg.Metrics.IncrAcquire(true, exclusive)
	cfg.Metrics.ObserveAcquireLatency(cfg.Clock.Since(start), exclusive)

	acquired := cfg.Clock.Now()
	defer func() {
		release()
		cfg.Metrics.ObserveHoldDuration(cfg.Clock.Since(acquired), exclusive)
	}()

	var v *Value
	if exclusive {
		v, ok = lp.next.GetMut(mid)
	} else {
		v, ok = lp.next.Get(mid)
	}
	if !ok {
		return ErrAbsent
	}
	fn(v)
	return nil
}
