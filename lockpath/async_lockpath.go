package lockpath

import (
	"context"

	"github.com/akashsoni01/keypaths/keypath"
	"github.com/akashsoni01/keypaths/logger"
)

// AsyncGuarded is the uniform access surface of every path whose traversal
// crosses at least one asynchronous lock. The contract matches Guarded with
// one addition: acquisition is a suspension point governed by ctx, and a
// context error surfaces unchanged while every other failure converts into
// the uniform absence signal.
type AsyncGuarded[Root, Value any] interface {
	// Get acquires shared access, navigates to the value and runs fn on it.
	Get(ctx context.Context, root *Root, fn func(*Value)) error

	// GetMut acquires exclusive access, navigates and runs fn on the value.
	GetMut(ctx context.Context, root *Root, fn func(*Value)) error

	// Set acquires exclusive access once and applies updater in place,
	// one critical section per call.
	Set(ctx context.Context, root *Root, updater func(*Value)) error
}

// AsyncLockPath navigates through an asynchronous lock. It is the
// suspension-point twin of LockPath: same triple, same shallow-clone and
// release discipline, with acquisition governed by a context.
//
// Acquiring an async lock while a blocking lock is held on the same
// goroutine pins the executor's worker for the duration of the await; that
// ordering is the caller's responsibility, not detected here.
type AsyncLockPath[Root, C, Mid, Value any] struct {
	prev     keypath.Path[Root, *C]
	strategy AsyncStrategy[C, Mid]
	next     keypath.Path[Mid, Value]
	cfg      Config
}

// NewAsyncLockPath assembles an AsyncLockPath from its three parts.
func NewAsyncLockPath[Root, C, Mid, Value any](
	prev keypath.Path[Root, *C],
	strategy AsyncStrategy[C, Mid],
	next keypath.Path[Mid, Value],
	opts ...Option,
) AsyncLockPath[Root, C, Mid, Value] {
	return AsyncLockPath[Root, C, Mid, Value]{
		prev:     prev,
		strategy: strategy,
		next:     next,
		cfg:      newConfig(opts),
	}
}

func (lp AsyncLockPath[Root, C, Mid, Value]) config() Config {
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

// Get implements AsyncGuarded.Get.
func (lp AsyncLockPath[Root, C, Mid, Value]) Get(ctx context.Context, root *Root, fn func(*Value)) error {
	return lp.traverse(ctx, root, false, fn)
}

// GetMut implements AsyncGuarded.GetMut.
func (lp AsyncLockPath[Root, C, Mid, Value]) GetMut(ctx context.Context, root *Root, fn func(*Value)) error {
	return lp.traverse(ctx, root, true, fn)
}

// Set implements AsyncGuarded.Set.
func (lp AsyncLockPath[Root, C, Mid, Value]) Set(ctx context.Context, root *Root, updater func(*Value)) error {
	return lp.traverse(ctx, root, true, updater)
}

func (lp AsyncLockPath[Root, C, Mid, Value]) traverse(ctx context.Context, root *Root, exclusive bool, fn func(*Value)) error {
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
		mid, release, err = lp.strategy.LockWrite(ctx, handle)
	} else {
		mid, release, err = lp.strategy.LockRead(ctx, handle)
	}
	if err != nil {
		cfg.Metrics.IncrAcquire(false, exclusive)
		cfg.Logger.Debugw("async lock acquisition failed", "exclusive", exclusive, "error", err)
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
