package lockpath

import (
	"context"

	"github.com/akashsoni01/keypaths/keypath"
)

// This file holds the composition matrix between the three path flavors.
// Any of {keypath.Path, LockPath, AsyncLockPath} may be followed by any of
// the three; Path-then-Path is keypath.Then, the remaining eight cells live
// here. Cells that keep a single lock preserve the concrete triple shape;
// cells that chain two locks return the Guarded (or AsyncGuarded) access
// surface, under which further composition continues via the *Guarded
// combinators at the bottom of the file.
//
// Every cell touching an asynchronous flavor yields an asynchronous
// composite.

// Lift prepends a plain path to a LockPath: the result navigates p before
// reaching lp's lock container. Path-then-LockPath cell.
func Lift[Root, Mid, C, LMid, Value any](
	p keypath.Path[Root, Mid],
	lp LockPath[Mid, C, LMid, Value],
) LockPath[Root, C, LMid, Value] {
	return LockPath[Root, C, LMid, Value]{
		prev:     keypath.Then(p, lp.prev),
		strategy: lp.strategy,
		next:     lp.next,
		cfg:      lp.cfg,
	}
}

// LiftAsync prepends a plain path to an AsyncLockPath.
// Path-then-AsyncLockPath cell.
func LiftAsync[Root, Mid, C, LMid, Value any](
	p keypath.Path[Root, Mid],
	lp AsyncLockPath[Mid, C, LMid, Value],
) AsyncLockPath[Root, C, LMid, Value] {
	return AsyncLockPath[Root, C, LMid, Value]{
		prev:     keypath.Then(p, lp.prev),
		strategy: lp.strategy,
		next:     lp.next,
		cfg:      lp.cfg,
	}
}

// Extend appends a plain path to a LockPath: the extra navigation happens
// inside the existing critical section. LockPath-then-Path cell.
func Extend[Root, C, Mid, Value, Sub any](
	lp LockPath[Root, C, Mid, Value],
	p keypath.Path[Value, Sub],
) LockPath[Root, C, Mid, Sub] {
	return LockPath[Root, C, Mid, Sub]{
		prev:     lp.prev,
		strategy: lp.strategy,
		next:     keypath.Then(lp.next, p),
		cfg:      lp.cfg,
	}
}

// ExtendAsync appends a plain path to an AsyncLockPath.
// AsyncLockPath-then-Path cell.
func ExtendAsync[Root, C, Mid, Value, Sub any](
	lp AsyncLockPath[Root, C, Mid, Value],
	p keypath.Path[Value, Sub],
) AsyncLockPath[Root, C, Mid, Sub] {
	return AsyncLockPath[Root, C, Mid, Sub]{
		prev:     lp.prev,
		strategy: lp.strategy,
		next:     keypath.Then(lp.next, p),
		cfg:      lp.cfg,
	}
}

// Nest chains two blocking lock paths: the outer critical section encloses
// the inner one, and the inner lock is released before the outer. No
// reordering is performed. LockPath-then-LockPath cell.
func Nest[Root, C1, M1, IR, C2, M2, Sub any](
	outer LockPath[Root, C1, M1, IR],
	inner LockPath[IR, C2, M2, Sub],
) Guarded[Root, Sub] {
	return NestGuarded[Root, IR, Sub](outer, inner)
}

// NestSyncAsync chains a blocking outer lock with an asynchronous inner
// lock. The composite is asynchronous; the outer blocking lock is held
// across the inner await, which pins the worker goroutine for that span.
// LockPath-then-AsyncLockPath cell.
func NestSyncAsync[Root, C1, M1, IR, C2, M2, Sub any](
	outer LockPath[Root, C1, M1, IR],
	inner AsyncLockPath[IR, C2, M2, Sub],
) AsyncGuarded[Root, Sub] {
	return NestSyncAsyncGuarded[Root, IR, Sub](outer, inner)
}

// NestAsyncSync chains an asynchronous outer lock with a blocking inner
// lock: outer await first, then the inner blocking acquisition inside the
// outer critical section. AsyncLockPath-then-LockPath cell.
func NestAsyncSync[Root, C1, M1, IR, C2, M2, Sub any](
	outer AsyncLockPath[Root, C1, M1, IR],
	inner LockPath[IR, C2, M2, Sub],
) AsyncGuarded[Root, Sub] {
	return NestAsyncSyncGuarded[Root, IR, Sub](outer, inner)
}

// NestAsync chains two asynchronous lock paths: outer await, then inner
// await inside the outer critical section.
// AsyncLockPath-then-AsyncLockPath cell.
func NestAsync[Root, C1, M1, IR, C2, M2, Sub any](
	outer AsyncLockPath[Root, C1, M1, IR],
	inner AsyncLockPath[IR, C2, M2, Sub],
) AsyncGuarded[Root, Sub] {
	return NestAsyncGuarded[Root, IR, Sub](outer, inner)
}

// guardedFunc adapts a pair of traversal closures into the Guarded surface.
type guardedFunc[Root, Value any] struct {
	get    func(*Root, func(*Value)) error
	getMut func(*Root, func(*Value)) error
}

func (g guardedFunc[Root, Value]) Get(root *Root, fn func(*Value)) error {
	return g.get(root, fn)
}

func (g guardedFunc[Root, Value]) GetMut(root *Root, fn func(*Value)) error {
	return g.getMut(root, fn)
}

func (g guardedFunc[Root, Value]) Set(root *Root, updater func(*Value)) error {
	return g.getMut(root, updater)
}

// asyncGuardedFunc adapts a pair of traversal closures into the
// AsyncGuarded surface.
type asyncGuardedFunc[Root, Value any] struct {
	get    func(context.Context, *Root, func(*Value)) error
	getMut func(context.Context, *Root, func(*Value)) error
}

func (g asyncGuardedFunc[Root, Value]) Get(ctx context.Context, root *Root, fn func(*Value)) error {
	return g.get(ctx, root, fn)
}

func (g asyncGuardedFunc[Root, Value]) GetMut(ctx context.Context, root *Root, fn func(*Value)) error {
	return g.getMut(ctx, root, fn)
}

func (g asyncGuardedFunc[Root, Value]) Set(ctx context.Context, root *Root, updater func(*Value)) error {
	return g.getMut(ctx, root, updater)
}

// The *Guarded combinators below are the interface-level forms of the
// matrix cells. They compose any Guarded/AsyncGuarded values, including the
// results of earlier nesting, so traversals of three or more locks are
// built by repeated application. Go cannot infer type parameters from
// interface-typed arguments, so callers of these forms usually spell the
// parameters out; the concrete cells above infer everything.

// LiftGuarded prepends a plain path to any synchronous guarded traversal.
func LiftGuarded[Root, Mid, Value any](
	p keypath.Path[Root, Mid],
	g Guarded[Mid, Value],
) Guarded[Root, Value] {
	return guardedFunc[Root, Value]{
		get: func(root *Root, fn func(*Value)) error {
			mid, ok := p.Get(root)
			if !ok {
				return ErrAbsent
			}
			return g.Get(mid, fn)
		},
		getMut: func(root *Root, fn func(*Value)) error {
			mid, ok := p.GetMut(root)
			if !ok {
				return ErrAbsent
			}
			return g.GetMut(mid, fn)
		},
	}
}

// ExtendGuarded appends a plain path to any synchronous guarded traversal;
// the appended navigation runs inside the innermost critical section.
func ExtendGuarded[Root, Mid, Value any](
	g Guarded[Root, Mid],
	p keypath.Path[Mid, Value],
) Guarded[Root, Value] {
	return guardedFunc[Root, Value]{
		get: func(root *Root, fn func(*Value)) error {
			var innerErr error
			if err := g.Get(root, func(mid *Mid) {
				v, ok := p.Get(mid)
				if !ok {
					innerErr = ErrAbsent
					return
				}
				fn(v)
			}); err != nil {
				return err
			}
			return innerErr
		},
		getMut: func(root *Root, fn func(*Value)) error {
			var innerErr error
			if err := g.GetMut(root, func(mid *Mid) {
				v, ok := p.GetMut(mid)
				if !ok {
					innerErr = ErrAbsent
					return
				}
				fn(v)
			}); err != nil {
				return err
			}
			return innerErr
		},
	}
}

// NestGuarded chains two synchronous guarded traversals, outer enclosing
// inner.
func NestGuarded[Root, Mid, Value any](
	outer Guarded[Root, Mid],
	inner Guarded[Mid, Value],
) Guarded[Root, Value] {
	return guardedFunc[Root, Value]{
		get: func(root *Root, fn func(*Value)) error {
			var innerErr error
			if err := outer.Get(root, func(mid *Mid) {
				innerErr = inner.Get(mid, fn)
			}); err != nil {
				return err
			}
			return innerErr
		},
		getMut: func(root *Root, fn func(*Value)) error {
			var innerErr error
			if err := outer.GetMut(root, func(mid *Mid) {
				innerErr = inner.GetMut(mid, fn)
			}); err != nil {
				return err
			}
			return innerErr
		},
	}
}

// LiftAsyncGuarded prepends a plain path to any asynchronous guarded
// traversal.
func LiftAsyncGuarded[Root, Mid, Value any](
	p keypath.Path[Root, Mid],
	g AsyncGuarded[Mid, Value],
) AsyncGuarded[Root, Value] {
	return asyncGuardedFunc[Root, Value]{
		get: func(ctx context.Context, root *Root, fn func(*Value)) error {
			mid, ok := p.Get(root)
			if !ok {
				return ErrAbsent
			}
			return g.Get(ctx, mid, fn)
		},
		getMut: func(ctx context.Context, root *Root, fn func(*Value)) error {
			mid, ok := p.GetMut(root)
			if !ok {
				return ErrAbsent
			}
			return g.GetMut(ctx, mid, fn)
		},
	}
}

// ExtendAsyncGuarded appends a plain path to any asynchronous guarded
// traversal.
func ExtendAsyncGuarded[Root, Mid, Value any](
	g AsyncGuarded[Root, Mid],
	p keypath.Path[Mid, Value],
) AsyncGuarded[Root, Value] {
	return asyncGuardedFunc[Root, Value]{
		get: func(ctx context.Context, root *Root, fn func(*Value)) error {
			var innerErr error
			if err := g.Get(ctx, root, func(mid *Mid) {
				v, ok := p.Get(mid)
				if !ok {
					innerErr = ErrAbsent
					return
				}
				fn(v)
			}); err != nil {
				return err
			}
			return innerErr
		},
		getMut: func(ctx context.Context, root *Root, fn func(*Value)) error {
			var innerErr error
			if err := g.GetMut(ctx, root, func(mid *Mid) {
				v, ok := p.GetMut(mid)
				if !ok {
					innerErr = ErrAbsent
					return
				}
				fn(v)
			}); err != nil {
				return err
			}
			return innerErr
		},
	}
}

// NestSyncAsyncGuarded chains a synchronous outer traversal with an
// asynchronous inner one. The outer blocking lock is held across the inner
// await; see the package comment for the hazard.
func NestSyncAsyncGuarded[Root, Mid, Value any](
	outer Guarded[Root, Mid],
	inner AsyncGuarded[Mid, Value],
) AsyncGuarded[Root, Value] {
	return asyncGuardedFunc[Root, Value]{
		get: func(ctx context.Context, root *Root, fn func(*Value)) error {
			var innerErr error
			if err := outer.Get(root, func(mid *Mid) {
				innerErr = inner.Get(ctx, mid, fn)
			}); err != nil {
				return err
			}
			return innerErr
		},
		getMut: func(ctx context.Context, root *Root, fn func(*Value)) error {
			var innerErr error
			if err := outer.GetMut(root, func(mid *Mid) {
				innerErr = inner.GetMut(ctx, mid, fn)
			}); err != nil {
				return err
			}
			return innerErr
		},
	}
}

// NestAsyncSyncGuarded chains an asynchronous outer traversal with a
// synchronous inner one.
func NestAsyncSyncGuarded[Root, Mid, Value any](
	outer AsyncGuarded[Root, Mid],
	inner Guarded[Mid, Value],
) AsyncGuarded[Root, Value] {
	return asyncGuardedFunc[Root, Value]{
		get: func(ctx context.Context, root *Root, fn func(*Value)) error {
			var innerErr error
			if err := outer.Get(ctx, root, func(mid *Mid) {
				innerErr = inner.Get(mid, fn)
			}); err != nil {
				return err
			}
			return innerErr
		},
		getMut: func(ctx context.Context, root *Root, fn func(*Value)) error {
			var innerErr error
			if err := outer.GetMut(ctx, root, func(mid *Mid) {
				innerErr = inner.GetMut(mid, fn)
			}); err != nil {
				return err
			}
			return innerErr
		},
	}
}

// NestAsyncGuarded chains two asynchronous guarded traversals.
func NestAsyncGuarded[Root, Mid, Value any](
	outer AsyncGuarded[Root, Mid],
	inner AsyncGuarded[Mid, Value],
) AsyncGuarded[Root, Value] {
	return asyncGuardedFunc[Root, Value]{
		get: func(ctx context.Context, root *Root, fn func(*Value)) error {
			var innerErr error
			if err := outer.Get(ctx, root, func(mid *Mid) {
				innerErr = inner.Get(ctx, mid, fn)
			}); err != nil {
				return err
			}
			return innerErr
		},
		getMut: func(ctx context.Context, root *Root, fn func(*Value)) error {
			var innerErr error
			if err := outer.GetMut(ctx, root, func(mid *Mid) {
				innerErr = inner.GetMut(ctx, mid, fn)
			}); err != nil {
				return err
			}
			return innerErr
		},
	}
}
