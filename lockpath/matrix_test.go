package lockpath

import (
	"context"
	"sync"
	"testing"

	"github.com/akashsoni01/keypaths/keypath"
	"github.com/akashsoni01/keypaths/testutil"
)

// Each matrix cell is exercised against a two-level structure shaped for
// that cell: a read must observe 9 and a write must change it.

type entry struct{ N int }

type holder struct{ Box *Mutex[entry] }

type asyncHolder struct{ Box *SemMutex[entry] }

func entryN() keypath.Path[entry, int] {
	return keypath.Field(func(e *entry) *int { return &e.N })
}

func holderBox() keypath.Path[holder, *Mutex[entry]] {
	return keypath.Field(func(h *holder) **Mutex[entry] { return &h.Box })
}

func asyncHolderBox() keypath.Path[asyncHolder, *SemMutex[entry]] {
	return keypath.Field(func(h *asyncHolder) **SemMutex[entry] { return &h.Box })
}

func checkSync(t *testing.T, g Guarded[realm, int], r *realm) {
	t.Helper()
	var got int
	testutil.RequireNoError(t, g.Get(r, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 9, got)

	testutil.RequireNoError(t, g.Set(r, func(v *int) { *v = 10 }))
	testutil.RequireNoError(t, g.Get(r, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 10, got)
}

func checkAsync(t *testing.T, g AsyncGuarded[realm, int], r *realm) {
	t.Helper()
	ctx := context.Background()
	var got int
	testutil.RequireNoError(t, g.Get(ctx, r, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 9, got)

	testutil.RequireNoError(t, g.Set(ctx, r, func(v *int) { *v = 10 }))
	testutil.RequireNoError(t, g.Get(ctx, r, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 10, got)
}

// Cell: Path then Path.
func TestMatrix_PathThenPath(t *testing.T) {
	type pair struct{ E entry }
	type root struct{ P pair }

	composite := keypath.Then(
		keypath.Then(
			keypath.Field(func(r *root) *pair { return &r.P }),
			keypath.Field(func(p *pair) *entry { return &p.E }),
		),
		entryN(),
	)

	r := &root{P: pair{E: entry{N: 9}}}
	v, ok := composite.Get(r)
	testutil.RequireTrue(t, ok)
	testutil.AssertEqual(t, 9, *v)

	testutil.RequireTrue(t, composite.Set(r, 10))
	testutil.AssertEqual(t, 10, r.P.E.N)
}

// Cell: Path then LockPath.
func TestMatrix_PathThenLockPath(t *testing.T) {
	r := testRealm()
	inner := NewLockPath(sharedHandle(), MutexStrategy[profile]{}, scorePath())
	lifted := Lift(keypath.Identity[realm](), inner)
	checkSync(t, lifted, r)
}

// Cell: Path then AsyncLockPath.
func TestMatrix_PathThenAsyncLockPath(t *testing.T) {
	r := testRealm()
	inner := NewAsyncLockPath(asyncHandle(), SemMutexStrategy[profile]{}, scorePath())
	lifted := LiftAsync(keypath.Identity[realm](), inner)
	checkAsync(t, lifted, r)
}

// Cell: LockPath then Path.
func TestMatrix_LockPathThenPath(t *testing.T) {
	r := testRealm()
	toProfile := NewLockPath(sharedHandle(), MutexStrategy[profile]{}, keypath.Identity[profile]())
	extended := Extend(toProfile, scorePath())
	checkSync(t, extended, r)
}

// Cell: AsyncLockPath then Path.
func TestMatrix_AsyncLockPathThenPath(t *testing.T) {
	r := testRealm()
	toProfile := NewAsyncLockPath(asyncHandle(), SemMutexStrategy[profile]{}, keypath.Identity[profile]())
	extended := ExtendAsync(toProfile, scorePath())
	checkAsync(t, extended, r)
}

// Cell: LockPath then LockPath (nested blocking locks).
func TestMatrix_LockPathThenLockPath(t *testing.T) {
	outerBox := NewMutex(holder{Box: NewMutex(entry{N: 9})})
	root := &outerBox

	outer := NewLockPath(
		keypath.Identity[*Mutex[holder]](),
		MutexStrategy[holder]{},
		keypath.Identity[holder](),
	)
	inner := NewLockPath(holderBox(), MutexStrategy[entry]{}, entryN())
	nested := Nest(outer, inner)

	var got int
	testutil.RequireNoError(t, nested.Get(root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 9, got)

	testutil.RequireNoError(t, nested.Set(root, func(v *int) { *v = 10 }))
	testutil.RequireNoError(t, nested.Get(root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 10, got)
}

// Cell: LockPath then AsyncLockPath (blocking outer, suspended inner).
func TestMatrix_LockPathThenAsyncLockPath(t *testing.T) {
	outerBox := NewMutex(asyncHolder{Box: NewSemMutex(entry{N: 9})})
	root := &outerBox

	outer := NewLockPath(
		keypath.Identity[*Mutex[asyncHolder]](),
		MutexStrategy[asyncHolder]{},
		keypath.Identity[asyncHolder](),
	)
	inner := NewAsyncLockPath(asyncHolderBox(), SemMutexStrategy[entry]{}, entryN())
	nested := NestSyncAsync(outer, inner)

	ctx := context.Background()
	var got int
	testutil.RequireNoError(t, nested.Get(ctx, root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 9, got)

	testutil.RequireNoError(t, nested.Set(ctx, root, func(v *int) { *v = 10 }))
	testutil.RequireNoError(t, nested.Get(ctx, root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 10, got)
}

// Cell: AsyncLockPath then LockPath (suspended outer, blocking inner).
func TestMatrix_AsyncLockPathThenLockPath(t *testing.T) {
	outerBox := NewSemMutex(holder{Box: NewMutex(entry{N: 9})})
	root := &outerBox

	outer := NewAsyncLockPath(
		keypath.Identity[*SemMutex[holder]](),
		SemMutexStrategy[holder]{},
		keypath.Identity[holder](),
	)
	inner := NewLockPath(holderBox(), MutexStrategy[entry]{}, entryN())
	nested := NestAsyncSync(outer, inner)

	ctx := context.Background()
	var got int
	testutil.RequireNoError(t, nested.Get(ctx, root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 9, got)

	testutil.RequireNoError(t, nested.Set(ctx, root, func(v *int) { *v = 10 }))
	testutil.RequireNoError(t, nested.Get(ctx, root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 10, got)
}

// Cell: AsyncLockPath then AsyncLockPath (outer await, then inner await).
func TestMatrix_AsyncLockPathThenAsyncLockPath(t *testing.T) {
	outerBox := NewSemMutex(asyncHolder{Box: NewSemMutex(entry{N: 9})})
	root := &outerBox

	outer := NewAsyncLockPath(
		keypath.Identity[*SemMutex[asyncHolder]](),
		SemMutexStrategy[asyncHolder]{},
		keypath.Identity[asyncHolder](),
	)
	inner := NewAsyncLockPath(asyncHolderBox(), SemMutexStrategy[entry]{}, entryN())
	nested := NestAsync(outer, inner)

	ctx := context.Background()
	var got int
	testutil.RequireNoError(t, nested.Get(ctx, root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 9, got)

	testutil.RequireNoError(t, nested.Set(ctx, root, func(v *int) { *v = 10 }))
	testutil.RequireNoError(t, nested.Get(ctx, root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 10, got)
}

// Nested blocking locks must acquire outer-first and release inner-first.
func TestNest_CriticalSectionOrdering(t *testing.T) {
	outerBox := NewMutex(holder{Box: NewMutex(entry{N: 9})})
	root := &outerBox

	var mu sync.Mutex
	var events []string
	record := func(name string) recordingStrategy[Mutex[holder], holder] {
		return recordingStrategy[Mutex[holder], holder]{
			inner: MutexStrategy[holder]{}, name: name, mu: &mu, events: &events,
		}
	}
	recordInner := recordingStrategy[Mutex[entry], entry]{
		inner: MutexStrategy[entry]{}, name: "inner", mu: &mu, events: &events,
	}

	outer := NewLockPath[*Mutex[holder]](
		keypath.Identity[*Mutex[holder]](),
		record("outer"),
		keypath.Identity[holder](),
	)
	inner := NewLockPath[holder](holderBox(), recordInner, entryN())
	nested := Nest(outer, inner)

	testutil.RequireNoError(t, nested.Get(root, func(*int) {}))
	testutil.AssertEqual(t,
		[]string{"outer acquire", "inner acquire", "inner release", "outer release"},
		events,
	)
}

// Nested absence: an absent inner link surfaces as absence without leaving
// either lock held.
func TestNest_AbsencePropagates(t *testing.T) {
	outerBox := NewMutex(holder{Box: nil}) // inner container missing
	root := &outerBox

	outer := NewLockPath(
		keypath.Identity[*Mutex[holder]](),
		MutexStrategy[holder]{},
		keypath.Identity[holder](),
	)
	inner := NewLockPath(holderBox(), MutexStrategy[entry]{}, entryN())
	nested := Nest(outer, inner)

	err := nested.Get(root, func(*int) { t.Fatal("visitor must not run") })
	testutil.AssertErrorIs(t, err, ErrAbsent)

	// Outer lock is free again.
	released := false
	(*root).WithLock(func(*holder) { released = true })
	testutil.AssertTrue(t, released)
}

// Three locks deep, built by recomposing a nested result with the
// interface-level combinator.
func TestNestGuarded_ThreeLevels(t *testing.T) {
	innermost := NewMutex(entry{N: 9})
	middle := NewMutex(holder{Box: innermost})
	type midHolder struct{ Mid *Mutex[holder] }
	outermost := NewMutex(midHolder{Mid: middle})
	root := &outermost

	level1 := NewLockPath(
		keypath.Identity[*Mutex[midHolder]](),
		MutexStrategy[midHolder]{},
		keypath.Field(func(h *midHolder) **Mutex[holder] { return &h.Mid }),
	)
	level2 := NewLockPath(
		keypath.Identity[*Mutex[holder]](),
		MutexStrategy[holder]{},
		keypath.Identity[holder](),
	)
	level3 := NewLockPath(holderBox(), MutexStrategy[entry]{}, entryN())

	composed := NestGuarded[*Mutex[midHolder], *Mutex[holder], int](
		level1,
		Nest(level2, level3),
	)

	var got int
	testutil.RequireNoError(t, composed.Get(root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 9, got)

	testutil.RequireNoError(t, composed.Set(root, func(v *int) { *v = 21 }))
	testutil.RequireNoError(t, composed.Get(root, func(v *int) { got = *v }))
	testutil.AssertEqual(t, 21, got)
}
