package lockpath

import (
	"sync"
	"time"

	"github.com/akashsoni01/keypaths/keypath"
)

// Compile-time checks that the concrete paths satisfy their access surfaces.
var (
	_ Guarded[realm, int]                       = LockPath[realm, Mutex[profile], profile, int]{}
	_ AsyncGuarded[realm, int]                  = AsyncLockPath[realm, SemMutex[profile], profile, int]{}
	_ Strategy[Mutex[profile], profile]         = MutexStrategy[profile]{}
	_ Strategy[RWMutex[profile], profile]       = RWMutexStrategy[profile]{}
	_ Strategy[Mutex[profile], profile]         = TryMutexStrategy[profile]{}
	_ AsyncStrategy[SemMutex[profile], profile] = SemMutexStrategy[profile]{}
	_ AsyncStrategy[SemRWMutex[profile], profile] = SemRWMutexStrategy[profile]{}
)

type profile struct {
	Name  string
	Score int
}

// realm is the root fixture: one payload behind each blocking flavor and
// one behind each asynchronous flavor.
type realm struct {
	Shared    *Mutex[profile]
	Stats     *RWMutex[profile]
	AsyncProf *SemMutex[profile]
	AsyncRW   *SemRWMutex[profile]
}

func testRealm() *realm {
	return &realm{
		Shared:    NewMutex(profile{Name: "ada", Score: 9}),
		Stats:     NewRWMutex(profile{Name: "lin", Score: 9}),
		AsyncProf: NewSemMutex(profile{Name: "sam", Score: 9}),
		AsyncRW:   NewSemRWMutex(profile{Name: "kim", Score: 9}),
	}
}

func sharedHandle() keypath.Path[realm, *Mutex[profile]] {
	return keypath.Field(func(r *realm) **Mutex[profile] { return &r.Shared })
}

func statsHandle() keypath.Path[realm, *RWMutex[profile]] {
	return keypath.Field(func(r *realm) **RWMutex[profile] { return &r.Stats })
}

func asyncHandle() keypath.Path[realm, *SemMutex[profile]] {
	return keypath.Field(func(r *realm) **SemMutex[profile] { return &r.AsyncProf })
}

func asyncRWHandle() keypath.Path[realm, *SemRWMutex[profile]] {
	return keypath.Field(func(r *realm) **SemRWMutex[profile] { return &r.AsyncRW })
}

func scorePath() keypath.Path[profile, int] {
	return keypath.Field(func(p *profile) *int { return &p.Score })
}

// mockClock is a manually advanced Clock for deterministic timing tests.
type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Unix(1000, 0)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *mockClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// recordingStrategy wraps a blocking strategy and appends acquire/release
// events, for asserting nested critical-section ordering.
type recordingStrategy[C, T any] struct {
	inner  Strategy[C, T]
	name   string
	mu     *sync.Mutex
	events *[]string
}

func (s recordingStrategy[C, T]) record(event string) {
	s.mu.Lock()
	*s.events = append(*s.events, s.name+" "+event)
	s.mu.Unlock()
}

func (s recordingStrategy[C, T]) LockRead(c *C) (*T, func(), error) {
	v, release, err := s.inner.LockRead(c)
	if err != nil {
		return nil, nil, err
	}
	s.record("acquire")
	return v, func() {
		s.record("release")
		release()
	}, nil
}

func (s recordingStrategy[C, T]) LockWrite(c *C) (*T, func(), error) {
	v, release, err := s.inner.LockWrite(c)
	if err != nil {
		return nil, nil, err
	}
	s.record("acquire")
	return v, func() {
		s.record("release")
		release()
	}, nil
}
