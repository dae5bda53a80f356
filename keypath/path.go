package keypath

// Path is a composable accessor between a root type and a value type
// reachable from it. A Path wraps an Accessor with a capability tier and an
// access mode; it is immutable after construction and cheap to copy, holding
// only function values and never a copy of the root or the value.
//
// A Path never panics on a missing link: absence is reported through the
// boolean result of Get and GetMut. The zero Path supports no access mode
// and reports absence for every operation.
type Path[Root, Value any] struct {
	acc  Accessor[Root, Value]
	tier Tier
	mode Mode
}

// New assembles a Path directly from an Accessor. The mode is derived from
// which view functions are present; the tier is supplied by the caller, as
// only the accessor's author knows whether its navigation can fail.
//
// This is the contract surface for code generators and for the erasure
// layer; ordinary callers use the shaped constructors below.
func New[Root, Value any](acc Accessor[Root, Value], tier Tier) Path[Root, Value] {
	var mode Mode
	if acc.Read != nil {
		mode |= ModeRead
	}
	if acc.Write != nil {
		mode |= ModeWrite
	}
	return Path[Root, Value]{acc: acc, tier: tier, mode: mode}
}

// TotalRead returns a read-only path whose navigation cannot fail.
func TotalRead[Root, Value any](get func(*Root) *Value) Path[Root, Value] {
	return Path[Root, Value]{
		acc: Accessor[Root, Value]{
			Read: func(root *Root) (*Value, bool) { return get(root), true },
		},
		tier: TierTotal,
		mode: ModeRead,
	}
}

// FailableRead returns a read-only path that may report absence.
func FailableRead[Root, Value any](get func(*Root) (*Value, bool)) Path[Root, Value] {
	return Path[Root, Value]{
		acc:  Accessor[Root, Value]{Read: get},
		tier: TierFailable,
		mode: ModeRead,
	}
}

// TotalWrite returns a write-only path whose navigation cannot fail.
func TotalWrite[Root, Value any](set func(*Root) *Value) Path[Root, Value] {
	return Path[Root, Value]{
		acc: Accessor[Root, Value]{
			Write: func(root *Root) (*Value, bool) { return set(root), true },
		},
		tier: TierTotal,
		mode: ModeWrite,
	}
}

// FailableWrite returns a write-only path that may report absence.
func FailableWrite[Root, Value any](set func(*Root) (*Value, bool)) Path[Root, Value] {
	return Path[Root, Value]{
		acc:  Accessor[Root, Value]{Write: set},
		tier: TierFailable,
		mode: ModeWrite,
	}
}

// Field returns a total read-write path through a plain struct field.
// The accessor serves both the shared and the exclusive view; this is the
// shape a per-field code generator would emit:
//
//	balance := keypath.Field(func(a *Account) *int64 { return &a.Balance })
func Field[Root, Value any](access func(*Root) *Value) Path[Root, Value] {
	total := func(root *Root) (*Value, bool) { return access(root), true }
	return Path[Root, Value]{
		acc:  Accessor[Root, Value]{Read: total, Write: total},
		tier: TierTotal,
		mode: ModeReadWrite,
	}
}

// FailableField returns a failable read-write path served by a single
// accessor, for links such as variant fields that exist only in one state
// of the root.
func FailableField[Root, Value any](access func(*Root) (*Value, bool)) Path[Root, Value] {
	return Path[Root, Value]{
		acc:  Accessor[Root, Value]{Read: access, Write: access},
		tier: TierFailable,
		mode: ModeReadWrite,
	}
}

// Identity returns the neutral element of Then: a total read-write path
// whose value is the root itself.
func Identity[T any]() Path[T, T] {
	id := func(root *T) (*T, bool) { return root, true }
	return Path[T, T]{
		acc:  Accessor[T, T]{Read: id, Write: id},
		tier: TierTotal,
		mode: ModeReadWrite,
	}
}

// Tier reports the path's failure tier.
func (p Path[Root, Value]) Tier() Tier { return p.tier }

// Mode reports the path's access mode.
func (p Path[Root, Value]) Mode() Mode { return p.mode }

// Get navigates from root to the value and returns a shared-intent view of
// it. It reports false when any link along the path is absent or when the
// path does not support read access. The root must be non-nil.
func (p Path[Root, Value]) Get(root *Root) (*Value, bool) {
	if p.acc.Read == nil {
		return nil, false
	}
	return p.acc.Read(root)
}

// GetMut navigates from root to the value and returns an exclusive-intent
// view of it. It reports false when any link is absent or when the path does
// not support write access.
func (p Path[Root, Value]) GetMut(root *Root) (*Value, bool) {
	if p.acc.Write == nil {
		return nil, false
	}
	return p.acc.Write(root)
}

// Set writes v through the path, replacing the current value in place.
// It reports false when the target is absent or the path is not writable.
func (p Path[Root, Value]) Set(root *Root, v Value) bool {
	target, ok := p.GetMut(root)
	if !ok {
		return false
	}
	*target = v
	return true
}

// Update applies fn to the value in place through the path's exclusive view.
// It reports false when the target is absent or the path is not writable;
// fn is not invoked in that case.
func (p Path[Root, Value]) Update(root *Root, fn func(*Value)) bool {
	target, ok := p.GetMut(root)
	if !ok {
		return false
	}
	fn(target)
	return true
}
