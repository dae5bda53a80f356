package keypath

// Accessor is the atomic building block of a path: a pair of view functions
// over a root value. Read yields a shared-intent view of the value and Write
// an exclusive-intent view. Either function may be nil when the owning path
// does not support that access mode.
//
// Both functions must be pure with respect to the path itself: an accessor
// navigates, it never stores state of its own. The boolean result reports
// presence; a failable link returns false instead of panicking when the
// value is absent.
type Accessor[Root, Value any] struct {
	Read  func(root *Root) (*Value, bool)
	Write func(root *Root) (*Value, bool)
}

// Tier classifies whether a path's navigation can fail.
type Tier int

const (
	// TierTotal marks a path whose navigation always succeeds on a non-nil root.
	TierTotal Tier = iota

	// TierFailable marks a path that may report absence, e.g. one crossing
	// an optional field or an indexed link.
	TierFailable
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierTotal:
		return "total"
	case TierFailable:
		return "failable"
	default:
		return "unknown"
	}
}

// Mode is a bit set describing which access operations a path supports.
type Mode int

const (
	// ModeRead allows Get.
	ModeRead Mode = 1 << iota

	// ModeWrite allows GetMut, Set and Update.
	ModeWrite

	// ModeReadWrite allows every access operation.
	ModeReadWrite = ModeRead | ModeWrite
)

// CanRead reports whether the mode includes read access.
func (m Mode) CanRead() bool { return m&ModeRead != 0 }

// CanWrite reports whether the mode includes write access.
func (m Mode) CanWrite() bool { return m&ModeWrite != 0 }

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeReadWrite:
		return "read-write"
	default:
		return "none"
	}
}

// joinTier computes the failure tier of a composite: total only if both
// components are total.
func joinTier(a, b Tier) Tier {
	if a == TierTotal && b == TierTotal {
		return TierTotal
	}
	return TierFailable
}
