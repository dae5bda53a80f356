package keypath

// Deref adapts a path ending in a pointer wrapper into a path to the
// pointee. The pointee is re-borrowed, never copied or moved; a nil pointer
// surfaces as absence, so the result is always failable.
func Deref[Root, Value any](p Path[Root, *Value]) Path[Root, Value] {
	out := Path[Root, Value]{tier: TierFailable, mode: p.mode}
	if p.acc.Read != nil {
		read := p.acc.Read
		out.acc.Read = func(root *Root) (*Value, bool) {
			ptr, ok := read(root)
			if !ok || *ptr == nil {
				return nil, false
			}
			return *ptr, true
		}
	}
	if p.acc.Write != nil {
		write := p.acc.Write
		out.acc.Write = func(root *Root) (*Value, bool) {
			ptr, ok := write(root)
			if !ok || *ptr == nil {
				return nil, false
			}
			return *ptr, true
		}
	}
	return out
}

// OptionField returns a failable read-write path through an optional struct
// field represented as a pointer. A nil field is absence:
//
//	addr := keypath.OptionField(func(u *User) **Address { return &u.Addr })
func OptionField[Root, Value any](access func(*Root) **Value) Path[Root, Value] {
	return Deref(Field(access))
}

// Index adapts a path ending in a slice into a failable path to the element
// at position i. An out-of-range index surfaces as absence, checked against
// the slice's length at navigation time.
func Index[Root, E any](p Path[Root, []E], i int) Path[Root, E] {
	out := Path[Root, E]{tier: TierFailable, mode: p.mode}
	if p.acc.Read != nil {
		read := p.acc.Read
		out.acc.Read = func(root *Root) (*E, bool) {
			s, ok := read(root)
			if !ok || i < 0 || i >= len(*s) {
				return nil, false
			}
			return &(*s)[i], true
		}
	}
	if p.acc.Write != nil {
		write := p.acc.Write
		out.acc.Write = func(root *Root) (*E, bool) {
			s, ok := write(root)
			if !ok || i < 0 || i >= len(*s) {
				return nil, false
			}
			return &(*s)[i], true
		}
	}
	return out
}

// Key adapts a path ending in a pointer-valued map into a failable path to
// the value stored under k. A missing key or a nil stored pointer surfaces
// as absence.
//
// Go map values are not addressable, so only pointer-valued maps can yield
// an in-place view of the element; plain-valued maps must be navigated by
// the caller through an explicit copy-out/copy-in.
func Key[Root any, K comparable, Value any](p Path[Root, map[K]*Value], k K) Path[Root, Value] {
	lookup := func(m *map[K]*Value, ok bool) (*Value, bool) {
		if !ok {
			return nil, false
		}
		v, present := (*m)[k]
		if !present || v == nil {
			return nil, false
		}
		return v, true
	}
	out := Path[Root, Value]{tier: TierFailable, mode: p.mode}
	if p.acc.Read != nil {
		read := p.acc.Read
		out.acc.Read = func(root *Root) (*Value, bool) {
			return lookup(read(root))
		}
	}
	if p.acc.Write != nil {
		write := p.acc.Write
		out.acc.Write = func(root *Root) (*Value, bool) {
			return lookup(write(root))
		}
	}
	return out
}

// ReadOnly strips write access from a path, leaving reads untouched.
// Useful for handing a mutable path to a consumer that must not write
// through it.
func ReadOnly[Root, Value any](p Path[Root, Value]) Path[Root, Value] {
	p.acc.Write = nil
	p.mode &= ModeRead
	return p
}
