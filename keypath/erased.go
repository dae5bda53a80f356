package keypath

import "reflect"

// Erased is a path whose value type has been erased, letting paths to
// differently typed fields of one root live in a single collection. The
// concrete value type is retained as a runtime tag and checked before any
// downcast: a mismatched tag yields absence, never a panic or undefined
// behavior.
type Erased[Root any] struct {
	valueType reflect.Type
	tier      Tier
	mode      Mode
	getAny    func(*Root) (any, bool)
	path      any
}

// EraseValue erases the value type of p, keeping the root type known.
func EraseValue[Root, Value any](p Path[Root, Value]) Erased[Root] {
	return Erased[Root]{
		valueType: reflect.TypeOf((*Value)(nil)).Elem(),
		tier:      p.tier,
		mode:      p.mode,
		getAny: func(root *Root) (any, bool) {
			v, ok := p.Get(root)
			if !ok {
				return nil, false
			}
			return v, true
		},
		path: p,
	}
}

// ValueType returns the runtime tag of the erased value type.
func (e Erased[Root]) ValueType() reflect.Type { return e.valueType }

// Tier reports the failure tier of the underlying path.
func (e Erased[Root]) Tier() Tier { return e.tier }

// Mode reports the access mode of the underlying path.
func (e Erased[Root]) Mode() Mode { return e.mode }

// GetAny navigates the erased path, returning the value as a *Value boxed
// in an interface. Absence propagates as usual.
func (e Erased[Root]) GetAny(root *Root) (any, bool) {
	if e.getAny == nil {
		return nil, false
	}
	return e.getAny(root)
}

// TypedAs recovers the concrete path from an erased one. It reports false
// when the requested value type does not match the stored tag; the tag is
// checked before the downcast, so a mismatch can never misinterpret the
// stored path.
func TypedAs[Value, Root any](e Erased[Root]) (Path[Root, Value], bool) {
	if e.valueType != reflect.TypeOf((*Value)(nil)).Elem() {
		return Path[Root, Value]{}, false
	}
	p, ok := e.path.(Path[Root, Value])
	return p, ok
}

// AnyPath is a fully erased path: both the root and the value type are
// reduced to runtime tags. It is the storage form for heterogeneous
// registries of paths over unrelated roots; it is never used for ordinary
// navigation, which stays fully typed.
type AnyPath struct {
	rootType  reflect.Type
	valueType reflect.Type
	getAny    func(any) (any, bool)
	path      any
}

// Erase erases both type parameters of p. The navigation entry point takes
// the root as *Root boxed in an interface and checks the root tag before
// touching it.
func Erase[Root, Value any](p Path[Root, Value]) AnyPath {
	return AnyPath{
		rootType:  reflect.TypeOf((*Root)(nil)).Elem(),
		valueType: reflect.TypeOf((*Value)(nil)).Elem(),
		getAny: func(root any) (any, bool) {
			r, ok := root.(*Root)
			if !ok || r == nil {
				return nil, false
			}
			v, ok := p.Get(r)
			if !ok {
				return nil, false
			}
			return v, true
		},
		path: p,
	}
}

// RootType returns the runtime tag of the erased root type.
func (ap AnyPath) RootType() reflect.Type { return ap.rootType }

// ValueType returns the runtime tag of the erased value type.
func (ap AnyPath) ValueType() reflect.Type { return ap.valueType }

// GetAny navigates from a *Root boxed in an interface. A root of any other
// type yields absence.
func (ap AnyPath) GetAny(root any) (any, bool) {
	if ap.getAny == nil {
		return nil, false
	}
	return ap.getAny(root)
}

// PathAs recovers the fully typed path from an AnyPath. Both tags must
// match; a failed check reports false without touching the stored path.
func PathAs[Root, Value any](ap AnyPath) (Path[Root, Value], bool) {
	if ap.rootType != reflect.TypeOf((*Root)(nil)).Elem() || ap.valueType != reflect.TypeOf((*Value)(nil)).Elem() {
		return Path[Root, Value]{}, false
	}
	p, ok := ap.path.(Path[Root, Value])
	return p, ok
}
