package keypath

// Then composes two paths end-to-end: the first path's value becomes the
// second path's root. The composite's tier is total only when both inputs
// are total, and its mode is the intersection of the input modes; composing
// a read-only path with a write-only one therefore yields a path that
// reports absence for every operation.
//
// Absence short-circuits: when the first path reports no value, the second
// path is never invoked. Then is associative; Then(Then(a, b), c) and
// Then(a, Then(b, c)) produce identical outcomes on every input.
func Then[Root, Mid, Value any](first Path[Root, Mid], next Path[Mid, Value]) Path[Root, Value] {
	out := Path[Root, Value]{
		tier: joinTier(first.tier, next.tier),
		mode: first.mode & next.mode,
	}
	if out.mode.CanRead() {
		firstRead, nextRead := first.acc.Read, next.acc.Read
		out.acc.Read = func(root *Root) (*Value, bool) {
			mid, ok := firstRead(root)
			if !ok {
				return nil, false
			}
			return nextRead(mid)
		}
	}
	if out.mode.CanWrite() {
		firstWrite, nextWrite := first.acc.Write, next.acc.Write
		out.acc.Write = func(root *Root) (*Value, bool) {
			mid, ok := firstWrite(root)
			if !ok {
				return nil, false
			}
			return nextWrite(mid)
		}
	}
	return out
}
