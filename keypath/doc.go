/*
Package keypath implements a composable accessor algebra: type-safe paths that
read and write a field reachable from a root value through arbitrary layers of
indirection.

A Path is built from an accessor pair (a read view and a write view over the
root), carries a capability tier (total or failable) and an access mode
(read, write, or both), and composes end-to-end with Then:

	name := keypath.Field(func(u *User) *string { return &u.Name })
	addr := keypath.OptionField(func(u *User) **Address { return &u.Addr })
	city := keypath.Field(func(a *Address) *string { return &a.City })

	userCity := keypath.Then(addr, city)

Absence at any link (a nil optional field, an out-of-range index, a missing
map key) propagates silently to the end of the chain; no link ever panics on
a missing value. Composing paths over incompatible root or value types is
rejected at compile time by the type parameters of Then.

Paths hold no mutable state and are cheaply copyable; they may be shared
across goroutines as long as the closures they wrap are safe to share.

Navigation through values guarded by synchronization primitives is provided
by the companion lockpath package.
*/
package keypath
