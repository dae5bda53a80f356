package lockpath

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsent indicates that a link along the path yielded no value.
	// Every failure mode of a composed traversal converts into this one
	// signal; the caller sees the final absence, not which link was absent.
	ErrAbsent = errors.New("lockpath: no value at path")

	// ErrLockUnavailable indicates that a fallible lock flavor failed to
	// acquire, e.g. a try-lock that lost the race. It matches ErrAbsent
	// under errors.Is, preserving the uniform absence signal for callers
	// that do not care why the traversal produced nothing.
	ErrLockUnavailable = fmt.Errorf("lock unavailable: %w", ErrAbsent)
)
