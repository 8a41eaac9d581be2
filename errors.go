package banks

import "errors"

var (
	// ErrCapacityExceeded signals that an operation on a bounded bank would
	// exceed its fixed capacity. The bank is left unchanged, except for the
	// documented partial-append contract of Extend.
	ErrCapacityExceeded = errors.New("banks: capacity exceeded")
	// ErrIndexOutOfBounds signals an index argument outside the valid range.
	ErrIndexOutOfBounds = errors.New("banks: index out of bounds")
	// ErrAllocationFailure signals that a requested capacity cannot be
	// represented. Fallible reservation returns it; the infallible
	// operations escalate it to a panic.
	ErrAllocationFailure = errors.New("banks: allocation failure")
)
