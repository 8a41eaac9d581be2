package store

import "errors"

var (
	// ErrIndexOutOfBounds signals a cell index outside the buffer.
	ErrIndexOutOfBounds = errors.New("store: index out of bounds")
	// ErrCapacityOverflow signals a requested capacity that cannot be
	// represented as an int.
	ErrCapacityOverflow = errors.New("store: capacity overflow")
)
