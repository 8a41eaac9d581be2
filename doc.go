/*
Package banks provides sequence containers that keep their elements in a
fixed-size buffer of storage cells allocated once, with the container,
avoiding repeated allocator traffic for small element counts.

Two container types are provided:

Arr is a bounded bank: its capacity is fixed when the bank is created and
can never be exceeded. Operations that would overflow the capacity fail
with ErrCapacityExceeded and leave the bank unchanged.

Vec is a spillable bank: it starts out on its fixed buffer and, the first
time an operation needs more room, promotes its storage to a heap buffer
and keeps growing there. Promotion is one-way; a Vec never returns to its
fixed buffer, no matter how many elements are removed afterwards
(OnHeap reports the current state).

Neither container is safe for unsynchronized concurrent mutation; callers
sharing a bank across goroutines must wrap it behind their own mutual
exclusion, exactly as they would a plain slice.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package banks

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
