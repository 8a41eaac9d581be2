package store

import "math"

// Heap is a growable run of storage cells obtained from the allocator,
// exclusively owned by a single container. It grows by reallocation and
// never shrinks.
type Heap[T any] struct {
	cells Run[T]
}

// NewHeap allocates a heap buffer of exactly capacity cells, all invalid.
func NewHeap[T any](capacity int) Heap[T] {
	assert(capacity >= 0, "store: heap capacity must not be negative")
	return Heap[T]{cells: make(Run[T], capacity)}
}

// Cap returns the currently allocated cell count.
func (h Heap[T]) Cap() int {
	return len(h.cells)
}

// Cells exposes the cell run for operations by the owning container.
func (h Heap[T]) Cells() Run[T] {
	return h.cells
}

// TargetCapacity computes the growth target for a buffer of the given
// current capacity: the larger of minCap and twice the current capacity.
// A negative minCap indicates that the caller's capacity arithmetic has
// already overflowed and is reported as ErrCapacityOverflow.
func TargetCapacity(current, minCap int) (int, error) {
	if minCap < 0 {
		return 0, ErrCapacityOverflow
	}
	doubled := 2 * current
	if current > math.MaxInt/2 {
		doubled = minCap
	}
	if doubled < minCap {
		doubled = minCap
	}
	return doubled, nil
}

// Grow reallocates the heap run to at least TargetCapacity(Cap(), minCap),
// relocating the first length elements into the fresh storage. The operation
// is all-or-nothing: on error the buffer is unchanged.
func (h *Heap[T]) Grow(length, minCap int) error {
	newCap, err := TargetCapacity(h.Cap(), minCap)
	if err != nil {
		return err
	}
	return h.GrowExact(length, newCap)
}

// GrowExact reallocates the heap run to exactly newCap cells (a no-op if the
// run is already at least that large), relocating the first length elements.
// Relocation transfers elements in ascending order, invalidating each source
// cell immediately after its element moved.
func (h *Heap[T]) GrowExact(length, newCap int) error {
	if newCap < 0 {
		return ErrCapacityOverflow
	}
	assert(length <= h.Cap(), "store: heap length exceeds allocated capacity")
	if newCap <= h.Cap() {
		return nil
	}
	fresh := make(Run[T], newCap)
	h.cells.Relocate(fresh, length)
	h.cells = fresh
	return nil
}
