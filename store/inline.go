package store

// Inline is a fixed run of storage cells owned by a single container. The
// run is created once, with the container, and never grows, shrinks, or
// reallocates afterwards.
type Inline[T any] struct {
	cells Run[T]
}

// NewInline creates an inline buffer of exactly capacity cells, all invalid.
func NewInline[T any](capacity int) Inline[T] {
	assert(capacity >= 0, "store: inline capacity must not be negative")
	return Inline[T]{cells: make(Run[T], capacity)}
}

// Cap returns the fixed cell count of the buffer.
func (b Inline[T]) Cap() int {
	return len(b.cells)
}

// Get returns the element in cell i. The caller guarantees i addresses a
// valid cell.
func (b Inline[T]) Get(i int) T {
	assert(i >= 0 && i < len(b.cells), "store: inline cell index out of range")
	return b.cells.Get(i)
}

// Set writes value into cell i.
func (b Inline[T]) Set(i int, value T) {
	assert(i >= 0 && i < len(b.cells), "store: inline cell index out of range")
	b.cells.Set(i, value)
}

// Take removes and returns the element in cell i, leaving the cell invalid.
func (b Inline[T]) Take(i int) T {
	assert(i >= 0 && i < len(b.cells), "store: inline cell index out of range")
	return b.cells.Take(i)
}

// Cells exposes the cell run for bulk operations by the owning container.
func (b Inline[T]) Cells() Run[T] {
	return b.cells
}
