package store

// Run is a contiguous run of storage cells.
//
// A run never knows which of its cells are valid; the owning container
// tracks validity through its length. Callers must only address cells they
// know to be valid (or, for Set, cells they are about to make valid).
type Run[T any] []T

// Get returns the element in cell i.
func (r Run[T]) Get(i int) T {
	return r[i]
}

// Set writes value into cell i, making it valid from the owner's point of view.
func (r Run[T]) Set(i int, value T) {
	r[i] = value
}

// Take removes the element from cell i and returns it. The cell is cleared
// immediately, so it no longer retains the element.
func (r Run[T]) Take(i int) T {
	var zero T
	value := r[i]
	r[i] = zero
	return value
}

// Swap exchanges the elements in cells i and j.
func (r Run[T]) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

// ShiftUp moves the n cells [i, i+n) one position towards the end of the run
// and clears the vacated cell at i. The destination cell i+n must be invalid.
func (r Run[T]) ShiftUp(i, n int) {
	var zero T
	copy(r[i+1:i+n+1], r[i:i+n])
	r[i] = zero
}

// ShiftDown moves the n cells [i+1, i+1+n) one position towards the front of
// the run and clears the vacated cell at i+n. Cell i must already have been
// taken by the caller.
func (r Run[T]) ShiftDown(i, n int) {
	var zero T
	copy(r[i:i+n], r[i+1:i+1+n])
	r[i+n] = zero
}

// Relocate transfers the first n elements of r into dst, in ascending cell
// order. Each source cell is cleared immediately after its element moved, so
// at no point do both runs hold the same element.
func (r Run[T]) Relocate(dst Run[T], n int) {
	assert(n <= len(r), "relocation count exceeds source run")
	assert(n <= len(dst), "relocation target too small")
	var zero T
	for i := 0; i < n; i++ {
		dst[i] = r[i]
		r[i] = zero
	}
}

// ClearRange zeroes the cells [from, to).
func (r Run[T]) ClearRange(from, to int) {
	clear(r[from:to])
}
