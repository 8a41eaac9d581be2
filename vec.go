package banks

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/banks/store"
)

// Vec is a spillable bank: a sequence container that starts out on a fixed
// buffer of cells allocated with the bank and, the first time an operation
// needs more room, promotes its storage to a heap buffer. After promotion
// the Vec grows by reallocation (doubling, or more when more is required)
// and never returns to the fixed buffer.
//
// None of the removal operations shrink or demote the storage; capacity is
// monotonic over the lifetime of a Vec.
type Vec[T any] struct {
	inline store.Inline[T]
	heap   store.Heap[T]
	state  store.State
	n      int
}

// NewVec creates an empty spillable bank with the given inline capacity.
func NewVec[T any](inlineCapacity int) *Vec[T] {
	assert(inlineCapacity >= 0, "banks: capacity must not be negative")
	return &Vec[T]{inline: store.NewInline[T](inlineCapacity)}
}

// VecOf creates a spillable bank with the given inline capacity, holding
// items in order. If there are more items than inline cells the bank is
// created directly in the spilled state.
func VecOf[T any](inlineCapacity int, items ...T) *Vec[T] {
	bank := NewVec[T](inlineCapacity)
	if len(items) > inlineCapacity {
		bank.promote(len(items))
	}
	cells := bank.cells()
	for i, item := range items {
		cells.Set(i, item)
	}
	bank.n = len(items)
	return bank
}

// VecFromSlice creates a spillable bank with the given inline capacity from
// a plain slice, copying the elements. A slice longer than the inline
// capacity yields a bank that is spilled from the start.
func VecFromSlice[T any](inlineCapacity int, items []T) *Vec[T] {
	return VecOf(inlineCapacity, items...)
}

// cells returns the run of the authoritative buffer. Once the bank is
// spilled, the inline buffer is never addressed again.
func (v *Vec[T]) cells() store.Run[T] {
	if v.state == store.StateSpilled {
		return v.heap.Cells()
	}
	return v.inline.Cells()
}

// Len returns the number of elements in the bank.
func (v *Vec[T]) Len() int {
	return v.n
}

// Cap returns the capacity of the authoritative buffer: the inline capacity
// until the first promotion, the allocated heap capacity after it.
func (v *Vec[T]) Cap() int {
	if v.state == store.StateSpilled {
		return v.heap.Cap()
	}
	return v.inline.Cap()
}

// OnHeap reports whether the bank has promoted its storage to the heap.
// It is false until the first promotion, and true for the rest of the bank's
// lifetime thereafter, regardless of subsequent removals.
func (v *Vec[T]) OnHeap() bool {
	return v.state == store.StateSpilled
}

// promote moves the bank's storage from the inline buffer to a fresh heap
// buffer of capacity max(minCap, 2 * inline capacity), relocating all
// elements by ownership transfer. Runs at most once per bank.
func (v *Vec[E]) promote(minCap int) {
	assert(v.state == store.StateInline, "banks: bank promoted twice")
	target, err := store.TargetCapacity(v.inline.Cap(), minCap)
	assert(err == nil, "banks: capacity overflow")
	heap := store.NewHeap[E](target)
	v.inline.Cells().Relocate(heap.Cells(), v.n)
	v.heap = heap
	v.state = store.StateSpilled
	T().Debugf("bank spilled to heap: len=%d capacity=%d", v.n, target)
}

// grow makes room for at least minCap cells in the authoritative buffer,
// promoting first if the bank is still inline. A failure leaves the bank
// unchanged.
func (v *Vec[E]) grow(minCap int) error {
	if minCap < 0 {
		return fmt.Errorf("%w: capacity overflow", ErrAllocationFailure)
	}
	if v.state == store.StateInline {
		v.promote(minCap)
		return nil
	}
	before := v.heap.Cap()
	if err := v.heap.Grow(v.n, minCap); err != nil {
		return fmt.Errorf("%w: %v", ErrAllocationFailure, err)
	}
	T().Debugf("bank heap buffer grown: capacity %d -> %d", before, v.heap.Cap())
	return nil
}

// reserveOne ensures room for one more element. Capacity overflow is not
// recoverable here and panics.
func (v *Vec[T]) reserveOne() {
	err := v.grow(v.n + 1)
	assert(err == nil, "banks: capacity overflow")
}

// Reserve ensures capacity for at least additional more elements, promoting
// or growing as needed. Panics if the resulting capacity cannot be
// represented; see TryReserve for the fallible variant.
func (v *Vec[T]) Reserve(additional int) {
	err := v.TryReserve(additional)
	assert(err == nil, "banks: capacity overflow")
}

// TryReserve ensures capacity for at least additional more elements.
// Returns ErrAllocationFailure if the resulting capacity cannot be
// represented, with the bank unchanged. Reservation may allocate more than
// requested; see ReserveExact.
func (v *Vec[T]) TryReserve(additional int) error {
	if additional <= 0 {
		return nil
	}
	needed := v.n + additional
	if needed < 0 {
		return fmt.Errorf("%w: capacity overflow", ErrAllocationFailure)
	}
	if needed <= v.Cap() {
		return nil
	}
	return v.grow(needed)
}

// ReserveExact ensures capacity for exactly additional more elements,
// without the speculative doubling of Reserve. Panics on capacity overflow.
func (v *Vec[T]) ReserveExact(additional int) {
	if additional <= 0 {
		return
	}
	needed := v.n + additional
	assert(needed >= 0, "banks: capacity overflow")
	if needed <= v.Cap() {
		return
	}
	if v.state == store.StateInline {
		v.promote(needed)
		return
	}
	err := v.heap.GrowExact(v.n, needed)
	assert(err == nil, "banks: capacity overflow")
}

// At returns the element at index.
func (v *Vec[T]) At(index int) (T, error) {
	var none T
	if index < 0 || index >= v.n {
		return none, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, v.n)
	}
	return v.cells().Get(index), nil
}

// Set overwrites the element at index.
func (v *Vec[T]) Set(index int, value T) error {
	if index < 0 || index >= v.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, v.n)
	}
	v.cells().Set(index, value)
	return nil
}

// Push appends value to the back of the bank, promoting or growing the
// storage first if the bank is at capacity.
func (v *Vec[T]) Push(value T) {
	if v.n == v.Cap() {
		v.reserveOne()
	}
	cells := v.cells()
	cells.Set(v.n, value)
	v.n++
}

// Pop removes and returns the last element of the bank (LIFO). The second
// return value is false if the bank is empty. Pop never demotes the storage.
func (v *Vec[T]) Pop() (T, bool) {
	if v.n == 0 {
		var none T
		return none, false
	}
	value := v.cells().Take(v.n - 1)
	v.n--
	return value, true
}

// Insert places value at position index, shifting the elements [index, Len())
// up by one and growing the storage first if needed. Returns
// ErrIndexOutOfBounds, with the bank unchanged and not promoted, if
// index > Len().
func (v *Vec[T]) Insert(index int, value T) error {
	if index < 0 || index > v.n {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfBounds, index, v.n)
	}
	if v.n == v.Cap() {
		v.reserveOne()
	}
	cells := v.cells()
	cells.ShiftUp(index, v.n-index)
	cells.Set(index, value)
	v.n++
	return nil
}

// Remove takes out and returns the element at index, shifting the elements
// [index+1, Len()) down by one. The relative order of the remaining elements
// is preserved; see SwapRemove for the O(1) alternative.
func (v *Vec[T]) Remove(index int) (T, error) {
	var none T
	if index < 0 || index >= v.n {
		return none, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, v.n)
	}
	cells := v.cells()
	removed := cells.Take(index)
	cells.ShiftDown(index, v.n-1-index)
	v.n--
	return removed, nil
}

// SwapRemove takes out and returns the element at index, moving the last
// element into the vacated position. This does not preserve the order of the
// remaining elements but runs in constant time.
func (v *Vec[T]) SwapRemove(index int) (T, error) {
	var none T
	if index < 0 || index >= v.n {
		return none, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, v.n)
	}
	cells := v.cells()
	last := v.n - 1
	removed := cells.Take(index)
	if index != last {
		cells.Set(index, cells.Take(last))
	}
	v.n--
	return removed, nil
}

// Extend appends items in order, reserving room for all of them up front.
func (v *Vec[T]) Extend(items ...T) {
	v.Reserve(len(items))
	for _, item := range items {
		v.Push(item)
	}
}

// Truncate drops all elements from position n on, clearing the vacated
// cells. The storage is neither shrunk nor demoted.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.n {
		return
	}
	v.cells().ClearRange(n, v.n)
	v.n = n
}

// Clear removes all elements from the bank. Capacity and storage state are
// unaffected.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Slice returns a view of the bank's elements. The slice shares storage with
// the bank and is only valid until the next mutating operation; use
// slices.Clone for a detached copy.
func (v *Vec[T]) Slice() []T {
	return v.cells()[:v.n]
}
