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

// Arr is a bounded bank: a sequence container with a capacity that is fixed
// when the bank is created and can never be exceeded. Its storage cells are
// allocated once, with the bank; no operation on an Arr ever touches the
// allocator again.
//
// The zero value of Arr is a valid bank of capacity 0. Use NewArr to obtain
// a bank with room for elements.
//
// Exactly the cells at positions [0, Len()) hold elements; a cell leaving
// that range is cleared so it does not retain its element.
type Arr[T any] struct {
	buf store.Inline[T]
	n   int
}

// NewArr creates an empty bounded bank with the given fixed capacity.
func NewArr[T any](capacity int) *Arr[T] {
	assert(capacity >= 0, "banks: capacity must not be negative")
	return &Arr[T]{buf: store.NewInline[T](capacity)}
}

// ArrOf creates a bounded bank with the given capacity, holding items in
// order. The item count must not exceed the capacity.
func ArrOf[T any](capacity int, items ...T) *Arr[T] {
	assert(len(items) <= capacity, "banks: item count exceeds bank capacity")
	bank := NewArr[T](capacity)
	for i, item := range items {
		bank.buf.Set(i, item)
	}
	bank.n = len(items)
	return bank
}

// ArrFromSlice creates a bounded bank with the given capacity from a plain
// slice, copying the elements. Returns ErrCapacityExceeded if the slice is
// longer than the capacity.
func ArrFromSlice[T any](capacity int, items []T) (*Arr[T], error) {
	if len(items) > capacity {
		return nil, fmt.Errorf("%w: %d items for capacity %d",
			ErrCapacityExceeded, len(items), capacity)
	}
	return ArrOf(capacity, items...), nil
}

// Len returns the number of elements in the bank.
func (b *Arr[T]) Len() int {
	return b.n
}

// Cap returns the fixed capacity of the bank.
func (b *Arr[T]) Cap() int {
	return b.buf.Cap()
}

// At returns the element at index.
func (b *Arr[T]) At(index int) (T, error) {
	var none T
	if index < 0 || index >= b.n {
		return none, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, b.n)
	}
	return b.buf.Get(index), nil
}

// Set overwrites the element at index.
func (b *Arr[T]) Set(index int, value T) error {
	if index < 0 || index >= b.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, b.n)
	}
	b.buf.Set(index, value)
	return nil
}

// Push appends value to the back of the bank. Returns ErrCapacityExceeded,
// with the bank unchanged, if the bank is full.
func (b *Arr[T]) Push(value T) error {
	if b.n == b.buf.Cap() {
		return ErrCapacityExceeded
	}
	b.buf.Set(b.n, value)
	b.n++
	return nil
}

// Pop removes and returns the last element of the bank (LIFO). The second
// return value is false if the bank is empty.
func (b *Arr[T]) Pop() (T, bool) {
	if b.n == 0 {
		var none T
		return none, false
	}
	value := b.buf.Take(b.n - 1)
	b.n--
	return value, true
}

// Insert places value at position index, shifting the elements [index, Len())
// up by one. Returns ErrIndexOutOfBounds if index > Len(), and
// ErrCapacityExceeded if the bank is full; either way the bank is unchanged.
func (b *Arr[T]) Insert(index int, value T) error {
	if index < 0 || index > b.n {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfBounds, index, b.n)
	}
	if b.n == b.buf.Cap() {
		return ErrCapacityExceeded
	}
	cells := b.buf.Cells()
	cells.ShiftUp(index, b.n-index)
	cells.Set(index, value)
	b.n++
	return nil
}

// Remove takes out and returns the element at index, shifting the elements
// [index+1, Len()) down by one. The relative order of the remaining elements
// is preserved; cost is proportional to Len()-index. See SwapRemove for the
// O(1) alternative.
func (b *Arr[T]) Remove(index int) (T, error) {
	var none T
	if index < 0 || index >= b.n {
		return none, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, b.n)
	}
	cells := b.buf.Cells()
	removed := cells.Take(index)
	cells.ShiftDown(index, b.n-1-index)
	b.n--
	return removed, nil
}

// SwapRemove takes out and returns the element at index, moving the last
// element into the vacated position. This does not preserve the order of the
// remaining elements but runs in constant time.
func (b *Arr[T]) SwapRemove(index int) (T, error) {
	var none T
	if index < 0 || index >= b.n {
		return none, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, b.n)
	}
	cells := b.buf.Cells()
	last := b.n - 1
	removed := cells.Take(index)
	if index != last {
		cells.Set(index, cells.Take(last))
	}
	b.n--
	return removed, nil
}

// Extend appends items in order. If an item would exceed the capacity the
// append stops there: the successfully appended prefix stays in place and
// ErrCapacityExceeded is returned. This partial-append behavior is the
// documented contract, not a rollback failure.
func (b *Arr[T]) Extend(items ...T) error {
	for _, item := range items {
		if err := b.Push(item); err != nil {
			return err
		}
	}
	return nil
}

// Truncate drops all elements from position n on, clearing the vacated
// cells. Truncating to the current length or beyond is a no-op.
func (b *Arr[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= b.n {
		return
	}
	b.buf.Cells().ClearRange(n, b.n)
	b.n = n
}

// Clear removes all elements from the bank. The capacity is unaffected.
func (b *Arr[T]) Clear() {
	b.Truncate(0)
}

// Slice returns a view of the bank's elements. The slice shares storage with
// the bank and is only valid until the next mutating operation; use
// slices.Clone for a detached copy.
func (b *Arr[T]) Slice() []T {
	return b.buf.Cells()[:b.n]
}
