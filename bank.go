package banks

import "slices"

// Bank is the read surface common to both container types.
type Bank[T any] interface {
	// Len returns the number of elements in the bank.
	Len() int
	// Cap returns the current capacity of the bank.
	Cap() int
	// Slice returns a view of the bank's elements, valid until the next
	// mutating operation.
	Slice() []T
}

// MutableBank is a Bank that supports constant-time removal by position.
// Both *Arr and *Vec implement it.
type MutableBank[T any] interface {
	Bank[T]
	// SwapRemove removes the element at index, filling the vacated position
	// with the last element.
	SwapRemove(index int) (T, error)
}

// Equal reports whether the bank's elements match other, element-wise and in
// order. Banks of differing length are never equal; capacities do not enter
// the comparison.
func Equal[T comparable](bank Bank[T], other []T) bool {
	return slices.Equal(bank.Slice(), other)
}

// EqualFunc is like Equal but compares elements with eq, allowing
// comparisons across element types.
func EqualFunc[T, U any](bank Bank[T], other []U, eq func(T, U) bool) bool {
	return slices.EqualFunc(bank.Slice(), other, eq)
}

// RemoveItem scans the bank for the first element equal to target and, if
// found, removes and returns it. Removal uses swap-removal, so the order of
// the remaining elements is not preserved; the scan is linear, the removal
// constant-time.
func RemoveItem[T comparable](bank MutableBank[T], target T) (T, bool) {
	return RemoveItemFunc(bank, func(item T) bool { return item == target })
}

// RemoveItemFunc is like RemoveItem but matches elements with a predicate.
func RemoveItemFunc[T any](bank MutableBank[T], match func(T) bool) (T, bool) {
	for i, item := range bank.Slice() {
		if match(item) {
			removed, err := bank.SwapRemove(i)
			assert(err == nil, "banks: swap-removal of scanned position failed")
			return removed, true
		}
	}
	var none T
	return none, false
}
