package banks

import "iter"

// All returns an iterator over index/element pairs of the bank, in position
// order. The bank must not be mutated during iteration.
func (b *Arr[T]) All() iter.Seq2[int, T] {
	return allOf[T](b)
}

// Values returns an iterator over the bank's elements in position order.
func (b *Arr[T]) Values() iter.Seq[T] {
	return valuesOf[T](b)
}

// ExtendSeq appends the elements produced by seq, with the same
// partial-append contract as Extend: on overflow the appended prefix stays
// and ErrCapacityExceeded is returned.
func (b *Arr[T]) ExtendSeq(seq iter.Seq[T]) error {
	for item := range seq {
		if err := b.Push(item); err != nil {
			return err
		}
	}
	return nil
}

// All returns an iterator over index/element pairs of the bank, in position
// order. The bank must not be mutated during iteration.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return allOf[T](v)
}

// Values returns an iterator over the bank's elements in position order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return valuesOf[T](v)
}

// ExtendSeq appends the elements produced by seq, promoting or growing the
// storage as needed.
func (v *Vec[T]) ExtendSeq(seq iter.Seq[T]) {
	for item := range seq {
		v.Push(item)
	}
}

// ArrFromSeq creates a bounded bank with the given capacity from an
// arbitrary element sequence. If the sequence produces more elements than
// the capacity, the filled bank and ErrCapacityExceeded are returned.
func ArrFromSeq[T any](capacity int, seq iter.Seq[T]) (*Arr[T], error) {
	bank := NewArr[T](capacity)
	err := bank.ExtendSeq(seq)
	return bank, err
}

// VecFromSeq creates a spillable bank with the given inline capacity from an
// arbitrary element sequence, promoting as soon as the sequence outgrows the
// inline cells.
func VecFromSeq[T any](inlineCapacity int, seq iter.Seq[T]) *Vec[T] {
	bank := NewVec[T](inlineCapacity)
	bank.ExtendSeq(seq)
	return bank
}

func allOf[T any](bank Bank[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range bank.Slice() {
			if !yield(i, item) {
				return
			}
		}
	}
}

func valuesOf[T any](bank Bank[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range bank.Slice() {
			if !yield(item) {
				return
			}
		}
	}
}
