/*
Package obs broadcasts storage events of a spillable bank to subscribers.

A Monitor wraps a banks.Vec and forwards mutating operations to it,
publishing an Event for every append, promotion, and heap growth. Any
number of subscribers may listen concurrently; slow subscribers only ever
miss events, they never block the bank.

The monitor shares the bank's concurrency contract: at most one goroutine
may mutate through the monitor at a time.
*/
package obs

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/banks"
)

// Kind discriminates storage events.
type Kind int

const (
	// EventAppend is published after an element has been appended.
	EventAppend Kind = iota
	// EventPromote is published when the bank's storage moves from its
	// inline buffer to the heap. It occurs at most once per bank.
	EventPromote
	// EventGrow is published when the heap buffer is reallocated to a
	// larger capacity.
	EventGrow
)

func (k Kind) String() string {
	switch k {
	case EventAppend:
		return "Append"
	case EventPromote:
		return "Promote"
	case EventGrow:
		return "Grow"
	}
	return "Unknown"
}

// Event describes a storage event, with the bank's length and capacity
// after the event took effect.
type Event struct {
	Kind Kind
	Len  int
	Cap  int
}

// Monitor wraps a spillable bank and broadcasts its storage events.
type Monitor[T any] struct {
	bank *banks.Vec[T]
	cast *caster.Caster // broadcaster for storage events
}

// New creates a monitor for bank. The caller keeps ownership of the bank
// but must route mutations through the monitor for events to be published.
func New[T any](bank *banks.Vec[T]) *Monitor[T] {
	return &Monitor[T]{
		bank: bank,
		cast: caster.New(nil), // we will broadcast events as storage changes
	}
}

// Bank returns the wrapped bank for read access.
func (m *Monitor[T]) Bank() *banks.Vec[T] {
	return m.bank
}

// Subscribe registers a new subscriber channel with the given buffer
// capacity. Events published while the channel is full are dropped for this
// subscriber. Reports false if the monitor has been closed.
func (m *Monitor[T]) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return m.cast.Sub(ctx, capacity)
}

// Close shuts down broadcasting and closes all subscriber channels.
func (m *Monitor[T]) Close() {
	m.cast.Close()
}

// Push appends value to the bank and publishes the resulting events.
func (m *Monitor[T]) Push(value T) {
	capBefore, heapBefore := m.bank.Cap(), m.bank.OnHeap()
	m.bank.Push(value)
	m.publishStorageChange(capBefore, heapBefore)
	m.cast.Pub(Event{Kind: EventAppend, Len: m.bank.Len(), Cap: m.bank.Cap()})
}

// Extend appends items to the bank, publishing events per element.
func (m *Monitor[T]) Extend(items ...T) {
	for _, item := range items {
		m.Push(item)
	}
}

// Reserve grows the bank's capacity for additional elements, publishing a
// promotion or growth event if storage changed.
func (m *Monitor[T]) Reserve(additional int) {
	capBefore, heapBefore := m.bank.Cap(), m.bank.OnHeap()
	m.bank.Reserve(additional)
	m.publishStorageChange(capBefore, heapBefore)
}

func (m *Monitor[T]) publishStorageChange(capBefore int, heapBefore bool) {
	switch {
	case !heapBefore && m.bank.OnHeap():
		m.cast.Pub(Event{Kind: EventPromote, Len: m.bank.Len(), Cap: m.bank.Cap()})
	case m.bank.Cap() != capBefore:
		m.cast.Pub(Event{Kind: EventGrow, Len: m.bank.Len(), Cap: m.bank.Cap()})
	}
}
