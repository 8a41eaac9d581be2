package obs

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/banks"
)

func collectEvents(t *testing.T, ch <-chan interface{}, n int) []Event {
	t.Helper()
	var events []Event
	timeout := time.After(2 * time.Second)
	for len(events) < n {
		select {
		case msg, ok := <-ch:
			if !ok {
				return events
			}
			event, isEvent := msg.(Event)
			if !isEvent {
				t.Fatalf("unexpected message type %T", msg)
			}
			events = append(events, event)
		case <-timeout:
			t.Fatalf("timed out waiting for events, have %v", events)
		}
	}
	return events
}

func TestMonitorPublishesAppendEvents(t *testing.T) {
	monitor := New(banks.NewVec[int](4))
	defer monitor.Close()
	ch, ok := monitor.Subscribe(context.Background(), 16)
	if !ok {
		t.Fatal("expected subscription to succeed")
	}
	monitor.Push(1)
	monitor.Push(2)
	events := collectEvents(t, ch, 2)
	for i, event := range events {
		if event.Kind != EventAppend {
			t.Errorf("expected append event, got %s", event.Kind)
		}
		if event.Len != i+1 {
			t.Errorf("expected len %d after append, got %d", i+1, event.Len)
		}
	}
}

func TestMonitorPublishesPromotion(t *testing.T) {
	monitor := New(banks.NewVec[int](2))
	defer monitor.Close()
	ch, ok := monitor.Subscribe(context.Background(), 16)
	if !ok {
		t.Fatal("expected subscription to succeed")
	}
	monitor.Extend(1, 2, 3)
	// Appends for the inline pushes, then promotion, then the final append.
	events := collectEvents(t, ch, 4)
	kinds := make([]Kind, len(events))
	for i, event := range events {
		kinds[i] = event.Kind
	}
	want := []Kind{EventAppend, EventAppend, EventPromote, EventAppend}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected event sequence %v, got %v", want, kinds)
		}
	}
	if !monitor.Bank().OnHeap() {
		t.Errorf("expected wrapped bank on heap")
	}
}

func TestMonitorPublishesGrowth(t *testing.T) {
	monitor := New(banks.NewVec[int](1))
	defer monitor.Close()
	ch, ok := monitor.Subscribe(context.Background(), 32)
	if !ok {
		t.Fatal("expected subscription to succeed")
	}
	monitor.Reserve(8) // promotes
	monitor.Reserve(20) // grows the heap buffer
	events := collectEvents(t, ch, 2)
	if events[0].Kind != EventPromote {
		t.Errorf("expected promotion event first, got %s", events[0].Kind)
	}
	if events[1].Kind != EventGrow {
		t.Errorf("expected growth event, got %s", events[1].Kind)
	}
	if events[1].Cap < 20 {
		t.Errorf("expected grown capacity of at least 20, got %d", events[1].Cap)
	}
}
