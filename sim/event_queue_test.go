package sim

import (
	"errors"
	"testing"
)

func TestEventQueue_Pop_Empty_ReturnsErrEmptyQueue(t *testing.T) {
	q := NewEventQueue()
	if _, err := q.Pop(); !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("Pop on empty queue: got err %v, want ErrEmptyQueue", err)
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue: want ok=false")
	}
}

func TestEventQueue_OrdersByTimestamp(t *testing.T) {
	// GIVEN events pushed out of order
	q := NewEventQueue()
	for _, ts := range []int64{50, 10, 40, 20, 30} {
		q.Push(Event{Time: ts, Kind: ReceptionArrival})
	}

	// WHEN all are popped
	var got []int64
	for q.Len() > 0 {
		ev, err := q.Pop()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, ev.Time)
	}

	// THEN they come out in ascending time
	want := []int64{10, 20, 30, 40, 50}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pop %d: got time %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEventQueue_TiesPopInInsertionOrder(t *testing.T) {
	// GIVEN several events at the same timestamp, interleaved with others
	q := NewEventQueue()
	q.Push(Event{Time: 100, Kind: TellerDeparture, Client: &Client{ID: 1}})
	q.Push(Event{Time: 50, Kind: ReceptionArrival})
	q.Push(Event{Time: 100, Kind: ReceptionArrival})
	q.Push(Event{Time: 100, Kind: TellerArrival, Client: &Client{ID: 2}})

	// WHEN popped
	want := []EventKind{ReceptionArrival, TellerDeparture, ReceptionArrival, TellerArrival}
	for i, kind := range want {
		ev, err := q.Pop()
		if err != nil {
			t.Fatal(err)
		}
		// THEN same-time events keep their scheduling order
		if ev.Kind != kind {
			t.Errorf("pop %d: got %s, want %s", i, ev.Kind, kind)
		}
	}
}

func TestEventQueue_Peek_DoesNotRemove(t *testing.T) {
	q := NewEventQueue()
	q.Push(Event{Time: 5, Kind: ReceptionArrival})
	ev, ok := q.Peek()
	if !ok || ev.Time != 5 {
		t.Errorf("Peek: got (%v, %v), want time 5", ev.Time, ok)
	}
	if q.Len() != 1 {
		t.Errorf("Peek modified length: got %d, want 1", q.Len())
	}
}

func TestEventKind_String(t *testing.T) {
	tests := map[EventKind]string{
		ReceptionArrival:   "ReceptionArrival",
		ReceptionDeparture: "ReceptionDeparture",
		TellerArrival:      "TellerArrival",
		TellerDeparture:    "TellerDeparture",
		EventKind(42):      "Unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
