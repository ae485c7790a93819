package sim

import (
	"testing"
)

func TestWaitQueue_Dequeue_FIFOOrder(t *testing.T) {
	// GIVEN clients enqueued as 1, 2, 3
	wq := &WaitQueue{}
	for id := int64(1); id <= 3; id++ {
		wq.Enqueue(&Client{ID: id})
	}

	// WHEN all are dequeued
	ids := make([]int64, 0, 3)
	for wq.Len() > 0 {
		ids = append(ids, wq.Dequeue().ID)
	}

	// THEN they leave in arrival order
	want := []int64{1, 2, 3}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("Dequeue order[%d]: got %d, want %d", i, id, want[i])
		}
	}
	if wq.Dequeue() != nil {
		t.Error("Dequeue on empty queue: want nil")
	}
}

func TestWaitQueue_Enqueue_NilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil client")
		}
	}()
	(&WaitQueue{}).Enqueue(nil)
}

func TestWaitQueue_String(t *testing.T) {
	wq := &WaitQueue{}
	if got := wq.String(); got != "[]" {
		t.Errorf("String() on empty queue = %q, want []", got)
	}
	wq.Enqueue(&Client{ID: 1, ArrivalTime: 10, Transactions: 3})
	want := "[Client: (ID: 1, Arrival: 10, Transactions: 3)]"
	if got := wq.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
