package sim

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned when popping from an EventQueue with no events.
var ErrEmptyQueue = errors.New("event queue is empty")

// eventHeap implements heap.Interface with deterministic ordering.
// Order by: timestamp → insertion sequence.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = Event{} // drop the client reference
	*h = old[0 : n-1]
	return item
}

// EventQueue is a min-priority queue of events ordered by timestamp.
// Events with equal timestamps are returned in insertion order.
type EventQueue struct {
	events  eventHeap
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make(eventHeap, 0)}
	heap.Init(&q.events)
	return q
}

// Push adds an event to the queue in O(log n).
func (q *EventQueue) Push(e Event) {
	e.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.events, e)
}

// Pop removes and returns the earliest event in O(log n).
func (q *EventQueue) Pop() (Event, error) {
	if q.events.Len() == 0 {
		return Event{}, ErrEmptyQueue
	}
	return heap.Pop(&q.events).(Event), nil
}

// Peek returns the earliest event without removing it.
func (q *EventQueue) Peek() (Event, bool) {
	if q.events.Len() == 0 {
		return Event{}, false
	}
	return q.events[0], true
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return q.events.Len()
}
