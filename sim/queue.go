// Implements the WaitQueue, which holds clients waiting for a busy station.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents an unbounded FIFO line of clients waiting for a station's server.
type WaitQueue struct {
	queue []*Client // FIFO queue of clients
}

// Enqueue adds a client to the back of the line.
func (wq *WaitQueue) Enqueue(c *Client) {
	if c == nil {
		panic("Enqueue: client must not be nil")
	}
	wq.queue = append(wq.queue, c)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of clients in the line.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Items returns the line contents in order, front first.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (wq *WaitQueue) Items() []*Client {
	return wq.queue
}

// Dequeue removes the client at the front of the line.
// Returns nil if the line is empty.
func (wq *WaitQueue) Dequeue() *Client {
	if len(wq.queue) == 0 {
		return nil
	}
	c := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return c
}
