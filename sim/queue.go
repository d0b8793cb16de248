// Implements the WaitQueue, the scheduler-side collection of requests that a Policy reorders.
// Requests are enqueued on arrival and reordered by SortByPriority.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is an ordered collection of requests owned by a single scheduler loop.
// It is not safe for concurrent mutation.
type WaitQueue struct {
	queue []*Request
}

// Enqueue adds a request to the back of the wait queue.
func (wq *WaitQueue) Enqueue(r *Request) {
	if r == nil {
		panic("Enqueue: req must not be nil")
	}
	wq.queue = append(wq.queue, r)
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

// Len returns the number of requests in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the request at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Request {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// PrependFront inserts a request at the front of the queue.
// Used when a preempted request goes back to the head of the waiting queue.
func (wq *WaitQueue) PrependFront(req *Request) {
	if req == nil {
		panic("PrependFront: req must not be nil")
	}
	wq.queue = append([]*Request{req}, wq.queue...)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT append to or reslice it.
func (wq *WaitQueue) Items() []*Request {
	return wq.queue
}

// SortByPriority reorders the queue by descending p.Score(now, ·), stable on ties.
func (wq *WaitQueue) SortByPriority(p Policy, now float64) {
	wq.queue = Rank(p, now, wq.queue)
}

// DequeueFront removes and returns the highest-ranked request.
// Returns nil if the queue is empty.
func (wq *WaitQueue) DequeueFront() *Request {
	if len(wq.queue) == 0 {
		return nil
	}
	front := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return front
}

// PopBack removes and returns the lowest-ranked request, the preemption
// victim once the queue has been sorted. Returns nil if the queue is empty.
func (wq *WaitQueue) PopBack() *Request {
	n := len(wq.queue)
	if n == 0 {
		return nil
	}
	back := wq.queue[n-1]
	wq.queue[n-1] = nil
	wq.queue = wq.queue[:n-1]
	return back
}
