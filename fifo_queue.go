// fifo_queue.go
package sigsched

import "sync"

const defaultQueueCapacity = 64

// actionQueue is an unbounded first-in–first-out queue of scheduled
// actions, scoped to exactly one scheduler instance.
//
// Actions are dequeued in the exact order they were enqueued. No
// priorities, no aging, no reordering.
//
// All operations are guarded by one mutex so that the was-empty result
// of push is never stale relative to a concurrent push or pop. That
// result is what the background variant uses to decide whether to spawn
// a worker, and a stale read there would be a lost wake-up.
type actionQueue struct {
	mu         sync.Mutex
	buf        []*scheduledAction // circular buffer
	head, tail int                // read/write indices
	size       int                // number of actions currently buffered
	capacity   int
}

// newActionQueue creates a queue with the given initial capacity.
// The buffer grows as needed; push never drops or blocks.
func newActionQueue(cap int) *actionQueue {
	if cap <= 0 {
		cap = defaultQueueCapacity
	}
	return &actionQueue{
		buf:      make([]*scheduledAction, cap),
		capacity: cap,
	}
}

// push appends an action at the tail and reports whether the queue was
// empty immediately before this enqueue. The test and the enqueue are a
// single indivisible step.
func (q *actionQueue) push(a *scheduledAction) (wasEmpty bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	wasEmpty = q.size == 0
	if q.size == q.capacity {
		q.grow()
	}
	q.buf[q.tail] = a
	q.tail++
	if q.tail == q.capacity {
		q.tail = 0
	}
	q.size++
	return wasEmpty
}

// pop removes and returns the oldest action.
//
// If the queue is empty, returns nil and false.
func (q *actionQueue) pop() (*scheduledAction, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 {
		return nil, false
	}
	a := q.buf[q.head]
	q.buf[q.head] = nil // release the reference
	q.head++
	if q.head == q.capacity {
		q.head = 0
	}
	q.size--
	return a, true
}

// Len returns the number of actions currently waiting in the queue.
func (q *actionQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// grow doubles the buffer, unwrapping the circular layout so the oldest
// action lands at index 0. Caller must hold q.mu.
func (q *actionQueue) grow() {
	newCap := q.capacity * 2
	newBuf := make([]*scheduledAction, newCap)

	n := copy(newBuf, q.buf[q.head:])
	copy(newBuf[n:], q.buf[:q.head])

	q.buf = newBuf
	q.head = 0
	q.tail = q.size
	q.capacity = newCap
}
