package audio

import "sync/atomic"

// ----- Update Queue ----- //

// Queue carries Updates from any number of control goroutines to the single
// render goroutine. Send never blocks and never fails for capacity; TryRecv
// never waits. Producers allocate one node per message, the consumer allocates
// nothing.
type Queue struct {
	head   atomic.Pointer[queueNode] // last pushed, shared by producers
	tail   *queueNode                // consumer only
	closed atomic.Bool
}

type queueNode struct {
	next   atomic.Pointer[queueNode]
	update Update
}

func NewQueue() *Queue {
	stub := &queueNode{}
	q := &Queue{tail: stub}
	q.head.Store(stub)
	return q
}

// Send enqueues u. It returns ErrQueueClosed once the consumer has gone away.
func (q *Queue) Send(u Update) error {
	if q.closed.Load() {
		return ErrQueueClosed
	}
	n := &queueNode{update: u}
	prev := q.head.Swap(n)
	// Between the swap and this store the consumer sees the queue as ending at
	// prev; n becomes visible on its next attempt.
	prev.next.Store(n)
	return nil
}

// TryRecv pops the oldest update if one is available. Only the consumer may
// call it.
func (q *Queue) TryRecv() (Update, bool) {
	next := q.tail.next.Load()
	if next == nil {
		return Update{}, false
	}
	q.tail = next
	return next.update, true
}

// Close marks the consumer as stopped. Later sends report ErrQueueClosed.
func (q *Queue) Close() {
	q.closed.Store(true)
}

func (q *Queue) Closed() bool {
	return q.closed.Load()
}
