package termtrack

import (
	"context"
	"sync"
)

// queue is an unbounded FIFO. Items pushed are visible to poll as soon as
// push returns; wait blocks until an item is available
type queue[T any] struct {
	items []T
	mu    sync.Mutex
	// ready holds a token while items is non-empty and nobody has consumed
	// the wakeup
	ready chan struct{}
}

func newQueue[T any]() *queue[T] {
	q := &queue[T]{
		ready: make(chan struct{}, 1),
	}
	return q
}

func (q *queue[T]) push(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, item)
	q.signal()
}

// signal must be called with mu held
func (q *queue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// poll returns the next item without blocking
func (q *queue[T]) poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var item T
	switch len(q.items) {
	case 0:
		return item, false
	case 1:
		item = q.items[0]
		q.items = make([]T, 0)
	default:
		item = q.items[0]
		q.items = q.items[1:]
		// Pass the wakeup on to the next waiter
		q.signal()
	}
	return item, true
}

// wait returns the next item, blocking until one is pushed or ctx is done
func (q *queue[T]) wait(ctx context.Context) (T, error) {
	for {
		if item, ok := q.poll(); ok {
			return item, nil
		}
		select {
		case <-ctx.Done():
			var item T
			return item, ctx.Err()
		case <-q.ready:
		}
	}
}

// len reports the number of queued items
func (q *queue[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
