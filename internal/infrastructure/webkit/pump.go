package webkit

import "sync"

// workQueue holds engine work deferred to the next message pump.
type workQueue struct {
	mu    sync.Mutex
	items []func()
}

func (q *workQueue) push(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, fn)
	q.mu.Unlock()
}

// drain runs queued work in FIFO order, including work queued while draining.
// It returns the number of functions run.
func (q *workQueue) drain() int {
	n := 0
	for {
		q.mu.Lock()
		items := q.items
		q.items = nil
		q.mu.Unlock()
		if len(items) == 0 {
			return n
		}
		for _, fn := range items {
			fn()
			n++
		}
	}
}

func (q *workQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
