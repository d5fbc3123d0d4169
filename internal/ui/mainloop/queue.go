package mainloop

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/websurface/internal/application/port"
)

var _ port.Scheduler = (*Queue)(nil)

// Queue is a deterministic port.Scheduler. Nothing runs until the owner
// calls RunIdle or Advance, which makes it the scheduler of choice for tests
// and for headless hosts that pump work from their own loop.
type Queue struct {
	mu     sync.Mutex
	idle   []func()
	timers []*timer
	now    time.Duration
	nextID int
}

type timer struct {
	id       int
	interval time.Duration
	due      time.Duration
	fn       func() bool
	stopped  bool
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// CallAfter queues fn for the next idle turn.
func (q *Queue) CallAfter(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.idle = append(q.idle, fn)
	q.mu.Unlock()
}

// Every registers a repeating task driven by Advance.
func (q *Queue) Every(interval time.Duration, fn func() bool) func() {
	if fn == nil || interval <= 0 {
		return func() {}
	}
	q.mu.Lock()
	q.nextID++
	t := &timer{id: q.nextID, interval: interval, due: q.now + interval, fn: fn}
	q.timers = append(q.timers, t)
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		t.stopped = true
		q.mu.Unlock()
	}
}

// Pending returns the number of queued idle tasks.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.idle)
}

// RunIdle runs queued idle tasks in FIFO order, including tasks queued while
// draining, and returns how many ran.
func (q *Queue) RunIdle() int {
	ran := 0
	for {
		q.mu.Lock()
		if len(q.idle) == 0 {
			q.mu.Unlock()
			return ran
		}
		fn := q.idle[0]
		q.idle = q.idle[1:]
		q.mu.Unlock()

		fn()
		ran++
	}
}

// Advance moves the virtual clock forward, firing due timers in due order.
// Idle work is drained after every timer tick.
func (q *Queue) Advance(d time.Duration) {
	q.mu.Lock()
	target := q.now + d
	q.mu.Unlock()

	for {
		q.mu.Lock()
		t := q.nextDueLocked(target)
		if t == nil {
			q.now = target
			q.mu.Unlock()
			q.RunIdle()
			return
		}
		q.now = t.due
		t.due += t.interval
		q.mu.Unlock()

		if !t.fn() {
			q.mu.Lock()
			t.stopped = true
			q.mu.Unlock()
		}
		q.RunIdle()
	}
}

func (q *Queue) nextDueLocked(limit time.Duration) *timer {
	live := q.timers[:0]
	for _, t := range q.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	q.timers = live
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(live, func(i, j int) bool {
		if live[i].due == live[j].due {
			return live[i].id < live[j].id
		}
		return live[i].due < live[j].due
	})
	if live[0].due > limit {
		return nil
	}
	return live[0]
}
