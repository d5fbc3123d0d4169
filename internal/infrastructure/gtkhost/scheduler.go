package gtkhost

import (
	"sync"
	"time"

	"github.com/jwijenbergh/puregotk/v4/glib"

	"github.com/bnema/websurface/internal/application/port"
)

// Scheduler runs work on the GLib main loop.
type Scheduler struct {
	mu       sync.Mutex
	next     uint64
	retained map[uint64]*glib.SourceFunc
}

var _ port.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a main loop scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{retained: make(map[uint64]*glib.SourceFunc)}
}

func (s *Scheduler) retain(cb *glib.SourceFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.retained[s.next] = cb
	return s.next
}

func (s *Scheduler) release(key uint64) {
	s.mu.Lock()
	delete(s.retained, key)
	s.mu.Unlock()
}

// CallAfter runs fn on the next idle turn of the main loop.
func (s *Scheduler) CallAfter(fn func()) {
	if fn == nil {
		return
	}
	var key uint64
	cb := glib.SourceFunc(func(_ uintptr) bool {
		s.release(key)
		fn()
		return false
	})
	key = s.retain(&cb)
	glib.IdleAdd(&cb, 0)
}

// Every runs fn every interval until fn returns false or cancel is called.
func (s *Scheduler) Every(interval time.Duration, fn func() bool) func() {
	ms := uint(interval / time.Millisecond)
	if ms == 0 {
		ms = 1
	}

	var (
		once   sync.Once
		key    uint64
		source uint
		done   bool
	)
	cb := glib.SourceFunc(func(_ uintptr) bool {
		if done {
			return false
		}
		if fn() {
			return true
		}
		done = true
		s.release(key)
		return false
	})
	key = s.retain(&cb)
	source = glib.TimeoutAdd(ms, &cb, 0)

	return func() {
		once.Do(func() {
			if done {
				return
			}
			done = true
			s.release(key)
			glib.SourceRemove(source)
		})
	}
}

// Retained returns the number of callbacks waiting to run.
func (s *Scheduler) Retained() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.retained)
}
