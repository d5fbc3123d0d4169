package bridge

import (
	"context"
	"sync"
)

// Pending is the reply token of an async command. It resolves at most once
// and is cancelled when its query is cancelled.
type Pending struct {
	mu       sync.Mutex
	done     bool
	cb       Callback
	release  func()
	ctx      context.Context
	stop     context.CancelFunc
	canceled bool
}

func newPending(parent context.Context, cb Callback, release func()) *Pending {
	ctx, stop := context.WithCancel(parent)
	return &Pending{cb: cb, release: release, ctx: ctx, stop: stop}
}

// Context is done once the query is answered or cancelled.
func (p *Pending) Context() context.Context {
	return p.ctx
}

// Resolve answers with a success response. It returns false if the query was
// already answered or cancelled.
func (p *Pending) Resolve(response string) bool {
	return p.finish(func(cb Callback) { cb.Success(response) })
}

// Reject answers with a failure.
func (p *Pending) Reject(code int, message string) bool {
	return p.finish(func(cb Callback) { cb.Failure(code, message) })
}

// Canceled reports whether the query was cancelled before it was answered.
func (p *Pending) Canceled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.canceled
}

func (p *Pending) finish(answer func(Callback)) bool {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		return false
	}
	p.done = true
	cb := p.cb
	p.cb = nil
	p.mu.Unlock()

	if p.release != nil {
		p.release()
	}
	p.stop()
	if cb != nil {
		answer(cb)
	}
	return true
}

func (p *Pending) cancel() {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		return
	}
	p.done = true
	p.canceled = true
	p.cb = nil
	p.mu.Unlock()

	p.stop()
}
