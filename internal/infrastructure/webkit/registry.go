package webkit

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/bnema/websurface/internal/application/port"
)

// registry tracks live browsers by id.
type registry struct {
	counter atomic.Uint64

	mu   sync.RWMutex
	byID map[port.BrowserID]*Browser
}

func newRegistry() *registry {
	return &registry{byID: make(map[port.BrowserID]*Browser)}
}

func (r *registry) nextID() port.BrowserID {
	return port.BrowserID(r.counter.Add(1))
}

func (r *registry) register(b *Browser) {
	r.mu.Lock()
	r.byID[b.id] = b
	r.mu.Unlock()
}

func (r *registry) unregister(b *Browser) {
	r.mu.Lock()
	delete(r.byID, b.id)
	r.mu.Unlock()
}

func (r *registry) lookup(id port.BrowserID) *Browser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id]
}

// all returns the live browsers in creation order.
func (r *registry) all() []*Browser {
	r.mu.RLock()
	out := make([]*Browser, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
