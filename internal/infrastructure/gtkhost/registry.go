package gtkhost

import "sync"

// Registry maps native handles to the containers that own them.
type Registry struct {
	mu         sync.RWMutex
	containers map[uintptr]*Container
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{containers: make(map[uintptr]*Container)}
}

func (r *Registry) add(handle uintptr, c *Container) {
	if r == nil || handle == 0 {
		return
	}
	r.mu.Lock()
	r.containers[handle] = c
	r.mu.Unlock()
}

func (r *Registry) remove(handle uintptr) {
	if r == nil {
		return
	}
	r.mu.Lock()
	delete(r.containers, handle)
	r.mu.Unlock()
}

// Lookup returns the mapped container behind handle.
func (r *Registry) Lookup(handle uintptr) (*Container, bool) {
	if r == nil || handle == 0 {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.containers[handle]
	return c, ok
}

// Len returns the number of mapped containers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.containers)
}
