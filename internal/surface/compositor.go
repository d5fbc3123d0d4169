package surface

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// HoleRegion is a rectangle of the page where a native widget shows through.
type HoleRegion struct {
	ID     string
	Bounds entity.Rect
	Widget port.NativeWidget
}

// Active reports whether the region has a non-empty area.
func (r HoleRegion) Active() bool {
	return r.Bounds.IsActive()
}

// Compositor keeps native widgets aligned with the holes reported by the page.
type Compositor struct {
	ctx context.Context

	mu    sync.Mutex
	holes map[string]*HoleRegion
}

// NewCompositor creates an empty compositor.
func NewCompositor(ctx context.Context) *Compositor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Compositor{
		ctx:   logging.WithComponent(ctx, "hole-compositor"),
		holes: make(map[string]*HoleRegion),
	}
}

// RegisterHole inserts or replaces the region id with zero bounds.
func (c *Compositor) RegisterHole(id string, widget port.NativeWidget) {
	c.mu.Lock()
	c.holes[id] = &HoleRegion{ID: id, Widget: widget}
	c.mu.Unlock()
}

// UnregisterHole removes the region. The widget is left where it is.
func (c *Compositor) UnregisterHole(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.holes[id]; !ok {
		return false
	}
	delete(c.holes, id)
	return true
}

// UpdateHoleBounds records new bounds for a registered region and runs a
// full reposition pass. Negative fields are clamped to zero. Unknown ids are
// ignored.
func (c *Compositor) UpdateHoleBounds(id string, bounds entity.Rect) bool {
	bounds = bounds.Clamped()
	c.mu.Lock()
	hole, ok := c.holes[id]
	if ok {
		hole.Bounds = bounds
	}
	c.mu.Unlock()

	if !ok {
		logging.FromContext(c.ctx).Debug().Str("hole_id", id).Msg("bounds for unknown hole ignored")
		return false
	}
	c.RepositionNativePanels()
	return true
}

// HoleBounds returns the last bounds of id, zero for unknown ids.
func (c *Compositor) HoleBounds(id string) entity.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hole, ok := c.holes[id]; ok {
		return hole.Bounds
	}
	return entity.Rect{}
}

// Holes returns a snapshot of every region ordered by id.
func (c *Compositor) Holes() []HoleRegion {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]HoleRegion, 0, len(c.holes))
	for _, h := range c.holes {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RepositionNativePanels moves and resizes the widget of every active region.
// Inactive regions are left untouched. It returns the number of widgets moved.
func (c *Compositor) RepositionNativePanels() int {
	moved := 0
	for _, hole := range c.Holes() {
		if !hole.Active() || hole.Widget == nil {
			continue
		}
		hole.Widget.SetPosition(hole.Bounds.X, hole.Bounds.Y)
		hole.Widget.SetSize(hole.Bounds.W, hole.Bounds.H)
		moved++
	}
	return moved
}
