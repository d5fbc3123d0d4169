package gtkhost

import (
	"context"
	"sync"

	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// SurfaceTarget receives the container's window notifications.
type SurfaceTarget interface {
	OnWindowRealized()
	OnSize()
	OnSetFocus()
}

// Container is the native window of one surface host: an overlay whose
// main child is the browser widget and whose overlay children are panels.
type Container struct {
	name     string
	ctx      context.Context
	overlay  overlayWidget
	widget   *gtk.Widget
	registry *Registry

	mu       sync.Mutex
	target   SurfaceTarget
	mapped   bool
	handle   uintptr
	lastSize entity.Size
	browser  *gtk.Widget

	// callbacks keeps signal closures reachable while GTK holds them.
	callbacks []interface{}
}

var _ port.HostWindow = (*Container)(nil)

// NewContainer creates a GTK overlay container registered in reg once mapped.
func NewContainer(ctx context.Context, name string, reg *Registry) *Container {
	inner := gtk.NewOverlay()
	inner.SetHexpand(true)
	inner.SetVexpand(true)
	inner.SetVisible(true)
	inner.AddCssClass("websurface-" + name)

	c := newContainer(ctx, name, &gtkOverlay{inner: inner}, reg)
	c.widget = &inner.Widget

	mapCb := func(_ gtk.Widget) { c.handleMap() }
	inner.ConnectMap(&mapCb)
	unmapCb := func(_ gtk.Widget) { c.handleUnmap() }
	inner.ConnectUnmap(&unmapCb)

	tickCb := gtk.TickCallback(func(_ uintptr, _ uintptr, _ uintptr) bool {
		return c.handleTick()
	})
	inner.AddTickCallback(&tickCb, 0, nil)

	focus := gtk.NewEventControllerFocus()
	enterCb := func(_ gtk.EventControllerFocus) { c.handleFocusEnter() }
	focus.ConnectEnter(&enterCb)
	inner.AddController(&focus.EventController)

	c.callbacks = append(c.callbacks, mapCb, unmapCb, tickCb, enterCb)
	return c
}

func newContainer(ctx context.Context, name string, ov overlayWidget, reg *Registry) *Container {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Container{
		name:     name,
		ctx:      logging.WithComponent(ctx, "container-"+name),
		overlay:  ov,
		registry: reg,
	}
}

// Name returns the container name.
func (c *Container) Name() string { return c.name }

// Widget returns the root GTK widget for packing into a window.
func (c *Container) Widget() *gtk.Widget { return c.widget }

// Bind routes window notifications to target.
func (c *Container) Bind(target SurfaceTarget) {
	c.mu.Lock()
	c.target = target
	mapped := c.mapped
	c.mu.Unlock()
	if mapped && target != nil {
		target.OnWindowRealized()
	}
}

// NativeHandle returns the container's handle, or 0 before it is mapped.
func (c *Container) NativeHandle() uintptr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle
}

// ClientSize returns the allocated size of the container.
func (c *Container) ClientSize() entity.Size {
	return c.overlay.AllocatedSize()
}

// AttachBrowser makes widget the main child.
func (c *Container) AttachBrowser(widget *gtk.Widget) {
	c.mu.Lock()
	c.browser = widget
	c.mu.Unlock()
	c.overlay.SetChild(widget)
	logging.FromContext(c.ctx).Debug().Msg("browser attached")
}

// DetachBrowser removes widget if it is the current main child.
func (c *Container) DetachBrowser(widget *gtk.Widget) {
	c.mu.Lock()
	if c.browser == nil || c.browser != widget {
		c.mu.Unlock()
		return
	}
	c.browser = nil
	c.mu.Unlock()
	c.overlay.SetChild(nil)
	logging.FromContext(c.ctx).Debug().Msg("browser detached")
}

// HasBrowser reports whether a browser widget is attached.
func (c *Container) HasBrowser() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.browser != nil
}

func (c *Container) currentTarget() SurfaceTarget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *Container) handleMap() {
	c.mu.Lock()
	if c.mapped {
		c.mu.Unlock()
		return
	}
	c.mapped = true
	c.handle = c.overlay.Pointer()
	handle := c.handle
	target := c.target
	c.mu.Unlock()

	c.registry.add(handle, c)
	logging.FromContext(c.ctx).Debug().Uint64("handle", uint64(handle)).Msg("container mapped")
	if target != nil {
		target.OnWindowRealized()
	}
}

func (c *Container) handleUnmap() {
	c.mu.Lock()
	handle := c.handle
	c.mapped = false
	c.handle = 0
	c.lastSize = entity.Size{}
	c.mu.Unlock()
	c.registry.remove(handle)
}

// handleTick reports allocation changes. GTK 4 has no size-allocate signal,
// so the frame clock polls the allocation.
func (c *Container) handleTick() bool {
	size := c.overlay.AllocatedSize()
	c.mu.Lock()
	changed := c.mapped && size != c.lastSize && size.W > 0 && size.H > 0
	if changed {
		c.lastSize = size
	}
	target := c.target
	c.mu.Unlock()

	if changed && target != nil {
		target.OnSize()
	}
	return true
}

func (c *Container) handleFocusEnter() {
	if target := c.currentTarget(); target != nil {
		target.OnSetFocus()
	}
}
