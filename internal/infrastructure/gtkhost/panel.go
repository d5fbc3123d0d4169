package gtkhost

import (
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/websurface/internal/application/port"
)

// Panel is a native widget floated over the browser at an absolute position.
// It stays hidden until it is first given a size.
type Panel struct {
	widget panelWidget
	x, y   int
	w, h   int
	shown  bool
}

var _ port.NativeWidget = (*Panel)(nil)

// AddPanel floats widget over the browser and returns its handle.
func (c *Container) AddPanel(widget *gtk.Widget) *Panel {
	widget.SetHalign(gtk.AlignStartValue)
	widget.SetValign(gtk.AlignStartValue)
	c.overlay.AddOverlay(widget)
	return newPanel(widget)
}

// RemovePanel takes a panel's widget out of the overlay.
func (c *Container) RemovePanel(widget *gtk.Widget) {
	c.overlay.RemoveOverlay(widget)
}

func newPanel(widget panelWidget) *Panel {
	widget.SetVisible(false)
	return &Panel{widget: widget}
}

// SetPosition moves the panel's top-left corner to x, y in container coordinates.
func (p *Panel) SetPosition(x, y int) {
	p.x, p.y = x, y
	p.widget.SetMarginStart(x)
	p.widget.SetMarginTop(y)
}

// SetSize requests the panel size and shows it.
func (p *Panel) SetSize(w, h int) {
	p.w, p.h = w, h
	p.widget.SetSizeRequest(w, h)
	if !p.shown {
		p.shown = true
		p.widget.SetVisible(true)
	}
}

// Bounds returns the last applied position and size.
func (p *Panel) Bounds() (x, y, w, h int) {
	return p.x, p.y, p.w, p.h
}
