// Package gtkhost hosts web surfaces in GTK 4 widgets.
package gtkhost

import (
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/websurface/internal/domain/entity"
)

// overlayWidget is the part of gtk.Overlay a Container drives.
type overlayWidget interface {
	SetChild(w *gtk.Widget)
	AddOverlay(w *gtk.Widget)
	RemoveOverlay(w *gtk.Widget)
	Pointer() uintptr
	AllocatedSize() entity.Size
}

// panelWidget is the part of gtk.Widget a Panel drives.
type panelWidget interface {
	SetMarginStart(margin int)
	SetMarginTop(margin int)
	SetSizeRequest(width, height int)
	SetVisible(visible bool)
}

var _ panelWidget = (*gtk.Widget)(nil)

type gtkOverlay struct {
	inner *gtk.Overlay
}

func (o *gtkOverlay) SetChild(w *gtk.Widget)      { o.inner.SetChild(w) }
func (o *gtkOverlay) AddOverlay(w *gtk.Widget)    { o.inner.AddOverlay(w) }
func (o *gtkOverlay) RemoveOverlay(w *gtk.Widget) { o.inner.RemoveOverlay(w) }
func (o *gtkOverlay) Pointer() uintptr            { return o.inner.GoPointer() }

func (o *gtkOverlay) AllocatedSize() entity.Size {
	return entity.Size{W: o.inner.GetAllocatedWidth(), H: o.inner.GetAllocatedHeight()}
}
