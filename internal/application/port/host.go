package port

import (
	"time"

	"github.com/bnema/websurface/internal/domain/entity"
)

// HostWindow is the native container a browser gets attached to.
type HostWindow interface {
	// NativeHandle returns 0 until the platform window exists.
	NativeHandle() uintptr
	// ClientSize returns the current client area size.
	ClientSize() entity.Size
}

// NativeWidget is a native control positioned inside a hole region.
type NativeWidget interface {
	SetPosition(x, y int)
	SetSize(w, h int)
}

// Scheduler runs work on the UI thread's cooperative loop.
type Scheduler interface {
	// CallAfter runs fn after the current event handler returns, before the
	// next platform event is processed.
	CallAfter(fn func())
	// Every runs fn every interval until fn returns false or cancel is called.
	Every(interval time.Duration, fn func() bool) (cancel func())
}
