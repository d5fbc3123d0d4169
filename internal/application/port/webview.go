// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the surface logic to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"

	"github.com/bnema/websurface/internal/domain/entity"
)

// BrowserID uniquely identifies a native browser instance.
type BrowserID uint64

// NativeBrowser is a live engine browser attached to a host window.
// All methods must be called from the UI thread.
type NativeBrowser interface {
	ID() BrowserID

	// LoadURL navigates the main frame.
	LoadURL(url string)
	// ExecuteJavaScript injects code into the main frame. scriptURL is used for
	// error reporting only. Fire-and-forget.
	ExecuteJavaScript(code, scriptURL string)
	// MainFrameURL returns the URL currently committed in the main frame.
	MainFrameURL() string

	// WasResized tells the engine the host area changed size.
	WasResized()
	// NotifyMoveOrResizeStarted is the macOS flavour of resize notification.
	NotifyMoveOrResizeStarted()
	// SetBounds moves the browser's own native window inside its parent.
	SetBounds(bounds entity.Rect)
	// SetFocus gives or removes keyboard focus.
	SetFocus(focus bool)

	// CloseBrowser asks the engine to close the browser. Completion is
	// signalled asynchronously with a BeforeClose event.
	CloseBrowser(force bool)

	// SendProcessMessage delivers a message to the renderer side of the browser.
	SendProcessMessage(msg ProcessMessage)
}

// SameBrowser reports whether a and b refer to the same native browser.
func SameBrowser(a, b NativeBrowser) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}

// WindowInfo describes where a new browser is attached.
type WindowInfo struct {
	// ParentHandle is the host window's native handle.
	ParentHandle uintptr
	// Bounds is the initial browser rectangle inside the parent.
	Bounds entity.Rect
}

// BrowserSettings holds per-browser creation settings.
type BrowserSettings struct {
	// BackgroundColor is ARGB. Zero alpha requests a transparent page background.
	BackgroundColor uint32
}

// ARGB packs a colour the way BrowserSettings expects it.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// BrowserClient receives every lifecycle, load and process-message event of
// the browsers it created.
type BrowserClient interface {
	HandleEvent(ev BrowserEvent) bool
}

// BrowserFactory creates native browsers as children of host windows.
type BrowserFactory interface {
	// CreateBrowser starts asynchronous creation. The client receives an
	// AfterCreated event once the browser exists.
	CreateBrowser(ctx context.Context, info WindowInfo, client BrowserClient, url string, settings BrowserSettings) error
}
