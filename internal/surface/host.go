// Package surface hosts web content panels inside native windows.
package surface

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/browser"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// ErrNoBrowser is returned when an operation needs a live browser.
var ErrNoBrowser = errors.New("no browser attached")

// HostOptions wires a Host to the platform.
type HostOptions struct {
	Window    port.HostWindow
	Factory   port.BrowserFactory
	Scheduler port.Scheduler

	ResourcesDir string
	Router       bridge.RouterConfig
	Settings     port.BrowserSettings
}

// Host embeds one browser into a native window and owns its command bridge.
type Host struct {
	ctx  context.Context
	name string

	window    port.HostWindow
	factory   port.BrowserFactory
	scheduler port.Scheduler
	resources string
	settings  port.BrowserSettings

	router  *bridge.Router
	bridge  *bridge.Bridge
	handler *browser.Handler

	mu              sync.Mutex
	pendingURL      string
	createScheduled bool
	createRequested bool
	destroyed       bool
	onStateChanged  func()
}

// NewHost creates a host. No browser exists until the window has a native
// handle and a URL was requested.
func NewHost(ctx context.Context, name string, opts HostOptions) *Host {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithComponent(ctx, "surface."+name)

	h := &Host{
		ctx:       ctx,
		name:      name,
		window:    opts.Window,
		factory:   opts.Factory,
		scheduler: opts.Scheduler,
		resources: opts.ResourcesDir,
		settings:  opts.Settings,
		router:    bridge.NewRouter(ctx, opts.Router),
		bridge:    bridge.New(ctx),
	}
	h.router.AddHandler(h.bridge, false)
	h.handler = browser.NewHandler(ctx, h.router)
	h.handler.SetStateChangedCallback(h.handlerStateChanged)
	return h
}

// Name returns the host name used in logs.
func (h *Host) Name() string { return h.name }

// Bridge returns the command bridge of this host.
func (h *Host) Bridge() *bridge.Bridge { return h.bridge }

// Router returns the message router of this host.
func (h *Host) Router() *bridge.Router { return h.router }

// Handler returns the lifecycle handler of this host.
func (h *Host) Handler() *browser.Handler { return h.handler }

// Browser returns the attached browser or nil.
func (h *Host) Browser() port.NativeBrowser { return h.handler.Browser() }

// HasBrowser reports whether a browser is attached.
func (h *Host) HasBrowser() bool { return h.handler.Browser() != nil }

// SetStateChangedCallback installs fn, run when the browser is created and
// after each completed load.
func (h *Host) SetStateChangedCallback(fn func()) {
	h.mu.Lock()
	h.onStateChanged = fn
	h.mu.Unlock()
}

// ResolveURL applies URL normalization against the host resources directory.
func (h *Host) ResolveURL(url string) string {
	return ResolveURL(h.resources, url)
}

// PendingURL returns the URL waiting for browser creation.
func (h *Host) PendingURL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pendingURL
}

// LoadURL navigates the browser, or records url and schedules creation when
// no browser exists yet. The last URL requested before creation wins.
func (h *Host) LoadURL(url string) {
	resolved := h.ResolveURL(url)

	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	if b := h.handler.Browser(); b != nil {
		logging.FromContext(h.ctx).Debug().Str("url", resolved).Msg("navigating")
		b.LoadURL(resolved)
		return
	}

	h.mu.Lock()
	h.pendingURL = resolved
	schedule := !h.createScheduled && !h.createRequested
	if schedule {
		h.createScheduled = true
	}
	h.mu.Unlock()

	if schedule {
		h.scheduler.CallAfter(func() {
			h.mu.Lock()
			h.createScheduled = false
			h.mu.Unlock()
			h.CreateBrowser()
		})
	}
}

// CreateBrowser asks the factory for the browser, navigating to the pending
// URL. It does nothing once creation was requested, and returns false while
// the window has no native handle.
func (h *Host) CreateBrowser() bool {
	log := logging.FromContext(h.ctx)

	h.mu.Lock()
	if h.createRequested || h.destroyed {
		h.mu.Unlock()
		return false
	}
	handle := h.window.NativeHandle()
	if handle == 0 {
		h.mu.Unlock()
		log.Debug().Msg("native window not realized, browser creation deferred")
		return false
	}
	url := h.pendingURL
	h.pendingURL = ""
	h.createRequested = true
	h.mu.Unlock()

	size := h.window.ClientSize()
	info := port.WindowInfo{
		ParentHandle: handle,
		Bounds:       entity.Rect{W: size.W, H: size.H},
	}
	if err := h.factory.CreateBrowser(h.ctx, info, h.handler, url, h.settings); err != nil {
		log.Error().Err(err).Str("url", url).Msg("browser creation failed")
		h.mu.Lock()
		h.createRequested = false
		if h.pendingURL == "" {
			h.pendingURL = url
		}
		h.mu.Unlock()
		return false
	}
	log.Debug().Str("url", url).Int("width", size.W).Int("height", size.H).Msg("browser creation requested")
	return true
}

// OnWindowRealized completes a creation deferred for lack of a native handle.
func (h *Host) OnWindowRealized() {
	h.mu.Lock()
	waiting := !h.createRequested && !h.createScheduled && h.pendingURL != ""
	h.mu.Unlock()
	if waiting {
		h.CreateBrowser()
	}
}

func (h *Host) handlerStateChanged() {
	b := h.handler.Browser()
	if b == nil {
		return
	}

	h.mu.Lock()
	destroyed := h.destroyed
	flush := ""
	if h.handler.State() == entity.BrowserCreated {
		flush = h.pendingURL
		h.pendingURL = ""
	}
	fn := h.onStateChanged
	h.mu.Unlock()

	if destroyed {
		h.handler.Close(true)
		return
	}
	if flush != "" {
		b.LoadURL(flush)
	}
	if fn != nil {
		fn()
	}
}

// ExecuteJavaScript runs code in the main frame.
func (h *Host) ExecuteJavaScript(code string) error {
	b := h.handler.Browser()
	if b == nil {
		return ErrNoBrowser
	}
	b.ExecuteJavaScript(code, b.MainFrameURL())
	return nil
}

// UpdateState pushes a serialized state snapshot to the page.
func (h *Host) UpdateState(stateJSON string) error {
	return h.ExecuteJavaScript(bridge.StateScript(stateJSON))
}

// OnSize propagates a host resize to the browser.
func (h *Host) OnSize() {
	b := h.handler.Browser()
	if b == nil {
		return
	}
	resizeBrowser(b, h.window.ClientSize())
}

// OnSetFocus gives the browser keyboard focus.
func (h *Host) OnSetFocus() {
	if b := h.handler.Browser(); b != nil {
		b.SetFocus(true)
	}
}

// Destroy closes the browser before the native window goes away. A browser
// still being created is closed as soon as it appears.
func (h *Host) Destroy() {
	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return
	}
	h.destroyed = true
	h.pendingURL = ""
	h.mu.Unlock()

	if h.handler.Close(true) {
		logging.FromContext(h.ctx).Debug().Msg("browser close requested")
	}
}
