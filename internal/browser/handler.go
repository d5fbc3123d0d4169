// Package browser tracks the lifecycle of one hosted native browser.
package browser

import (
	"context"
	"sync"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// Endpoint receives the router-relevant events of the owned browser.
type Endpoint interface {
	OnProcessMessage(b port.NativeBrowser, msg port.ProcessMessage) bool
	OnBeforeBrowse(b port.NativeBrowser)
	OnBeforeClose(b port.NativeBrowser)
	OnRenderProcessTerminated(b port.NativeBrowser)
}

// Handler owns at most one browser and turns engine events into state.
type Handler struct {
	ctx      context.Context
	endpoint Endpoint

	mu        sync.Mutex
	browser   port.NativeBrowser
	state     entity.BrowserState
	onChanged func()
}

var _ port.BrowserClient = (*Handler)(nil)

// NewHandler creates a handler routing query traffic to endpoint.
func NewHandler(ctx context.Context, endpoint Endpoint) *Handler {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Handler{
		ctx:      logging.WithComponent(ctx, "browser-handler"),
		endpoint: endpoint,
		state:    entity.BrowserUnattached,
	}
}

// SetStateChangedCallback installs fn, run after creation and after every
// completed main-frame load.
func (h *Handler) SetStateChangedCallback(fn func()) {
	h.mu.Lock()
	h.onChanged = fn
	h.mu.Unlock()
}

// Browser returns the owned browser, nil before creation and after close.
func (h *Handler) Browser() port.NativeBrowser {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.browser
}

// State returns the lifecycle state.
func (h *Handler) State() entity.BrowserState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Close asks the engine to close the owned browser. Completion arrives as a
// BeforeClose event.
func (h *Handler) Close(force bool) bool {
	h.mu.Lock()
	b := h.browser
	if b == nil || h.state == entity.BrowserClosing {
		h.mu.Unlock()
		return false
	}
	h.state = entity.BrowserClosing
	h.mu.Unlock()

	logging.FromContext(h.ctx).Debug().Uint64("browser_id", uint64(b.ID())).Bool("force", force).Msg("closing browser")
	b.CloseBrowser(force)
	return true
}

// owns reports whether ev targets the adopted browser.
func (h *Handler) owns(b port.NativeBrowser) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return port.SameBrowser(h.browser, b)
}

func (h *Handler) notifyChanged() {
	h.mu.Lock()
	fn := h.onChanged
	h.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// HandleEvent is the single entry point for engine events. It returns true
// when the event concerned the owned browser and was consumed.
func (h *Handler) HandleEvent(ev port.BrowserEvent) bool {
	if ev == nil || ev.Browser() == nil {
		return false
	}
	if created, ok := ev.(port.AfterCreated); ok {
		return h.afterCreated(created.Target)
	}
	if !h.owns(ev.Browser()) {
		return false
	}

	log := logging.FromContext(h.ctx).With().Uint64("browser_id", uint64(ev.Browser().ID())).Logger()

	switch e := ev.(type) {
	case port.LoadStart:
		h.mu.Lock()
		if h.state != entity.BrowserClosing {
			h.state = entity.BrowserNavigating
		}
		h.mu.Unlock()
		log.Debug().Str("url", e.URL).Msg("load started")

	case port.LoadEnd:
		h.mu.Lock()
		closing := h.state == entity.BrowserClosing
		if !closing {
			h.state = entity.BrowserLoaded
		}
		h.mu.Unlock()
		log.Debug().Int("status", e.HTTPStatusCode).Msg("load finished")
		if !closing {
			h.notifyChanged()
		}

	case port.LoadError:
		if e.Code == port.ErrAborted {
			return true
		}
		log.Warn().
			Int("code", int(e.Code)).
			Str("error", e.Text).
			Str("url", e.FailedURL).
			Msg("load failed")

	case port.BeforeBrowse:
		if h.endpoint != nil {
			h.endpoint.OnBeforeBrowse(e.Target)
		}

	case port.ProcessMessageReceived:
		if h.endpoint == nil {
			return false
		}
		return h.endpoint.OnProcessMessage(e.Target, e.Message)

	case port.RenderProcessTerminated:
		log.Warn().Str("status", e.Status.String()).Int("code", e.Code).Msg("render process terminated")
		if h.endpoint != nil {
			h.endpoint.OnRenderProcessTerminated(e.Target)
		}

	case port.BeforeClose:
		if h.endpoint != nil {
			h.endpoint.OnBeforeClose(e.Target)
		}
		h.mu.Lock()
		h.browser = nil
		h.state = entity.BrowserClosed
		h.mu.Unlock()
		log.Debug().Msg("browser closed")

	default:
		return false
	}
	return true
}

func (h *Handler) afterCreated(b port.NativeBrowser) bool {
	h.mu.Lock()
	if h.browser != nil {
		h.mu.Unlock()
		logging.FromContext(h.ctx).Debug().
			Uint64("browser_id", uint64(b.ID())).
			Msg("additional browser ignored")
		return false
	}
	h.browser = b
	h.state = entity.BrowserCreated
	h.mu.Unlock()

	logging.FromContext(h.ctx).Info().Uint64("browser_id", uint64(b.ID())).Msg("browser created")
	b.WasResized()
	h.notifyChanged()
	return true
}
