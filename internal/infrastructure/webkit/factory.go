package webkit

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/engine"
	"github.com/bnema/websurface/internal/logging"
)

// ScriptMessageHandler is the window.webkit.messageHandlers entry the page shim posts to.
const ScriptMessageHandler = "websurface"

// ErrUnknownParent is returned when no container is registered for a native handle.
var ErrUnknownParent = errors.New("unknown parent window")

// Parent is a native container a browser widget is embedded in.
type Parent interface {
	AttachBrowser(widget *gtk.Widget)
	DetachBrowser(widget *gtk.Widget)
}

// ParentResolver finds the container behind a native handle.
type ParentResolver func(handle uintptr) (Parent, bool)

// FactoryOptions wires a BrowserFactory.
type FactoryOptions struct {
	Router   bridge.RouterConfig
	Parents  ParentResolver
	Renderer port.HelperApp
}

// BrowserFactory creates WebKit browsers as children of GTK containers.
type BrowserFactory struct {
	engine *Engine
	opts   FactoryOptions
}

var _ port.BrowserFactory = (*BrowserFactory)(nil)

// NewBrowserFactory creates a factory bound to an engine.
func NewBrowserFactory(eng *Engine, opts FactoryOptions) *BrowserFactory {
	return &BrowserFactory{engine: eng, opts: opts}
}

func shimPost() string {
	return "function (m) { window.webkit.messageHandlers." + ScriptMessageHandler + ".postMessage(m); }"
}

// CreateBrowser builds a web view inside the container identified by
// info.ParentHandle. The initial navigation and AfterCreated are delivered
// on the next engine pump.
func (f *BrowserFactory) CreateBrowser(
	ctx context.Context,
	info port.WindowInfo,
	client port.BrowserClient,
	url string,
	settings port.BrowserSettings,
) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if f.engine == nil || !f.engine.IsInitialized() {
		return fmt.Errorf("create browser: %w", engine.ErrNotInitialized)
	}
	if f.opts.Parents == nil {
		return fmt.Errorf("create browser: %w", ErrUnknownParent)
	}
	parent, ok := f.opts.Parents(info.ParentHandle)
	if !ok {
		return fmt.Errorf("create browser for handle %#x: %w", info.ParentHandle, ErrUnknownParent)
	}

	inner := webkit.NewWebView()
	if inner == nil {
		return fmt.Errorf("create web view: %w", ErrEngineUnavailable)
	}

	id := f.engine.browsers.nextID()
	ctx = logging.WithBrowserID(logging.WithComponent(ctx, "browser"), uint64(id))
	b := &Browser{
		id:       id,
		engine:   f.engine,
		inner:    inner,
		ucm:      inner.GetUserContentManager(),
		parent:   parent,
		client:   client,
		renderer: f.opts.Renderer,
		logger:   *logging.FromContext(ctx),
	}

	applySettings(ctx, inner, f.engine.Settings())
	inner.SetBackgroundColor(toGdkRGBA(settings.BackgroundColor))
	inner.SetHexpand(true)
	inner.SetVexpand(true)
	if info.Bounds.IsActive() {
		inner.SetSizeRequest(info.Bounds.W, info.Bounds.H)
	}

	if b.ucm != nil {
		shim := webkit.NewUserScript(
			bridge.ShimScript(f.opts.Router, shimPost()),
			webkit.UserContentInjectTopFrameValue,
			webkit.UserScriptInjectAtDocumentStartValue,
			nil,
			nil,
		)
		b.ucm.AddScript(shim)
		if !b.connectScriptMessages(ScriptMessageHandler) {
			b.logger.Warn().Str("handler", ScriptMessageHandler).Msg("script message handler not registered")
		}
	} else {
		b.logger.Warn().Msg("web view has no user content manager, queries disabled")
	}

	b.connectSignals(ctx)
	f.engine.browsers.register(b)
	parent.AttachBrowser(&inner.Widget)

	f.engine.post(func() {
		if b.closed.Load() {
			return
		}
		startBrowser(b, b.client, url)
	})

	b.logger.Debug().Str("url", url).Uint32("background", settings.BackgroundColor).Msg("browser created")
	return nil
}

// startBrowser issues the initial navigation, then reports AfterCreated.
// A URL the client loads while handling AfterCreated is the last one.
func startBrowser(b port.NativeBrowser, client port.BrowserClient, url string) {
	if url != "" {
		b.LoadURL(url)
	}
	if client != nil {
		client.HandleEvent(port.AfterCreated{Target: b})
	}
}

// Lookup returns a live browser by id.
func (f *BrowserFactory) Lookup(id port.BrowserID) (*Browser, bool) {
	b := f.engine.browsers.lookup(id)
	return b, b != nil
}

// Count returns the number of live browsers.
func (f *BrowserFactory) Count() int {
	return f.engine.browsers.len()
}
