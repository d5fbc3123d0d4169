package webkit

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/puregotk-webkit/javascriptcore"
	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/rs/zerolog"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// Browser wraps a webkit.WebView as a port.NativeBrowser.
type Browser struct {
	id       port.BrowserID
	engine   *Engine
	inner    *webkit.WebView
	ucm      *webkit.UserContentManager
	parent   Parent
	client   port.BrowserClient
	renderer port.HelperApp

	closed atomic.Bool
	logger zerolog.Logger

	mu sync.Mutex
	// callbacks keeps signal and async callbacks reachable while GLib holds them.
	callbacks []interface{}
	signalIDs []uint32
}

var (
	_ port.NativeBrowser = (*Browser)(nil)
	_ port.ScriptTarget  = (*Browser)(nil)
)

// ID returns the browser identifier.
func (b *Browser) ID() port.BrowserID {
	return b.id
}

// LoadURL navigates the main frame.
func (b *Browser) LoadURL(url string) {
	if b.closed.Load() {
		return
	}
	b.inner.LoadUri(url)
	b.logger.Debug().Str("url", url).Msg("loading url")
}

// ExecuteJavaScript runs code in the page's main world. Errors and
// exceptions are logged when the evaluation completes.
func (b *Browser) ExecuteJavaScript(code, scriptURL string) {
	if b.closed.Load() {
		return
	}

	cb := gio.AsyncReadyCallback(func(_ uintptr, resPtr uintptr, _ uintptr) {
		if resPtr == 0 {
			return
		}
		value, err := b.inner.EvaluateJavascriptFinish(&gio.AsyncResultBase{Ptr: resPtr})
		if err != nil {
			b.logger.Debug().Err(err).Msg("script evaluation failed")
			return
		}
		if value == nil {
			return
		}
		if jscCtx := value.GetContext(); jscCtx != nil {
			if exc := jscCtx.GetException(); exc != nil {
				b.logger.Warn().Str("exception", exc.GetMessage()).Msg("script raised an exception")
			}
		}
	})
	b.retain(cb)

	var sourceURI *string
	if scriptURL != "" {
		sourceURI = &scriptURL
	}
	b.inner.EvaluateJavascript(code, -1, nil, sourceURI, nil, &cb, 0)
}

// MainFrameURL returns the committed main frame URL.
func (b *Browser) MainFrameURL() string {
	if b.closed.Load() {
		return ""
	}
	return b.inner.GetUri()
}

// WasResized asks GTK to re-measure the web view.
func (b *Browser) WasResized() {
	if b.closed.Load() {
		return
	}
	b.inner.QueueResize()
}

// NotifyMoveOrResizeStarted has no WebKitGTK counterpart beyond a relayout.
func (b *Browser) NotifyMoveOrResizeStarted() {
	b.WasResized()
}

// SetBounds requests the web view size. Position is owned by the container.
func (b *Browser) SetBounds(bounds entity.Rect) {
	if b.closed.Load() {
		return
	}
	b.inner.SetSizeRequest(bounds.W, bounds.H)
}

// SetFocus moves keyboard focus into the page.
func (b *Browser) SetFocus(focus bool) {
	if b.closed.Load() || !focus {
		return
	}
	b.inner.GrabFocus()
}

// CloseBrowser closes the page. A forced close tears down immediately;
// otherwise the page may run unload handlers and the close signal completes it.
func (b *Browser) CloseBrowser(force bool) {
	if b.closed.Load() {
		return
	}
	if force {
		b.finishClose()
		return
	}
	b.inner.TryClose()
}

// SendProcessMessage delivers a router reply to the page side on the next pump.
func (b *Browser) SendProcessMessage(msg port.ProcessMessage) {
	if b.closed.Load() || b.renderer == nil {
		return
	}
	b.engine.post(func() {
		if b.closed.Load() {
			return
		}
		b.renderer.OnProcessMessageReceived(b, msg)
	})
}

func (b *Browser) retain(cb interface{}) {
	b.mu.Lock()
	b.callbacks = append(b.callbacks, cb)
	b.mu.Unlock()
}

func (b *Browser) emit(ev port.BrowserEvent) {
	if b.client == nil {
		return
	}
	b.client.HandleEvent(ev)
}

// finishClose runs once per browser: it releases the script context,
// reports BeforeClose and detaches the widget.
func (b *Browser) finishClose() {
	if b.closed.Swap(true) {
		return
	}
	if b.renderer != nil {
		b.renderer.OnContextReleased(b.id)
	}
	b.emit(port.BeforeClose{Target: b})
	if b.parent != nil {
		b.parent.DetachBrowser(&b.inner.Widget)
	}
	b.engine.browsers.unregister(b)
	b.logger.Debug().Msg("browser closed")
}

func (b *Browser) connectSignals(ctx context.Context) {
	loadChangedCb := func(inner webkit.WebView, event webkit.LoadEvent) {
		uri := inner.GetUri()
		switch event {
		case webkit.LoadStartedValue:
			b.emit(port.BeforeBrowse{Target: b, URL: uri})
			b.emit(port.LoadStart{Target: b, URL: uri})
		case webkit.LoadRedirectedValue:
			b.emit(port.BeforeBrowse{Target: b, URL: uri, IsRedirect: true})
		case webkit.LoadCommittedValue:
			// A committed navigation replaces the page's script context.
			if b.renderer != nil {
				b.renderer.OnContextReleased(b.id)
				b.renderer.OnContextCreated(b)
			}
		case webkit.LoadFinishedValue:
			b.emit(port.LoadEnd{Target: b})
		}
	}
	b.retain(loadChangedCb)
	b.signalIDs = append(b.signalIDs, b.inner.ConnectLoadChanged(&loadChangedCb))

	loadFailedCb := func(_ webkit.WebView, _ webkit.LoadEvent, failingURI string, errPtr uintptr) bool {
		code, text := readGError(errPtr)
		b.emit(port.LoadError{Target: b, Code: loadErrorCode(code), Text: text, FailedURL: failingURI})
		return false
	}
	b.retain(loadFailedCb)
	b.signalIDs = append(b.signalIDs, b.inner.ConnectLoadFailed(&loadFailedCb))

	terminatedCb := func(_ webkit.WebView, reason webkit.WebProcessTerminationReason) {
		status := terminationStatus(reason)
		b.logger.Warn().Str("status", status.String()).Msg("web process terminated")
		if b.renderer != nil {
			b.renderer.OnContextReleased(b.id)
		}
		b.emit(port.RenderProcessTerminated{Target: b, Status: status, Code: int(reason)})
	}
	b.retain(terminatedCb)
	b.signalIDs = append(b.signalIDs, b.inner.ConnectWebProcessTerminated(&terminatedCb))

	closeCb := func(_ webkit.WebView) {
		b.finishClose()
	}
	b.retain(closeCb)
	b.signalIDs = append(b.signalIDs, b.inner.ConnectClose(&closeCb))

	logging.FromContext(ctx).Trace().Int("signals", len(b.signalIDs)).Msg("browser signals connected")
}

// connectScriptMessages turns page shim posts into ProcessMessageReceived events.
// The signal is connected before the handler is registered so no message is lost.
func (b *Browser) connectScriptMessages(handlerName string) bool {
	cb := func(_ webkit.UserContentManager, valuePtr uintptr) {
		if valuePtr == 0 {
			return
		}
		value := javascriptcore.ValueNewFromInternalPtr(valuePtr)
		if value == nil {
			return
		}
		msg, err := decodeScriptMessage(value.ToJson(0))
		if err != nil {
			b.logger.Warn().Err(err).Msg("dropping script message")
			return
		}
		b.emit(port.ProcessMessageReceived{Target: b, Message: msg})
	}
	b.retain(cb)
	b.signalIDs = append(b.signalIDs, b.ucm.ConnectScriptMessageReceivedWithDetail(handlerName, &cb))
	return b.ucm.RegisterScriptMessageHandler(handlerName, nil)
}
