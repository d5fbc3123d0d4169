package bridge

import (
	"context"
	"sync"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/logging"
)

// RendererRouter is the page-side end of the query channel: it tracks script
// contexts and turns router replies into page callbacks.
type RendererRouter struct {
	cfg RouterConfig
	ctx context.Context

	mu       sync.Mutex
	contexts map[port.BrowserID]port.ScriptTarget
}

var _ port.HelperApp = (*RendererRouter)(nil)

// NewRendererRouter creates a renderer router.
func NewRendererRouter(ctx context.Context, cfg RouterConfig) *RendererRouter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &RendererRouter{
		cfg:      cfg.withDefaults(),
		ctx:      logging.WithComponent(ctx, "renderer-router"),
		contexts: make(map[port.BrowserID]port.ScriptTarget),
	}
}

// Config returns the effective function names.
func (r *RendererRouter) Config() RouterConfig {
	return r.cfg
}

// OnContextCreated records the browser's script context.
func (r *RendererRouter) OnContextCreated(target port.ScriptTarget) {
	if target == nil {
		return
	}
	r.mu.Lock()
	r.contexts[target.ID()] = target
	r.mu.Unlock()
	logging.FromContext(r.ctx).Trace().Uint64("browser_id", uint64(target.ID())).Msg("script context created")
}

// OnContextReleased forgets the browser's script context.
func (r *RendererRouter) OnContextReleased(id port.BrowserID) {
	r.mu.Lock()
	delete(r.contexts, id)
	r.mu.Unlock()
	logging.FromContext(r.ctx).Trace().Uint64("browser_id", uint64(id)).Msg("script context released")
}

// HasContext reports whether a live script context exists for id.
func (r *RendererRouter) HasContext(id port.BrowserID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.contexts[id]
	return ok
}

// OnProcessMessageReceived runs the page callback for a router reply.
// Replies for released contexts are dropped.
func (r *RendererRouter) OnProcessMessageReceived(target port.ScriptTarget, msg port.ProcessMessage) bool {
	if target == nil || msg.Name != r.cfg.QueryFunction {
		return false
	}
	if !r.HasContext(target.ID()) {
		logging.FromContext(r.ctx).Debug().
			Uint64("browser_id", uint64(target.ID())).
			Int64("query_id", msg.QueryID).
			Msg("reply for released context dropped")
		return true
	}
	target.ExecuteJavaScript(
		ResolveScript(r.cfg, msg.QueryID, msg.Success, msg.Response, msg.ErrorCode, msg.ErrorMessage),
		"",
	)
	return true
}
