package bridge

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/logging"
)

const (
	DefaultQueryFunction  = "surfaceQuery"
	DefaultCancelFunction = "surfaceQueryCancel"
)

// Failure answered to queries no handler accepted.
const (
	CanceledErrorCode    = -1
	CanceledErrorMessage = "The query has been canceled"
)

// RouterConfig names the script functions web content calls.
type RouterConfig struct {
	QueryFunction  string
	CancelFunction string
}

// DefaultRouterConfig returns the stock function names.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{QueryFunction: DefaultQueryFunction, CancelFunction: DefaultCancelFunction}
}

func (c RouterConfig) withDefaults() RouterConfig {
	if c.QueryFunction == "" {
		c.QueryFunction = DefaultQueryFunction
	}
	if c.CancelFunction == "" {
		c.CancelFunction = DefaultCancelFunction
	}
	return c
}

type inflight struct {
	browser    port.NativeBrowser
	id         int64
	persistent bool
	handler    QueryHandler
}

// Router is the browser-side end of the query channel. It tracks in-flight
// queries per browser and answers each non-persistent query at most once.
type Router struct {
	cfg RouterConfig
	ctx context.Context

	mu       sync.Mutex
	handlers []QueryHandler
	queries  map[port.BrowserID]map[int64]*inflight
}

// NewRouter creates a router.
func NewRouter(ctx context.Context, cfg RouterConfig) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Router{
		cfg:     cfg.withDefaults(),
		ctx:     logging.WithComponent(ctx, "message-router"),
		queries: make(map[port.BrowserID]map[int64]*inflight),
	}
}

// Config returns the effective function names.
func (r *Router) Config() RouterConfig {
	return r.cfg
}

// AddHandler attaches h. first puts it ahead of existing handlers.
// Adding the same handler twice is refused.
func (r *Router) AddHandler(h QueryHandler, first bool) bool {
	if h == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.handlers {
		if existing == h {
			return false
		}
	}
	if first {
		r.handlers = append([]QueryHandler{h}, r.handlers...)
	} else {
		r.handlers = append(r.handlers, h)
	}
	return true
}

// RemoveHandler detaches h and cancels the queries it owns.
func (r *Router) RemoveHandler(h QueryHandler) bool {
	r.mu.Lock()
	idx := -1
	for i, existing := range r.handlers {
		if existing == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return false
	}
	r.handlers = append(r.handlers[:idx], r.handlers[idx+1:]...)

	var owned []*inflight
	for bid, byID := range r.queries {
		for qid, q := range byID {
			if q.handler == h {
				owned = append(owned, q)
				delete(byID, qid)
			}
		}
		if len(byID) == 0 {
			delete(r.queries, bid)
		}
	}
	r.mu.Unlock()

	for _, q := range owned {
		h.OnQueryCanceled(q.browser.ID(), q.id)
	}
	return true
}

// PendingCount returns the number of in-flight queries for a browser.
func (r *Router) PendingCount(id port.BrowserID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queries[id])
}

// OnProcessMessage handles router traffic from the renderer side. Messages
// with other names are left to the caller.
func (r *Router) OnProcessMessage(b port.NativeBrowser, msg port.ProcessMessage) bool {
	if b == nil {
		return false
	}
	switch msg.Name {
	case r.cfg.QueryFunction:
		r.onQuery(b, msg)
		return true
	case r.cfg.CancelFunction:
		r.onCancel(b, msg.QueryID)
		return true
	default:
		return false
	}
}

func (r *Router) onQuery(b port.NativeBrowser, msg port.ProcessMessage) {
	log := logging.FromContext(r.ctx)
	q := &inflight{browser: b, id: msg.QueryID, persistent: msg.Persistent}

	r.mu.Lock()
	byID := r.queries[b.ID()]
	if byID == nil {
		byID = make(map[int64]*inflight)
		r.queries[b.ID()] = byID
	}
	if _, dup := byID[msg.QueryID]; dup {
		r.mu.Unlock()
		log.Warn().Uint64("browser_id", uint64(b.ID())).Int64("query_id", msg.QueryID).Msg("duplicate query id ignored")
		return
	}
	byID[msg.QueryID] = q
	handlers := append([]QueryHandler(nil), r.handlers...)
	r.mu.Unlock()

	for _, h := range handlers {
		r.mu.Lock()
		q.handler = h
		r.mu.Unlock()
		if h.OnQuery(b.ID(), msg.QueryID, msg.Request, msg.Persistent, &queryCallback{router: r, query: q}) {
			return
		}
	}

	log.Debug().Int64("query_id", msg.QueryID).Msg("query not handled")
	r.mu.Lock()
	q.handler = nil
	r.mu.Unlock()
	r.reply(q, false, "", CanceledErrorCode, CanceledErrorMessage)
}

func (r *Router) onCancel(b port.NativeBrowser, queryID int64) {
	r.mu.Lock()
	q := r.takeLocked(b.ID(), queryID)
	r.mu.Unlock()
	if q != nil && q.handler != nil {
		q.handler.OnQueryCanceled(b.ID(), queryID)
	}
}

// OnBeforeBrowse cancels every in-flight query of the browser.
func (r *Router) OnBeforeBrowse(b port.NativeBrowser) {
	r.cancelAll(b, "navigation")
}

// OnBeforeClose cancels every in-flight query of the browser.
func (r *Router) OnBeforeClose(b port.NativeBrowser) {
	r.cancelAll(b, "close")
}

// OnRenderProcessTerminated cancels every in-flight query of the browser.
func (r *Router) OnRenderProcessTerminated(b port.NativeBrowser) {
	r.cancelAll(b, "render_process_terminated")
}

func (r *Router) cancelAll(b port.NativeBrowser, reason string) {
	if b == nil {
		return
	}
	r.mu.Lock()
	byID := r.queries[b.ID()]
	delete(r.queries, b.ID())
	r.mu.Unlock()

	if len(byID) == 0 {
		return
	}
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	logging.FromContext(r.ctx).Debug().
		Uint64("browser_id", uint64(b.ID())).
		Int("count", len(ids)).
		Str("reason", reason).
		Msg("canceling in-flight queries")

	for _, id := range ids {
		if h := byID[id].handler; h != nil {
			h.OnQueryCanceled(b.ID(), id)
		}
	}
}

func (r *Router) takeLocked(bid port.BrowserID, qid int64) *inflight {
	byID := r.queries[bid]
	q, ok := byID[qid]
	if !ok {
		return nil
	}
	delete(byID, qid)
	if len(byID) == 0 {
		delete(r.queries, bid)
	}
	return q
}

// reply sends the answer when q is still in flight. Non-persistent queries
// and failures end the query.
func (r *Router) reply(q *inflight, success bool, response string, code int, message string) bool {
	bid := q.browser.ID()

	r.mu.Lock()
	current, ok := r.queries[bid][q.id]
	if !ok || current != q {
		r.mu.Unlock()
		return false
	}
	if !q.persistent || !success {
		r.takeLocked(bid, q.id)
	}
	r.mu.Unlock()

	msg := port.ProcessMessage{Name: r.cfg.QueryFunction, QueryID: q.id, Success: success}
	if success {
		msg.Response = response
	} else {
		msg.ErrorCode = code
		msg.ErrorMessage = message
	}
	q.browser.SendProcessMessage(msg)
	return true
}

type queryCallback struct {
	router *Router
	query  *inflight
}

func (c *queryCallback) Success(response string) {
	c.router.reply(c.query, true, response, 0, "")
}

func (c *queryCallback) Failure(code int, message string) {
	c.router.reply(c.query, false, "", code, message)
}
