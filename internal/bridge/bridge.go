// Package bridge implements the JSON command channel between hosted web
// content and native code.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// CommandHandler receives the serialized payload ("" when absent) and returns
// the serialized response verbatim.
type CommandHandler func(payload string) string

// AsyncCommandHandler answers later through p.
type AsyncCommandHandler func(payload string, p *Pending)

// Callback answers one query.
type Callback interface {
	Success(response string)
	Failure(code int, message string)
}

// QueryHandler is attached to a Router and sees every inbound query.
type QueryHandler interface {
	// OnQuery returns true when the handler took ownership of the query.
	OnQuery(browserID port.BrowserID, queryID int64, request string, persistent bool, cb Callback) bool
	OnQueryCanceled(browserID port.BrowserID, queryID int64)
}

const unknownCommandFailure = "Unknown command"

type queryKey struct {
	browser port.BrowserID
	query   int64
}

// Bridge maps command names to handlers.
type Bridge struct {
	ctx context.Context

	mu       sync.RWMutex
	handlers map[string]CommandHandler
	async    map[string]AsyncCommandHandler
	pending  map[queryKey]*Pending
}

var _ QueryHandler = (*Bridge)(nil)

// New creates an empty bridge.
func New(ctx context.Context) *Bridge {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bridge{
		ctx:      logging.WithComponent(ctx, "bridge"),
		handlers: make(map[string]CommandHandler),
		async:    make(map[string]AsyncCommandHandler),
		pending:  make(map[queryKey]*Pending),
	}
}

// RegisterCommand binds name to handler. A later registration replaces an
// earlier one, sync or async.
func (b *Bridge) RegisterCommand(name string, handler CommandHandler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.async, name)
	b.handlers[name] = handler
}

// RegisterAsyncCommand binds name to a handler that answers through a Pending.
func (b *Bridge) RegisterAsyncCommand(name string, handler AsyncCommandHandler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, name)
	b.async[name] = handler
}

// HasCommand reports whether name is registered.
func (b *Bridge) HasCommand(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.handlers[name]
	if !ok {
		_, ok = b.async[name]
	}
	return ok
}

type dispatch struct {
	response string
	async    AsyncCommandHandler
	payload  string
	name     string
}

func (b *Bridge) resolve(request string) dispatch {
	var env entity.CommandEnvelope
	if err := json.Unmarshal([]byte(request), &env); err != nil {
		return dispatch{response: entity.ErrorResponse(fmt.Sprintf("JSON parse error: %v", err))}
	}
	name, present, err := env.CommandType()
	if err != nil {
		return dispatch{response: entity.ErrorResponse(fmt.Sprintf("JSON parse error: %v", err))}
	}
	if !present {
		return dispatch{response: entity.ErrorResponse("Missing command type")}
	}
	payload := env.PayloadJSON()

	b.mu.RLock()
	handler, ok := b.handlers[name]
	async, isAsync := b.async[name]
	b.mu.RUnlock()

	switch {
	case ok:
		return dispatch{response: handler(payload), name: name}
	case isAsync:
		return dispatch{async: async, payload: payload, name: name}
	default:
		return dispatch{response: entity.ErrorResponse("Unknown command: " + name)}
	}
}

// HandleCommand decodes request and runs the matching synchronous handler.
// Async commands can only be answered through OnQuery.
func (b *Bridge) HandleCommand(request string) string {
	d := b.resolve(request)
	if d.async != nil {
		return entity.ErrorResponse("Command requires async dispatch: " + d.name)
	}
	return d.response
}

// OnQuery answers a router query.
func (b *Bridge) OnQuery(browserID port.BrowserID, queryID int64, request string, _ bool, cb Callback) bool {
	log := logging.FromContext(b.ctx)

	d := b.resolve(request)
	if d.async != nil {
		key := queryKey{browser: browserID, query: queryID}
		p := newPending(b.ctx, cb, func() {
			b.mu.Lock()
			delete(b.pending, key)
			b.mu.Unlock()
		})
		b.mu.Lock()
		b.pending[key] = p
		b.mu.Unlock()

		log.Debug().Str("command", d.name).Int64("query_id", queryID).Msg("async command dispatched")
		d.async(d.payload, p)
		return true
	}

	if d.response == "" {
		cb.Failure(0, unknownCommandFailure)
		return true
	}
	cb.Success(d.response)
	return true
}

// OnQueryCanceled cancels an outstanding async command, if any.
func (b *Bridge) OnQueryCanceled(browserID port.BrowserID, queryID int64) {
	key := queryKey{browser: browserID, query: queryID}

	b.mu.Lock()
	p := b.pending[key]
	delete(b.pending, key)
	b.mu.Unlock()

	logging.FromContext(b.ctx).Debug().
		Uint64("browser_id", uint64(browserID)).
		Int64("query_id", queryID).
		Bool("async", p != nil).
		Msg("query canceled")

	if p != nil {
		p.cancel()
	}
}

// PendingCount returns the number of unresolved async commands.
func (b *Bridge) PendingCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.pending)
}
