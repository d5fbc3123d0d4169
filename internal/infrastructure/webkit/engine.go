package webkit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/jwijenbergh/puregotk/v4/glib"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// ErrEngineUnavailable is returned when WebKit could not provide a context.
var ErrEngineUnavailable = errors.New("webkit engine unavailable")

// EngineOptions configures the WebKitGTK engine.
type EngineOptions struct {
	// DataDir and CacheDir back the persistent network session.
	DataDir  string
	CacheDir string
	// Helper runs auxiliary process roles. Nil makes them fail with code 1.
	Helper port.HelperEngine
	// Renderer receives router replies and script context changes.
	Renderer port.HelperApp
}

// Engine is the WebKitGTK implementation of port.Engine.
type Engine struct {
	opts EngineOptions
	ctx  context.Context

	mu          sync.Mutex
	webContext  *webkit.WebContext
	session     *webkit.NetworkSession
	settings    port.EngineSettings
	initialized bool

	work     workQueue
	browsers *registry
}

var _ port.Engine = (*Engine)(nil)

// NewEngine creates an engine. Nothing touches WebKit until Initialize.
func NewEngine(ctx context.Context, opts EngineOptions) *Engine {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Engine{
		opts:     opts,
		ctx:      logging.WithComponent(ctx, "webkit-engine"),
		browsers: newRegistry(),
	}
}

// ExecuteProcess runs auxiliary roles and returns their exit code.
// It returns -1 for the host process.
func (e *Engine) ExecuteProcess(args []string) int {
	role := entity.ParseProcessRole(args)
	if !role.IsHelper() {
		return -1
	}
	if e.opts.Helper == nil {
		logging.FromContext(e.ctx).Error().Str("role", string(role)).Msg("no helper engine for auxiliary role")
		return 1
	}
	return e.opts.Helper.ExecuteHelper(e.ctx, args, e.opts.Renderer)
}

// Initialize creates the network session and the shared web context.
// WebKit makes the first network session the default one, so it is created first.
func (e *Engine) Initialize(ctx context.Context, settings port.EngineSettings) error {
	if ctx == nil {
		ctx = e.ctx
	}
	log := logging.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return nil
	}

	dataDir, cacheDir := e.opts.DataDir, e.opts.CacheDir
	if dataDir != "" && cacheDir != "" {
		for _, dir := range []string{dataDir, cacheDir} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create engine directory %s: %w", dir, err)
			}
		}
		e.session = webkit.NewNetworkSession(&dataDir, &cacheDir)
		if e.session == nil {
			return fmt.Errorf("create network session: %w", ErrEngineUnavailable)
		}
	}

	e.webContext = webkit.WebContextGetDefault()
	if e.webContext == nil {
		return fmt.Errorf("get web context: %w", ErrEngineUnavailable)
	}
	e.webContext.SetCacheModel(webkit.CacheModelWebBrowserValue)

	e.settings = settings
	e.initialized = true

	log.Info().
		Str("data_dir", dataDir).
		Str("cache_dir", cacheDir).
		Bool("persistent", e.session != nil).
		Msg("webkit context initialized")
	return nil
}

// IsInitialized reports whether Initialize succeeded.
func (e *Engine) IsInitialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Settings returns the settings the engine was initialized with.
func (e *Engine) Settings() port.EngineSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// DoMessageLoopWork delivers deferred engine work and runs one
// non-blocking iteration of the default main context.
func (e *Engine) DoMessageLoopWork() {
	if !e.IsInitialized() {
		return
	}
	e.work.drain()
	if mc := glib.MainContextDefault(); mc != nil {
		mc.Iteration(false)
	}
}

// post defers fn to the next DoMessageLoopWork.
func (e *Engine) post(fn func()) {
	e.work.push(fn)
}

// Shutdown force-closes every browser and drops the web context.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	if !e.initialized {
		e.mu.Unlock()
		return
	}
	e.initialized = false
	e.mu.Unlock()

	for _, b := range e.browsers.all() {
		b.CloseBrowser(true)
	}
	e.work.drain()

	e.mu.Lock()
	e.webContext = nil
	e.session = nil
	e.mu.Unlock()

	logging.FromContext(e.ctx).Info().Msg("webkit engine shut down")
}
