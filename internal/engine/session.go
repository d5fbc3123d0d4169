// Package engine owns the process-wide browser engine session.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/logging"
)

// ErrNotInitialized is returned when the engine is used before Initialize
// succeeded or after Shutdown.
var ErrNotInitialized = errors.New("engine not initialized")

// PreflightFunc prepares the process before the engine starts.
type PreflightFunc func(ctx context.Context, settings port.EngineSettings) error

// Options wires a Session to its platform collaborators.
type Options struct {
	// NewEngine constructs the engine. Called at most once per session.
	NewEngine func(ctx context.Context) (port.Engine, error)
	// Loader may be nil when the engine libraries are linked already.
	Loader    port.LibraryLoader
	Preflight []PreflightFunc
	Config    Config
	// Exit terminates the process. Defaults to os.Exit.
	Exit func(code int)
	// ResourcesPath defaults to ResourcesPath.
	ResourcesPath func() string
}

// Session is the engine lifetime of one process.
type Session struct {
	opts Options
	id   string

	mu           sync.Mutex
	engine       port.Engine
	initialized  bool
	shutdown     bool
	loaded       bool
	settings     port.EngineSettings
	resourcesDir string
}

// NewSession creates an uninitialized session.
func NewSession(opts Options) *Session {
	if opts.Exit == nil {
		opts.Exit = os.Exit
	}
	if opts.ResourcesPath == nil {
		opts.ResourcesPath = ResourcesPath
	}
	if opts.Config.PumpInterval <= 0 {
		opts.Config.PumpInterval = DefaultPumpInterval
	}
	return &Session{opts: opts, id: uuid.NewString()}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) logCtx(ctx context.Context) context.Context {
	return logging.WithSessionID(logging.WithComponent(ctx, "engine"), s.id)
}

// Initialize starts the engine. Repeat calls after success return true
// without touching the engine again. A secondary engine process exits from
// here with its own code.
func (s *Session) Initialize(ctx context.Context, args []string) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = s.logCtx(ctx)
	log := logging.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return true
	}
	if s.shutdown {
		log.Error().Msg("initialize after shutdown refused")
		return false
	}

	resources := s.opts.Config.ResourcesDir
	if resources == "" {
		resources = s.opts.ResourcesPath()
	}
	settings := BuildSettings(s.opts.Config, resources)

	if err := s.preflight(ctx, settings); err != nil {
		log.Error().Err(err).Msg("engine preflight failed")
		s.releaseLocked()
		return false
	}

	if s.engine == nil {
		if s.opts.NewEngine == nil {
			log.Error().Msg("no engine constructor configured")
			s.releaseLocked()
			return false
		}
		eng, err := s.opts.NewEngine(ctx)
		if err != nil {
			log.Error().Err(err).Msg("engine construction failed")
			s.releaseLocked()
			return false
		}
		s.engine = eng
	}

	if code := s.engine.ExecuteProcess(args); code >= 0 {
		log.Debug().Int("code", code).Msg("secondary engine process finished")
		s.opts.Exit(code)
		return false
	}

	if err := s.engine.Initialize(ctx, settings); err != nil {
		log.Error().Err(err).Msg("engine initialization failed")
		s.releaseLocked()
		return false
	}

	s.settings = settings
	s.resourcesDir = resources
	s.initialized = true

	log.Info().
		Str("resources_dir", resources).
		Str("log_severity", string(settings.LogSeverity)).
		Strs("switches", settings.Switches).
		Msg("engine initialized")
	return true
}

// preflight loads the engine libraries and runs the platform hooks in parallel.
func (s *Session) preflight(ctx context.Context, settings port.EngineSettings) error {
	g, gctx := errgroup.WithContext(ctx)

	if s.opts.Loader != nil && !s.loaded {
		g.Go(func() error {
			if err := s.opts.Loader.LoadInMain(); err != nil {
				return fmt.Errorf("load engine library: %w", err)
			}
			return nil
		})
	}
	for _, fn := range s.opts.Preflight {
		if fn == nil {
			continue
		}
		g.Go(func() error {
			return fn(gctx, settings)
		})
	}

	err := g.Wait()
	if s.opts.Loader != nil && !s.loaded {
		s.loaded = true
	}
	return err
}

func (s *Session) releaseLocked() {
	if s.opts.Loader != nil && s.loaded {
		s.opts.Loader.Unload()
	}
	s.loaded = false
}

// Shutdown stops the engine. It is a no-op when the engine never started.
func (s *Session) Shutdown(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.engine.Shutdown()
	s.releaseLocked()
	s.initialized = false
	s.shutdown = true
	logging.FromContext(s.logCtx(ctx)).Info().Msg("engine shut down")
}

// IsInitialized reports whether the engine is running.
func (s *Session) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Engine returns the running engine.
func (s *Session) Engine() (port.Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	return s.engine, nil
}

// Settings returns the settings the engine was started with.
func (s *Session) Settings() (port.EngineSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return port.EngineSettings{}, ErrNotInitialized
	}
	return s.settings, nil
}

// ResourcesDir returns the effective resources directory once initialized.
func (s *Session) ResourcesDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resourcesDir != "" {
		return s.resourcesDir
	}
	if s.opts.Config.ResourcesDir != "" {
		return s.opts.Config.ResourcesDir
	}
	return s.opts.ResourcesPath()
}

// DoMessageLoopWork pumps the engine once.
func (s *Session) DoMessageLoopWork() {
	s.mu.Lock()
	eng := s.engine
	ok := s.initialized
	s.mu.Unlock()
	if !ok {
		return
	}
	eng.DoMessageLoopWork()
}

// StartPump schedules DoMessageLoopWork every interval until stop is called
// or the session shuts down. A non-positive interval uses the configured one.
func (s *Session) StartPump(sched port.Scheduler, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = s.opts.Config.PumpInterval
	}
	return sched.Every(interval, func() bool {
		if !s.IsInitialized() {
			return false
		}
		s.DoMessageLoopWork()
		return true
	})
}
