package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/rs/zerolog"

	"github.com/bnema/websurface/assets"
	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/application/usecase"
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/engine"
	"github.com/bnema/websurface/internal/infrastructure/config"
	"github.com/bnema/websurface/internal/infrastructure/gtkhost"
	"github.com/bnema/websurface/internal/infrastructure/webkit"
	"github.com/bnema/websurface/internal/logging"
	"github.com/bnema/websurface/internal/surface"
	"github.com/bnema/websurface/internal/ui/model"
)

// ViewportHoleID is the hole the shell page reserves for the native viewport.
const ViewportHoleID = "viewport"

// GUI is one run of the GTK host: the engine session plus every surface.
type GUI struct {
	cfg   *config.Config
	args  []string
	url   string
	timer *StartupTimer

	registry *gtkhost.Registry
	renderer *bridge.RendererRouter
	engine   *webkit.Engine
	session  *engine.Session

	window    *gtkhost.Window
	navbar    *surface.NavBar
	shell     *surface.Shell
	workspace *model.Workspace
	sync      *usecase.StateSync
	stopPump  func()

	stopSignals func()
}

// RunGUI starts the GTK host and blocks until the window closes.
// url overrides the configured shell page when non-empty.
func RunGUI(ctx context.Context, cfg *config.Config, args []string, url string) int {
	g, err := newGUI(ctx, cfg, args, url)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("startup failed")
		return 1
	}
	// Engine console messages go to stdout; keep them in the log stream.
	if logging.ParseLevel(g.cfg.Logging.Level) <= zerolog.DebugLevel {
		stop, err := logging.CaptureStdout(ctx)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("engine console capture unavailable")
		} else {
			defer stop()
		}
	}
	return gtkhost.Run(ctx, args, gtkhost.Lifecycle{
		Activate: g.activate,
		Shutdown: g.shutdown,
	})
}

func newGUI(ctx context.Context, cfg *config.Config, args []string, url string) (*GUI, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	timer := NewStartupTimer()

	log := logging.FromContext(ctx)
	logging.InstallGLibLogHandler(ctx, *log, logging.ParseLevel(cfg.Logging.Level))

	dataDir, cacheDir, err := cfg.EngineDirs()
	if err != nil {
		return nil, fmt.Errorf("resolve engine directories: %w", err)
	}

	g := &GUI{
		cfg:      cfg,
		args:     args,
		url:      url,
		timer:    timer,
		registry: gtkhost.NewRegistry(),
		renderer: bridge.NewRendererRouter(ctx, cfg.RouterConfig()),
	}
	g.engine = webkit.NewEngine(ctx, webkit.EngineOptions{
		DataDir:  dataDir,
		CacheDir: cacheDir,
		Helper:   webkit.HelperEngine{},
		Renderer: g.renderer,
	})
	g.session = engine.NewSession(engine.Options{
		NewEngine: func(context.Context) (port.Engine, error) { return g.engine, nil },
		Loader:    webkit.NewLibraryLoader(ctx),
		Preflight: []engine.PreflightFunc{webkit.Preflight},
		Config:    cfg.EngineConfig(),
	})
	timer.Mark("prepare")
	return g, nil
}

func (g *GUI) parent(handle uintptr) (webkit.Parent, bool) {
	c, ok := g.registry.Lookup(handle)
	if !ok {
		return nil, false
	}
	return c, true
}

func (g *GUI) activate(ctx context.Context, app *gtk.Application) {
	log := logging.FromContext(ctx)

	if !g.session.Initialize(ctx, g.args) {
		log.Error().Msg("engine unavailable, quitting")
		app.Quit()
		return
	}
	g.timer.Mark("engine")

	if n, err := assets.Install(g.session.ResourcesDir()); err != nil {
		log.Warn().Err(err).Msg("default pages not installed")
	} else if n > 0 {
		log.Info().Int("files", n).Str("dir", g.session.ResourcesDir()).Msg("installed default pages")
	}

	win, err := gtkhost.NewWindow(ctx, app, g.cfg.Window.Title, g.cfg.Window.Width, g.cfg.Window.Height)
	if err != nil {
		log.Error().Err(err).Msg("window creation failed")
		app.Quit()
		return
	}
	g.window = win

	navbarBox := gtkhost.NewContainer(ctx, "navbar", g.registry)
	shellBox := gtkhost.NewContainer(ctx, "shell", g.registry)
	win.Append(navbarBox, g.cfg.Surface.NavBarHeight)
	win.Append(shellBox, 0)

	factory := webkit.NewBrowserFactory(g.engine, webkit.FactoryOptions{
		Router:   g.cfg.RouterConfig(),
		Parents:  g.parent,
		Renderer: g.renderer,
	})
	sched := gtkhost.NewScheduler()

	opts := surface.HostOptions{
		Factory:      factory,
		Scheduler:    sched,
		ResourcesDir: g.session.ResourcesDir(),
		Router:       g.cfg.RouterConfig(),
		Settings:     port.BrowserSettings{BackgroundColor: port.ARGB(255, 255, 255, 255)},
	}
	navOpts := opts
	navOpts.Window = navbarBox
	g.navbar = surface.NewNavBar(ctx, navOpts, g.cfg.Surface.NavBarHeight)
	shellOpts := opts
	shellOpts.Window = shellBox
	g.shell = surface.NewShell(ctx, shellOpts)

	label := "native viewport"
	viewport := gtk.NewLabel(&label)
	viewport.AddCssClass("websurface-viewport")
	g.shell.RegisterHole(ViewportHoleID, shellBox.AddPanel(&viewport.Widget))

	navbarBox.Bind(g.navbar)
	shellBox.Bind(g.shell)

	g.workspace = model.NewWorkspace(g.cfg.Window.Title, win)
	g.sync = usecase.NewStateSync(ctx, g.workspace, sched, g.navbar, g.shell)
	g.workspace.OnChange(g.sync.Push)
	g.navbar.SetStateChangedCallback(g.sync.Push)
	g.shell.SetStateChangedCallback(g.sync.Push)
	usecase.RegisterAppCommands(ctx, g.navbar.Bridge(), g.workspace, sched, g.sync.Push)
	usecase.RegisterAppCommands(ctx, g.shell.Bridge(), g.workspace, sched, g.sync.Push)

	g.stopPump = g.session.StartPump(sched, 0)

	shellURL := g.cfg.Surface.ShellURL
	if g.url != "" {
		shellURL = g.url
	}
	g.navbar.LoadURL(g.cfg.Surface.NavBarURL)
	g.shell.LoadURL(shellURL)

	g.quitOnSignal(ctx, app, sched)

	win.Present()
	g.timer.Mark("window")
	g.timer.LogDebug(ctx)
}

// quitOnSignal quits the application on SIGINT or SIGTERM.
func (g *GUI) quitOnSignal(ctx context.Context, app *gtk.Application, sched port.Scheduler) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	g.stopSignals = func() {
		signal.Stop(sigCh)
		close(done)
	}
	go func() {
		select {
		case sig := <-sigCh:
			logging.FromContext(ctx).Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
			sched.CallAfter(app.Quit)
		case <-done:
		}
	}()
}

func (g *GUI) shutdown(ctx context.Context) {
	if g.stopSignals != nil {
		g.stopSignals()
	}
	if g.stopPump != nil {
		g.stopPump()
	}
	if g.sync != nil {
		g.sync.Destroy()
	}
	if g.navbar != nil {
		g.navbar.Destroy()
	}
	if g.shell != nil {
		g.shell.Destroy()
	}
	g.session.Shutdown(ctx)
}
