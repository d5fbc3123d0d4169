// Package cli holds the dependencies shared by the websurface commands.
package cli

import (
	"context"

	"github.com/bnema/websurface/internal/cli/styles"
	"github.com/bnema/websurface/internal/domain/build"
	"github.com/bnema/websurface/internal/infrastructure/config"
	"github.com/bnema/websurface/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	// LoadErr is set when the configuration could not be loaded and the
	// defaults are in use.
	LoadErr error

	ctx context.Context
}

// NewApp loads the configuration and sets up logging. A broken configuration
// falls back to the defaults and is reported through LoadErr.
func NewApp() (*App, error) {
	app := &App{Theme: styles.NewTheme()}

	mgr, err := config.NewManager()
	if err == nil {
		err = mgr.Load()
	}
	if err != nil {
		app.LoadErr = err
		app.Config = config.DefaultConfig()
	} else {
		app.Manager = mgr
		app.Config = mgr.Get()
	}

	logger := logging.New(app.Config.LoggingConfig())
	app.ctx = logging.WithContext(context.Background(), logger)
	if app.LoadErr != nil {
		logger.Warn().Err(app.LoadErr).Msg("using default configuration")
	}
	return app, nil
}

// ConfigFile returns the configuration file path, empty when unknown.
func (a *App) ConfigFile() string {
	if a.Manager == nil {
		return ""
	}
	return a.Manager.GetConfigFile()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
