package gtkhost

import (
	"context"

	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/websurface/internal/logging"
)

// Lifecycle is the callback pair driven by the GTK application.
type Lifecycle struct {
	Activate func(ctx context.Context, app *gtk.Application)
	Shutdown func(ctx context.Context)
}

// Run creates the GTK application and blocks in its main loop.
// It returns the process exit code.
func Run(ctx context.Context, args []string, lc Lifecycle) int {
	log := logging.FromContext(ctx)

	app := gtk.NewApplication(nil, gio.GApplicationFlagsNoneValue)
	if app == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}
	defer app.Unref()

	activateCb := func(_ gio.Application) {
		log.Debug().Msg("GTK application activated")
		if lc.Activate != nil {
			lc.Activate(ctx, app)
		}
	}
	app.ConnectActivate(&activateCb)

	shutdownCb := func(_ gio.Application) {
		log.Debug().Msg("GTK application shutting down")
		if lc.Shutdown != nil {
			lc.Shutdown(ctx)
		}
	}
	app.ConnectShutdown(&shutdownCb)

	log.Info().Msg("starting GTK main loop")
	return app.Run(len(args), args)
}
