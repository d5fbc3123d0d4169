package logging

import (
	"context"
	"sync"

	"github.com/jwijenbergh/puregotk/v4/glib"
	"github.com/rs/zerolog"
)

// glibLogger holds the logger for the GLib handler.
// We need this because the GLib callback doesn't support passing Go pointers directly.
var (
	glibLogger     zerolog.Logger
	glibLoggerOnce sync.Once
)

// InstallGLibLogHandler routes GTK, GDK and WebKitGTK log messages to logger.
// It must run before the engine is initialized. Messages below minLevel are dropped
// by the logger itself; GLib debug output is only enabled when minLevel is debug or lower.
func InstallGLibLogHandler(ctx context.Context, logger zerolog.Logger, minLevel zerolog.Level) {
	log := FromContext(ctx)

	glibLoggerOnce.Do(func() {
		glibLogger = logger.Level(minLevel).With().Str("component", "engine").Logger()

		enableDebug := minLevel <= zerolog.DebugLevel
		if enableDebug {
			glib.LogSetDebugEnabled(true)
		}

		handler := glib.LogFunc(glibLogHandler)
		glib.LogSetDefaultHandler(&handler, 0)

		log.Debug().Bool("debug_enabled", enableDebug).Msg("GLib log handler installed")
	})
}

// glibLogHandler is the callback invoked by GLib for all log messages.
func glibLogHandler(domain string, level glib.LogLevelFlags, message string, _ uintptr) {
	var event *zerolog.Event

	switch {
	case level&glib.GLogLevelErrorValue != 0:
		event = glibLogger.Error()
	case level&glib.GLogLevelCriticalValue != 0:
		event = glibLogger.Error()
	case level&glib.GLogLevelWarningValue != 0:
		event = glibLogger.Warn()
	case level&glib.GLogLevelMessageValue != 0:
		event = glibLogger.Info()
	case level&glib.GLogLevelInfoValue != 0:
		event = glibLogger.Info()
	default:
		event = glibLogger.Debug()
	}

	if domain != "" {
		event = event.Str("glib_domain", domain)
	}

	event.Msg(message)
}
