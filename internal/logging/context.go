package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithSessionID creates a child logger with a session_id field
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("session_id", sessionID).Logger()
	return WithContext(ctx, childLogger)
}

// WithBrowserID creates a child logger with a browser_id field
func WithBrowserID(ctx context.Context, id uint64) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Uint64("browser_id", id).Logger()
	return WithContext(ctx, childLogger)
}

// WithURL creates a child logger with a url field
func WithURL(ctx context.Context, url string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("url", url).Logger()
	return WithContext(ctx, childLogger)
}
