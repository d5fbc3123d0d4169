//go:build linux

package webkit

import (
	"context"

	"github.com/bnema/websurface/internal/application/port"
)

// Preflight translates engine settings into WebKitGTK environment variables.
// It must run before the first web view is created.
func Preflight(ctx context.Context, s port.EngineSettings) error {
	return patchEnvironment(ctx, s)
}
