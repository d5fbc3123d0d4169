//go:build !linux

package webkit

import (
	"context"

	"github.com/bnema/websurface/internal/application/port"
)

// Preflight is a no-op outside Linux.
func Preflight(_ context.Context, _ port.EngineSettings) error {
	return nil
}
