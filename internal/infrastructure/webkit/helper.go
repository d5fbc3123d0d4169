package webkit

import (
	"context"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// HelperEngine handles auxiliary process roles. WebKitGTK launches its own
// web and network processes, so an invocation with a helper role has nothing
// left to run once the libraries are loaded.
type HelperEngine struct{}

var _ port.HelperEngine = HelperEngine{}

// ExecuteHelper returns 0 for known roles and 1 for unknown ones.
func (HelperEngine) ExecuteHelper(ctx context.Context, args []string, app port.HelperApp) int {
	role := entity.ParseProcessRole(args)
	log := logging.FromContext(ctx).With().Str("role", string(role)).Logger()

	switch role {
	case entity.RoleRenderer, entity.RoleGPU, entity.RoleUtility:
		log.Debug().Bool("has_app", app != nil).Msg("auxiliary role handled by webkit processes")
		return 0
	default:
		log.Error().Msg("unsupported process role")
		return 1
	}
}
