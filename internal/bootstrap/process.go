package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/logging"
)

// ErrLibraryUnavailable is reported when a helper cannot load the engine.
var ErrLibraryUnavailable = errors.New("engine library unavailable")

// HelperDeps are the collaborators of a helper process.
type HelperDeps struct {
	Loader port.LibraryLoader
	Engine port.HelperEngine
	Router bridge.RouterConfig
	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// RunHelperProcess runs args as an engine helper process when they carry a
// helper role. handled is false for the main process, which must carry on
// with its own startup.
func RunHelperProcess(ctx context.Context, args []string, deps HelperDeps) (code int, handled bool) {
	role := entity.ParseProcessRole(args)
	if !role.IsHelper() {
		return 0, false
	}
	ctx = logging.WithComponent(ctx, "helper")
	log := logging.FromContext(ctx)

	stderr := deps.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	if err := setParentDeathSignal(); err != nil {
		log.Debug().Err(err).Msg("parent death signal not set")
	}

	if deps.Loader != nil {
		if err := deps.Loader.LoadInHelper(); err != nil {
			err = fmt.Errorf("%w: %w", ErrLibraryUnavailable, err)
			fmt.Fprintf(stderr, "[websurface helper] failed to load engine library: %v\n", err)
			return 1, true
		}
		defer deps.Loader.Unload()
	}

	if deps.Engine == nil {
		fmt.Fprintf(stderr, "[websurface helper] no engine for role %q\n", role)
		return 1, true
	}

	log.Debug().Str("role", string(role)).Msg("running helper process")
	return deps.Engine.ExecuteHelper(ctx, args, bridge.NewRendererRouter(ctx, deps.Router)), true
}
