package main

import (
	"context"
	"os"
	"runtime"

	"github.com/bnema/websurface/internal/bootstrap"
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/cli/cmd"
	"github.com/bnema/websurface/internal/domain/build"
	"github.com/bnema/websurface/internal/infrastructure/webkit"
	"github.com/bnema/websurface/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())
	defer logging.RecoverPanic(ctx)

	// Engine helper processes never reach cobra.
	code, handled := bootstrap.RunHelperProcess(ctx, os.Args, bootstrap.HelperDeps{
		Loader: webkit.NewLibraryLoader(ctx),
		Engine: webkit.HelperEngine{},
		Router: bridge.DefaultRouterConfig(),
	})
	if handled {
		os.Exit(code)
	}

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	os.Exit(cmd.Execute())
}
