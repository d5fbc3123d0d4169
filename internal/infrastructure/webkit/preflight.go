package webkit

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/engine"
	"github.com/bnema/websurface/internal/logging"
)

// WebKitGTK environment switches.
const (
	EnvDisableSandbox         = "WEBKIT_DISABLE_SANDBOX_THIS_IS_DANGEROUS"
	EnvDisableCompositingMode = "WEBKIT_DISABLE_COMPOSITING_MODE"
	EnvDisableDMABufRenderer  = "WEBKIT_DISABLE_DMABUF_RENDERER"
)

// preflightEnv returns the environment the engine settings translate to.
func preflightEnv(s port.EngineSettings) map[string]string {
	env := make(map[string]string)
	if s.NoSandbox {
		env[EnvDisableSandbox] = "1"
	}
	if s.HasSwitch(engine.SwitchDisableGPUCompositing) {
		env[EnvDisableCompositingMode] = "1"
	}
	if s.HasSwitch(engine.SwitchDisableGPU) {
		env[EnvDisableDMABufRenderer] = "1"
	}
	return env
}

// applyEnv sets every variable the user has not set already.
func applyEnv(ctx context.Context, env map[string]string, lookup func(string) (string, bool), set func(k, v string) error) error {
	log := logging.FromContext(ctx)
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if existing, ok := lookup(k); ok {
			log.Debug().Str("key", k).Str("value", existing).Msg("keeping user environment")
			continue
		}
		if err := set(k, env[k]); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
		log.Debug().Str("key", k).Str("value", env[k]).Msg("engine environment set")
	}
	return nil
}

func patchEnvironment(ctx context.Context, s port.EngineSettings) error {
	return applyEnv(ctx, preflightEnv(s), os.LookupEnv, os.Setenv)
}
