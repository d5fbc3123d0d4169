package webkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/engine"
)

func TestDeriveViewSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings port.EngineSettings
		want     viewSettings
	}{
		{
			name:     "defaults",
			settings: port.EngineSettings{LogSeverity: port.LogSeverityError},
			want:     viewSettings{HardwareAcceleration: true},
		},
		{
			name: "stock switches",
			settings: port.EngineSettings{
				LogSeverity: port.LogSeverityWarning,
				Switches:    engine.DefaultSwitches(),
			},
			want: viewSettings{FileAccessFromFiles: true, UniversalAccessFromFiles: true},
		},
		{
			name:     "verbose logging",
			settings: port.EngineSettings{LogSeverity: port.LogSeverityVerbose},
			want:     viewSettings{HardwareAcceleration: true, DeveloperExtras: true, ConsoleToStdout: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveViewSettings(tt.settings))
		})
	}
}

func TestPreflightEnv(t *testing.T) {
	env := preflightEnv(port.EngineSettings{NoSandbox: true, Switches: engine.DefaultSwitches()})
	assert.Equal(t, map[string]string{
		EnvDisableSandbox:         "1",
		EnvDisableCompositingMode: "1",
		EnvDisableDMABufRenderer:  "1",
	}, env)

	assert.Empty(t, preflightEnv(port.EngineSettings{}))
}

func TestApplyEnvKeepsUserValues(t *testing.T) {
	existing := map[string]string{EnvDisableSandbox: "0"}
	set := map[string]string{}

	err := applyEnv(context.Background(),
		map[string]string{EnvDisableSandbox: "1", EnvDisableCompositingMode: "1"},
		func(k string) (string, bool) {
			v, ok := existing[k]
			return v, ok
		},
		func(k, v string) error {
			set[k] = v
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{EnvDisableCompositingMode: "1"}, set)
}

func TestApplyEnvWrapsSetError(t *testing.T) {
	boom := errors.New("boom")
	err := applyEnv(context.Background(),
		map[string]string{EnvDisableSandbox: "1"},
		func(string) (string, bool) { return "", false },
		func(string, string) error { return boom },
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), EnvDisableSandbox)
}
