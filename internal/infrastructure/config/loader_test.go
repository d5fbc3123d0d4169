package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/engine"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, m.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	cfg := m.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultShellURL, cfg.Surface.ShellURL)
	assert.Equal(t, engine.DefaultSwitches(), cfg.Engine.Switches)
	assert.Equal(t, 16, cfg.Engine.PumpIntervalMs)
	assert.Equal(t, "surfaceQuery", cfg.Bridge.QueryFunction)
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[logging]
level = " DEBUG "
format = "json"

[engine]
resources_dir = "/opt/app/resources"
log_severity = "Verbose"
switches = ["disable-gpu", " disable-gpu ", "", "allow-file-access"]
pump_interval_ms = 8

[surface]
shell_url = "https://example.com/shell"
`)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"disable-gpu", "allow-file-access"}, cfg.Engine.Switches)
	assert.Equal(t, "https://example.com/shell", cfg.Surface.ShellURL)
	assert.Equal(t, DefaultNavBarURL, cfg.Surface.NavBarURL)

	ec := cfg.EngineConfig()
	assert.Equal(t, "/opt/app/resources", ec.ResourcesDir)
	assert.Equal(t, port.LogSeverityVerbose, ec.LogSeverity)
	assert.Equal(t, 8*time.Millisecond, ec.PumpInterval)
	assert.True(t, ec.NoSandbox)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WEBSURFACE_LOG_LEVEL", "warn")
	t.Setenv("WEBSURFACE_SURFACE_NAVBAR_HEIGHT", "60")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, "warn", m.Get().Logging.Level)
	assert.Equal(t, 60, m.Get().Surface.NavBarHeight)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[bridge]
query_function = "not valid"
cancel_function = "not valid"

[surface]
navbar_height = 10
`)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bridge.query_function")
	assert.Contains(t, err.Error(), "surface.navbar_height")
	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[logging\nlevel=")
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestReloadNotifiesCallbacks(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var got *Config
	m.OnConfigChange(func(c *Config) { got = c })

	writeConfig(t, dir, "[window]\ntitle = \"Slicer\"\n")
	m.mu.Lock()
	require.NoError(t, m.reload())
	m.notifyCallbacksLocked()

	require.NotNil(t, got)
	assert.Equal(t, "Slicer", got.Window.Title)
	assert.Same(t, got, m.Get())
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "surfaceQueryCancel", mgr.viper.GetString("bridge.cancel_function"))
	assert.Equal(t, 46, mgr.viper.GetInt("surface.navbar_height"))
	assert.True(t, mgr.viper.GetBool("engine.no_sandbox"))
}
