package config

import (
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/engine"
	"github.com/bnema/websurface/internal/surface"
)

// Default surface assets, relative to the resources directory.
const (
	DefaultNavBarURL = "web/navbar/index.html"
	DefaultShellURL  = "web/shell/index.html"
)

const (
	defaultWindowTitle  = "websurface"
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
)

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	eng := engine.DefaultConfig()
	router := bridge.DefaultRouterConfig()
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Engine: EngineConfig{
			NoSandbox:      eng.NoSandbox,
			Switches:       eng.Switches,
			PumpIntervalMs: int(eng.PumpInterval.Milliseconds()),
		},
		Bridge: BridgeConfig{
			QueryFunction:  router.QueryFunction,
			CancelFunction: router.CancelFunction,
		},
		Surface: SurfaceConfig{
			NavBarURL:    DefaultNavBarURL,
			ShellURL:     DefaultShellURL,
			NavBarHeight: surface.NavBarMinHeight,
		},
		Window: WindowConfig{
			Title:  defaultWindowTitle,
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
	}
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("engine.resources_dir", defaults.Engine.ResourcesDir)
	m.viper.SetDefault("engine.no_sandbox", defaults.Engine.NoSandbox)
	m.viper.SetDefault("engine.log_severity", defaults.Engine.LogSeverity)
	m.viper.SetDefault("engine.switches", defaults.Engine.Switches)
	m.viper.SetDefault("engine.pump_interval_ms", defaults.Engine.PumpIntervalMs)
	m.viper.SetDefault("engine.data_dir", defaults.Engine.DataDir)
	m.viper.SetDefault("engine.cache_dir", defaults.Engine.CacheDir)
	m.viper.SetDefault("engine.runtime_prefix", defaults.Engine.RuntimePrefix)

	m.viper.SetDefault("bridge.query_function", defaults.Bridge.QueryFunction)
	m.viper.SetDefault("bridge.cancel_function", defaults.Bridge.CancelFunction)

	m.viper.SetDefault("surface.navbar_url", defaults.Surface.NavBarURL)
	m.viper.SetDefault("surface.shell_url", defaults.Surface.ShellURL)
	m.viper.SetDefault("surface.navbar_height", defaults.Surface.NavBarHeight)

	m.viper.SetDefault("window.title", defaults.Window.Title)
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
}
