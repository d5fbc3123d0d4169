package config

// Config is the complete websurface configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
	Engine  EngineConfig  `mapstructure:"engine" toml:"engine"`
	Bridge  BridgeConfig  `mapstructure:"bridge" toml:"bridge"`
	Surface SurfaceConfig `mapstructure:"surface" toml:"surface"`
	Window  WindowConfig  `mapstructure:"window" toml:"window"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// EngineConfig tunes the browser engine.
type EngineConfig struct {
	// ResourcesDir overrides the executable-relative resources directory.
	ResourcesDir   string   `mapstructure:"resources_dir" toml:"resources_dir"`
	NoSandbox      bool     `mapstructure:"no_sandbox" toml:"no_sandbox"`
	LogSeverity    string   `mapstructure:"log_severity" toml:"log_severity"`
	Switches       []string `mapstructure:"switches" toml:"switches"`
	PumpIntervalMs int      `mapstructure:"pump_interval_ms" toml:"pump_interval_ms"`
	// DataDir and CacheDir back the persistent network session.
	// Empty means the XDG data and cache directories.
	DataDir  string `mapstructure:"data_dir" toml:"data_dir"`
	CacheDir string `mapstructure:"cache_dir" toml:"cache_dir"`
	// RuntimePrefix points at a manual WebKitGTK install, e.g. /opt/webkitgtk.
	RuntimePrefix string `mapstructure:"runtime_prefix" toml:"runtime_prefix"`
}

// BridgeConfig names the page-side query functions.
type BridgeConfig struct {
	QueryFunction  string `mapstructure:"query_function" toml:"query_function"`
	CancelFunction string `mapstructure:"cancel_function" toml:"cancel_function"`
}

// SurfaceConfig locates the web assets of the two surfaces.
type SurfaceConfig struct {
	NavBarURL    string `mapstructure:"navbar_url" toml:"navbar_url"`
	ShellURL     string `mapstructure:"shell_url" toml:"shell_url"`
	NavBarHeight int    `mapstructure:"navbar_height" toml:"navbar_height"`
}

// WindowConfig sizes the top-level window.
type WindowConfig struct {
	Title  string `mapstructure:"title" toml:"title"`
	Width  int    `mapstructure:"width" toml:"width"`
	Height int    `mapstructure:"height" toml:"height"`
}
