package config

import (
	"time"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/bridge"
	"github.com/bnema/websurface/internal/engine"
	"github.com/bnema/websurface/internal/logging"
)

// EngineConfig converts the engine section.
func (c *Config) EngineConfig() engine.Config {
	switches := make([]string, len(c.Engine.Switches))
	copy(switches, c.Engine.Switches)
	return engine.Config{
		ResourcesDir: c.Engine.ResourcesDir,
		NoSandbox:    c.Engine.NoSandbox,
		LogSeverity:  port.LogSeverity(c.Engine.LogSeverity),
		Switches:     switches,
		PumpInterval: time.Duration(c.Engine.PumpIntervalMs) * time.Millisecond,
	}
}

// RouterConfig converts the bridge section.
func (c *Config) RouterConfig() bridge.RouterConfig {
	return bridge.RouterConfig{
		QueryFunction:  c.Bridge.QueryFunction,
		CancelFunction: c.Bridge.CancelFunction,
	}
}

// LoggingConfig converts the logging section.
func (c *Config) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	cfg.Format = c.Logging.Format
	return cfg
}

// EngineDirs returns the network session directories, falling back to XDG.
func (c *Config) EngineDirs() (dataDir, cacheDir string, err error) {
	dataDir, cacheDir = c.Engine.DataDir, c.Engine.CacheDir
	if dataDir != "" && cacheDir != "" {
		return dataDir, cacheDir, nil
	}
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", "", err
	}
	if dataDir == "" {
		dataDir = dirs.DataHome
	}
	if cacheDir == "" {
		cacheDir = dirs.CacheHome
	}
	return dataDir, cacheDir, nil
}
