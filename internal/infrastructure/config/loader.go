// Package config loads websurface settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "WEBSURFACE"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading configDir/config.toml.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same names logging.NewFromEnv reads before the config exists.
	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = m.configFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf("failed to create default config at %s: %w", m.configDir, createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

// unmarshalConfig decodes, normalizes and validates the current viper state.
func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", m.viper.ConfigFileUsed(), err)
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Engine.LogSeverity = strings.ToLower(strings.TrimSpace(config.Engine.LogSeverity))

	switches := config.Engine.Switches[:0]
	seen := make(map[string]bool, len(config.Engine.Switches))
	for _, sw := range config.Engine.Switches {
		sw = strings.TrimSpace(sw)
		if sw == "" || seen[sw] {
			continue
		}
		seen[sw] = true
		switches = append(switches, sw)
	}
	config.Engine.Switches = switches
}

// Get returns the current configuration, or the defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// GetConfigFile returns the config file in use.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) configFile() string {
	return filepath.Join(m.configDir, "config.toml")
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(m.configFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
