package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/surface"
)

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateEngine(config)...)
	validationErrors = append(validationErrors, validateBridge(config)...)
	validationErrors = append(validationErrors, validateSurface(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateEngine(config *Config) []string {
	var validationErrors []string
	switch port.LogSeverity(config.Engine.LogSeverity) {
	case "", port.LogSeverityVerbose, port.LogSeverityInfo, port.LogSeverityWarning,
		port.LogSeverityError, port.LogSeverityDisable:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("engine.log_severity must be verbose, info, warning, error or disable (got %q)", config.Engine.LogSeverity))
	}
	if config.Engine.PumpIntervalMs < 1 || config.Engine.PumpIntervalMs > 1000 {
		validationErrors = append(validationErrors, "engine.pump_interval_ms must be between 1 and 1000")
	}
	for _, sw := range config.Engine.Switches {
		if strings.TrimSpace(sw) == "" || strings.HasPrefix(sw, "-") {
			validationErrors = append(validationErrors,
				fmt.Sprintf("engine.switches entries are bare names without dashes (got %q)", sw))
		}
	}
	return validationErrors
}

func validateBridge(config *Config) []string {
	var validationErrors []string
	if !jsIdentifier.MatchString(config.Bridge.QueryFunction) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("bridge.query_function must be a JavaScript identifier (got %q)", config.Bridge.QueryFunction))
	}
	if !jsIdentifier.MatchString(config.Bridge.CancelFunction) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("bridge.cancel_function must be a JavaScript identifier (got %q)", config.Bridge.CancelFunction))
	}
	if config.Bridge.QueryFunction == config.Bridge.CancelFunction {
		validationErrors = append(validationErrors, "bridge.query_function and bridge.cancel_function must differ")
	}
	return validationErrors
}

func validateSurface(config *Config) []string {
	var validationErrors []string
	if config.Surface.NavBarHeight < surface.NavBarMinHeight {
		validationErrors = append(validationErrors,
			fmt.Sprintf("surface.navbar_height must be at least %d", surface.NavBarMinHeight))
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		validationErrors = append(validationErrors, "window.width and window.height must be positive")
	}
	return validationErrors
}
