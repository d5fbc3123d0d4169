package engine

import (
	"runtime"
	"time"

	"github.com/bnema/websurface/internal/application/port"
)

// DefaultPumpInterval is the period of the external message pump.
const DefaultPumpInterval = 16 * time.Millisecond

// Engine command-line switches applied by default.
const (
	SwitchDisableGPU                 = "disable-gpu"
	SwitchDisableGPUCompositing      = "disable-gpu-compositing"
	SwitchEnableBeginFrameScheduling = "enable-begin-frame-scheduling"
	SwitchAllowFileAccessFromFiles   = "allow-file-access-from-files"
	SwitchAllowFileAccess            = "allow-file-access"
	SwitchDisableWebSecurity         = "disable-web-security"
)

// DefaultSwitches returns the switch set used when none is configured.
func DefaultSwitches() []string {
	return []string{
		SwitchDisableGPU,
		SwitchDisableGPUCompositing,
		SwitchEnableBeginFrameScheduling,
		SwitchAllowFileAccessFromFiles,
		SwitchAllowFileAccess,
		SwitchDisableWebSecurity,
	}
}

// Config holds the user-tunable part of the engine settings.
type Config struct {
	// ResourcesDir overrides the executable-relative resources directory.
	ResourcesDir string
	NoSandbox    bool
	// LogSeverity empty means the platform default.
	LogSeverity  port.LogSeverity
	Switches     []string
	PumpInterval time.Duration
}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() Config {
	return Config{
		NoSandbox:    true,
		Switches:     DefaultSwitches(),
		PumpInterval: DefaultPumpInterval,
	}
}

func defaultLogSeverity(goos string) port.LogSeverity {
	if goos == "windows" {
		return port.LogSeverityWarning
	}
	return port.LogSeverityError
}

// BuildSettings derives the engine settings from cfg and the resources directory.
func BuildSettings(cfg Config, resourcesDir string) port.EngineSettings {
	severity := cfg.LogSeverity
	if severity == "" {
		severity = defaultLogSeverity(runtime.GOOS)
	}
	switches := cfg.Switches
	if switches == nil {
		switches = DefaultSwitches()
	}
	return port.EngineSettings{
		NoSandbox:                cfg.NoSandbox,
		ExternalMessagePump:      true,
		MultiThreadedMessageLoop: false,
		ResourcesDir:             resourcesDir,
		LocalesDir:               LocalesPath(resourcesDir),
		LogSeverity:              severity,
		Switches:                 append([]string(nil), switches...),
	}
}
