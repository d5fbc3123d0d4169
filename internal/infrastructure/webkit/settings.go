package webkit

import (
	"context"

	"github.com/bnema/puregotk-webkit/webkit"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/engine"
	"github.com/bnema/websurface/internal/logging"
)

// viewSettings is the per-view settings derived from engine settings.
type viewSettings struct {
	HardwareAcceleration     bool
	FileAccessFromFiles      bool
	UniversalAccessFromFiles bool
	DeveloperExtras          bool
	ConsoleToStdout          bool
}

func deriveViewSettings(s port.EngineSettings) viewSettings {
	verbose := s.LogSeverity == port.LogSeverityVerbose
	return viewSettings{
		HardwareAcceleration:     !s.HasSwitch(engine.SwitchDisableGPU),
		FileAccessFromFiles:      s.HasSwitch(engine.SwitchAllowFileAccessFromFiles) || s.HasSwitch(engine.SwitchAllowFileAccess),
		UniversalAccessFromFiles: s.HasSwitch(engine.SwitchDisableWebSecurity),
		DeveloperExtras:          verbose,
		ConsoleToStdout:          verbose || s.LogSeverity == port.LogSeverityInfo,
	}
}

// applySettings configures the view's existing settings object in place.
func applySettings(ctx context.Context, wv *webkit.WebView, s port.EngineSettings) {
	settings := wv.GetSettings()
	if settings == nil {
		logging.FromContext(ctx).Warn().Msg("web view has no settings object")
		return
	}
	vs := deriveViewSettings(s)

	settings.SetEnableJavascript(true)
	if vs.HardwareAcceleration {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlwaysValue)
	} else {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNeverValue)
	}
	settings.SetAllowFileAccessFromFileUrls(vs.FileAccessFromFiles)
	settings.SetAllowUniversalAccessFromFileUrls(vs.UniversalAccessFromFiles)
	settings.SetEnableDeveloperExtras(vs.DeveloperExtras)
	settings.SetEnableWriteConsoleMessagesToStdout(vs.ConsoleToStdout)

	logging.FromContext(ctx).Debug().
		Bool("hardware_acceleration", vs.HardwareAcceleration).
		Bool("file_access", vs.FileAccessFromFiles).
		Bool("universal_access", vs.UniversalAccessFromFiles).
		Bool("developer_extras", vs.DeveloperExtras).
		Msg("settings applied")
}
