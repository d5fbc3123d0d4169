package engine

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/websurface/internal/application/port"
)

func TestResourcesPathFor(t *testing.T) {
	tests := []struct {
		name string
		goos string
		exe  string
		want string
	}{
		{name: "linux", goos: "linux", exe: "/opt/app/websurface", want: "/opt/app/resources"},
		{name: "darwin bundle", goos: "darwin", exe: "/Applications/App.app/Contents/MacOS/websurface", want: "/Applications/App.app/Contents/Resources"},
		{name: "unresolved executable", goos: "linux", exe: "", want: "./resources"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resourcesPathFor(tt.goos, tt.exe))
		})
	}
}

func TestResourcesPathIsStable(t *testing.T) {
	assert.Equal(t, ResourcesPath(), ResourcesPath())
	assert.NotEmpty(t, ResourcesPath())
}

func TestDefaultLogSeverity(t *testing.T) {
	assert.Equal(t, port.LogSeverityWarning, defaultLogSeverity("windows"))
	assert.Equal(t, port.LogSeverityError, defaultLogSeverity("linux"))
	assert.Equal(t, port.LogSeverityError, defaultLogSeverity("darwin"))
}

func TestBuildSettings_OverridesAndDefaults(t *testing.T) {
	s := BuildSettings(Config{LogSeverity: port.LogSeverityInfo, Switches: []string{"disable-gpu"}}, "/r")
	assert.Equal(t, port.LogSeverityInfo, s.LogSeverity)
	assert.Equal(t, []string{"disable-gpu"}, s.Switches)
	assert.False(t, s.NoSandbox)

	s = BuildSettings(Config{}, "/r")
	assert.Equal(t, defaultLogSeverity(runtime.GOOS), s.LogSeverity)
	assert.Equal(t, DefaultSwitches(), s.Switches)
	assert.Equal(t, "/r/locales", s.LocalesDir)
}
