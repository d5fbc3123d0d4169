package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/logging"
)

const (
	defaultMinGTK4Version      = "4.14"
	defaultMinWebKitGTKVersion = "2.44"
	defaultMinGLibVersion      = "2.80"

	fileScheme = "file://"
)

// RuntimeDependencyStatus is the result of checking one pkg-config module.
type RuntimeDependencyStatus struct {
	PkgConfigName string
	DisplayName   string

	Installed bool
	Version   string

	RequiredVersion  string
	MeetsRequirement bool

	Error string
}

// ResourceStatus is the result of checking one path of the resources layout.
type ResourceStatus struct {
	Name     string
	Path     string
	Present  bool
	Optional bool
}

// DiagnoseInput describes what to check.
type DiagnoseInput struct {
	// Prefix points at a manual runtime install, empty for the system.
	Prefix string
	// ResourcesDir is the resolved resources directory.
	ResourcesDir string
	// Pages are resolved surface URLs keyed by surface name. Only file://
	// URLs are checked.
	Pages map[string]string
}

// DiagnoseOutput is the doctor report.
type DiagnoseOutput struct {
	Prefix    string
	Runtime   []RuntimeDependencyStatus
	Libraries []port.LibraryStatus
	Resources []ResourceStatus

	RuntimeOK   bool
	LibrariesOK bool
	ResourcesOK bool
}

// OK reports whether websurface can start.
func (o *DiagnoseOutput) OK() bool {
	return o.RuntimeOK && o.LibrariesOK && o.ResourcesOK
}

// DiagnoseUseCase checks the engine runtime and resources layout.
type DiagnoseUseCase struct {
	versions  port.RuntimeVersionProbe
	libraries port.LibraryProbe
	exists    func(path string) bool
}

// NewDiagnoseUseCase creates the use case. Either probe may be nil to skip
// its section.
func NewDiagnoseUseCase(versions port.RuntimeVersionProbe, libraries port.LibraryProbe) *DiagnoseUseCase {
	return &DiagnoseUseCase{
		versions:  versions,
		libraries: libraries,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// Execute runs every check.
func (uc *DiagnoseUseCase) Execute(ctx context.Context, input DiagnoseInput) (*DiagnoseOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "doctor").Logger()

	out := &DiagnoseOutput{Prefix: input.Prefix}
	out.Runtime, out.RuntimeOK = uc.checkRuntime(ctx, input.Prefix)

	out.LibrariesOK = true
	if uc.libraries != nil {
		out.Libraries = uc.libraries.Probe()
		out.LibrariesOK = false
		for _, l := range out.Libraries {
			if l.OK {
				out.LibrariesOK = true
				break
			}
		}
	}

	out.Resources, out.ResourcesOK = uc.checkResources(input)

	log.Debug().
		Bool("runtime", out.RuntimeOK).
		Bool("libraries", out.LibrariesOK).
		Bool("resources", out.ResourcesOK).
		Msg("diagnostics complete")
	return out, nil
}

func (uc *DiagnoseUseCase) checkRuntime(ctx context.Context, prefix string) ([]RuntimeDependencyStatus, bool) {
	if uc.versions == nil {
		return nil, true
	}
	checks := []RuntimeDependencyStatus{
		{PkgConfigName: "gtk4", DisplayName: "GTK4", RequiredVersion: defaultMinGTK4Version},
		{PkgConfigName: "webkitgtk-6.0", DisplayName: "WebKitGTK 6.0", RequiredVersion: defaultMinWebKitGTKVersion},
		{PkgConfigName: "javascriptcoregtk-6.0", DisplayName: "JavaScriptCore", RequiredVersion: defaultMinWebKitGTKVersion},
		{PkgConfigName: "glib-2.0", DisplayName: "GLib", RequiredVersion: defaultMinGLibVersion},
	}

	allOK := true
	for i := range checks {
		status := &checks[i]
		version, err := uc.versions.PkgConfigModVersion(ctx, status.PkgConfigName, prefix)
		if err != nil {
			status.Error = err.Error()
			allOK = false
			continue
		}
		status.Installed = true
		status.Version = strings.TrimSpace(version)

		cmp, ok := compareVersion(status.Version, status.RequiredVersion)
		if !ok {
			status.Error = "could not parse version"
			allOK = false
			continue
		}
		status.MeetsRequirement = cmp >= 0
		if !status.MeetsRequirement {
			allOK = false
		}
	}
	return checks, allOK
}

func (uc *DiagnoseUseCase) checkResources(input DiagnoseInput) ([]ResourceStatus, bool) {
	checks := []ResourceStatus{
		{Name: "resources", Path: input.ResourcesDir},
		{Name: "locales", Path: filepath.Join(input.ResourcesDir, "locales"), Optional: true},
	}
	for _, name := range sortedKeys(input.Pages) {
		url := input.Pages[name]
		if !strings.HasPrefix(url, fileScheme) {
			continue
		}
		checks = append(checks, ResourceStatus{Name: name, Path: strings.TrimPrefix(url, fileScheme)})
	}

	allOK := true
	for i := range checks {
		checks[i].Present = checks[i].Path != "" && uc.exists(checks[i].Path)
		if !checks[i].Present && !checks[i].Optional {
			allOK = false
		}
	}
	return checks, allOK
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// compareVersion returns 1, 0 or -1 as a is newer, equal or older than b.
// ok is false if either cannot be parsed.
func compareVersion(a, b string) (cmp int, ok bool) {
	av, ok := parseVersionPrefix(a)
	if !ok {
		return 0, false
	}
	bv, ok := parseVersionPrefix(b)
	if !ok {
		return 0, false
	}

	n := max(len(av), len(bv))
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		switch {
		case x > y:
			return 1, true
		case x < y:
			return -1, true
		}
	}
	return 0, true
}

// parseVersionPrefix parses a dotted numeric prefix such as 4.20.3 and stops
// at the first other character.
func parseVersionPrefix(s string) ([]int, bool) {
	var parts []int
	cur := 0
	inNum := false

loop:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			inNum = true
			cur = cur*10 + int(c-'0')
		case c == '.':
			if !inNum {
				return nil, false
			}
			parts = append(parts, cur)
			cur = 0
			inNum = false
		default:
			break loop
		}
	}

	if inNum {
		parts = append(parts, cur)
	}
	if len(parts) == 0 {
		return nil, false
	}
	return parts, true
}
