// Package build holds build information injected via ldflags.
package build

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/websurface"
}
