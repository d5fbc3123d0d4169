// Package styles renders websurface CLI output with lipgloss.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly).
const (
	IconGlobe     = "\uf0ac"
	IconVersion   = "\uf02b"
	IconGitBranch = "\ue725"
	IconCalendar  = "\uf073"
	IconGithub    = "\uf09b"
	IconGo        = "\ue627"

	// Doctor
	IconDoctor  = "\uf0f1"
	IconCheck   = "\uf00c"
	IconX       = "\uf00d"
	IconWarning = "\uf071"
	IconPackage = "\uf187"
	IconFolder  = "\uf07b"
	IconConfig  = "\ue615"
)
