package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/websurface/internal/domain/build"
)

// AboutRenderer renders build information next to a logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates an about renderer.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders info.
func (r *AboutRenderer) Render(info build.Info) string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	logo := logoStyle.MarginTop(1).MarginLeft(2).Render(`██     ██
██  █  ██
██ ███ ██
████ ████
██     ██`)

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	line := func(icon, key, value string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(value))
	}

	return strings.Join([]string{
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	}, "\n")
}
