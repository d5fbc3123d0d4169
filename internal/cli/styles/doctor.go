package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/websurface/internal/application/usecase"
)

// DoctorReport is everything the doctor command prints.
type DoctorReport struct {
	Diagnostics *usecase.DiagnoseOutput
	ConfigFile  string
	// CoreDumpLimit is informational, empty when unknown.
	CoreDumpLimit string
}

// DoctorRenderer renders a DoctorReport.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a doctor renderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// Render renders report.
func (r *DoctorRenderer) Render(report DoctorReport) string {
	d := report.Diagnostics
	if d == nil {
		d = &usecase.DiagnoseOutput{}
	}

	sections := []string{}
	if len(d.Runtime) > 0 {
		sections = append(sections, r.renderRuntime(d))
	}
	if len(d.Libraries) > 0 {
		sections = append(sections, r.renderLibraries(d))
	}
	sections = append(sections, r.renderResources(d), r.renderEnvironment(report))

	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(d.OK()), "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) box(icon, title string, lines []string) string {
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(icon), title))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) status(icon string, style lipgloss.Style, name, status, detail string) string {
	line := fmt.Sprintf("%s %s %s", style.Render(icon), r.theme.Normal.Render(name), r.theme.BadgeMuted.Render(style.Render(status)))
	if detail != "" {
		line += "\n  " + r.theme.Subtle.Render(detail)
	}
	return line
}

func (r *DoctorRenderer) renderRuntime(d *usecase.DiagnoseOutput) string {
	lines := make([]string, 0, len(d.Runtime)+1)
	if strings.TrimSpace(d.Prefix) != "" {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.theme.Subtle.Render("Prefix"),
			r.theme.Normal.Render(d.Prefix),
			r.theme.Subtle.Render("(runtime override)"),
		))
	}
	for _, c := range d.Runtime {
		switch {
		case !c.Installed:
			lines = append(lines, r.status(IconX, r.theme.ErrorStyle, c.DisplayName, "Missing", c.Error))
		case !c.MeetsRequirement:
			detail := fmt.Sprintf("have %s, need >= %s", c.Version, c.RequiredVersion)
			if c.Error != "" {
				detail = c.Error
			}
			lines = append(lines, r.status(IconWarning, r.theme.WarningStyle, c.DisplayName, "Too old", detail))
		default:
			detail := fmt.Sprintf("%s (>= %s)", c.Version, c.RequiredVersion)
			lines = append(lines, r.status(IconCheck, r.theme.SuccessStyle, c.DisplayName, "OK", detail))
		}
	}
	return r.box(IconPackage, "Runtime", lines)
}

func (r *DoctorRenderer) renderLibraries(d *usecase.DiagnoseOutput) string {
	lines := make([]string, 0, len(d.Libraries))
	for _, l := range d.Libraries {
		if l.OK {
			lines = append(lines, r.status(IconCheck, r.theme.SuccessStyle, l.Path, "Loadable", ""))
			continue
		}
		lines = append(lines, r.status(IconX, r.theme.ErrorStyle, l.Path, "Unavailable", l.Error))
	}
	return r.box(IconPackage, "Engine libraries", lines)
}

func (r *DoctorRenderer) renderResources(d *usecase.DiagnoseOutput) string {
	lines := make([]string, 0, len(d.Resources))
	for _, res := range d.Resources {
		switch {
		case res.Present:
			lines = append(lines, r.status(IconCheck, r.theme.SuccessStyle, res.Name, "Found", res.Path))
		case res.Optional:
			lines = append(lines, r.status(IconWarning, r.theme.WarningStyle, res.Name, "Optional", res.Path))
		default:
			lines = append(lines, r.status(IconX, r.theme.ErrorStyle, res.Name, "Missing", res.Path))
		}
	}
	return r.box(IconFolder, "Resources", lines)
}

func (r *DoctorRenderer) renderEnvironment(report DoctorReport) string {
	value := func(v string) string {
		if v == "" {
			return r.theme.Subtle.Render("unknown")
		}
		return r.theme.Normal.Render(v)
	}
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Config"), value(report.ConfigFile)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Core dump limit"), value(report.CoreDumpLimit)),
	}
	return r.box(IconConfig, "Environment", lines)
}
