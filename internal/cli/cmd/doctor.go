package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/application/usecase"
	"github.com/bnema/websurface/internal/cli/styles"
	"github.com/bnema/websurface/internal/engine"
	"github.com/bnema/websurface/internal/infrastructure/deps"
	"github.com/bnema/websurface/internal/infrastructure/webkit"
	"github.com/bnema/websurface/internal/surface"
)

var (
	doctorSkipRuntime   bool
	doctorSkipLibraries bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the engine runtime and resources layout",
	Long: `Doctor checks what websurface needs before it can open a window:

- GTK 4 and WebKitGTK 6.0 versions (through pkg-config)
- the WebKitGTK shared libraries the engine loads at startup
- the resources directory and the configured surface pages

Examples:
  websurface doctor
  websurface doctor --skip-runtime`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorSkipRuntime, "skip-runtime", false, "Skip the pkg-config version checks")
	doctorCmd.Flags().BoolVar(&doctorSkipLibraries, "skip-libraries", false, "Skip loading the engine libraries")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	cfg := app.Config

	var versions port.RuntimeVersionProbe
	if !doctorSkipRuntime {
		versions = deps.NewPkgConfigProbe()
	}
	var libraries port.LibraryProbe
	if !doctorSkipLibraries {
		if err := deps.ApplyPrefixEnv(cfg.Engine.RuntimePrefix); err != nil {
			return fmt.Errorf("apply runtime prefix: %w", err)
		}
		libraries = webkit.NewLibraryLoader(ctx)
	}

	resources := cfg.Engine.ResourcesDir
	if resources == "" {
		resources = engine.ResourcesPath()
	}

	out, err := usecase.NewDiagnoseUseCase(versions, libraries).Execute(ctx, usecase.DiagnoseInput{
		Prefix:       cfg.Engine.RuntimePrefix,
		ResourcesDir: resources,
		Pages: map[string]string{
			"navbar": surface.ResolveURL(resources, cfg.Surface.NavBarURL),
			"shell":  surface.ResolveURL(resources, cfg.Surface.ShellURL),
		},
	})
	if err != nil {
		return err
	}

	report := styles.DoctorReport{
		Diagnostics:   out,
		ConfigFile:    app.ConfigFile(),
		CoreDumpLimit: coreDumpLimit(),
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(report))

	if !out.OK() {
		return fmt.Errorf("websurface requirements not met")
	}
	return nil
}
