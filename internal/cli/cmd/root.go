// Package cmd provides the websurface cobra commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/websurface/internal/cli"
	"github.com/bnema/websurface/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "websurface",
		Short: "Native GTK window hosting web surfaces",
		Long: `websurface hosts web content inside a native GTK 4 window.

A navigation bar and a transparent shell are rendered by WebKitGTK. Pages
talk to the host through a JSON command bridge, and native widgets show
through holes the shell page reports.

Use 'websurface run' to open the window and 'websurface doctor' to check
that the engine runtime and resources are in place.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := exitCode(err); ok {
			return code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// GetApp returns the initialized app.
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information reported by about.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
