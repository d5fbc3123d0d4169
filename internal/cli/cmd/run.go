package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/websurface/internal/bootstrap"
	"github.com/bnema/websurface/internal/infrastructure/config"
	"github.com/bnema/websurface/internal/infrastructure/deps"
	"github.com/bnema/websurface/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run [url]",
	Short: "Open the websurface window",
	Long: `Open the GTK window with the navigation bar and the shell.

If a URL is given the shell loads it instead of the configured page.
Relative paths resolve against the resources directory.

Examples:
  websurface run
  websurface run web/shell/index.html
  websurface run https://example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	url := ""
	if len(args) > 0 {
		url = args[0]
	}

	if err := deps.ApplyPrefixEnv(app.Config.Engine.RuntimePrefix); err != nil {
		return fmt.Errorf("apply runtime prefix: %w", err)
	}

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			level := logging.ParseLevel(cfg.Logging.Level)
			zerolog.SetGlobalLevel(level)
			log.Info().Str("level", level.String()).Msg("configuration reloaded, engine settings apply on restart")
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	log.Info().
		Str("version", app.BuildInfo.Version).
		Str("commit", app.BuildInfo.Commit).
		Msg("starting websurface")

	// GTK needs the program name only; cobra already consumed the rest.
	if code := bootstrap.RunGUI(ctx, app.Config, os.Args[:1], url); code != 0 {
		return &exitError{code: code}
	}
	return nil
}
