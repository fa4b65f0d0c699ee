package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/solrun/vegakort/internal/config"
	"github.com/solrun/vegakort/pkg/buildinfo"
)

// Execute runs the vegakort CLI and returns an error if any command fails.
//
// The root command wires the logger (info level by default, debug with
// --verbose) and the TOML configuration into the command context; all
// subcommands read both from there.
func Execute(ctx context.Context) error {
	var (
		verbose bool
		cfgPath string
	)

	root := &cobra.Command{
		Use:          "vegakort",
		Short:        "Vegakort builds and queries Iceland's road network graph",
		Long:         `Vegakort fetches the IS 50V road layer, builds a road-network graph with per-segment classification and geometry, attaches live traffic counts, and renders or serves derived views.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/vegakort/config.toml)")

	root.AddCommand(newFetchCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newFilterCmd())
	root.AddCommand(newCyclesCmd())
	root.AddCommand(newNearestCmd())
	root.AddCommand(newTrafficCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newWeatherCmd())
	root.AddCommand(newCameraCmd())

	return root.ExecuteContext(ctx)
}

// withConfig returns a new context with the loaded configuration attached.
func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the configuration from ctx, falling back to
// the defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
