package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization
// with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the masonry CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (build,
// plan, render, tui, serve, cache), configures logging based on the
// --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose bool
		cfgPath string
	)
	profile := defaultProfile()

	root := &cobra.Command{
		Use:          "masonry",
		Short:        "Masonry plans robotic brick wall builds",
		Long:         `Masonry simulates a reach-limited bricklaying robot: it generates bond layouts, plans stride-by-stride placement orders that respect structural support, and tracks robot movement cost across the build.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)

			p, err := loadProfile(cfgPath)
			if err != nil {
				return err
			}
			profile = p
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("masonry %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.config/masonry/config.toml)")

	root.AddCommand(newBuildCmd(&profile))
	root.AddCommand(newPlanCmd(&profile))
	root.AddCommand(newRenderCmd(&profile))
	root.AddCommand(newTUICmd(&profile))
	root.AddCommand(newServeCmd(&profile))
	root.AddCommand(newCacheCmd(&profile))

	return root.ExecuteContext(ctx)
}
