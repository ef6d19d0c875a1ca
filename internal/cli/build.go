package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/render"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/report"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	wallOpts
	reportPath string // write a JSON build report here
	svgPath    string // write a final SVG snapshot here
	archive    bool   // archive the report to MongoDB
}

// newBuildCmd creates the build command: run the stride planner until
// the wall is complete and print the build statistics.
func newBuildCmd(profile *Profile) *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Plan and build the whole wall",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, *profile, opts)
		},
	}

	addWallFlags(cmd, &opts.wallOpts)
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "write a JSON build report to this path")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write a final SVG snapshot to this path")
	cmd.Flags().BoolVar(&opts.archive, "archive", false, "archive the build report to MongoDB")

	return cmd
}

func runBuild(cmd *cobra.Command, profile Profile, opts buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	p, err := newPlanner(ctx, profile, opts.wallOpts)
	if err != nil {
		return err
	}

	w := p.Wall()
	logger.Info("planning build",
		"bond", w.Pattern(), "width", w.Width(), "height", w.Height(), "bricks", w.TotalBricks())

	complete := p.BuildAll()
	prog.done(fmt.Sprintf("Placed %d bricks", w.PlacedBricks()))

	if complete {
		printSuccess("Wall complete")
	} else {
		printError("Build stalled at %d/%d bricks", w.PlacedBricks(), w.TotalBricks())
	}
	printKeyValue("Bond", w.Pattern())
	printKeyValue("Bricks", fmt.Sprintf("%d/%d", w.PlacedBricks(), w.TotalBricks()))
	printKeyValue("Strides", fmt.Sprintf("%d", w.StridesUsed()))
	printKeyValue("Movement cost", fmt.Sprintf("%.1f", w.MovementCost()))

	rep := report.FromTelemetry(p.Telemetry())

	if opts.reportPath != "" {
		if err := rep.WriteFile(opts.reportPath); err != nil {
			return err
		}
		printFile(opts.reportPath)
	}
	if opts.svgPath != "" {
		svg := render.RenderSVG(p.Telemetry(), render.WithGrid(), render.WithStats(), render.WithRobot())
		if err := os.WriteFile(opts.svgPath, svg, 0644); err != nil {
			return err
		}
		printFile(opts.svgPath)
	}
	if opts.archive {
		if profile.Serve.MongoURI == "" {
			return fmt.Errorf("--archive requires mongo_uri in the config file")
		}
		archiver, err := report.NewMongoArchiver(ctx, report.MongoConfig{
			URI:      profile.Serve.MongoURI,
			Database: profile.Serve.MongoDatabase,
		})
		if err != nil {
			return err
		}
		defer archiver.Close(ctx)

		id, err := archiver.Archive(ctx, rep)
		if err != nil {
			return err
		}
		printDetail("Archived as %s", id)
	}
	return nil
}
