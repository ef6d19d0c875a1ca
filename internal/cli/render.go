package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	wallOpts
	output  string // output file path
	built   bool   // build the wall before rendering
	noGrid  bool
	noStats bool
}

// newRenderCmd creates the render command for SVG snapshots. By default
// it renders the empty layout; with --built it runs the planner first so
// the snapshot shows the stride color bands.
func newRenderCmd(profile *Profile) *cobra.Command {
	opts := renderOpts{output: "wall.svg"}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the wall as an SVG snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlanner(cmd.Context(), *profile, opts.wallOpts)
			if err != nil {
				return err
			}
			if opts.built {
				p.BuildAll()
			}

			svgOpts := []render.SVGOption{render.WithRobot()}
			if !opts.noGrid {
				svgOpts = append(svgOpts, render.WithGrid())
			}
			if !opts.noStats {
				svgOpts = append(svgOpts, render.WithStats())
			}

			svg := render.RenderSVG(p.Telemetry(), svgOpts...)
			if err := os.WriteFile(opts.output, svg, 0644); err != nil {
				return err
			}
			printSuccess("Rendered %s", p.Wall().Pattern())
			printFile(opts.output)
			return nil
		},
	}

	addWallFlags(cmd, &opts.wallOpts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().BoolVar(&opts.built, "built", false, "run the planner to completion before rendering")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", false, "omit the background grid")
	cmd.Flags().BoolVar(&opts.noStats, "no-stats", false, "omit the stats block")

	return cmd
}
