package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/cache"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/plan"
)

// wallOpts holds the flags shared by every command that builds a wall.
// Zero values mean "not set"; the profile fills the gaps at run time,
// since the profile is only loaded after flag registration.
type wallOpts struct {
	width   float64
	height  float64
	bond    string
	noCache bool
}

// addWallFlags registers the shared wall flags on a command.
func addWallFlags(cmd *cobra.Command, opts *wallOpts) {
	cmd.Flags().Float64Var(&opts.width, "width", 0, "wall width in mm (default 2300)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "wall height in mm (default 2000)")
	cmd.Flags().StringVarP(&opts.bond, "bond", "b", "", "bond pattern: stretcher, english-cross, wild")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
}

// resolve merges flag values over profile values.
func (o wallOpts) resolve(p Profile) wallOpts {
	out := o
	if out.width == 0 {
		out.width = p.Wall.Width
	}
	if out.height == 0 {
		out.height = p.Wall.Height
	}
	if out.bond == "" {
		out.bond = p.Wall.Bond
	}
	if p.Cache.Disabled {
		out.noCache = true
	}
	return out
}

// newPlanner builds a planning session from resolved options.
func newPlanner(ctx context.Context, p Profile, opts wallOpts) (*plan.Planner, error) {
	opts = opts.resolve(p)

	t, err := bond.Parse(opts.bond)
	if err != nil {
		return nil, err
	}

	layoutCache := cache.NewNullCache()
	if !opts.noCache {
		dir, err := cacheDir(p)
		if err == nil {
			if fc, err := cache.NewFileCache(dir); err == nil {
				layoutCache = fc
			}
		}
	}

	return plan.New(plan.Options{
		Width:       opts.width,
		Height:      opts.height,
		Bond:        t,
		Logger:      loggerFromContext(ctx),
		LayoutCache: layoutCache,
	})
}
