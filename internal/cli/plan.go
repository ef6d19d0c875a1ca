package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPlanCmd creates the plan command: show the placement order the
// optimizer chose for the next stride without placing anything.
func newPlanCmd(profile *Profile) *cobra.Command {
	var opts wallOpts

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the planned placement order for the first stride",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlanner(cmd.Context(), *profile, opts)
			if err != nil {
				return err
			}

			w := p.Wall()
			queue := w.Queue()

			fmt.Println(StyleTitle.Render(fmt.Sprintf("%s - %d bricks total", w.Pattern(), w.TotalBricks())))
			printKeyValue("Robot start", fmt.Sprintf("(%.1f, %.1f)", w.Robot().X, w.Robot().Y))
			printKeyValue("First stride", fmt.Sprintf("%d bricks", len(queue)))

			for i, c := range queue {
				pos := w.PositionAt(c)
				printDetail("%3d. course %2d index %2d at (%.1f, %.1f)", i+1, c.Course, c.Index, pos.X, pos.Y)
			}
			return nil
		},
	}

	addWallFlags(cmd, &opts)
	return cmd
}
