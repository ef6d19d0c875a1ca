package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/plan"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// newTUICmd creates the tui command: an interactive terminal build.
func newTUICmd(profile *Profile) *cobra.Command {
	var opts wallOpts

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Build the wall interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPlanner(cmd.Context(), *profile, opts)
			if err != nil {
				return err
			}
			model := newBuildModel(p)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	addWallFlags(cmd, &opts)
	return cmd
}

// =============================================================================
// BuildModel - Interactive wall building
// =============================================================================

// charsPerBrickUnit scales brick lengths to terminal cells.
const charsPerBrickUnit = 25.0 // mm per character

// Wall cell styles. Built bricks reuse the SVG stride palette idea with
// terminal colors.
var (
	tuiUnbuiltStyle = lipgloss.NewStyle().Foreground(colorDim)
	tuiQueuedStyle  = lipgloss.NewStyle().Foreground(colorYellow)

	tuiStrideStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		lipgloss.NewStyle().Foreground(lipgloss.Color("83")),  // green
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // blue
		lipgloss.NewStyle().Foreground(lipgloss.Color("227")), // yellow
		lipgloss.NewStyle().Foreground(lipgloss.Color("213")), // magenta
		lipgloss.NewStyle().Foreground(lipgloss.Color("123")), // cyan
		lipgloss.NewStyle().Foreground(lipgloss.Color("137")), // brown
		lipgloss.NewStyle().Foreground(lipgloss.Color("149")), // light green
		lipgloss.NewStyle().Foreground(lipgloss.Color("110")), // light blue
	}
)

// BuildModel is the bubbletea model for interactive building.
type BuildModel struct {
	planner *plan.Planner
	err     error
}

// newBuildModel creates a build model around an initialized planner.
func newBuildModel(p *plan.Planner) BuildModel {
	return BuildModel{planner: p}
}

func (m BuildModel) Init() tea.Cmd {
	return nil
}

func (m BuildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "1":
			m.err = m.planner.Reset(bond.StretcherBond)
		case "2":
			m.err = m.planner.Reset(bond.EnglishCrossBond)
		case "3":
			m.err = m.planner.Reset(bond.WildBond)
		case "enter":
			m.planner.PlaceOne()
		case "s":
			m.planner.PlaceStride()
		case "a":
			m.planner.BuildAll()
		}
	}
	return m, nil
}

func (m BuildModel) View() string {
	if m.err != nil {
		return StyleWarning.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}

	w := m.planner.Wall()
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Wall (%.0fmm x %.0fmm) - %s", w.Width(), w.Height(), w.Pattern())))
	b.WriteString("\n\n")

	// Courses are stored bottom-up; draw top-down.
	for course := w.Courses() - 1; course >= 0; course-- {
		b.WriteString(renderCourseRow(w, course))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Bricks placed: %d/%d, Strides used: %d\n",
		w.PlacedBricks(), w.TotalBricks(), w.StridesUsed()))
	b.WriteString(fmt.Sprintf("Robot position: (%.1fmm, %.1fmm), Total movement cost: %.1f\n",
		w.Robot().X, w.Robot().Y, w.MovementCost()))
	b.WriteString(fmt.Sprintf("Bricks in current stride: %d\n", w.QueueLen()))
	b.WriteString(StyleValue.Render(w.Message()))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("1/2/3 bond · ENTER brick · s stride · a all · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderCourseRow draws one course as colored cells, one character per
// 25mm so a full brick reads as 8 cells plus its head joint.
func renderCourseRow(w *wall.Wall, course int) string {
	var row strings.Builder
	for i := 0; i < w.CourseLen(course); i++ {
		c := wall.Coord{Course: course, Index: i}
		brick, _ := w.BrickAt(c)
		cells := int(brick.Length/charsPerBrickUnit + 0.5)
		if cells < 1 {
			cells = 1
		}

		var style lipgloss.Style
		var ch string
		switch {
		case brick.Built:
			style = tuiStrideStyles[w.StrideID(c)%len(tuiStrideStyles)]
			ch = "█"
		case w.InQueue(c):
			style = tuiQueuedStyle
			ch = "▒"
		default:
			style = tuiUnbuiltStyle
			ch = "░"
		}
		row.WriteString(style.Render(strings.Repeat(ch, cells)))
		if i < w.CourseLen(course)-1 {
			row.WriteString(" ")
		}
	}
	return row.String()
}
