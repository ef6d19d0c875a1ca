// Package render produces SVG snapshots of a wall's build state. The
// renderer draws from a telemetry snapshot rather than a live wall, so
// serve mode can render archived sessions the same way as live ones.
package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// Scale converts millimetres to SVG user units.
const Scale = 0.3

// statsSpace is the extra vertical room below the wall for the stats
// block, in user units.
const statsSpace = 120.0

// Palette. Built bricks cycle through the stride palette so the reach
// envelope of each stride reads as a color band.
var (
	backgroundColor    = "#f0f0f0"
	unbuiltColor       = "#dcdcdc"
	currentStrideColor = "#c8c864"
	outlineColor       = "#000000"
	gridColor          = "#b4b4b4"
	robotColor         = "#0000ff"

	strideColors = []string{
		"#ff6464", // red
		"#64ff64", // green
		"#6464ff", // blue
		"#ffff64", // yellow
		"#ff64ff", // magenta
		"#64ffff", // cyan
		"#c89664", // brown
		"#96c864", // light green
		"#6496c8", // light blue
	}
)

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	grid  bool
	stats bool
	robot bool
}

// WithGrid draws a 100-unit background grid behind the wall.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// WithStats appends the build statistics block below the wall.
func WithStats() SVGOption { return func(r *svgRenderer) { r.stats = true } }

// WithRobot marks the robot's current position.
func WithRobot() SVGOption { return func(r *svgRenderer) { r.robot = true } }

// RenderSVG renders a telemetry snapshot as a standalone SVG document.
func RenderSVG(t wall.Telemetry, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	wallW := t.Width * Scale
	wallH := t.Height * Scale
	totalH := wallH
	if r.stats {
		totalH += statsSpace
	}

	queued := make(map[wall.Coord]struct{}, len(t.Queue))
	for _, c := range t.Queue {
		queued[c] = struct{}{}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		wallW, totalH, wallW, totalH)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", wallW, totalH, backgroundColor)

	if r.grid {
		renderGrid(&buf, wallW, wallH)
	}
	renderBricks(&buf, t, wallH, queued)
	if r.robot {
		// SVG y grows downward; wall y grows upward.
		fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="5" fill="%s"/>`+"\n",
			t.Robot.X*Scale, wallH-t.Robot.Y*Scale, robotColor)
	}
	if r.stats {
		renderStats(&buf, t, wallH, len(t.Queue))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, wallW, wallH float64) {
	for x := 0.0; x <= wallW; x += 100 {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			x, x, wallH, gridColor)
	}
	for y := 0.0; y <= wallH; y += 100 {
		fmt.Fprintf(buf, `  <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			wallH-y, wallW, wallH-y, gridColor)
	}
}

func renderBricks(buf *bytes.Buffer, t wall.Telemetry, wallH float64, queued map[wall.Coord]struct{}) {
	for course, row := range t.Grid {
		x := 0.0
		brickY := float64(course) * wall.CourseHeight
		for i, cell := range row {
			px := x * Scale
			py := wallH - (brickY+wall.FullBrickHeight)*Scale
			pw := cell.Length * Scale
			ph := wall.FullBrickHeight * Scale

			fill := unbuiltColor
			if cell.Built {
				fill = strideColors[cell.Stride%len(strideColors)]
			} else if _, ok := queued[wall.Coord{Course: course, Index: i}]; ok {
				fill = currentStrideColor
			}

			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
				px, py, pw, ph, fill, outlineColor)

			if cell.Orientation == wall.Header {
				fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
					px, py, px+pw, py+ph, outlineColor)
				fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
					px, py+ph, px+pw, py, outlineColor)
			}
			if isCustomLength(cell.Length) {
				mid := px + pw/2
				fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
					mid, py, mid, py+ph, outlineColor)
			}

			x += cell.Length + wall.HeadJoint
		}
	}
}

// isCustomLength reports whether a brick was cut to a non-standard size.
// Custom bricks get a vertical tick so they stand out in the drawing.
func isCustomLength(length float64) bool {
	for _, std := range []float64{wall.FullBrickLength, wall.HalfBrickLength, wall.FullBrickWidth} {
		if math.Abs(length-std) <= 1 {
			return false
		}
	}
	return true
}

func renderStats(buf *bytes.Buffer, t wall.Telemetry, wallH float64, queueLen int) {
	lines := []string{
		fmt.Sprintf("Wall (%.0fmm x %.0fmm) - %s", t.Width, t.Height, t.Pattern),
		fmt.Sprintf("Bricks placed: %d/%d, Strides used: %d", t.Placed, t.Total, t.Strides),
		fmt.Sprintf("Robot position: (%.1fmm, %.1fmm), Total movement cost: %.1f", t.Robot.X, t.Robot.Y, t.MovementCost),
		fmt.Sprintf("Bricks in current stride: %d", queueLen),
		t.Message,
	}
	for i, line := range lines {
		fmt.Fprintf(buf, `  <text x="10" y="%.1f" font-family="monospace" font-size="14" fill="%s">%s</text>`+"\n",
			wallH+20+float64(i)*20, outlineColor, escapeText(line))
	}
}

func escapeText(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			out.WriteString("&amp;")
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
