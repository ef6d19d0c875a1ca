package render

import (
	"strings"
	"testing"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

func snapshot(t *testing.T) wall.Telemetry {
	t.Helper()
	grid := bond.Generate(bond.EnglishCrossBond, wall.DefaultWallWidth, wall.DefaultWallHeight)
	w := wall.New(wall.DefaultWallWidth, wall.DefaultWallHeight, "English Cross Bond", grid)
	w.BeginStride()
	w.Commit(wall.Coord{Course: 0, Index: 0})
	w.SetQueue([]wall.Coord{{Course: 0, Index: 1}})
	return w.Telemetry()
}

func TestRenderSVGBasics(t *testing.T) {
	svg := string(RenderSVG(snapshot(t)))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Fatal("output is not a complete SVG document")
	}
	if !strings.Contains(svg, "<rect") {
		t.Error("expected brick rectangles")
	}
	// Built brick uses the first stride color, queued brick the highlight.
	if !strings.Contains(svg, strideColors[0]) {
		t.Error("expected a built brick in the stride color")
	}
	if !strings.Contains(svg, currentStrideColor) {
		t.Error("expected a queued brick in the current-stride color")
	}
	// Headers get diagonal markers.
	if !strings.Contains(svg, "<line") {
		t.Error("expected header diagonals")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	snap := snapshot(t)

	plain := string(RenderSVG(snap))
	if strings.Contains(plain, "<circle") {
		t.Error("robot marker should be opt-in")
	}
	if strings.Contains(plain, "<text") {
		t.Error("stats block should be opt-in")
	}

	full := string(RenderSVG(snap, WithGrid(), WithStats(), WithRobot()))
	if !strings.Contains(full, "<circle") {
		t.Error("expected robot marker")
	}
	if !strings.Contains(full, "Bricks placed: 1/") {
		t.Error("expected stats block")
	}
	if len(full) <= len(plain) {
		t.Error("options should add content")
	}
}

func TestIsCustomLength(t *testing.T) {
	tests := []struct {
		length float64
		want   bool
	}{
		{wall.FullBrickLength, false},
		{wall.HalfBrickLength, false},
		{wall.FullBrickWidth, false},
		{52.5, true},
		{157.5, true},
	}
	for _, tt := range tests {
		if got := isCustomLength(tt.length); got != tt.want {
			t.Errorf("isCustomLength(%.1f) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestEscapeText(t *testing.T) {
	if got := escapeText("a < b & c > d"); got != "a &lt; b &amp; c &gt; d" {
		t.Errorf("escapeText = %q", got)
	}
}
