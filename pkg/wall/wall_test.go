package wall

import (
	"math"
	"testing"
)

// twoByTwo builds a tiny wall: two courses of two bricks each.
func twoByTwo() *Wall {
	grid := []Course{
		{{Length: FullBrickLength, Orientation: Stretcher}, {Length: FullBrickLength, Orientation: Stretcher}},
		{{Length: FullBrickLength, Orientation: Stretcher}, {Length: FullBrickLength, Orientation: Stretcher}},
	}
	return New(430, 125, "Test Bond", grid)
}

func TestNewCountsBricks(t *testing.T) {
	w := twoByTwo()
	if w.TotalBricks() != 4 {
		t.Errorf("TotalBricks = %d, want 4", w.TotalBricks())
	}
	if w.PlacedBricks() != 0 {
		t.Errorf("PlacedBricks = %d, want 0", w.PlacedBricks())
	}
	if w.IsComplete() {
		t.Error("new wall should not be complete")
	}
	if !w.HasUnbuiltBricks() {
		t.Error("new wall should have unbuilt bricks")
	}
}

func TestComputePositions(t *testing.T) {
	w := twoByTwo()

	tests := []struct {
		name  string
		coord Coord
		wantX float64
		wantY float64
	}{
		{"first brick at origin", Coord{0, 0}, 0, 0},
		{"second brick after head joint", Coord{0, 1}, FullBrickLength + HeadJoint, 0},
		{"second course at course height", Coord{1, 0}, 0, CourseHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := w.PositionAt(tt.coord)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("PositionAt(%v) = (%.1f, %.1f), want (%.1f, %.1f)",
					tt.coord, p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCourseWidth(t *testing.T) {
	c := Course{
		{Length: FullBrickLength, Orientation: Stretcher},
		{Length: HalfBrickLength, Orientation: Stretcher},
	}
	want := FullBrickLength + HeadJoint + HalfBrickLength
	if got := c.Width(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Width = %.1f, want %.1f", got, want)
	}

	if got := (Course{}).Width(); got != 0 {
		t.Errorf("empty course Width = %.1f, want 0", got)
	}
}

func TestPositionOverlap(t *testing.T) {
	p := Position{X: 100, Length: 210}

	tests := []struct {
		name   string
		x0, x1 float64
		want   float64
	}{
		{"full cover", 0, 400, 210},
		{"partial left", 0, 150, 50},
		{"partial right", 250, 400, 60},
		{"no overlap", 320, 400, 0},
		{"touching edge", 310, 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Overlap(tt.x0, tt.x1); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Overlap(%.0f, %.0f) = %.1f, want %.1f", tt.x0, tt.x1, got, tt.want)
			}
		})
	}
}

func TestMoveCostWeights(t *testing.T) {
	from := Point{X: 0, Y: 0}
	to := Point{X: 100, Y: 100}
	want := 100*HorizontalMoveCost + 100*VerticalMoveCost
	if got := MoveCost(from, to); math.Abs(got-want) > 1e-9 {
		t.Errorf("MoveCost = %.1f, want %.1f", got, want)
	}

	// Symmetric
	if MoveCost(from, to) != MoveCost(to, from) {
		t.Error("MoveCost should be symmetric")
	}
}

func TestCommitBookkeeping(t *testing.T) {
	w := twoByTwo()
	c := Coord{0, 0}
	center := w.PositionAt(c).Center()
	wantCost := MoveCost(w.Robot(), center)

	cost := w.Commit(c)
	if math.Abs(cost-wantCost) > 1e-9 {
		t.Errorf("Commit cost = %.1f, want %.1f", cost, wantCost)
	}
	if !w.Built(c) {
		t.Error("brick should be built after Commit")
	}
	if w.PlacedBricks() != 1 {
		t.Errorf("PlacedBricks = %d, want 1", w.PlacedBricks())
	}
	if w.Robot() != center {
		t.Errorf("robot should move to brick center, got %v", w.Robot())
	}
	if w.StrideID(c) != 0 {
		t.Errorf("StrideID = %d, want 0", w.StrideID(c))
	}
	if math.Abs(w.MovementCost()-wantCost) > 1e-9 {
		t.Errorf("MovementCost = %.1f, want %.1f", w.MovementCost(), wantCost)
	}
}

func TestStrideCountedOncePerRound(t *testing.T) {
	w := twoByTwo()

	// First stride: two placements, one stride counted.
	w.BeginStride()
	w.Commit(Coord{0, 0})
	w.Commit(Coord{0, 1})
	if w.StridesUsed() != 1 {
		t.Errorf("StridesUsed = %d, want 1", w.StridesUsed())
	}

	// A round that commits nothing leaves the counter untouched.
	w.AdvanceStride()
	w.BeginStride()
	if w.StridesUsed() != 1 {
		t.Errorf("StridesUsed after empty round = %d, want 1", w.StridesUsed())
	}

	// Next productive round counts again.
	w.Commit(Coord{1, 0})
	w.Commit(Coord{1, 1})
	if w.StridesUsed() != 2 {
		t.Errorf("StridesUsed = %d, want 2", w.StridesUsed())
	}
	if !w.IsComplete() {
		t.Error("wall should be complete")
	}
	if w.StrideID(Coord{1, 0}) != 1 {
		t.Errorf("second round StrideID = %d, want 1", w.StrideID(Coord{1, 0}))
	}
}

func TestQueueOperations(t *testing.T) {
	w := twoByTwo()
	batch := []Coord{{0, 0}, {0, 1}}
	w.SetQueue(batch)

	if w.QueueLen() != 2 {
		t.Errorf("QueueLen = %d, want 2", w.QueueLen())
	}
	if !w.InQueue(Coord{0, 1}) {
		t.Error("InQueue should find queued brick")
	}
	if w.InQueue(Coord{1, 0}) {
		t.Error("InQueue should not find unqueued brick")
	}

	c, ok := w.PopQueue()
	if !ok || c != (Coord{0, 0}) {
		t.Errorf("PopQueue = %v, %v", c, ok)
	}
	if w.QueueLen() != 1 {
		t.Errorf("QueueLen after pop = %d, want 1", w.QueueLen())
	}

	w.BeginStride()
	if w.QueueLen() != 0 {
		t.Error("BeginStride should clear the queue")
	}
	if _, ok := w.PopQueue(); ok {
		t.Error("PopQueue on empty queue should report false")
	}
}

func TestClampStrideOrigin(t *testing.T) {
	w := New(DefaultWallWidth, DefaultWallHeight, "Test Bond", []Course{
		{{Length: FullBrickLength, Orientation: Stretcher}},
	})

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 500, 300, 500, 300},
		{"negative", -100, -50, 0, 0},
		{"beyond right", 3000, 0, DefaultWallWidth - StrideWidth, 0},
		{"beyond top", 0, 3000, 0, DefaultWallHeight - StrideHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := w.ClampStrideOrigin(tt.x, tt.y)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ClampStrideOrigin(%.0f, %.0f) = (%.0f, %.0f), want (%.0f, %.0f)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestInStride(t *testing.T) {
	w := twoByTwo()

	if !w.InStride(Coord{0, 0}, 0, 0) {
		t.Error("brick at origin should be inside a stride at origin")
	}
	// Brick starting at 220 is outside a stride ending at 200.
	if w.InStride(Coord{0, 1}, -600, 0) {
		t.Error("brick beyond the right stride edge should be outside")
	}
}

func TestTelemetrySnapshot(t *testing.T) {
	w := twoByTwo()
	w.BeginStride()
	w.Commit(Coord{0, 0})
	w.SetQueue([]Coord{{0, 1}})

	snap := w.Telemetry()
	if snap.Pattern != "Test Bond" {
		t.Errorf("Pattern = %q", snap.Pattern)
	}
	if snap.Placed != 1 || snap.Total != 4 {
		t.Errorf("Placed/Total = %d/%d, want 1/4", snap.Placed, snap.Total)
	}
	if !snap.Grid[0][0].Built {
		t.Error("snapshot should mark built brick")
	}
	if snap.Grid[0][0].Stride != 0 {
		t.Errorf("built brick stride = %d, want 0", snap.Grid[0][0].Stride)
	}
	if snap.Grid[1][1].Stride != -1 {
		t.Errorf("unbuilt brick stride = %d, want -1", snap.Grid[1][1].Stride)
	}
	if len(snap.Queue) != 1 {
		t.Errorf("queue length = %d, want 1", len(snap.Queue))
	}
	if snap.Complete {
		t.Error("snapshot should not be complete")
	}
}

func TestNumCourses(t *testing.T) {
	if got := NumCourses(DefaultWallHeight); got != 32 {
		t.Errorf("NumCourses(%v) = %d, want 32", DefaultWallHeight, got)
	}
}
