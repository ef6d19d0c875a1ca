package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// newTestWall generates a default-size wall for the given bond, with
// the bond's starting heuristic applied.
func newTestWall(t *testing.T, bt bond.Type) *wall.Wall {
	t.Helper()
	grid := bond.Generate(bt, wall.DefaultWallWidth, wall.DefaultWallHeight)
	w := wall.New(wall.DefaultWallWidth, wall.DefaultWallHeight, bt.String(), grid)
	w.SetRobot(bond.ForType(bt, wall.DefaultWallWidth).StartPosition(w))
	return w
}

func newTestOptimizer(w *wall.Wall) *StrideOptimizer {
	return NewStrideOptimizer(w, NewSupportChecker(w), nil)
}

func TestComputeNextStrideQueuesBricks(t *testing.T) {
	w := newTestWall(t, bond.StretcherBond)
	o := newTestOptimizer(w)

	require.True(t, o.ComputeNextStride())
	assert.Greater(t, w.QueueLen(), 0)
}

func TestComputeNextStrideOnCompleteWall(t *testing.T) {
	w := newTestWall(t, bond.StretcherBond)
	for course := 0; course < w.Courses(); course++ {
		for i := 0; i < w.CourseLen(course); i++ {
			w.Commit(wall.Coord{Course: course, Index: i})
		}
	}
	o := newTestOptimizer(w)

	assert.False(t, o.ComputeNextStride())
}

// The queue must be valid to execute front to back: every brick is
// supported by built bricks plus the queued bricks ahead of it.
func TestQueueIsExecutableInOrder(t *testing.T) {
	for _, bt := range bond.Types() {
		w := newTestWall(t, bt)
		o := newTestOptimizer(w)
		support := NewSupportChecker(w)

		require.True(t, o.ComputeNextStride(), bt.String())

		ahead := make(map[wall.Coord]struct{})
		for _, c := range w.Queue() {
			ok := c.Course == 0 || support.IsSupported(c) || support.WouldBeSupported(c, ahead)
			assert.True(t, ok, "%v: brick %v not placeable in queue order", bt, c)
			ahead[c] = struct{}{}
		}
	}
}

// Queued courses never decrease: the order is bottom-up.
func TestQueueIsBottomUp(t *testing.T) {
	w := newTestWall(t, bond.StretcherBond)
	o := newTestOptimizer(w)
	require.True(t, o.ComputeNextStride())

	prev := -1
	for _, c := range w.Queue() {
		assert.GreaterOrEqual(t, c.Course, prev)
		prev = c.Course
	}
}

// The first stride anchors at the robot heuristic position instead of
// searching, so every queued brick fits one stride footprint there.
func TestFirstStrideWithinReach(t *testing.T) {
	w := newTestWall(t, bond.StretcherBond)
	o := newTestOptimizer(w)
	require.True(t, o.ComputeNextStride())

	sx, sy := w.ClampStrideOrigin(w.Robot().X-wall.StrideWidth/2, 0)
	for _, c := range w.Queue() {
		assert.True(t, w.InStride(c, sx, sy), "brick %v outside the first stride", c)
	}
}

// A wall narrower than the stride footprint has no fully-contained grid
// origin; planning must still make progress through the fallback scan.
func TestNarrowWallFallsBack(t *testing.T) {
	width := 650.0 // narrower than the 800mm stride
	grid := bond.Generate(bond.StretcherBond, width, wall.DefaultWallHeight)
	w := wall.New(width, wall.DefaultWallHeight, "Stretcher Bond", grid)
	o := newTestOptimizer(w)

	// Skip the anchored first round by building one brick up front.
	w.Commit(wall.Coord{Course: 0, Index: 0})

	require.True(t, o.ComputeNextStride())
	assert.Greater(t, w.QueueLen(), 0)
}

func TestScoreBatchPrefersLargerBatches(t *testing.T) {
	w := newTestWall(t, bond.StretcherBond)
	o := newTestOptimizer(w)

	small := []wall.Coord{{Course: 0, Index: 0}}
	large := []wall.Coord{{Course: 0, Index: 0}, {Course: 0, Index: 1}, {Course: 0, Index: 2}}
	assert.Greater(t, o.scoreBatch(large), o.scoreBatch(small))
}

func TestPlaceableClosureStacksCourses(t *testing.T) {
	w := newTestWall(t, bond.StretcherBond)
	o := newTestOptimizer(w)

	sx, sy := w.ClampStrideOrigin(w.Width()/2-wall.StrideWidth/2, 0)
	batch := o.placeableInStride(sx, sy)
	require.NotEmpty(t, batch)

	courses := make(map[int]bool)
	for _, c := range batch {
		courses[c.Course] = true
	}
	assert.True(t, len(courses) > 1,
		"closure should chain placements beyond course 0, got courses %v", courses)
}
