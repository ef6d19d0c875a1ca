package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// stackedWall builds two courses of identically aligned full bricks, so
// each upper brick rests exactly on the one below it.
func stackedWall() *wall.Wall {
	row := wall.Course{
		{Length: wall.FullBrickLength, Orientation: wall.Stretcher},
		{Length: wall.FullBrickLength, Orientation: wall.Stretcher},
		{Length: wall.FullBrickLength, Orientation: wall.Stretcher},
	}
	grid := []wall.Course{
		append(wall.Course(nil), row...),
		append(wall.Course(nil), row...),
	}
	return wall.New(row.Width(), 125, "Test Bond", grid)
}

func TestCourseZeroAlwaysSupported(t *testing.T) {
	w := stackedWall()
	s := NewSupportChecker(w)

	for i := 0; i < w.CourseLen(0); i++ {
		assert.True(t, s.IsSupported(wall.Coord{Course: 0, Index: i}))
	}
}

func TestUnsupportedWithoutBricksBelow(t *testing.T) {
	w := stackedWall()
	s := NewSupportChecker(w)

	assert.False(t, s.IsSupported(wall.Coord{Course: 1, Index: 0}))
}

func TestSupportedByExactCover(t *testing.T) {
	w := stackedWall()
	s := NewSupportChecker(w)

	w.Commit(wall.Coord{Course: 0, Index: 1})
	assert.True(t, s.IsSupported(wall.Coord{Course: 1, Index: 1}))
	assert.False(t, s.IsSupported(wall.Coord{Course: 1, Index: 0}),
		"neighbor gets no support from a brick that does not overlap it")
}

func TestPartialSupportBelowThreshold(t *testing.T) {
	// Offset upper course: the upper brick straddles two lower bricks,
	// so a single built lower brick covers only about half of it.
	lower := wall.Course{
		{Length: wall.FullBrickLength, Orientation: wall.Stretcher},
		{Length: wall.FullBrickLength, Orientation: wall.Stretcher},
	}
	upper := wall.Course{
		{Length: wall.HalfBrickLength, Orientation: wall.Stretcher},
		{Length: wall.FullBrickLength, Orientation: wall.Stretcher},
		{Length: wall.HalfBrickLength, Orientation: wall.Stretcher},
	}
	w := wall.New(lower.Width(), 125, "Test Bond", []wall.Course{lower, upper})
	s := NewSupportChecker(w)

	w.Commit(wall.Coord{Course: 0, Index: 0})
	assert.False(t, s.IsSupported(wall.Coord{Course: 1, Index: 1}),
		"straddling brick with one side built is below the support threshold")

	w.Commit(wall.Coord{Course: 0, Index: 1})
	assert.True(t, s.IsSupported(wall.Coord{Course: 1, Index: 1}))
}

func TestWouldBeSupported(t *testing.T) {
	w := stackedWall()
	s := NewSupportChecker(w)
	c := wall.Coord{Course: 1, Index: 0}

	assert.False(t, s.WouldBeSupported(c, nil))

	hypothetical := map[wall.Coord]struct{}{
		{Course: 0, Index: 0}: {},
	}
	assert.True(t, s.WouldBeSupported(c, hypothetical))
	assert.False(t, s.IsSupported(c), "hypothetical support must not leak into real state")
}
