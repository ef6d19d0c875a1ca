package bond

import "github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"

// stretcher implements the half-brick running bond: a two-course repeat
// where even courses start with a full stretcher and odd courses with a
// half stretcher.
type stretcher struct {
	width float64
}

func (s *stretcher) Type() Type { return StretcherBond }

func (s *stretcher) Course(course int, _ []wall.Course) wall.Course {
	var row wall.Course
	remaining := s.width

	if course%2 == 1 {
		row = append(row, wall.Brick{Length: wall.HalfBrickLength, Orientation: wall.Stretcher})
		remaining -= wall.HalfBrickLength + wall.HeadJoint
	}

	for remaining >= wall.FullBrickLength {
		row = append(row, wall.Brick{Length: wall.FullBrickLength, Orientation: wall.Stretcher})
		remaining -= wall.FullBrickLength + wall.HeadJoint
	}

	// Close the course with a cut stretcher absorbing whatever is left.
	if remaining > 0 {
		row = append(row, wall.Brick{Length: min(remaining, wall.HalfBrickLength), Orientation: wall.Stretcher})
	}

	return fitCourse(row, s.width)
}

// StartPosition tries left, quarter, center, three-quarter and right
// anchors along the wall base and picks the one whose stride covers the
// most bottom-course bricks.
func (s *stretcher) StartPosition(w *wall.Wall) wall.Point {
	best := wall.Point{X: s.width / 2, Y: 0}
	bestCount := 0

	half := wall.StrideWidth / 2
	candidates := []float64{
		half,
		s.width / 4,
		s.width / 2,
		3 * s.width / 4,
		s.width - half,
	}

	for _, x := range candidates {
		strideX, strideY := w.ClampStrideOrigin(x-half, 0)

		count := 0
		for i := 0; i < w.CourseLen(0); i++ {
			if w.InStride(wall.Coord{Course: 0, Index: i}, strideX, strideY) {
				count++
			}
		}

		if count > bestCount {
			bestCount = count
			best = wall.Point{X: x, Y: 0}
		}
	}
	return best
}
