package bond

import "github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"

// englishCross implements English cross bond: a four-course repeat of
// stretcher and header courses with shifting start offsets.
//
//	course%4 == 0: stretchers, no offset
//	course%4 == 1: headers, quarter-brick offset
//	course%4 == 2: stretchers, half-brick offset
//	course%4 == 3: headers, three-quarter-brick offset
type englishCross struct {
	width float64
}

func (e *englishCross) Type() Type { return EnglishCrossBond }

func (e *englishCross) Course(course int, _ []wall.Course) wall.Course {
	switch course % 4 {
	case 1:
		return e.headerCourse(wall.FullBrickLength / 4)
	case 2:
		return e.stretcherCourse(wall.FullBrickLength / 2)
	case 3:
		return e.headerCourse(3 * wall.FullBrickLength / 4)
	default:
		return e.stretcherCourse(0)
	}
}

// stretcherCourse tiles full stretchers after an optional cut offset
// brick, then forces the final brick to the exact residual width.
func (e *englishCross) stretcherCourse(offset float64) wall.Course {
	var row wall.Course
	x := 0.0

	if offset > 0 {
		row = append(row, wall.Brick{Length: offset, Orientation: wall.Stretcher})
		x = offset + wall.HeadJoint
	}

	n := int((e.width - x) / (wall.FullBrickLength + wall.HeadJoint))
	for i := 0; i < n; i++ {
		row = append(row, wall.Brick{Length: wall.FullBrickLength, Orientation: wall.Stretcher})
		x += wall.FullBrickLength + wall.HeadJoint
	}

	if remaining := e.width - x; remaining > 0 {
		row = append(row, wall.Brick{Length: remaining, Orientation: wall.Stretcher})
	}
	return fitCourse(row, e.width)
}

// headerCourse is the same tiling with headers: the exposed length of an
// interior brick is the brick width.
func (e *englishCross) headerCourse(offset float64) wall.Course {
	row := wall.Course{{Length: offset, Orientation: wall.Header}}
	x := offset + wall.HeadJoint

	n := int((e.width - x) / (wall.FullBrickWidth + wall.HeadJoint))
	for i := 0; i < n; i++ {
		row = append(row, wall.Brick{Length: wall.FullBrickWidth, Orientation: wall.Header})
		x += wall.FullBrickWidth + wall.HeadJoint
	}

	if remaining := e.width - x; remaining > 0 {
		row = append(row, wall.Brick{Length: remaining, Orientation: wall.Header})
	}
	return fitCourse(row, e.width)
}

// StartPosition scores seven candidate positions across the wall base.
// The score counts bricks of the first four courses covered by the
// stride, weighting earlier courses more heavily and header bricks a
// little extra since placing them early anchors the pattern.
func (e *englishCross) StartPosition(w *wall.Wall) wall.Point {
	best := wall.Point{X: e.width / 2, Y: 0}
	bestScore := 0.0

	const candidates = 7
	for i := 0; i < candidates; i++ {
		x := float64(i) * e.width / (candidates - 1)
		strideX, strideY := w.ClampStrideOrigin(x-wall.StrideWidth/2, 0)

		score := 0.0
		for course := 0; course < min(4, w.Courses()); course++ {
			courseScore := 0.0
			for idx := 0; idx < w.CourseLen(course); idx++ {
				c := wall.Coord{Course: course, Index: idx}
				if !w.InStride(c, strideX, strideY) {
					continue
				}
				if b, _ := w.BrickAt(c); b.Orientation == wall.Header {
					courseScore += 1.2
				} else {
					courseScore += 1.0
				}
			}
			score += courseScore / float64(course+1)
		}

		if score > bestScore {
			bestScore = score
			best = wall.Point{X: x, Y: 0}
		}
	}
	return best
}
