package bond

import (
	"math"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// Hard constraints for the wild bond. Runs of identical orientations and
// long vertical joint alignments ("falling teeth") are what the pattern
// must avoid to stay structurally and visually sound.
const (
	maxConsecutiveHeaders    = 3
	maxConsecutiveStretchers = 5
	maxTeethChain            = 5
)

// quarterBrick is both the edge-offset unit and the alignment tolerance
// for joint and falling-teeth checks.
const quarterBrick = wall.FullBrickLength / 4

// wild implements wild bond: a deterministic but irregular-looking mix of
// headers and stretchers with no repeat period. Brick choice is driven by
// residues of the running x position, constrained by run limits, a
// bond-breaking rule against stacked head joints, and the falling-teeth
// tracker.
type wild struct {
	width float64
}

func (g *wild) Type() Type { return WildBond }

func (g *wild) Course(course int, prior []wall.Course) wall.Course {
	var row wall.Course
	consecHeaders, consecStretchers := 0, 0

	// Left edge offset cycles 0, 1/4, 1/2, 3/4 brick for visual variety,
	// independent of the header/stretcher decisions.
	offset := float64(course%4) * quarterBrick
	x := 0.0
	if offset > 0 {
		row = append(row, wall.Brick{Length: offset, Orientation: wall.Stretcher})
		consecStretchers = 1
		x = offset + wall.HeadJoint
	}

	prevJoints := headerJointPositions(course, prior)
	chains := fallingTeethChains(course, prior)

	useStartingHeader := course%3 == 1
	interiorCount := 0

	// Leave room for a closing brick of at least half-brick length.
	safeWidth := g.width - wall.HalfBrickLength

	for x+wall.FullBrickWidth+wall.HeadJoint < safeWidth {
		placeHeader := false
		switch {
		case consecHeaders >= maxConsecutiveHeaders:
			placeHeader = false
		case consecStretchers >= maxConsecutiveStretchers:
			placeHeader = true
		case interiorCount == 0:
			placeHeader = useStartingHeader
		default:
			// Deterministic variety: residues of the running position.
			placeHeader = math.Mod(x+float64(course), 7) == 0 || math.Mod(x+float64(course), 11) == 0

			// Bond-breaking rule: a head joint within a quarter brick of
			// one in the course below weakens the bond, so flip.
			end := x + exposedLength(placeHeader)
			for _, joint := range prevJoints {
				if math.Abs(end-joint) < quarterBrick {
					placeHeader = !placeHeader
					break
				}
			}
		}

		length := exposedLength(placeHeader)

		// Falling-teeth rule: refuse to extend a long vertical alignment
		// of brick ends. The flip is skipped when it would violate a run
		// limit; the run limits are the stronger constraint.
		if extendsLongChain(chains, course, x+length) {
			flipped := !placeHeader
			if (flipped && consecHeaders < maxConsecutiveHeaders) ||
				(!flipped && consecStretchers < maxConsecutiveStretchers) {
				placeHeader = flipped
				length = exposedLength(placeHeader)
			}
		}

		if placeHeader {
			consecHeaders++
			consecStretchers = 0
		} else {
			consecStretchers++
			consecHeaders = 0
		}

		if x+length+wall.HeadJoint > safeWidth {
			break
		}
		orientation := wall.Stretcher
		if placeHeader {
			orientation = wall.Header
		}
		row = append(row, wall.Brick{Length: length, Orientation: orientation})
		interiorCount++
		x += length + wall.HeadJoint
	}

	// Close the course with a cut brick of the exact residual width. A
	// sliver shorter than a quarter brick is merged into the previous
	// brick instead.
	if len(row) == 0 {
		return fitCourse(wall.Course{{Length: g.width, Orientation: wall.Stretcher}}, g.width)
	}
	final := g.width - row.Width() - wall.HeadJoint
	if final >= quarterBrick {
		orientation := wall.Stretcher
		if consecStretchers >= maxConsecutiveStretchers {
			orientation = wall.Header
		}
		row = append(row, wall.Brick{Length: final, Orientation: orientation})
	} else {
		row[len(row)-1].Length += g.width - row.Width()
	}
	return fitCourse(row, g.width)
}

// exposedLength returns the length a brick contributes to the course for
// the chosen orientation.
func exposedLength(header bool) float64 {
	if header {
		return wall.FullBrickWidth
	}
	return wall.FullBrickLength
}

// headerJointPositions returns the head-joint x positions following
// header bricks in the course directly below.
func headerJointPositions(course int, prior []wall.Course) []float64 {
	if course == 0 || course > len(prior) {
		return nil
	}
	var joints []float64
	x := 0.0
	for _, b := range prior[course-1] {
		x += b.Length
		if b.Orientation == wall.Header {
			joints = append(joints, x)
		}
		x += wall.HeadJoint
	}
	return joints
}

// StartPosition samples nine candidate positions across the wall base.
// Wild bond rewards areas with orientation transitions, which give the
// first stride a representative slice of the pattern.
func (g *wild) StartPosition(w *wall.Wall) wall.Point {
	best := wall.Point{X: g.width / 2, Y: 0}
	bestScore := 0.0

	const candidates = 9
	for i := 0; i < candidates; i++ {
		x := float64(i) * g.width / (candidates - 1)
		strideX, strideY := w.ClampStrideOrigin(x-wall.StrideWidth/2, 0)

		score := 0.0
		for course := 0; course < min(4, w.Courses()); course++ {
			courseScore := 0.0
			for idx := 0; idx < w.CourseLen(course); idx++ {
				c := wall.Coord{Course: course, Index: idx}
				if !w.InStride(c, strideX, strideY) {
					continue
				}
				b, _ := w.BrickAt(c)
				transition := false
				if idx > 0 {
					prev, _ := w.BrickAt(wall.Coord{Course: course, Index: idx - 1})
					transition = prev.Orientation != b.Orientation
				}
				if transition {
					courseScore += 1.5
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
