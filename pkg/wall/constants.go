package wall

import "math"

// Physical dimensions in millimetres. These are properties of the brick
// format and the robot hardware, fixed at compile time; only the wall
// extents are chosen per wall.
const (
	// Brick format (waalformaat).
	FullBrickLength = 210.0
	FullBrickWidth  = 100.0
	FullBrickHeight = 50.0
	HalfBrickLength = 100.0

	// Mortar joints.
	HeadJoint = 10.0 // vertical joint between bricks in a course
	BedJoint  = 12.5 // horizontal joint between courses

	// CourseHeight is the vertical pitch of one course: brick plus bed joint.
	CourseHeight = FullBrickHeight + BedJoint

	// Default wall extents.
	DefaultWallWidth  = 2300.0
	DefaultWallHeight = 2000.0

	// Robot reach envelope for a single stride.
	StrideWidth  = 800.0
	StrideHeight = 1300.0

	// SupportThreshold is the fraction of a brick's length that must rest
	// on built bricks in the course below before it may be placed.
	SupportThreshold = 0.9

	// Movement cost weights. Driving the platform sideways is more
	// expensive than raising it.
	HorizontalMoveCost = 1.5
	VerticalMoveCost   = 1.0
)

// WidthTolerance is the maximum acceptable deviation between a generated
// course's total width and the wall width. Anything beyond this is a
// generator bug, not a runtime condition.
const WidthTolerance = 1e-3

// NumCourses returns how many courses fit in a wall of the given height.
func NumCourses(height float64) int {
	return int(height / CourseHeight)
}

// Point is a position on the wall face in millimetres, origin at the
// bottom-left corner.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// MoveCost returns the weighted travel cost between two robot positions.
// Horizontal travel is weighted heavier than vertical travel.
func MoveCost(from, to Point) float64 {
	return math.Abs(to.X-from.X)*HorizontalMoveCost + math.Abs(to.Y-from.Y)*VerticalMoveCost
}
