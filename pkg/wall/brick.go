package wall

// Orientation describes which face of a brick is exposed on the wall.
type Orientation string

const (
	// Stretcher bricks are laid with the long face exposed.
	Stretcher Orientation = "stretcher"
	// Header bricks are laid with the short face exposed, so their
	// exposed length equals the brick width.
	Header Orientation = "header"
)

// Brick is a single brick in a course. Its geometry is fixed once the
// course is generated; only Built changes afterwards.
type Brick struct {
	Length      float64     `json:"length" bson:"length"`
	Orientation Orientation `json:"orientation" bson:"orientation"`
	Built       bool        `json:"built" bson:"built"`
}

// Depth returns how far the brick extends into the wall. A header is
// rotated ninety degrees, so its depth is the full brick length.
func (b Brick) Depth() float64 {
	if b.Orientation == Header {
		return FullBrickLength
	}
	return FullBrickWidth
}

// Course is one horizontal row of bricks, left to right. Index 0 is the
// bottom course of the wall.
type Course []Brick

// Width returns the total width of the course including interior head
// joints. A correctly generated course spans the wall width exactly.
func (c Course) Width() float64 {
	if len(c) == 0 {
		return 0
	}
	total := float64(len(c)-1) * HeadJoint
	for _, b := range c {
		total += b.Length
	}
	return total
}

// Coord identifies a brick by course and index within the course.
type Coord struct {
	Course int `json:"course" bson:"course"`
	Index  int `json:"index" bson:"index"`
}

// Position is the cached physical projection of a brick onto the wall
// face. It is computed once after course generation and never mutated;
// build state lives on the Brick itself.
type Position struct {
	X           float64
	Y           float64
	Length      float64
	Height      float64
	Width       float64 // depth into the wall
	Course      int
	Index       int
	Orientation Orientation
}

// Right returns the x coordinate of the brick's right edge.
func (p Position) Right() float64 { return p.X + p.Length }

// Top returns the y coordinate of the brick's top edge.
func (p Position) Top() float64 { return p.Y + p.Height }

// Center returns the center point of the brick face, which is where the
// robot moves to when placing it.
func (p Position) Center() Point {
	return Point{X: p.X + p.Length/2, Y: p.Y + p.Height/2}
}

// Overlap returns the horizontal overlap length between this brick and
// the span [x0, x1). Zero when the spans do not intersect.
func (p Position) Overlap(x0, x1 float64) float64 {
	lo := max(p.X, x0)
	hi := min(p.Right(), x1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
