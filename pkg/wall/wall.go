// Package wall holds the masonry wall model: the course grid generated by a
// bond pattern, the cached physical position of every brick, and the build
// bookkeeping (robot position, counters, stride assignments).
//
// The wall is a passive data structure. It exposes read accessors for the
// planner and display layers, and a single Commit path used by the brick
// placer, which is the only writer. Nothing in this package is safe for
// concurrent mutation; callers expose one wall per planning session.
package wall

import "fmt"

// Wall is the full course grid for one planning session, along with the
// robot state and build statistics. Construct it with New; a bond switch
// discards the wall and builds a fresh one.
type Wall struct {
	width   float64
	height  float64
	pattern string

	grid      []Course
	positions [][]Position

	robot Point
	queue []Coord

	strideMap     map[Coord]int
	currentStride int
	strideActive  bool
	needsCounting bool

	placed  int
	total   int
	strides int
	cost    float64

	message string
}

// New builds a wall from an already generated course grid. The grid is
// owned by the wall afterwards. Positions are derived once here and are
// never recomputed; only build flags change during planning.
func New(width, height float64, pattern string, grid []Course) *Wall {
	w := &Wall{
		width:         width,
		height:        height,
		pattern:       pattern,
		grid:          grid,
		strideMap:     make(map[Coord]int),
		needsCounting: true,
		robot:         Point{X: width / 2, Y: 0},
		message:       "Select bond type with 1/2/3; press ENTER to place bricks",
	}
	for _, c := range grid {
		w.total += len(c)
	}
	w.computePositions()
	return w
}

// computePositions projects every brick into wall coordinates. Each course
// starts at x=0; bricks are separated by head joints.
func (w *Wall) computePositions() {
	w.positions = make([][]Position, len(w.grid))
	for course, row := range w.grid {
		coursePositions := make([]Position, len(row))
		x := 0.0
		y := float64(course) * CourseHeight
		for i, b := range row {
			coursePositions[i] = Position{
				X:           x,
				Y:           y,
				Length:      b.Length,
				Height:      FullBrickHeight,
				Width:       b.Depth(),
				Course:      course,
				Index:       i,
				Orientation: b.Orientation,
			}
			x += b.Length + HeadJoint
		}
		w.positions[course] = coursePositions
	}
}

// Width returns the wall width in millimetres.
func (w *Wall) Width() float64 { return w.width }

// Height returns the wall height in millimetres.
func (w *Wall) Height() float64 { return w.height }

// Pattern returns the display name of the bond pattern this wall was
// generated with.
func (w *Wall) Pattern() string { return w.pattern }

// Courses returns the number of courses in the wall.
func (w *Wall) Courses() int { return len(w.grid) }

// CourseLen returns the number of bricks in the given course.
func (w *Wall) CourseLen(course int) int {
	if course < 0 || course >= len(w.grid) {
		return 0
	}
	return len(w.grid[course])
}

// Contains reports whether the coordinate addresses a brick in the wall.
func (w *Wall) Contains(c Coord) bool {
	return c.Course >= 0 && c.Course < len(w.grid) &&
		c.Index >= 0 && c.Index < len(w.grid[c.Course])
}

// BrickAt returns the brick at the coordinate. The second return is false
// when the coordinate is out of range.
func (w *Wall) BrickAt(c Coord) (Brick, bool) {
	if !w.Contains(c) {
		return Brick{}, false
	}
	return w.grid[c.Course][c.Index], true
}

// PositionAt returns the cached physical position for the coordinate.
// The coordinate must be in range.
func (w *Wall) PositionAt(c Coord) Position {
	return w.positions[c.Course][c.Index]
}

// CoursePositions returns the cached positions for one course.
func (w *Wall) CoursePositions(course int) []Position {
	return w.positions[course]
}

// Built reports whether the brick at the coordinate has been placed.
// Out-of-range coordinates report false.
func (w *Wall) Built(c Coord) bool {
	if !w.Contains(c) {
		return false
	}
	return w.grid[c.Course][c.Index].Built
}

// Robot returns the robot's current position.
func (w *Wall) Robot() Point { return w.robot }

// SetRobot moves the robot without placing a brick. Used once at session
// start to apply the bond-specific starting position heuristic.
func (w *Wall) SetRobot(p Point) { w.robot = p }

// PlacedBricks returns the number of bricks committed so far.
func (w *Wall) PlacedBricks() int { return w.placed }

// TotalBricks returns the total number of bricks in the wall.
func (w *Wall) TotalBricks() int { return w.total }

// StridesUsed returns how many strides have had at least one placement.
func (w *Wall) StridesUsed() int { return w.strides }

// MovementCost returns the cumulative weighted robot travel cost.
func (w *Wall) MovementCost() float64 { return w.cost }

// HasUnbuiltBricks reports whether any brick remains to be placed.
func (w *Wall) HasUnbuiltBricks() bool { return w.placed < w.total }

// IsComplete reports whether every brick has been placed.
func (w *Wall) IsComplete() bool { return w.placed == w.total }

// Message returns the current human-readable status line.
func (w *Wall) Message() string { return w.message }

// SetMessage updates the status line shown by display layers.
func (w *Wall) SetMessage(format string, args ...any) {
	w.message = fmt.Sprintf(format, args...)
}

// CurrentStride returns the id of the stride being planned or placed.
// Stride ids only group bricks for display; they carry no planning state.
func (w *Wall) CurrentStride() int { return w.currentStride }

// StrideID returns the stride a built brick was placed in, or -1 when the
// brick has not been placed.
func (w *Wall) StrideID(c Coord) int {
	if id, ok := w.strideMap[c]; ok {
		return id
	}
	return -1
}

// InStride reports whether the brick at the coordinate lies entirely
// inside a stride footprint anchored at (strideX, strideY).
func (w *Wall) InStride(c Coord, strideX, strideY float64) bool {
	p := w.PositionAt(c)
	return p.X >= strideX && p.Right() <= strideX+StrideWidth &&
		p.Y >= strideY && p.Top() <= strideY+StrideHeight
}

// ClampStrideOrigin clamps a stride origin so the footprint stays inside
// the wall bounds.
func (w *Wall) ClampStrideOrigin(x, y float64) (float64, float64) {
	x = min(max(x, 0), max(w.width-StrideWidth, 0))
	y = min(max(y, 0), max(w.height-StrideHeight, 0))
	return x, y
}

// Queue returns a copy of the pending bricks of the current stride, in
// placement order.
func (w *Wall) Queue() []Coord {
	out := make([]Coord, len(w.queue))
	copy(out, w.queue)
	return out
}

// QueueLen returns the number of pending bricks in the current stride.
func (w *Wall) QueueLen() int { return len(w.queue) }

// InQueue reports whether a brick is waiting in the current stride queue.
func (w *Wall) InQueue(c Coord) bool {
	for _, q := range w.queue {
		if q == c {
			return true
		}
	}
	return false
}

// SetQueue replaces the pending stride queue with an ordered batch
// produced by the stride optimizer.
func (w *Wall) SetQueue(batch []Coord) { w.queue = batch }

// PopQueue removes and returns the next brick from the stride queue.
func (w *Wall) PopQueue() (Coord, bool) {
	if len(w.queue) == 0 {
		return Coord{}, false
	}
	c := w.queue[0]
	w.queue = w.queue[1:]
	return c, true
}

// BeginStride clears the queue and arms the stride counter: the next
// successful Commit increments StridesUsed exactly once. A planning round
// that commits nothing leaves the counter untouched.
func (w *Wall) BeginStride() {
	w.queue = nil
	w.needsCounting = true
}

// StrideActive reports whether the current stride has committed at least
// one brick.
func (w *Wall) StrideActive() bool { return w.strideActive }

// AdvanceStride closes the current stride and moves to the next stride id.
func (w *Wall) AdvanceStride() {
	w.currentStride++
	w.strideActive = false
}

// Commit marks the brick built and performs all placement bookkeeping:
// movement cost accumulation, robot repositioning, stride assignment and
// the once-per-stride counter. Validation is the brick placer's job;
// Commit assumes the coordinate is in range and the brick unbuilt.
// It returns the incremental movement cost.
func (w *Wall) Commit(c Coord) float64 {
	center := w.PositionAt(c).Center()
	step := MoveCost(w.robot, center)
	w.cost += step

	w.grid[c.Course][c.Index].Built = true
	w.strideMap[c] = w.currentStride
	w.placed++
	w.robot = center

	w.strideActive = true
	if w.needsCounting {
		w.strides++
		w.needsCounting = false
	}
	return step
}
