package plan

import (
	"math"
	"sort"
	"time"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/observability"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// Scoring weights for stride origin candidates. Brick count dominates;
// proximity and course completion only break ties between origins that
// cover the same amount of work.
const (
	countWeight      = 1000.0
	proximityWeight  = 5000.0
	courseBonus      = 500.0
	courseBonusRatio = 0.9
)

// closurePasses bounds the placeable-closure fixpoint. Each pass can add
// at most one more course of chained placements, and a stride footprint
// spans far fewer courses than this.
const closurePasses = 5

// orderRetryPasses bounds the deferral loop when ordering a batch.
const orderRetryPasses = 3

// LogFunc receives progress lines from the optimizer. A nil LogFunc
// disables logging.
type LogFunc func(msg string, args ...any)

// StrideOptimizer plans one stride at a time: it picks the stride origin
// whose reach envelope covers the most placeable bricks, then orders the
// covered bricks to minimize robot travel.
type StrideOptimizer struct {
	w       *wall.Wall
	support *SupportChecker
	round   int
	logf    LogFunc
}

// NewStrideOptimizer creates an optimizer for the given wall.
func NewStrideOptimizer(w *wall.Wall, support *SupportChecker, logf LogFunc) *StrideOptimizer {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &StrideOptimizer{w: w, support: support, logf: logf}
}

// ComputeNextStride plans the next batch of placements and installs it
// as the wall's stride queue. It reports whether any brick was queued;
// false means either the wall is complete or no remaining brick is
// placeable (a generator bug, since every bond layout is buildable
// bottom-up).
func (o *StrideOptimizer) ComputeNextStride() bool {
	if !o.w.HasUnbuiltBricks() {
		return false
	}

	o.round++
	o.w.BeginStride()
	observability.Planner().OnStrideSearchStart(o.round)
	start := time.Now()

	var batch []wall.Coord
	if o.w.PlacedBricks() == 0 {
		// First stride: anchor the reach envelope at the bond's starting
		// position heuristic instead of searching.
		sx, sy := o.w.ClampStrideOrigin(o.w.Robot().X-wall.StrideWidth/2, 0)
		batch = o.placeableInStride(sx, sy)
		o.logf("first stride anchored", "x", sx, "y", sy, "bricks", len(batch))
	} else {
		batch = o.searchBestStride()
	}

	if len(batch) == 0 {
		// The grid search only considers fully-contained footprints, so a
		// wall narrower than the reach envelope, or a handful of stragglers
		// outside every candidate origin, can leave it empty. Fall back to
		// a global scan over supported bricks.
		batch = o.fallbackScan()
		if len(batch) > 0 {
			observability.Planner().OnFallback(o.round, len(batch))
			o.logf("stride search empty, using fallback scan", "bricks", len(batch))
		}
	}

	if len(batch) == 0 {
		observability.Planner().OnStrideSearchComplete(o.round, 0, time.Since(start))
		return false
	}

	ordered := o.orderBatch(batch)
	o.w.SetQueue(ordered)
	observability.Planner().OnStrideSearchComplete(o.round, len(ordered), time.Since(start))
	return len(ordered) > 0
}

// searchBestStride exhaustively scores stride origins on a coarse grid
// and returns the placeable batch of the best one. Origins are compared
// by brick count first; the score only breaks ties.
func (o *StrideOptimizer) searchBestStride() []wall.Coord {
	step := math.Min(wall.StrideWidth, wall.StrideHeight) / 8

	var best []wall.Coord
	bestCount := 0
	bestScore := math.Inf(-1)

	maxX := o.w.Width() - wall.StrideWidth
	maxY := o.w.Height() - wall.StrideHeight
	for x := 0.0; x <= maxX; x += step {
		for y := 0.0; y <= maxY; y += step {
			batch := o.placeableInStride(x, y)
			if len(batch) == 0 {
				continue
			}
			score := o.scoreBatch(batch)
			if len(batch) > bestCount || (len(batch) == bestCount && score > bestScore) {
				best = batch
				bestCount = len(batch)
				bestScore = score
			}
		}
	}
	return best
}

// scoreBatch rates a candidate batch: mostly its size, plus a proximity
// bonus for batches close to the robot and a completion bonus for each
// course the batch (nearly) finishes.
func (o *StrideOptimizer) scoreBatch(batch []wall.Coord) float64 {
	closest := math.Inf(1)
	perCourse := make(map[int]int)
	for _, c := range batch {
		d := wall.MoveCost(o.w.Robot(), o.w.PositionAt(c).Center())
		if d < closest {
			closest = d
		}
		perCourse[c.Course]++
	}

	score := float64(len(batch))*countWeight + proximityWeight/(closest+1)

	for course, covered := range perCourse {
		remaining := 0
		for i := 0; i < o.w.CourseLen(course); i++ {
			if !o.w.Built(wall.Coord{Course: course, Index: i}) {
				remaining++
			}
		}
		if remaining > 0 && float64(covered) >= float64(remaining)*courseBonusRatio {
			score += courseBonus
		}
	}
	return score
}

// placeableInStride returns the bricks inside the stride footprint that
// can all be laid this round. It seeds with already-supported bricks and
// then runs a bounded closure: a brick joins the batch when the batch
// itself would support it, so a single stride can stack several courses.
func (o *StrideOptimizer) placeableInStride(strideX, strideY float64) []wall.Coord {
	var inside []wall.Coord
	for course := 0; course < o.w.Courses(); course++ {
		for i := 0; i < o.w.CourseLen(course); i++ {
			c := wall.Coord{Course: course, Index: i}
			if o.w.Built(c) {
				continue
			}
			if o.w.InStride(c, strideX, strideY) {
				inside = append(inside, c)
			}
		}
	}
	if len(inside) == 0 {
		return nil
	}

	batch := make([]wall.Coord, 0, len(inside))
	added := make(map[wall.Coord]struct{}, len(inside))
	for pass := 0; pass < closurePasses; pass++ {
		grew := false
		for _, c := range inside {
			if _, ok := added[c]; ok {
				continue
			}
			if c.Course == 0 || o.support.IsSupported(c) || o.support.WouldBeSupported(c, added) {
				batch = append(batch, c)
				added[c] = struct{}{}
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	return batch
}

// fallbackScan collects every unbuilt brick that is supported right now,
// ignoring stride bounds. Placements from this batch may exceed a single
// reach envelope; they still count as one stride.
func (o *StrideOptimizer) fallbackScan() []wall.Coord {
	var batch []wall.Coord
	for course := 0; course < o.w.Courses(); course++ {
		for i := 0; i < o.w.CourseLen(course); i++ {
			c := wall.Coord{Course: course, Index: i}
			if o.w.Built(c) {
				continue
			}
			if c.Course == 0 || o.support.IsSupported(c) {
				batch = append(batch, c)
			}
		}
	}
	return batch
}

// orderBatch sequences a batch bottom-up: courses in ascending order,
// and within a course nearest-neighbor by movement cost from the robot's
// running position. A brick whose in-batch supports have not been
// sequenced yet is deferred and retried after the rest; bricks still
// unsupported after the retry passes are dropped from the queue and
// picked up by a later stride.
func (o *StrideOptimizer) orderBatch(batch []wall.Coord) []wall.Coord {
	byCourse := make(map[int][]wall.Coord)
	for _, c := range batch {
		byCourse[c.Course] = append(byCourse[c.Course], c)
	}
	courses := make([]int, 0, len(byCourse))
	for course := range byCourse {
		courses = append(courses, course)
	}
	sort.Ints(courses)

	ordered := make([]wall.Coord, 0, len(batch))
	sequenced := make(map[wall.Coord]struct{}, len(batch))
	pos := o.w.Robot()
	var deferred []wall.Coord

	take := func(c wall.Coord) {
		ordered = append(ordered, c)
		sequenced[c] = struct{}{}
		pos = o.w.PositionAt(c).Center()
	}
	ready := func(c wall.Coord) bool {
		return c.Course == 0 || o.support.IsSupported(c) || o.support.WouldBeSupported(c, sequenced)
	}

	for _, course := range courses {
		remaining := append([]wall.Coord(nil), byCourse[course]...)
		for len(remaining) > 0 {
			bestIdx := -1
			bestDist := math.Inf(1)
			for i, c := range remaining {
				if !ready(c) {
					continue
				}
				if d := wall.MoveCost(pos, o.w.PositionAt(c).Center()); d < bestDist {
					bestIdx = i
					bestDist = d
				}
			}
			if bestIdx == -1 {
				deferred = append(deferred, remaining...)
				break
			}
			take(remaining[bestIdx])
			remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		}
	}

	for pass := 0; pass < orderRetryPasses && len(deferred) > 0; pass++ {
		sort.Slice(deferred, func(i, j int) bool {
			if deferred[i].Course != deferred[j].Course {
				return deferred[i].Course < deferred[j].Course
			}
			return deferred[i].Index < deferred[j].Index
		})
		var still []wall.Coord
		for _, c := range deferred {
			if ready(c) {
				take(c)
			} else {
				still = append(still, c)
			}
		}
		if len(still) == len(deferred) {
			break
		}
		deferred = still
	}

	if len(deferred) > 0 {
		o.logf("dropping unsupported bricks from stride", "count", len(deferred))
	}
	return ordered
}
