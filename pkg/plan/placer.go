package plan

import (
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/observability"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// BrickPlacer is the single commit path for placements. Every brick that
// ends up built goes through PlaceBrick, whether driven one at a time or
// a stride at a time.
type BrickPlacer struct {
	w         *wall.Wall
	support   *SupportChecker
	optimizer *StrideOptimizer
}

// NewBrickPlacer creates a placer for the given wall.
func NewBrickPlacer(w *wall.Wall, support *SupportChecker, optimizer *StrideOptimizer) *BrickPlacer {
	return &BrickPlacer{w: w, support: support, optimizer: optimizer}
}

// PlaceBrick validates and commits a single placement. It reports false
// without side effects when the coordinate is out of range, the brick is
// already built, or the brick lacks support.
func (p *BrickPlacer) PlaceBrick(c wall.Coord) bool {
	if !p.w.Contains(c) {
		return false
	}
	if p.w.Built(c) {
		return false
	}
	if c.Course > 0 && !p.support.IsSupported(c) {
		return false
	}

	cost := p.w.Commit(c)
	observability.Planner().OnPlace(c.Course, c.Index, cost)
	return true
}

// PlaceNext places the next brick from the current stride queue,
// planning a new stride first when the queue has run dry. It reports
// false when the wall is complete or planning has stalled.
func (p *BrickPlacer) PlaceNext() bool {
	if p.w.QueueLen() == 0 {
		if !p.w.HasUnbuiltBricks() {
			p.w.SetMessage("Wall complete! %d bricks in %d strides, movement cost %.0f",
				p.w.PlacedBricks(), p.w.StridesUsed(), p.w.MovementCost())
			return false
		}
		if p.w.StrideActive() {
			p.w.AdvanceStride()
		}
		if !p.optimizer.ComputeNextStride() {
			p.w.SetMessage("No more bricks can be placed")
			return false
		}
	}

	c, ok := p.w.PopQueue()
	if !ok {
		return false
	}
	if !p.PlaceBrick(c) {
		return false
	}

	if p.w.IsComplete() {
		p.w.SetMessage("Wall complete! %d bricks in %d strides, movement cost %.0f",
			p.w.PlacedBricks(), p.w.StridesUsed(), p.w.MovementCost())
	} else {
		p.w.SetMessage("Placed brick %d/%d (stride %d)",
			p.w.PlacedBricks(), p.w.TotalBricks(), p.w.StridesUsed())
	}
	return true
}

// PlaceStride drains the current stride queue, then closes the stride
// and plans the next one so a subsequent call continues immediately. It
// reports false when nothing was placed.
func (p *BrickPlacer) PlaceStride() bool {
	if p.w.QueueLen() == 0 {
		if !p.w.HasUnbuiltBricks() {
			p.w.SetMessage("Wall complete! %d bricks in %d strides, movement cost %.0f",
				p.w.PlacedBricks(), p.w.StridesUsed(), p.w.MovementCost())
			return false
		}
		if !p.optimizer.ComputeNextStride() {
			p.w.SetMessage("No more bricks can be placed")
			return false
		}
	}

	placed := 0
	for {
		c, ok := p.w.PopQueue()
		if !ok {
			break
		}
		if p.PlaceBrick(c) {
			placed++
		}
	}
	if placed == 0 {
		return false
	}

	if p.w.IsComplete() {
		p.w.SetMessage("Wall complete! %d bricks in %d strides, movement cost %.0f",
			p.w.PlacedBricks(), p.w.StridesUsed(), p.w.MovementCost())
	} else {
		p.w.SetMessage("Stride %d done: %d bricks placed, %d/%d total",
			p.w.StridesUsed(), placed, p.w.PlacedBricks(), p.w.TotalBricks())
	}

	p.w.AdvanceStride()
	p.optimizer.ComputeNextStride()
	return true
}
