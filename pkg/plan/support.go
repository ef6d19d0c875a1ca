// Package plan turns a bond layout into an executable build order for a
// reach-limited robot. It decides which bricks are structurally
// placeable, searches for the stride origin that covers the most work,
// and commits placements one at a time while tracking movement cost.
package plan

import (
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// SupportChecker decides whether a brick has enough bearing on the
// course below to be laid. A brick needs at least 90% of its length
// resting on already-built bricks; anything less would sag before the
// mortar cures.
type SupportChecker struct {
	w *wall.Wall
}

// NewSupportChecker creates a support checker for the given wall.
func NewSupportChecker(w *wall.Wall) *SupportChecker {
	return &SupportChecker{w: w}
}

// IsSupported reports whether the brick at c can be laid on the bricks
// built so far. Course 0 bricks rest on the foundation and are always
// supported.
func (s *SupportChecker) IsSupported(c wall.Coord) bool {
	return s.supportRatio(c, nil) >= wall.SupportThreshold
}

// WouldBeSupported reports whether the brick at c would be supported if
// every brick in hypothetical were already built. The stride planner
// uses this to chain placements within a single batch: a second-course
// brick can join the batch when the first-course bricks beneath it are
// queued ahead of it.
func (s *SupportChecker) WouldBeSupported(c wall.Coord, hypothetical map[wall.Coord]struct{}) bool {
	return s.supportRatio(c, hypothetical) >= wall.SupportThreshold
}

// supportRatio computes the supported fraction of the brick's length.
// Bricks in hypothetical count as built.
func (s *SupportChecker) supportRatio(c wall.Coord, hypothetical map[wall.Coord]struct{}) float64 {
	if c.Course == 0 {
		return 1.0
	}

	p := s.w.PositionAt(c)

	var supported float64
	for _, below := range s.w.CoursePositions(c.Course - 1) {
		bc := wall.Coord{Course: below.Course, Index: below.Index}
		if !s.w.Built(bc) {
			if hypothetical == nil {
				continue
			}
			if _, queued := hypothetical[bc]; !queued {
				continue
			}
		}
		supported += below.Overlap(p.X, p.Right())
	}

	return supported / p.Length
}
