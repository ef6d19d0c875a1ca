// Package bond implements the masonry bond pattern generators. A generator
// lays out one course at a time so that every course spans the wall width
// exactly, and supplies the starting-position heuristic the planner uses
// for the first stride of a fresh wall.
package bond

import (
	"math"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// Type identifies a bond pattern.
type Type int

const (
	// StretcherBond is the baseline half-brick running bond.
	StretcherBond Type = iota
	// EnglishCrossBond alternates stretcher and header courses on a
	// four-course repeat.
	EnglishCrossBond
	// WildBond mixes headers and stretchers deterministically with no
	// fixed repeat period.
	WildBond
)

// String returns the display name of the bond type.
func (t Type) String() string {
	switch t {
	case StretcherBond:
		return "Stretcher Bond"
	case EnglishCrossBond:
		return "English Cross Bond"
	case WildBond:
		return "Wild Bond"
	}
	return "Unknown Bond"
}

// Slug returns the machine-readable identifier used by CLI flags, config
// files and the HTTP API.
func (t Type) Slug() string {
	switch t {
	case StretcherBond:
		return "stretcher"
	case EnglishCrossBond:
		return "english_cross"
	case WildBond:
		return "wild"
	}
	return "unknown"
}

// Parse resolves a slug or display name to a bond type.
func Parse(s string) (Type, error) {
	switch s {
	case "stretcher", "Stretcher Bond":
		return StretcherBond, nil
	case "english_cross", "english-cross", "English Cross Bond":
		return EnglishCrossBond, nil
	case "wild", "Wild Bond":
		return WildBond, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidBond, "unknown bond type: %q", s)
}

// Types lists all supported bond types in display order.
func Types() []Type {
	return []Type{StretcherBond, EnglishCrossBond, WildBond}
}

// Generator lays out courses for one bond pattern on a wall of a fixed
// width. Implementations are pure: the same course index and prior
// courses always produce the same layout.
type Generator interface {
	// Type returns the bond type this generator implements.
	Type() Type

	// Course generates the layout for the given course index. Prior
	// holds the already generated courses below it; only the wild bond
	// reads it.
	Course(course int, prior []wall.Course) wall.Course

	// StartPosition evaluates candidate robot positions along the wall
	// base and returns the one whose first stride covers the most
	// early-course bricks.
	StartPosition(w *wall.Wall) wall.Point
}

// ForType returns the generator for a bond type on a wall of the given
// width.
func ForType(t Type, width float64) Generator {
	switch t {
	case EnglishCrossBond:
		return &englishCross{width: width}
	case WildBond:
		return &wild{width: width}
	default:
		return &stretcher{width: width}
	}
}

// Generate lays out the full course grid for a wall. The number of
// courses is derived from the wall height.
func Generate(t Type, width, height float64) []wall.Course {
	g := ForType(t, width)
	courses := wall.NumCourses(height)
	grid := make([]wall.Course, 0, courses)
	for c := 0; c < courses; c++ {
		grid = append(grid, g.Course(c, grid))
	}
	return grid
}

// fitCourse forces the course to span the wall width exactly by absorbing
// any floating-point residue into the final brick. Generators call this
// as their last step; a residue larger than a brick indicates a generator
// bug and is asserted in tests, not handled here.
func fitCourse(row wall.Course, width float64) wall.Course {
	if len(row) == 0 {
		return row
	}
	if d := width - row.Width(); math.Abs(d) > wall.WidthTolerance {
		row[len(row)-1].Length += d
	}
	return row
}
