// Package pkg provides the core libraries for the masonry wall simulator.
//
// # Overview
//
// The simulator plans how a reach-limited bricklaying robot builds a
// masonry wall: it generates a bond layout, checks which bricks are
// physically supported, groups buildable bricks into robot work areas
// ("strides"), and commits placements one by one while tracking
// movement cost. The pkg directory is organized into four areas:
//
//  1. [wall] / [bond] - Domain model (bricks, courses, bond generators)
//  2. [plan] - Planning logic (support checking, stride search, placement)
//  3. [render] / [report] - Output (SVG rendering, build reports)
//  4. [cache] / [session] / [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Wall dimensions + bond type
//	         ↓
//	    [bond] package (generate course layout)
//	         ↓
//	    [wall] package (grid state, robot position, telemetry)
//	         ↓
//	    [plan] package (support → stride search → placement)
//	         ↓
//	    SVG / report / TUI / HTTP output
//
// # Quick Start
//
// Plan and build a wall, then render it:
//
//	import (
//	    "github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
//	    "github.com/sahaja-kanuri/masonry-wall-simulator/pkg/plan"
//	    "github.com/sahaja-kanuri/masonry-wall-simulator/pkg/render"
//	)
//
//	p, _ := plan.New(plan.Options{Bond: bond.Stretcher})
//	p.BuildAll()
//	svg := render.RenderSVG(p.Telemetry(), render.WithGrid())
//
// # Main Packages
//
// [wall] - The wall model: brick geometry, the course grid, build state,
// robot position, stride bookkeeping, and the Telemetry snapshot every
// output layer consumes.
//
// [bond] - Bond layout generators (stretcher, English cross, wild). Each
// generator produces the full course grid for a wall size and picks the
// robot's starting position.
//
// [plan] - The planning core. SupportChecker decides whether a brick can
// be laid on what is already built, StrideOptimizer searches for the
// robot position that makes the most bricks buildable, and BrickPlacer
// commits placements and accounts for movement cost. Planner ties them
// together as the session facade.
//
// [render] - SVG rendering of telemetry snapshots with per-stride
// coloring, grid overlay, and build statistics.
//
// [report] - Build reports (JSON) and the MongoDB archive for completed
// runs.
//
// [cache] - Layout and render caching with file, memory, and null
// backends plus retry helpers for flaky backends.
//
// [session] - Named planning sessions for serve mode, with in-memory and
// Redis-backed telemetry snapshot stores.
//
// [observability] - Hook interfaces for instrumenting planning and cache
// events without coupling the core to a metrics backend.
//
// [errors] - Coded errors shared across all packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/plan/...         # Specific package
//
// [wall]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall
// [bond]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond
// [plan]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/plan
// [render]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/render
// [report]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/report
// [cache]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/cache
// [session]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/session
// [observability]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/observability
// [errors]: https://pkg.go.dev/github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors
package pkg
