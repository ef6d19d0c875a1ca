package plan

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/cache"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/observability"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// Options configures a planning session.
type Options struct {
	// Width and Height are the wall extents in millimetres. Zero values
	// select the defaults.
	Width  float64
	Height float64

	// Bond is the initial bond pattern.
	Bond bond.Type

	// Logger receives planning progress at debug level. Nil disables
	// progress logging.
	Logger *log.Logger

	// LayoutCache memoizes generated bond layouts across sessions.
	// Nil disables layout caching.
	LayoutCache cache.Cache

	// Keyer generates layout cache keys. Nil selects the default keyer.
	Keyer cache.Keyer
}

// Planner is the session facade: it owns the wall and the planning
// components, and is what the CLI, TUI and serve layers drive. A Planner
// is not safe for concurrent use; serve mode locks per session.
type Planner struct {
	opts Options

	w         *wall.Wall
	gen       bond.Generator
	support   *SupportChecker
	optimizer *StrideOptimizer
	placer    *BrickPlacer
}

// New creates a planning session and plans its first stride.
func New(opts Options) (*Planner, error) {
	if opts.Width == 0 {
		opts.Width = wall.DefaultWallWidth
	}
	if opts.Height == 0 {
		opts.Height = wall.DefaultWallHeight
	}
	if opts.Width < wall.HalfBrickLength {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"wall width %.1fmm is narrower than a half brick", opts.Width)
	}
	if opts.Height < wall.CourseHeight {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"wall height %.1fmm does not fit a single course", opts.Height)
	}
	if opts.LayoutCache == nil {
		opts.LayoutCache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}

	p := &Planner{opts: opts}
	if err := p.Reset(opts.Bond); err != nil {
		return nil, err
	}
	return p, nil
}

// Reset discards all build progress and starts a fresh session with the
// given bond. Switching bonds mid-build goes through here; the wall is
// rebuilt from scratch rather than patched.
func (p *Planner) Reset(t bond.Type) error {
	grid, err := p.loadGrid(t)
	if err != nil {
		return err
	}

	w := wall.New(p.opts.Width, p.opts.Height, t.String(), grid)
	gen := bond.ForType(t, p.opts.Width)
	start := gen.StartPosition(w)
	w.SetRobot(start)

	var logf LogFunc
	if p.opts.Logger != nil {
		logf = func(msg string, args ...any) {
			p.opts.Logger.Debug(msg, args...)
		}
	}

	p.w = w
	p.gen = gen
	p.support = NewSupportChecker(w)
	p.optimizer = NewStrideOptimizer(w, p.support, logf)
	p.placer = NewBrickPlacer(w, p.support, p.optimizer)

	w.SetMessage("%s selected - %d bricks, robot starting at (%.0f, %.0f)",
		t.String(), w.TotalBricks(), start.X, start.Y)
	p.optimizer.ComputeNextStride()
	return nil
}

// loadGrid fetches a bond layout from the cache or generates it.
// Layouts are deterministic per bond and wall size, so entries never
// expire.
func (p *Planner) loadGrid(t bond.Type) ([]wall.Course, error) {
	ctx := context.Background()
	key := p.opts.Keyer.LayoutKey(t.Slug(), p.opts.Width, p.opts.Height)

	if data, ok, err := p.opts.LayoutCache.Get(ctx, key); err == nil && ok {
		var grid []wall.Course
		if err := json.Unmarshal(data, &grid); err == nil && len(grid) > 0 {
			observability.Cache().OnCacheHit("layout")
			return grid, nil
		}
	}
	observability.Cache().OnCacheMiss("layout")

	grid := bond.Generate(t, p.opts.Width, p.opts.Height)
	if len(grid) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidBond,
			"bond %q generated an empty layout", t.String())
	}

	if data, err := json.Marshal(grid); err == nil {
		if err := p.opts.LayoutCache.Set(ctx, key, data, 0); err == nil {
			observability.Cache().OnCacheSet("layout", len(data))
		}
	}
	return grid, nil
}

// Wall returns the session's wall for read access by display layers.
func (p *Planner) Wall() *wall.Wall { return p.w }

// Bond returns the active bond pattern.
func (p *Planner) Bond() bond.Type { return p.gen.Type() }

// PlaceOne places a single brick from the planned order.
// It reports false when the wall is complete or planning has stalled.
func (p *Planner) PlaceOne() bool { return p.placer.PlaceNext() }

// PlaceStride places the whole remaining stride in one go.
// It reports false when the wall is complete or planning has stalled.
func (p *Planner) PlaceStride() bool { return p.placer.PlaceStride() }

// PlaceAt attempts to place one specific brick. Unlike the queue-driven
// paths this does not touch stride planning; it exists for direct
// programmatic control.
func (p *Planner) PlaceAt(c wall.Coord) bool { return p.placer.PlaceBrick(c) }

// BuildAll runs stride after stride until the wall is complete or
// planning stalls. It reports whether the wall finished.
func (p *Planner) BuildAll() bool {
	// Each productive stride places at least one brick, so TotalBricks
	// rounds is a safe upper bound.
	for i := 0; i < p.w.TotalBricks(); i++ {
		if p.w.IsComplete() {
			break
		}
		if !p.placer.PlaceStride() {
			break
		}
	}
	return p.w.IsComplete()
}

// Telemetry snapshots the session for serialization.
func (p *Planner) Telemetry() wall.Telemetry { return p.w.Telemetry() }
