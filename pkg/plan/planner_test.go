package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/cache"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

func TestNewDefaults(t *testing.T) {
	p, err := New(Options{Bond: bond.StretcherBond})
	require.NoError(t, err)

	w := p.Wall()
	assert.Equal(t, wall.DefaultWallWidth, w.Width())
	assert.Equal(t, wall.DefaultWallHeight, w.Height())
	assert.Equal(t, "Stretcher Bond", w.Pattern())
	assert.Greater(t, w.QueueLen(), 0, "a fresh session has its first stride planned")
}

func TestNewRejectsTinyWalls(t *testing.T) {
	_, err := New(Options{Width: 50, Bond: bond.StretcherBond})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = New(Options{Height: 30, Bond: bond.StretcherBond})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestPlaceOne(t *testing.T) {
	p, err := New(Options{Bond: bond.StretcherBond})
	require.NoError(t, err)

	require.True(t, p.PlaceOne())
	w := p.Wall()
	assert.Equal(t, 1, w.PlacedBricks())
	assert.Equal(t, 1, w.StridesUsed())
	assert.Greater(t, w.MovementCost(), 0.0)
}

func TestPlaceAtRejectsUnsupported(t *testing.T) {
	p, err := New(Options{Bond: bond.StretcherBond})
	require.NoError(t, err)

	assert.False(t, p.PlaceAt(wall.Coord{Course: 5, Index: 0}),
		"an unsupported brick high in the wall must be refused")
	assert.False(t, p.PlaceAt(wall.Coord{Course: 99, Index: 0}),
		"out-of-range coordinates must be refused")
	assert.Equal(t, 0, p.Wall().PlacedBricks())

	require.True(t, p.PlaceAt(wall.Coord{Course: 0, Index: 0}))
	assert.False(t, p.PlaceAt(wall.Coord{Course: 0, Index: 0}),
		"double placement must be refused")
	assert.Equal(t, 1, p.Wall().PlacedBricks())
}

func TestPlaceStrideAdvances(t *testing.T) {
	p, err := New(Options{Bond: bond.StretcherBond})
	require.NoError(t, err)

	require.True(t, p.PlaceStride())
	w := p.Wall()
	assert.Greater(t, w.PlacedBricks(), 0)
	assert.Equal(t, 1, w.StridesUsed())
	assert.Greater(t, w.QueueLen(), 0, "the next stride is planned ahead")
}

func TestBuildAllCompletes(t *testing.T) {
	for _, bt := range bond.Types() {
		t.Run(bt.Slug(), func(t *testing.T) {
			p, err := New(Options{Bond: bt})
			require.NoError(t, err)

			require.True(t, p.BuildAll(), "build must run to completion")

			w := p.Wall()
			assert.Equal(t, w.TotalBricks(), w.PlacedBricks())
			assert.True(t, w.IsComplete())
			assert.Greater(t, w.StridesUsed(), 1)
			assert.Less(t, w.StridesUsed(), w.TotalBricks(),
				"strides must batch many bricks, not one each")
			assert.Greater(t, w.MovementCost(), 0.0)
		})
	}
}

func TestResetDiscardsProgress(t *testing.T) {
	p, err := New(Options{Bond: bond.StretcherBond})
	require.NoError(t, err)

	require.True(t, p.PlaceStride())
	require.Greater(t, p.Wall().PlacedBricks(), 0)

	require.NoError(t, p.Reset(bond.WildBond))
	w := p.Wall()
	assert.Equal(t, 0, w.PlacedBricks())
	assert.Equal(t, 0, w.StridesUsed())
	assert.Equal(t, "Wild Bond", w.Pattern())
	assert.Equal(t, bond.WildBond, p.Bond())
	assert.Greater(t, w.QueueLen(), 0, "reset replans the first stride")
}

func TestLayoutCacheRoundTrip(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()

	p1, err := New(Options{Bond: bond.WildBond, LayoutCache: c})
	require.NoError(t, err)
	require.Equal(t, 1, c.Len(), "first session populates the cache")

	p2, err := New(Options{Bond: bond.WildBond, LayoutCache: c})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	// Cached and generated layouts must be identical.
	assert.Equal(t, p1.Wall().TotalBricks(), p2.Wall().TotalBricks())
	for course := 0; course < p1.Wall().Courses(); course++ {
		assert.Equal(t, p1.Wall().CourseLen(course), p2.Wall().CourseLen(course))
	}
}

func TestTelemetryReflectsProgress(t *testing.T) {
	p, err := New(Options{Bond: bond.StretcherBond})
	require.NoError(t, err)

	require.True(t, p.PlaceStride())
	snap := p.Telemetry()
	assert.Equal(t, p.Wall().PlacedBricks(), snap.Placed)
	assert.Equal(t, p.Wall().StridesUsed(), snap.Strides)
	assert.False(t, snap.Complete)
}
