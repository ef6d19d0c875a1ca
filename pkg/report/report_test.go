package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/plan"
)

func buildReport(t *testing.T) Report {
	t.Helper()
	p, err := plan.New(plan.Options{Bond: bond.StretcherBond})
	require.NoError(t, err)
	require.True(t, p.BuildAll())
	return FromTelemetry(p.Telemetry())
}

func TestFromTelemetry(t *testing.T) {
	rep := buildReport(t)

	assert.Equal(t, "Stretcher Bond", rep.Bond)
	assert.Equal(t, rep.Total, rep.Placed)
	assert.True(t, rep.Complete)
	assert.Greater(t, rep.Strides, 0)
	assert.Greater(t, rep.Cost, 0.0)
	assert.False(t, rep.GeneratedAt.IsZero())
	assert.Equal(t, rep.Placed, rep.Telemetry.Placed)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	rep := buildReport(t)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.Bond, decoded.Bond)
	assert.Equal(t, rep.Placed, decoded.Placed)
	assert.Equal(t, rep.Strides, decoded.Strides)
	assert.Equal(t, len(rep.Telemetry.Grid), len(decoded.Telemetry.Grid))
}

func TestWriteFile(t *testing.T) {
	rep := buildReport(t)
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, rep.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
