// Package report summarizes a finished (or abandoned) build for humans
// and archives. A report is what you keep after the session is gone:
// how many bricks went in, how many strides it took and what the robot
// travel cost was, with the final telemetry attached for re-rendering.
package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/wall"
)

// Report is the durable record of one build.
type Report struct {
	ID          string         `json:"id,omitempty" bson:"_id,omitempty"`
	Bond        string         `json:"bond" bson:"bond"`
	WallWidth   float64        `json:"wall_width" bson:"wall_width"`
	WallHeight  float64        `json:"wall_height" bson:"wall_height"`
	Placed      int            `json:"placed" bson:"placed"`
	Total       int            `json:"total" bson:"total"`
	Strides     int            `json:"strides" bson:"strides"`
	Cost        float64        `json:"movement_cost" bson:"movement_cost"`
	Complete    bool           `json:"complete" bson:"complete"`
	GeneratedAt time.Time      `json:"generated_at" bson:"generated_at"`
	Telemetry   wall.Telemetry `json:"telemetry" bson:"telemetry"`
}

// FromTelemetry builds a report from a telemetry snapshot.
func FromTelemetry(t wall.Telemetry) Report {
	return Report{
		Bond:        t.Pattern,
		WallWidth:   t.Width,
		WallHeight:  t.Height,
		Placed:      t.Placed,
		Total:       t.Total,
		Strides:     t.Strides,
		Cost:        t.MovementCost,
		Complete:    t.Complete,
		GeneratedAt: time.Now().UTC(),
		Telemetry:   t,
	}
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode report")
	}
	return nil
}

// WriteFile writes the report as JSON to the given path.
func (r Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to create report file %s", path)
	}
	defer f.Close()
	return r.WriteJSON(f)
}
