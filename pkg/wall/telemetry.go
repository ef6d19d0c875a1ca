package wall

// Telemetry is the read-only snapshot consumed by display layers and the
// HTTP API. It is the canonical serialization of a wall's build state;
// it deliberately excludes the stride plan, which is recomputed rather
// than persisted.
type Telemetry struct {
	Pattern      string       `json:"pattern" bson:"pattern"`
	Width        float64      `json:"width" bson:"width"`
	Height       float64      `json:"height" bson:"height"`
	Grid         [][]GridCell `json:"grid" bson:"grid"`
	Robot        Point        `json:"robot" bson:"robot"`
	Placed       int          `json:"placed" bson:"placed"`
	Total        int          `json:"total" bson:"total"`
	Strides      int          `json:"strides" bson:"strides"`
	MovementCost float64      `json:"movement_cost" bson:"movement_cost"`
	Queue        []Coord      `json:"queue,omitempty" bson:"queue,omitempty"`
	Message      string       `json:"message,omitempty" bson:"message,omitempty"`
	Complete     bool         `json:"complete" bson:"complete"`
}

// GridCell is the per-brick slice of a telemetry snapshot.
type GridCell struct {
	Length      float64     `json:"length" bson:"length"`
	Orientation Orientation `json:"orientation" bson:"orientation"`
	Built       bool        `json:"built" bson:"built"`
	Stride      int         `json:"stride" bson:"stride"` // -1 when unbuilt
}

// Telemetry captures the current build state as a snapshot.
func (w *Wall) Telemetry() Telemetry {
	grid := make([][]GridCell, len(w.grid))
	for course, row := range w.grid {
		cells := make([]GridCell, len(row))
		for i, b := range row {
			cells[i] = GridCell{
				Length:      b.Length,
				Orientation: b.Orientation,
				Built:       b.Built,
				Stride:      w.StrideID(Coord{Course: course, Index: i}),
			}
		}
		grid[course] = cells
	}
	return Telemetry{
		Pattern:      w.pattern,
		Width:        w.width,
		Height:       w.height,
		Grid:         grid,
		Robot:        w.robot,
		Placed:       w.placed,
		Total:        w.total,
		Strides:      w.strides,
		MovementCost: w.cost,
		Queue:        w.Queue(),
		Message:      w.message,
		Complete:     w.IsComplete(),
	}
}
