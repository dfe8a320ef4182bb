package game

import "time"

// Vehicle is the runtime state of one lane vehicle.
type Vehicle struct {
	Row     int         `json:"row"`
	Kind    RowKind     `json:"kind"`
	Heading LaneHeading `json:"heading"`
	Speed   float64     `json:"speed"`
	Color   uint32      `json:"color"`
	X       float64     `json:"x"`
}

// Traffic moves every vehicle of the generated lanes. Vehicles are kept
// bucketed by row so that lookups near the player only touch a few rows.
type Traffic struct {
	config GameConfig
	rows   [][]*Vehicle // rows[i] holds the vehicles of row i+1
}

// NewTraffic creates an empty traffic system.
func NewTraffic(config GameConfig) *Traffic {
	return &Traffic{config: config}
}

// Spawn creates vehicles for rows appended to the map, first being the
// row index of rows[0].
func (t *Traffic) Spawn(first int, rows []Row) {
	for len(t.rows) < first-1 {
		t.rows = append(t.rows, nil)
	}
	for i, r := range rows {
		var bucket []*Vehicle
		if r.Kind.IsLane() {
			bucket = make([]*Vehicle, 0, len(r.Vehicles))
			for _, spec := range r.Vehicles {
				bucket = append(bucket, &Vehicle{
					Row:     first + i,
					Kind:    r.Kind,
					Heading: r.Heading,
					Speed:   r.Speed,
					Color:   spec.Color,
					X:       float64(spec.InitialTile) * t.config.TileSize,
				})
			}
		}
		t.rows = append(t.rows, bucket)
	}
}

// InRow returns the vehicles of a row. The slice is owned by Traffic.
func (t *Traffic) InRow(row int) []*Vehicle {
	if row < 1 || row > len(t.rows) {
		return nil
	}
	return t.rows[row-1]
}

// Advance moves every vehicle by dt. A vehicle that has passed the far
// edge of the row plus the wrap margin reappears on the opposite side.
func (t *Traffic) Advance(dt time.Duration) {
	begin := float64(t.config.MinTile-t.config.WrapMargin) * t.config.TileSize
	end := float64(t.config.MaxTile+t.config.WrapMargin) * t.config.TileSize
	secs := dt.Seconds()

	for _, bucket := range t.rows {
		for _, v := range bucket {
			if v.Heading == HeadingForward {
				if v.X > end {
					v.X = begin
				} else {
					v.X += v.Speed * secs
				}
			} else {
				if v.X < begin {
					v.X = end
				} else {
					v.X -= v.Speed * secs
				}
			}
		}
	}
}

// Count returns the number of vehicles across all lanes.
func (t *Traffic) Count() int {
	n := 0
	for _, bucket := range t.rows {
		n += len(bucket)
	}
	return n
}

// Reset removes every vehicle.
func (t *Traffic) Reset() {
	t.rows = nil
}

// copyVehicles returns value copies of every vehicle in row order.
func (t *Traffic) copyVehicles() []Vehicle {
	out := make([]Vehicle, 0, t.Count())
	for _, bucket := range t.rows {
		for _, v := range bucket {
			out = append(out, *v)
		}
	}
	return out
}
