package game

import (
	"fmt"
	"time"
)

// Direction is one discrete player step.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

var directionNames = [...]string{
	Forward:  "forward",
	Backward: "backward",
	Left:     "left",
	Right:    "right",
}

func (d Direction) String() string {
	if d < Forward || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts an input token into a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// delta returns the row and tile offsets of a single step.
func (d Direction) delta() (row, tile int) {
	switch d {
	case Forward:
		return 1, 0
	case Backward:
		return -1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Position is a cell on the grid. Row 0 is the start row; Tile 0 is the
// middle of the row.
type Position struct {
	Row  int `json:"row"`
	Tile int `json:"tile"`
}

// Step returns the position one step away in the given direction.
func (p Position) Step(d Direction) Position {
	dr, dt := d.delta()
	return Position{Row: p.Row + dr, Tile: p.Tile + dt}
}

// RowKind identifies the variant of a map row.
type RowKind int

const (
	RowForest RowKind = iota
	RowCar
	RowTruck
)

func (k RowKind) String() string {
	switch k {
	case RowForest:
		return "forest"
	case RowCar:
		return "car"
	case RowTruck:
		return "truck"
	}
	return fmt.Sprintf("RowKind(%d)", int(k))
}

// IsLane reports whether rows of this kind carry moving vehicles.
func (k RowKind) IsLane() bool {
	return k == RowCar || k == RowTruck
}

// LaneHeading is the travel direction of every vehicle in a lane.
type LaneHeading int

const (
	HeadingForward  LaneHeading = iota // towards +x
	HeadingBackward                    // towards -x
)

// Tree is a static obstacle in a forest row.
type Tree struct {
	Tile   int `json:"tile"`
	Height int `json:"height"`
}

// VehicleSpec is the generated description of one vehicle in a lane.
type VehicleSpec struct {
	InitialTile int    `json:"initial_tile"`
	Color       uint32 `json:"color"`
}

// Row is one generated strip of the map. Trees is set for forest rows;
// Heading, Speed and Vehicles are set for car and truck lanes.
type Row struct {
	Kind     RowKind       `json:"kind"`
	Trees    []Tree        `json:"trees,omitempty"`
	Heading  LaneHeading   `json:"heading"`
	Speed    float64       `json:"speed"`
	Vehicles []VehicleSpec `json:"vehicles,omitempty"`
}

// HasTreeAt reports whether a forest row has a tree on the given tile.
func (r Row) HasTreeAt(tile int) bool {
	if r.Kind != RowForest {
		return false
	}
	for _, t := range r.Trees {
		if t.Tile == tile {
			return true
		}
	}
	return false
}

func (r Row) clone() Row {
	c := r
	if r.Trees != nil {
		c.Trees = append([]Tree(nil), r.Trees...)
	}
	if r.Vehicles != nil {
		c.Vehicles = append([]VehicleSpec(nil), r.Vehicles...)
	}
	return c
}

// Status represents the current game phase.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

func (s Status) String() string {
	if s == StatusOver {
		return "over"
	}
	return "running"
}

// GameConfig holds the constant tables of a session.
type GameConfig struct {
	MinTile   int     `json:"min_tile"`
	MaxTile   int     `json:"max_tile"`
	TileSize  float64 `json:"tile_size"`
	BatchSize int     `json:"batch_size"`
	LookAhead int     `json:"look_ahead"` // Rows before the map end that trigger a new batch

	TreesPerForest int   `json:"trees_per_forest"`
	TreeHeights    []int `json:"tree_heights"`

	CarsPerLane   int       `json:"cars_per_lane"`
	TrucksPerLane int       `json:"trucks_per_lane"`
	CarBuffer     int       `json:"car_buffer"`   // Tiles reserved on each side of a car
	TruckBuffer   int       `json:"truck_buffer"` // Tiles reserved on each side of a truck
	LaneSpeeds    []float64 `json:"lane_speeds"`  // World units per second
	VehicleColors []uint32  `json:"vehicle_colors"`
	WrapMargin    int       `json:"wrap_margin"` // Tiles past the edge before a vehicle wraps

	StepDuration time.Duration `json:"step_duration"`
	BobHeight    float64       `json:"bob_height"`

	TickRate int `json:"tick_rate"` // Ticks per second for hosts driving the engine
}

// DefaultConfig returns the standard constant tables.
func DefaultConfig() GameConfig {
	return GameConfig{
		MinTile:        -8,
		MaxTile:        8,
		TileSize:       42,
		BatchSize:      20,
		LookAhead:      10,
		TreesPerForest: 4,
		TreeHeights:    []int{20, 45, 60},
		CarsPerLane:    3,
		TrucksPerLane:  2,
		CarBuffer:      1,
		TruckBuffer:    2,
		LaneSpeeds:     []float64{125, 156, 188},
		VehicleColors:  []uint32{0xa52523, 0xbdb638, 0x78b14b},
		WrapMargin:     2,
		StepDuration:   200 * time.Millisecond,
		BobHeight:      8,
		TickRate:       60,
	}
}

// TilesPerRow returns the width of the playable grid in tiles.
func (c GameConfig) TilesPerRow() int {
	return c.MaxTile - c.MinTile + 1
}

// Validate checks that the tables can drive a session.
func (c GameConfig) Validate() error {
	if c.MinTile > 0 || c.MaxTile < 0 {
		return fmt.Errorf("tile range [%d, %d] must contain 0", c.MinTile, c.MaxTile)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %v", c.TileSize)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.LookAhead < 1 || c.LookAhead >= c.BatchSize {
		return fmt.Errorf("look-ahead %d must be in [1, %d)", c.LookAhead, c.BatchSize)
	}
	if c.TreesPerForest < 0 || c.CarsPerLane < 0 || c.TrucksPerLane < 0 {
		return fmt.Errorf("per-row counts must not be negative (trees %d, cars %d, trucks %d)",
			c.TreesPerForest, c.CarsPerLane, c.TrucksPerLane)
	}
	if c.CarBuffer < 0 || c.TruckBuffer < 0 {
		return fmt.Errorf("vehicle buffers must not be negative (car %d, truck %d)", c.CarBuffer, c.TruckBuffer)
	}
	if c.WrapMargin < 0 {
		return fmt.Errorf("wrap margin must not be negative, got %d", c.WrapMargin)
	}
	if c.BobHeight < 0 {
		return fmt.Errorf("bob height must not be negative, got %v", c.BobHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.TreesPerForest > c.TilesPerRow() {
		return fmt.Errorf("%d trees do not fit in %d tiles", c.TreesPerForest, c.TilesPerRow())
	}
	if len(c.TreeHeights) == 0 || len(c.LaneSpeeds) == 0 || len(c.VehicleColors) == 0 {
		return fmt.Errorf("tree heights, lane speeds and vehicle colors must be non-empty")
	}
	if c.StepDuration <= 0 {
		return fmt.Errorf("step duration must be positive, got %v", c.StepDuration)
	}
	return nil
}
