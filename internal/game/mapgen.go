package game

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Generator produces random map rows from the configured tables.
// All randomness comes from the injected source so that a seed fully
// determines the map.
type Generator struct {
	config GameConfig
	rng    *rand.Rand
}

// NewGenerator creates a row generator drawing from rng.
func NewGenerator(config GameConfig, rng *rand.Rand) *Generator {
	return &Generator{config: config, rng: rng}
}

// GenerateRows returns count freshly generated rows. The row kind is
// chosen uniformly among forest, car lane and truck lane.
func (g *Generator) GenerateRows(count int) []Row {
	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, g.generateRow())
	}
	return rows
}

func (g *Generator) generateRow() Row {
	switch RowKind(g.rng.Intn(3)) {
	case RowCar:
		return g.generateLane(RowCar, g.config.CarsPerLane, g.config.CarBuffer)
	case RowTruck:
		return g.generateLane(RowTruck, g.config.TrucksPerLane, g.config.TruckBuffer)
	default:
		return g.generateForest()
	}
}

// generateForest places trees on distinct tiles. Trees reserve only their
// own tile.
func (g *Generator) generateForest() Row {
	occupied := mapset.New[int]()
	trees := make([]Tree, 0, g.config.TreesPerForest)

	for i := 0; i < g.config.TreesPerForest; i++ {
		tile, ok := g.pickTile(occupied, 0)
		if !ok {
			break
		}
		occupied.Put(tile)
		trees = append(trees, Tree{
			Tile:   tile,
			Height: g.config.TreeHeights[g.rng.Intn(len(g.config.TreeHeights))],
		})
	}

	return Row{Kind: RowForest, Trees: trees}
}

// generateLane places vehicles so that each one's footprint (its tile plus
// buffer tiles on both sides) is disjoint from every other footprint in
// the lane. All vehicles share the lane's heading and speed.
func (g *Generator) generateLane(kind RowKind, count, buffer int) Row {
	heading := HeadingForward
	if g.rng.Intn(2) == 1 {
		heading = HeadingBackward
	}
	speed := g.config.LaneSpeeds[g.rng.Intn(len(g.config.LaneSpeeds))]

	occupied := mapset.New[int]()
	vehicles := make([]VehicleSpec, 0, count)

	for i := 0; i < count; i++ {
		tile, ok := g.pickTile(occupied, buffer)
		if !ok {
			break
		}
		for t := tile - buffer; t <= tile+buffer; t++ {
			occupied.Put(t)
		}
		vehicles = append(vehicles, VehicleSpec{
			InitialTile: tile,
			Color:       g.config.VehicleColors[g.rng.Intn(len(g.config.VehicleColors))],
		})
	}

	return Row{
		Kind:     kind,
		Heading:  heading,
		Speed:    speed,
		Vehicles: vehicles,
	}
}

// pickTile draws uniformly among tiles whose footprint of the given buffer
// does not touch an occupied tile. ok is false when no tile qualifies.
func (g *Generator) pickTile(occupied mapset.Set[int], buffer int) (tile int, ok bool) {
	candidates := make([]int, 0, g.config.TilesPerRow())
	for t := g.config.MinTile; t <= g.config.MaxTile; t++ {
		if footprintFree(occupied, t, buffer) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}

func footprintFree(occupied mapset.Set[int], tile, buffer int) bool {
	for t := tile - buffer; t <= tile+buffer; t++ {
		if occupied.Has(t) {
			return false
		}
	}
	return true
}
