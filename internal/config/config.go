// Package config loads optional YAML overrides for the game's constant
// tables.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amalg/go-crossroad/internal/game"
)

// File mirrors game.GameConfig. Every field is optional; missing keys keep
// their default value.
type File struct {
	Grid    GridConfig    `yaml:"grid"`
	Map     MapConfig     `yaml:"map"`
	Forest  ForestConfig  `yaml:"forest"`
	Traffic TrafficConfig `yaml:"traffic"`
	Player  PlayerConfig  `yaml:"player"`
	Host    HostConfig    `yaml:"host"`
}

// GridConfig defines the playable tile range.
type GridConfig struct {
	MinTile  *int     `yaml:"min_tile"`
	MaxTile  *int     `yaml:"max_tile"`
	TileSize *float64 `yaml:"tile_size"`
}

// MapConfig defines procedural generation batching.
type MapConfig struct {
	BatchSize *int `yaml:"batch_size"`
	LookAhead *int `yaml:"look_ahead"` // Rows before the end that trigger a new batch
}

// ForestConfig defines forest rows.
type ForestConfig struct {
	Trees   *int  `yaml:"trees"`
	Heights []int `yaml:"heights"`
}

// TrafficConfig defines car and truck lanes.
type TrafficConfig struct {
	CarsPerLane   *int      `yaml:"cars_per_lane"`
	TrucksPerLane *int      `yaml:"trucks_per_lane"`
	CarBuffer     *int      `yaml:"car_buffer"`
	TruckBuffer   *int      `yaml:"truck_buffer"`
	Speeds        []float64 `yaml:"speeds"` // World units per second
	Colors        []uint32  `yaml:"colors"`
	WrapMargin    *int      `yaml:"wrap_margin"`
}

// PlayerConfig defines the step animation.
type PlayerConfig struct {
	StepDuration *time.Duration `yaml:"step_duration"` // e.g. "200ms"
	BobHeight    *float64       `yaml:"bob_height"`
}

// HostConfig defines how hosts drive the engine.
type HostConfig struct {
	TickRate *int `yaml:"tick_rate"`
}

// Load reads a YAML file and applies it on top of game.DefaultConfig().
func Load(path string) (game.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.GameConfig{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML data on top of game.DefaultConfig() and validates the
// result.
func Parse(data []byte) (game.GameConfig, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return game.GameConfig{}, fmt.Errorf("parse config: %w", err)
	}

	config := game.DefaultConfig()
	f.apply(&config)

	if err := config.Validate(); err != nil {
		return game.GameConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (f File) apply(c *game.GameConfig) {
	setInt(&c.MinTile, f.Grid.MinTile)
	setInt(&c.MaxTile, f.Grid.MaxTile)
	setFloat(&c.TileSize, f.Grid.TileSize)

	setInt(&c.BatchSize, f.Map.BatchSize)
	setInt(&c.LookAhead, f.Map.LookAhead)

	setInt(&c.TreesPerForest, f.Forest.Trees)
	if len(f.Forest.Heights) > 0 {
		c.TreeHeights = f.Forest.Heights
	}

	setInt(&c.CarsPerLane, f.Traffic.CarsPerLane)
	setInt(&c.TrucksPerLane, f.Traffic.TrucksPerLane)
	setInt(&c.CarBuffer, f.Traffic.CarBuffer)
	setInt(&c.TruckBuffer, f.Traffic.TruckBuffer)
	setInt(&c.WrapMargin, f.Traffic.WrapMargin)
	if len(f.Traffic.Speeds) > 0 {
		c.LaneSpeeds = f.Traffic.Speeds
	}
	if len(f.Traffic.Colors) > 0 {
		c.VehicleColors = f.Traffic.Colors
	}

	if f.Player.StepDuration != nil {
		c.StepDuration = *f.Player.StepDuration
	}
	setFloat(&c.BobHeight, f.Player.BobHeight)

	setInt(&c.TickRate, f.Host.TickRate)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
