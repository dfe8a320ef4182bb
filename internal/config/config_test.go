package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalg/go-crossroad/internal/game"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	config, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultConfig(), config)
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
grid:
  min_tile: -5
  max_tile: 5
map:
  batch_size: 30
  look_ahead: 12
traffic:
  speeds: [100, 200]
  colors: [16711680]
player:
  step_duration: 150ms
host:
  tick_rate: 30
`)
	config, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, -5, config.MinTile)
	assert.Equal(t, 5, config.MaxTile)
	assert.Equal(t, 30, config.BatchSize)
	assert.Equal(t, 12, config.LookAhead)
	assert.Equal(t, []float64{100, 200}, config.LaneSpeeds)
	assert.Equal(t, []uint32{0xff0000}, config.VehicleColors)
	assert.Equal(t, 150*time.Millisecond, config.StepDuration)
	assert.Equal(t, 30, config.TickRate)

	// Untouched sections keep their defaults
	defaults := game.DefaultConfig()
	assert.Equal(t, defaults.TreesPerForest, config.TreesPerForest)
	assert.Equal(t, defaults.TileSize, config.TileSize)
	assert.Equal(t, defaults.CarBuffer, config.CarBuffer)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("grid:\n  min_tile: 3\n"))
	assert.ErrorContains(t, err, "invalid config")

	for _, data := range []string{
		"host:\n  tick_rate: 0\n",
		"traffic:\n  cars_per_lane: -1\n",
		"traffic:\n  car_buffer: -1\n",
		"forest:\n  trees: -2\n",
	} {
		_, err = Parse([]byte(data))
		assert.ErrorContains(t, err, "invalid config", "accepted %q", data)
	}

	_, err = Parse([]byte("map: [1, 2"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossroad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("forest:\n  trees: 6\n"), 0o644))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, config.TreesPerForest)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}
