package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalg/go-crossroad/internal/game"
)

func TestParseMoves(t *testing.T) {
	dirs, err := parseMoves(" forward, left ,right,backward ")
	require.NoError(t, err)
	assert.Equal(t, []game.Direction{game.Forward, game.Left, game.Right, game.Backward}, dirs)

	dirs, err = parseMoves("")
	require.NoError(t, err)
	assert.Empty(t, dirs)

	_, err = parseMoves("forward,jump")
	assert.ErrorContains(t, err, "parse moves")
}

func TestRunHeadless(t *testing.T) {
	engine := game.NewEngine(game.DefaultConfig(), rand.New(rand.NewSource(1)))

	// Sideways moves on the start row never meet traffic
	require.NoError(t, runHeadless(engine, "left,left,right", 120))
	snap := engine.Snapshot()
	assert.Equal(t, game.Position{Tile: -1}, snap.Player)
	assert.Equal(t, game.StatusRunning, snap.Status)
	assert.Equal(t, 0, snap.Score)

	assert.Error(t, runHeadless(engine, "sideways", 1))
}
