package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoseAt(t *testing.T) {
	config := DefaultConfig()
	from := Position{Row: 1, Tile: -2}

	start := PoseAt(config, from, Forward, 0, 0)
	assert.InDelta(t, -84, start.X, 1e-9)
	assert.InDelta(t, 42, start.Y, 1e-9)
	assert.InDelta(t, 0, start.Z, 1e-9)

	mid := PoseAt(config, from, Forward, 0.5, 0)
	assert.InDelta(t, 63, mid.Y, 1e-9)
	assert.InDelta(t, config.BobHeight, mid.Z, 1e-9, "hop peaks halfway")

	end := PoseAt(config, from, Left, 1, 0)
	assert.InDelta(t, -126, end.X, 1e-9)
	assert.InDelta(t, 42, end.Y, 1e-9)
	assert.InDelta(t, 0, end.Z, 1e-9)
	assert.InDelta(t, math.Pi/2, end.Facing, 1e-9)
}

func TestPlayerMotionStep(t *testing.T) {
	config := DefaultConfig()
	p := NewPlayerMotion(config)
	require.Equal(t, MotionIdle, p.State())

	// Idle updates do nothing
	assert.False(t, p.Update(time.Second))
	assert.Equal(t, Pose{}, p.Pose())

	p.Queue(Forward)
	p.Queue(Right)
	assert.Equal(t, MotionStepping, p.State())

	assert.False(t, p.Update(100*time.Millisecond))
	assert.Equal(t, Position{}, p.Committed(), "commit waits for the step to finish")
	assert.InDelta(t, 0.5, p.Progress(), 1e-9)
	assert.InDelta(t, 21, p.Pose().Y, 1e-9)

	assert.True(t, p.Update(150*time.Millisecond))
	assert.Equal(t, Position{Row: 1}, p.Committed())
	assert.Equal(t, []Direction{Right}, p.Pending())
	assert.InDelta(t, 0, p.Progress(), 1e-9, "elapsed time resets for the next step")

	assert.True(t, p.Update(200*time.Millisecond))
	assert.Equal(t, Position{Row: 1, Tile: 1}, p.Committed())
	assert.Equal(t, MotionIdle, p.State())
	assert.InDelta(t, 42, p.Pose().X, 1e-9)
	assert.InDelta(t, 42, p.Pose().Y, 1e-9)
}

// Facing is interpolated from its current value without wrapping, so
// turning from backward to right sweeps through forward instead of taking
// the quarter turn.
func TestPlayerMotionFacingDoesNotWrap(t *testing.T) {
	config := DefaultConfig()
	p := NewPlayerMotion(config)

	p.Queue(Forward)
	p.Queue(Backward)
	p.Update(200 * time.Millisecond)
	p.Update(200 * time.Millisecond)
	require.InDelta(t, math.Pi, p.Pose().Facing, 1e-9)

	p.Queue(Right)
	p.Update(100 * time.Millisecond)
	assert.InDelta(t, math.Pi/4, p.Pose().Facing, 1e-9)

	p.Update(100 * time.Millisecond)
	assert.InDelta(t, -math.Pi/2, p.Pose().Facing, 1e-9)
}

func TestPlayerMotionReset(t *testing.T) {
	p := NewPlayerMotion(DefaultConfig())
	p.Queue(Left)
	p.Update(200 * time.Millisecond)
	p.Queue(Forward)
	p.Update(50 * time.Millisecond)

	p.Reset()
	assert.Equal(t, Position{}, p.Committed())
	assert.Empty(t, p.Pending())
	assert.Equal(t, Pose{}, p.Pose())
	assert.Equal(t, MotionIdle, p.State())
}
