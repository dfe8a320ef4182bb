package game

import (
	"math"
	"time"
)

// MotionState is the state of the player's step machine.
type MotionState int

const (
	MotionIdle     MotionState = iota // Queue empty
	MotionStepping                    // Head of the queue is being animated
)

// Pose is the continuous on-screen placement of the player. X and Y are
// world units on the ground plane, Z is the hop height and Facing is the
// rotation around the vertical axis in radians.
type Pose struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Facing float64 `json:"facing"`
}

// facingFor returns the rotation the player turns to while stepping in d.
func facingFor(d Direction) float64 {
	switch d {
	case Left:
		return math.Pi / 2
	case Right:
		return -math.Pi / 2
	case Backward:
		return math.Pi
	}
	return 0
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// PoseAt maps a committed cell, the step being animated and its progress
// in [0, 1] to a continuous pose. Facing is interpolated from the given
// current facing straight toward the step's target angle, without wrapping
// to the shorter arc.
func PoseAt(config GameConfig, from Position, d Direction, progress, facing float64) Pose {
	to := from.Step(d)
	startX := float64(from.Tile) * config.TileSize
	startY := float64(from.Row) * config.TileSize
	endX := float64(to.Tile) * config.TileSize
	endY := float64(to.Row) * config.TileSize

	return Pose{
		X:      lerp(startX, endX, progress),
		Y:      lerp(startY, endY, progress),
		Z:      math.Sin(progress*math.Pi) * config.BobHeight,
		Facing: lerp(facing, facingFor(d), progress),
	}
}

// PlayerMotion owns the player's committed cell, the queue of pending
// steps and the animation of the step at the head of the queue.
type PlayerMotion struct {
	config    GameConfig
	committed Position
	queue     []Direction
	elapsed   time.Duration
	pose      Pose
}

// NewPlayerMotion creates an idle player on the start cell.
func NewPlayerMotion(config GameConfig) *PlayerMotion {
	return &PlayerMotion{config: config}
}

// Committed returns the last fully applied cell.
func (p *PlayerMotion) Committed() Position {
	return p.committed
}

// Pending returns a copy of the queued steps, head first.
func (p *PlayerMotion) Pending() []Direction {
	return append([]Direction(nil), p.queue...)
}

// State returns whether a step is in progress.
func (p *PlayerMotion) State() MotionState {
	if len(p.queue) == 0 {
		return MotionIdle
	}
	return MotionStepping
}

// Pose returns the current continuous pose.
func (p *PlayerMotion) Pose() Pose {
	return p.pose
}

// Progress returns how far the head step is animated, in [0, 1].
func (p *PlayerMotion) Progress() float64 {
	if len(p.queue) == 0 {
		return 0
	}
	return math.Min(1, p.elapsed.Seconds()/p.config.StepDuration.Seconds())
}

// Queue appends a step. Callers validate the move first; see IsValidMove.
func (p *PlayerMotion) Queue(d Direction) {
	p.queue = append(p.queue, d)
}

// Update advances the head step by dt. It returns true when the step
// completed and its delta was committed during this update.
func (p *PlayerMotion) Update(dt time.Duration) bool {
	if len(p.queue) == 0 {
		return false
	}

	p.elapsed += dt
	progress := p.Progress()
	head := p.queue[0]
	p.pose = PoseAt(p.config, p.committed, head, progress, p.pose.Facing)

	if progress < 1 {
		return false
	}

	p.queue = p.queue[1:]
	p.committed = p.committed.Step(head)
	p.elapsed = 0
	return true
}

// Reset puts the player back on the start cell facing forward with an
// empty queue.
func (p *PlayerMotion) Reset() {
	p.committed = Position{}
	p.queue = nil
	p.elapsed = 0
	p.pose = Pose{}
}
