package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Engine is the simulation context of one game session. It owns the map,
// the player, the traffic and the score, and is the only place they are
// wired together.
//
// The engine is not safe for concurrent use. Hosts call QueueMove, Tick
// and Reset from a single goroutine.
type Engine struct {
	Config    GameConfig
	SessionID uuid.UUID

	board      *Map
	player     *PlayerMotion
	traffic    *Traffic
	collisions *CollisionDetector
	score      ScoreTracker
	ticks      uint64
}

// NewEngine creates a running session with one generated batch of rows.
// All map randomness is drawn from rng.
func NewEngine(config GameConfig, rng *rand.Rand) *Engine {
	traffic := NewTraffic(config)
	e := &Engine{
		Config:     config,
		SessionID:  uuid.New(),
		board:      NewMap(NewGenerator(config, rng), config.BatchSize),
		player:     NewPlayerMotion(config),
		traffic:    traffic,
		collisions: NewCollisionDetector(traffic, config.TileSize),
	}
	e.traffic.Spawn(1, e.board.rows)
	e.score.Reset()

	log.Printf("[GAME] Session %s started with %d rows, %d vehicles", e.SessionID, e.board.Len(), e.traffic.Count())
	return e
}

// QueueMove validates a step against the player's committed cell plus the
// steps already queued, and queues it if the final cell is legal. Illegal
// steps and input after the game is over are dropped; the return value
// only reports which happened.
func (e *Engine) QueueMove(d Direction) bool {
	if e.score.Status() != StatusRunning {
		return false
	}

	moves := append(e.player.Pending(), d)
	if !IsValidMove(e.board, e.Config, e.player.Committed(), moves) {
		return false
	}

	e.player.Queue(d)
	return true
}

// Tick advances the simulation by dt: player step animation, vehicle
// motion and collision detection, in that order.
func (e *Engine) Tick(dt time.Duration) {
	e.ticks++
	running := e.score.Status() == StatusRunning

	if running && e.player.Update(dt) {
		e.stepCompleted()
	}

	e.traffic.Advance(dt)

	if !running {
		return
	}
	if v := e.collisions.Check(e.player.Committed().Row, e.player.Pose()); v != nil {
		e.endGame(v)
	}
}

// stepCompleted extends the map when the player gets close to its end and
// records the new row in the score.
func (e *Engine) stepCompleted() {
	row := e.player.Committed().Row

	if e.board.NeedsRows(row, e.Config.LookAhead) {
		first, added := e.board.AddRows()
		e.traffic.Spawn(first, added)
	}

	e.score.UpdateScore(row)
}

func (e *Engine) endGame(hit *Vehicle) {
	if !e.score.EndGame() {
		return
	}
	log.Printf("[GAME] Session %s over: hit by %s in row %d, score %d",
		e.SessionID, hit.Kind, hit.Row, e.score.Score())
}

// Reset starts a new session: fresh map and traffic, player on the start
// cell, status running and score zero.
func (e *Engine) Reset() {
	rows := e.board.Reset()
	e.traffic.Reset()
	e.traffic.Spawn(1, rows)
	e.player.Reset()
	e.score.Reset()
	e.ticks = 0
	e.SessionID = uuid.New()

	log.Printf("[GAME] Session %s started with %d rows, %d vehicles", e.SessionID, e.board.Len(), e.traffic.Count())
}

// Status returns the session status.
func (e *Engine) Status() Status {
	return e.score.Status()
}

// Score returns the highest row reached in this session.
func (e *Engine) Score() int {
	return e.score.Score()
}

// Snapshot is a read-only copy of everything a renderer needs for one
// frame.
type Snapshot struct {
	SessionID string      `json:"session_id"`
	Tick      uint64      `json:"tick"`
	Status    Status      `json:"status"`
	Score     int         `json:"score"`
	Player    Position    `json:"player"`
	Pending   []Direction `json:"pending"`
	Pose      Pose        `json:"pose"`
	Rows      []Row       `json:"rows"` // Rows[i] is row i+1
	Vehicles  []Vehicle   `json:"vehicles"`
	MinTile   int         `json:"min_tile"`
	MaxTile   int         `json:"max_tile"`
	TileSize  float64     `json:"tile_size"`
}

// Row returns the row at index (1-based) from the snapshot.
func (s *Snapshot) Row(index int) (Row, bool) {
	if index < 1 || index > len(s.Rows) {
		return Row{}, false
	}
	return s.Rows[index-1], true
}

// Snapshot returns a deep copy of the session state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		SessionID: e.SessionID.String(),
		Tick:      e.ticks,
		Status:    e.score.Status(),
		Score:     e.score.Score(),
		Player:    e.player.Committed(),
		Pending:   e.player.Pending(),
		Pose:      e.player.Pose(),
		Rows:      e.board.copyRows(),
		Vehicles:  e.traffic.copyVehicles(),
		MinTile:   e.Config.MinTile,
		MaxTile:   e.Config.MaxTile,
		TileSize:  e.Config.TileSize,
	}
}
