package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalg/go-crossroad/internal/game"
)

func newTestModel() Model {
	return NewModel(game.NewEngine(game.DefaultConfig(), rand.New(rand.NewSource(1))))
}

func TestKeysQueueMoves(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)

	snap := m.engine.Snapshot()
	assert.Equal(t, []game.Direction{game.Left, game.Right}, snap.Pending)

	// Backing off the start row is dropped silently
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Len(t, m.engine.Snapshot().Pending, 2)
}

func TestRetryIgnoredWhileRunning(t *testing.T) {
	m := newTestModel()
	session := m.engine.SessionID

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)
	assert.Equal(t, session, m.engine.SessionID)
}

func TestQuit(t *testing.T) {
	m := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Contains(t, next.View(), "Goodbye")
}

func TestTickAdvancesEngine(t *testing.T) {
	m := newTestModel()
	start := time.Now()

	next, cmd := m.Update(tickMsg(start))
	m = next.(Model)
	assert.NotNil(t, cmd, "tick loop continues")
	assert.Equal(t, uint64(0), m.engine.Snapshot().Tick, "first tick only records the clock")

	next, _ = m.Update(tickMsg(start.Add(16 * time.Millisecond)))
	m = next.(Model)
	assert.Equal(t, uint64(1), m.engine.Snapshot().Tick)
}

func TestRenderBoard(t *testing.T) {
	m := newTestModel()
	snap := m.engine.Snapshot()

	board := RenderBoard(&snap)
	assert.Equal(t, rowsAhead+rowsBehind+1, strings.Count(board, "\n")+1)
	assert.Contains(t, board, "██")
	assert.Equal(t, "Waiting for game state...", RenderBoard(nil))
}

func TestRenderHUD(t *testing.T) {
	running := RenderHUD(&game.Snapshot{Status: game.StatusRunning, Score: 3})
	assert.Contains(t, running, "Score: 3")
	assert.NotContains(t, running, "GAME OVER")

	over := RenderHUD(&game.Snapshot{Status: game.StatusOver, Score: 7})
	assert.Contains(t, over, "GAME OVER")
	assert.Contains(t, over, "Your score: 7")
}

func TestCovers(t *testing.T) {
	car := &game.Vehicle{Row: 1, Kind: game.RowCar, X: 0}

	// A car is 60 units long, so it spans tiles -1..1 of 42 units
	assert.True(t, covers(car, 0, 42))
	assert.True(t, covers(car, 1, 42))
	assert.True(t, covers(car, -1, 42))
	assert.False(t, covers(car, 2, 42))
}

func TestClampDelta(t *testing.T) {
	frame := time.Second / 60

	assert.Equal(t, frame, clampDelta(frame, 60))
	assert.Equal(t, 4*frame, clampDelta(10*time.Second, 60))
	assert.Equal(t, time.Duration(0), clampDelta(-time.Second, 60))
}

func TestTickAfterStallIsClamped(t *testing.T) {
	m := newTestModel()
	require.True(t, m.engine.QueueMove(game.Left))
	start := time.Now()

	next, _ := m.Update(tickMsg(start))
	m = next.(Model)
	next, _ = m.Update(tickMsg(start.Add(5 * time.Second)))
	m = next.(Model)

	// Four frames at 60 Hz are well short of a 200ms step
	snap := m.engine.Snapshot()
	assert.Equal(t, game.Position{}, snap.Player)
	assert.Equal(t, []game.Direction{game.Left}, snap.Pending)
}
