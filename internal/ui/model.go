package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-crossroad/internal/game"
)

// tickMsg drives one simulation tick.
type tickMsg time.Time

// maxTickFrames is the most wall-clock frames a single tick may cover.
const maxTickFrames = 4

// Model is the Bubbletea model for the game. Bubbletea delivers key and
// tick messages on a single goroutine, which is the only caller of the
// engine.
type Model struct {
	engine   *game.Engine
	keys     keyMap
	help     help.Model
	lastTick time.Time
	quitting bool
}

// NewModel creates a new TUI model driving the given engine.
func NewModel(engine *game.Engine) Model {
	return Model{
		engine: engine,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tick(m.engine.Config.TickRate)
}

// Update handles incoming messages (key presses, ticks).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.engine.Tick(clampDelta(now.Sub(m.lastTick), m.engine.Config.TickRate))
		}
		m.lastTick = now
		return m, tick(m.engine.Config.TickRate)
	}

	return m, nil
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye! 🐔\n"
	}

	snap := m.engine.Snapshot()
	board := RenderBoard(&snap)
	hud := RenderHUD(&snap)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n" + m.help.View(m.keys) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Retry):
		if m.engine.Status() == game.StatusOver {
			m.engine.Reset()
		}
		return m, nil
	}

	if d, ok := m.keys.direction(msg); ok {
		m.engine.QueueMove(d)
	}
	return m, nil
}

// clampDelta limits dt to maxTickFrames frames at the given rate.
func clampDelta(dt time.Duration, rate int) time.Duration {
	if rate <= 0 {
		rate = game.DefaultConfig().TickRate
	}
	if limit := maxTickFrames * time.Second / time.Duration(rate); dt > limit {
		return limit
	}
	if dt < 0 {
		return 0
	}
	return dt
}

// tick returns a Cmd that fires the next tick at the given rate.
func tick(rate int) tea.Cmd {
	if rate <= 0 {
		rate = game.DefaultConfig().TickRate
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
