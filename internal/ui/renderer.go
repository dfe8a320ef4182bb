package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-crossroad/internal/game"
)

// Rows shown ahead of and behind the player.
const (
	rowsAhead  = 10
	rowsBehind = 4
)

// Color palette
var (
	// Terrain styles
	grassStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#baf455"))

	startStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#99c846"))

	roadStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#454a59"))

	treeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#baf455")).
			Foreground(lipgloss.Color("#4d2926")).
			Bold(true)

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0619a")).
			Bold(true)

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// RenderBoard draws the rows around the player, forward at the top.
func RenderBoard(snap *game.Snapshot) string {
	if snap == nil || snap.TileSize <= 0 {
		return "Waiting for game state..."
	}

	// Vehicle lookup by row
	byRow := make(map[int][]game.Vehicle)
	for _, v := range snap.Vehicles {
		byRow[v.Row] = append(byRow[v.Row], v)
	}

	playerRow := int(math.Round(snap.Pose.Y / snap.TileSize))
	playerTile := int(math.Round(snap.Pose.X / snap.TileSize))

	lines := make([]string, 0, rowsAhead+rowsBehind+1)
	for r := snap.Player.Row + rowsAhead; r >= snap.Player.Row-rowsBehind; r-- {
		row, ok := snap.Row(r)
		var cells []string
		for t := snap.MinTile; t <= snap.MaxTile; t++ {
			if r == playerRow && t == playerTile {
				cells = append(cells, renderPlayer(row, ok))
				continue
			}
			cells = append(cells, renderCell(row, ok, r, t, byRow[r], snap.TileSize))
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	return strings.Join(lines, "\n")
}

// renderCell renders a single tile. Each cell is 2 characters wide for a
// square-ish appearance.
func renderCell(row game.Row, generated bool, r, tile int, vehicles []game.Vehicle, tileSize float64) string {
	if r <= 0 || !generated {
		return startStyle.Render("  ")
	}

	if row.Kind == game.RowForest {
		if row.HasTreeAt(tile) {
			return treeStyle.Render("♣♣")
		}
		return grassStyle.Render("  ")
	}

	// Priority: Vehicle > Road
	for i := range vehicles {
		if covers(&vehicles[i], tile, tileSize) {
			glyph := "▄▄"
			if vehicles[i].Kind == game.RowTruck {
				glyph = "▓▓"
			}
			return roadStyle.
				Foreground(lipgloss.Color(fmt.Sprintf("#%06x", vehicles[i].Color))).
				Render(glyph)
		}
	}
	return roadStyle.Render("  ")
}

func renderPlayer(row game.Row, generated bool) string {
	bg := startStyle
	if generated {
		if row.Kind.IsLane() {
			bg = roadStyle
		} else {
			bg = grassStyle
		}
	}
	return playerStyle.Inherit(bg).Render("██")
}

// covers reports whether a vehicle's body spans the given tile.
func covers(v *game.Vehicle, tile int, tileSize float64) bool {
	b := game.VehicleBox(v, tileSize)
	center := float64(tile) * tileSize
	return center+tileSize/2 > b.Min.X && center-tileSize/2 < b.Max.X
}

// RenderHUD renders the score, the session status and the retry prompt.
func RenderHUD(snap *game.Snapshot) string {
	if snap == nil {
		return ""
	}

	var parts []string

	// Title
	parts = append(parts, titleStyle.Render("🐔 CROSSROAD"))
	parts = append(parts, "")
	parts = append(parts, scoreStyle.Render(fmt.Sprintf("Score: %d", snap.Score)))
	parts = append(parts, dimStyle.Render(fmt.Sprintf("Row %d  Tile %d", snap.Player.Row, snap.Player.Tile)))
	parts = append(parts, "")

	// Game status
	switch snap.Status {
	case game.StatusRunning:
		parts = append(parts, dimStyle.Render(fmt.Sprintf("Queued: %d", len(snap.Pending))))
	case game.StatusOver:
		parts = append(parts, gameOverStyle.Render("💀 GAME OVER"))
		parts = append(parts, fmt.Sprintf("Your score: %d", snap.Score))
		parts = append(parts, "Press [r] to retry")
	}

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
