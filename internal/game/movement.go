package game

// FinalPosition folds every move onto start and returns where the player
// would end up.
func FinalPosition(start Position, moves []Direction) Position {
	pos := start
	for _, d := range moves {
		pos = pos.Step(d)
	}
	return pos
}

// IsValidMove reports whether applying moves (the pending queue plus the
// candidate) to start ends on a legal cell.
// Movement is blocked by the start boundary, the row edges and trees.
func IsValidMove(rows RowLookup, config GameConfig, start Position, moves []Direction) bool {
	final := FinalPosition(start, moves)

	// Behind the start row
	if final.Row < 0 {
		return false
	}

	// Bounds check
	if final.Tile < config.MinTile || final.Tile > config.MaxTile {
		return false
	}

	// Tree collision
	if row, ok := rows.Row(final.Row); ok && row.HasTreeAt(final.Tile) {
		return false
	}

	return true
}
