package game

import (
	"log"
)

// RowLookup gives read access to generated rows by row index.
type RowLookup interface {
	// Row returns the row at index (1-based). ok is false for the start
	// terrain (index <= 0) and for rows not generated yet.
	Row(index int) (row Row, ok bool)
}

// Map is the append-only sequence of generated rows. Row 1 is the first
// stored row; row 0 and everything behind it is permanent start terrain.
type Map struct {
	gen       *Generator
	batchSize int
	rows      []Row
}

// NewMap creates a map pre-populated with one batch of rows.
func NewMap(gen *Generator, batchSize int) *Map {
	m := &Map{gen: gen, batchSize: batchSize}
	m.Reset()
	return m
}

// Row implements RowLookup.
func (m *Map) Row(index int) (Row, bool) {
	if index < 1 || index > len(m.rows) {
		return Row{}, false
	}
	return m.rows[index-1], true
}

// Len returns the number of generated rows, which is also the index of
// the last row.
func (m *Map) Len() int {
	return len(m.rows)
}

// AddRows appends one batch. It returns the index of the first new row
// and the new rows themselves, which must not be modified.
func (m *Map) AddRows() (first int, added []Row) {
	first = len(m.rows) + 1
	m.rows = append(m.rows, m.gen.GenerateRows(m.batchSize)...)
	log.Printf("[MAP] Extended to %d rows", len(m.rows))
	return first, m.rows[first-1:]
}

// Reset discards every row and generates a fresh initial batch, which is
// returned.
func (m *Map) Reset() []Row {
	m.rows = m.gen.GenerateRows(m.batchSize)
	return m.rows
}

// NeedsRows reports whether a committed row is within look-ahead rows of
// the generated horizon.
func (m *Map) NeedsRows(row, lookAhead int) bool {
	return row >= len(m.rows)-lookAhead
}

// copyRows returns a deep copy of every row.
func (m *Map) copyRows() []Row {
	rows := make([]Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.clone()
	}
	return rows
}
