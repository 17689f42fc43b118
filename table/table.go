// Package table provides column-oriented observation tables and operations.
package table

import (
	"errors"
	"fmt"
	"time"
)

// DateField is the name under which the date column is addressed when
// sorting; it is reserved and may not be used as a value column name.
const DateField = "dates"

// Table represents an ordered collection of dated observations. Dates holds
// the calendar timestamp of each row and every column in Columns has the
// same length as Dates. Operations on a Table never mutate it; they return
// fresh tables.
type Table struct {
	Dates   []time.Time
	Columns map[string][]float64
}

// Observation is a single-row view of a table. Fields is a copy, not an
// alias into the table's columns.
type Observation struct {
	Date   time.Time
	Fields map[string]float64
}

// New creates a table from a date column and named value columns.
func New(dates []time.Time, columns map[string][]float64) (*Table, error) {
	if _, ok := columns[DateField]; ok {
		return nil, fmt.Errorf("column name %q is reserved", DateField)
	}
	for name, col := range columns {
		if len(col) != len(dates) {
			return nil, fmt.Errorf("column %q has %d values for %d dates", name, len(col), len(dates))
		}
	}
	return &Table{Dates: dates, Columns: columns}, nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Dates)
}

// At returns the observation at row i.
func (t *Table) At(i int) Observation {
	fields := make(map[string]float64, len(t.Columns))
	for name, col := range t.Columns {
		fields[name] = col[i]
	}
	return Observation{Date: t.Dates[i], Fields: fields}
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	dates := make([]time.Time, len(t.Dates))
	copy(dates, t.Dates)

	columns := make(map[string][]float64, len(t.Columns))
	for name, col := range t.Columns {
		c := make([]float64, len(col))
		copy(c, col)
		columns[name] = c
	}

	return &Table{Dates: dates, Columns: columns}
}

// Values returns a copy of the named column.
func (t *Table) Values(field string) ([]float64, error) {
	col, ok := t.Columns[field]
	if !ok {
		return nil, fmt.Errorf("no such field %q", field)
	}
	out := make([]float64, len(col))
	copy(out, col)
	return out, nil
}

// Years returns the distinct calendar years present in the date column, in
// order of first appearance.
func (t *Table) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, d := range t.Dates {
		y := d.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	return years
}

// take builds a new table from the rows at the given indices, in order.
func (t *Table) take(indices []int) *Table {
	dates := make([]time.Time, len(indices))
	for i, idx := range indices {
		dates[i] = t.Dates[idx]
	}

	columns := make(map[string][]float64, len(t.Columns))
	for name, col := range t.Columns {
		c := make([]float64, len(indices))
		for i, idx := range indices {
			c[i] = col[idx]
		}
		columns[name] = c
	}

	return &Table{Dates: dates, Columns: columns}
}

var errEmptyTable = errors.New("table has no rows")
