package table

import (
	"fmt"
	"sort"
	"time"
)

// DefaultMaskValues is the default set of QA codes removed by Mask. The
// codes mark fill, cloud, cloud shadow, and snow conditions in the exported
// pixel QA band.
var DefaultMaskValues = []float64{
	1, 96, 112, 160, 176, 224, 352, 368, 416, 432, 480,
	864, 880, 928, 944, 992,
}

// DefaultMaskField is the column Mask filters on when no field is given.
const DefaultMaskField = "qa"

// SortOn returns a new table ordered by the named column, or by date when
// field is DateField. The sort is stable: ties keep their original relative
// order, and sorting twice with the same key yields the same order.
func (t *Table) SortOn(field string, ascending bool) (*Table, error) {
	var less func(i, j int) bool

	if field == DateField {
		less = func(i, j int) bool { return t.Dates[i].Before(t.Dates[j]) }
	} else {
		col, ok := t.Columns[field]
		if !ok {
			return nil, fmt.Errorf("no such field %q", field)
		}
		less = func(i, j int) bool { return col[i] < col[j] }
	}

	indices := make([]int, t.Len())
	for i := range indices {
		indices[i] = i
	}

	sort.SliceStable(indices, func(a, b int) bool {
		if ascending {
			return less(indices[a], indices[b])
		}
		return less(indices[b], indices[a])
	})

	return t.take(indices), nil
}

// Temporal returns a new table sorted by date.
func (t *Table) Temporal(ascending bool) *Table {
	sorted, _ := t.SortOn(DateField, ascending)
	return sorted
}

// Between returns the rows whose date falls within [min, max], inclusive on
// both ends. Relative order is preserved; the result is not re-sorted.
func (t *Table) Between(min, max time.Time) *Table {
	var indices []int
	for i, d := range t.Dates {
		if !d.Before(min) && !d.After(max) {
			indices = append(indices, i)
		}
	}
	return t.take(indices)
}

// Mask returns the rows whose field value is not a member of vals. A nil
// vals uses DefaultMaskValues and an empty field uses DefaultMaskField.
// Membership is tested with exact equality, so integer QA codes stored as
// float64 match reliably. Masking an already-masked table changes nothing.
func (t *Table) Mask(vals []float64, field string) (*Table, error) {
	if vals == nil {
		vals = DefaultMaskValues
	}
	if field == "" {
		field = DefaultMaskField
	}

	col, ok := t.Columns[field]
	if !ok {
		return nil, fmt.Errorf("no such field %q", field)
	}

	disallowed := make(map[float64]bool, len(vals))
	for _, v := range vals {
		disallowed[v] = true
	}

	var indices []int
	for i, v := range col {
		if !disallowed[v] {
			indices = append(indices, i)
		}
	}
	return t.take(indices), nil
}
