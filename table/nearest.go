package table

import "time"

// ordinal returns the day count of d since the zero time, so date distance
// can be compared as integer day differences.
func ordinal(d time.Time) int {
	return int(d.Unix() / 86400)
}

// NearestDate returns the index of the date closest to target by absolute
// day distance. Ties go to the lowest index. Returns -1 for an empty slice.
func NearestDate(dates []time.Time, target time.Time) int {
	if len(dates) == 0 {
		return -1
	}

	want := ordinal(target)
	best := 0
	bestDist := abs(ordinal(dates[0]) - want)

	for i, d := range dates[1:] {
		if dist := abs(ordinal(d) - want); dist < bestDist {
			best = i + 1
			bestDist = dist
		}
	}
	return best
}

// Nearest returns the full observation whose date is closest to target.
// This is the spectral-signature lookup: the target date need not be
// present in the table.
func (t *Table) Nearest(target time.Time) (Observation, error) {
	if t.Len() == 0 {
		return Observation{}, errEmptyTable
	}
	return t.At(NearestDate(t.Dates, target)), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
