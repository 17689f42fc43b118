// Package season partitions observation tables into per-year date windows
// and aggregates statistics within them.
package season

import (
	"errors"
	"fmt"
	"time"
)

// Range describes a calendar date sequence. Start is required. When End is
// set it bounds the sequence inclusively and Periods is ignored; Periods
// only limits the length when End is zero. Freq is one of "D" (daily, the
// default), "W" (weekly), "M" (monthly), or "Y" (yearly).
type Range struct {
	Start   time.Time
	End     time.Time
	Periods int
	Freq    string
}

// DateRange generates the chronological date sequence described by r.
func DateRange(r Range) ([]time.Time, error) {
	if r.Start.IsZero() {
		return nil, errors.New("date range requires a start date")
	}
	if r.End.IsZero() && r.Periods <= 0 {
		return nil, errors.New("date range requires an end date or a period count")
	}
	if !r.End.IsZero() && r.End.Before(r.Start) {
		return nil, errors.New("date range end precedes start")
	}

	years, months, days, err := step(r.Freq)
	if err != nil {
		return nil, err
	}

	var out []time.Time
	for d := r.Start; ; d = d.AddDate(years, months, days) {
		if !r.End.IsZero() {
			if d.After(r.End) {
				break
			}
		} else if len(out) >= r.Periods {
			break
		}
		out = append(out, d)
	}
	return out, nil
}

// step translates a frequency code into AddDate increments.
func step(freq string) (years, months, days int, err error) {
	switch freq {
	case "", "D":
		return 0, 0, 1, nil
	case "W":
		return 0, 0, 7, nil
	case "M":
		return 0, 1, 0, nil
	case "Y":
		return 1, 0, 0, nil
	default:
		return 0, 0, 0, fmt.Errorf("unknown frequency %q", freq)
	}
}
