package season

import (
	"fmt"
	"time"

	"github.com/sartorproj/tapseries/stats"
	"github.com/sartorproj/tapseries/table"
)

// Config holds the options for seasonal partitioning and aggregation. The
// season window repeats every year from (StartMonth, StartDay) to
// (EndMonth, EndDay) inclusive. Field names the column summarized by Info.
// MaskValues and MaskField select the quality filter; the zero values fall
// back to table.DefaultMaskValues and table.DefaultMaskField.
type Config struct {
	StartMonth int
	StartDay   int
	EndMonth   int
	EndDay     int
	Periods    int
	Freq       string

	Field      string
	MaskField  string
	MaskValues []float64
}

// DefaultConfig returns a configuration for a daily June-September season
// over the "ndvi" column with the default quality mask.
func DefaultConfig() Config {
	return Config{
		StartMonth: 6,
		StartDay:   1,
		EndMonth:   9,
		EndDay:     30,
		Freq:       "D",
		Field:      "ndvi",
	}
}

// window returns the season's date range for one year.
func (c Config) window(year int) Range {
	return Range{
		Start:   time.Date(year, time.Month(c.StartMonth), c.StartDay, 0, 0, 0, 0, time.UTC),
		End:     time.Date(year, time.Month(c.EndMonth), c.EndDay, 0, 0, 0, 0, time.UTC),
		Periods: c.Periods,
		Freq:    c.Freq,
	}
}

// Seasons builds the per-year date sequences for every year present in the
// table. Iterate years with t.Years() to retain first-appearance order.
func Seasons(t *table.Table, cfg Config) (map[int][]time.Time, error) {
	out := make(map[int][]time.Time)
	for _, y := range t.Years() {
		dates, err := DateRange(cfg.window(y))
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", y, err)
		}
		out[y] = dates
	}
	return out, nil
}

// Info computes summary statistics of cfg.Field for each year's season:
// the table is sliced to the season window, quality-masked, and the
// surviving values are described. A year whose season is fully masked out
// yields the all-nil stats.Summary.
func Info(t *table.Table, cfg Config) (map[int]stats.Summary, error) {
	seasons, err := Seasons(t, cfg)
	if err != nil {
		return nil, err
	}

	out := make(map[int]stats.Summary, len(seasons))
	for _, y := range t.Years() {
		dates := seasons[y]
		if len(dates) == 0 {
			return nil, fmt.Errorf("year %d: season window is empty", y)
		}

		window := t.Between(dates[0], dates[len(dates)-1])

		masked, err := window.Mask(cfg.MaskValues, cfg.MaskField)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", y, err)
		}

		values, err := masked.Values(cfg.Field)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", y, err)
		}

		out[y] = stats.Describe(values)
	}
	return out, nil
}
