// Package season partitions observation tables into repeating annual date
// windows and computes per-year summary statistics within them.
//
// A season is a caller-defined month/day window that recurs every calendar
// year present in a table, e.g. June 1 through September 30. Options live
// in an explicit Config rather than free-form keyword threading:
//
//	cfg := season.DefaultConfig()
//	cfg.StartMonth, cfg.StartDay = 6, 1
//	cfg.EndMonth, cfg.EndDay = 9, 30
//	cfg.Field = "ndvi"
//
// Seasons yields the raw date sequences per year:
//
//	windows, err := season.Seasons(tbl, cfg)
//
// Info runs the full pipeline for each year — slice the table to the season
// window, apply the quality mask, describe the surviving values:
//
//	info, err := season.Info(tbl, cfg)
//	for _, y := range tbl.Years() {
//	    s := info[y]
//	    ...
//	}
//
// DateRange is the underlying calendar generator and may be used directly.
// When a Range has both an end date and a period count, the end date wins;
// Periods only bounds the sequence when End is zero.
package season
