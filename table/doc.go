// Package table provides column-oriented observation tables and the
// sorting, slicing, masking, and lookup operations used to prepare exported
// pixel time series for analysis.
//
// A Table pairs a date column with any number of named float64 columns
// (QA codes, surface-reflectance bands, index values). Every operation
// borrows its input and returns a fresh table, so tables can be shared
// freely between processing steps.
//
// # Creating a Table
//
// Build a table from parallel slices:
//
//	tbl, err := table.New(dates, map[string][]float64{
//	    "qa":   qa,
//	    "ndvi": ndvi,
//	})
//
// # Sorting and Slicing
//
// Impose the canonical ascending-date order, or sort on any column:
//
//	sorted := tbl.Temporal(true)
//	byValue, err := tbl.SortOn("ndvi", false)
//
// Slice to an inclusive date window:
//
//	window := tbl.Between(start, end)
//
// # Quality Masking
//
// Drop rows whose QA code marks an unusable observation:
//
//	clear, err := tbl.Mask(nil, "")  // DefaultMaskValues on "qa"
//	custom, err := tbl.Mask([]float64{1, 224}, "qa")
//
// # Lookups
//
// Find the observation closest to an arbitrary date:
//
//	obs, err := tbl.Nearest(time.Date(2015, 7, 4, 0, 0, 0, 0, time.UTC))
//
// or just the index into a date slice:
//
//	i := table.NearestDate(tbl.Dates, target)
package table
