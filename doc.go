// Package tapseries provides post-processing helpers for time-series
// satellite pixel data exported from a time-series analysis tool.
//
// TAPSeries is a small Go package for working with per-pixel observation
// tables and chip-based time series: date filtering and sorting, quality
// masking, seasonal aggregation, descriptive statistics, and reassembly of
// per-pixel records into fixed-size spatial grids.
//
// # Features
//
//   - Column-oriented observation tables with date-aware sorting and slicing
//   - Quality masking against a configurable set of QA codes
//   - Per-year seasonal windows with summary statistics
//   - Nearest-date lookup and full-row spectral signatures
//   - Reassembly of chip records into 100x100 per-band grids
//
// # Quick Start
//
// Mask and summarize a season across every year in a table:
//
//	tbl, _ := table.New(dates, map[string][]float64{"qa": qa, "ndvi": ndvi})
//	cfg := season.DefaultConfig()
//	cfg.StartMonth, cfg.StartDay = 6, 1
//	cfg.EndMonth, cfg.EndDay = 9, 30
//	cfg.Field = "ndvi"
//	info, _ := season.Info(tbl, cfg)
//
// Rebuild a spatial grid for one date index:
//
//	grids, _ := chip.Assemble(records, 12, []string{"SR1", "SR2"})
//
// # Packages
//
// The library is organized into the following packages:
//
//   - table: observation tables, sorting, date slicing, masking, lookups
//   - stats: descriptive statistics over value slices
//   - season: calendar range generation and per-year seasonal aggregation
//   - chip: reassembly of per-pixel records into spatial grids
package tapseries
