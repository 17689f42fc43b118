// Package chip reassembles per-pixel time series into spatial grids.
package chip

import (
	"errors"
	"fmt"
)

const (
	// GridSize is the number of cells per side of an assembled grid.
	GridSize = 100

	// Pitch is the coordinate spacing between adjacent pixels, in the
	// projection units of the chip coordinates.
	Pitch = 30
)

// Record is one pixel's time series within a chip. ChipX, ChipY locate the
// chip origin and PixelX, PixelY the pixel, all on the Pitch grid: pixel
// offsets from the origin run 0..2970 in steps of Pitch. Bands maps each
// band name to that pixel's value sequence, one entry per date in the
// series.
type Record struct {
	ChipX  int
	ChipY  int
	PixelX int
	PixelY int
	Bands  map[string][]int
}

// cell computes the grid row and column for the record's pixel. Pixel x
// grows with column, pixel y shrinks with row (chip origin is the
// upper-left corner).
func (r Record) cell() (row, col int, err error) {
	dx := r.PixelX - r.ChipX
	dy := r.ChipY - r.PixelY

	if dx%Pitch != 0 || dy%Pitch != 0 {
		return 0, 0, fmt.Errorf("pixel (%d, %d) is off the %d-unit grid of chip (%d, %d)",
			r.PixelX, r.PixelY, Pitch, r.ChipX, r.ChipY)
	}

	row, col = dy/Pitch, dx/Pitch
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return 0, 0, fmt.Errorf("pixel (%d, %d) falls outside the %dx%d grid of chip (%d, %d)",
			r.PixelX, r.PixelY, GridSize, GridSize, r.ChipX, r.ChipY)
	}
	return row, col, nil
}

// Assemble populates one GridSize x GridSize grid per band from the values
// at time index ind of each record. Cells with no record stay zero; when
// two records map to the same cell the later record in input order wins.
// ind must be a valid index into every record's series for every requested
// band.
func Assemble(records []Record, ind int, bands []string) (map[string][][]int, error) {
	if ind < 0 {
		return nil, errors.New("time index must not be negative")
	}

	out := make(map[string][][]int, len(bands))
	for _, b := range bands {
		grid := make([][]int, GridSize)
		for i := range grid {
			grid[i] = make([]int, GridSize)
		}
		out[b] = grid
	}

	for _, r := range records {
		row, col, err := r.cell()
		if err != nil {
			return nil, err
		}

		for _, b := range bands {
			series, ok := r.Bands[b]
			if !ok {
				return nil, fmt.Errorf("record at pixel (%d, %d) has no band %q", r.PixelX, r.PixelY, b)
			}
			if ind >= len(series) {
				return nil, fmt.Errorf("time index %d out of range for band %q with %d values", ind, b, len(series))
			}
			out[b][row][col] = series[ind]
		}
	}

	return out, nil
}
