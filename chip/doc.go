// Package chip reassembles exported per-pixel time series into fixed-size
// spatial grids.
//
// Exports deliver one Record per pixel: the chip origin it belongs to, the
// pixel's own coordinate, and a per-band value sequence indexed by date.
// Assemble inverts that layout for a single date, producing a 100x100 grid
// per band with each pixel's value written at its row and column within the
// chip:
//
//	grids, err := chip.Assemble(records, ind, []string{"SR1", "SR2", "SR3"})
//	if err != nil {
//	    return err
//	}
//	sr1 := grids["SR1"] // [][]int, GridSize x GridSize
//
// Coordinates sit on a 30-unit pitch with the chip origin at the upper-left
// corner; a pixel at the origin lands in grid cell [0][0]. Records with
// coordinates off the pitch or outside the grid are rejected.
package chip
