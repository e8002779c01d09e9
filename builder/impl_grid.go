package builder

import (
	"fmt"
	"strconv"
)

// GridID formats the vertex ID of cell (r, c) as "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor for a rows×cols 4-neighbourhood lattice.
// IDs are fixed to GridID and ignore the ID scheme. Cells are added in
// row-major order; each cell links right, then down.
func Grid(rows, cols int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					cfg.link(g, GridID(r, c), GridID(r, c+1))
				}
				if r+1 < rows {
					cfg.link(g, GridID(r, c), GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
