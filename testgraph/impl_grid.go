package testgraph

import (
	"fmt"

	"github.com/katalvlaran/minorembed"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c" coordinate labels, matching the teacher's fixed scheme
)

// Grid returns the edge list of a rows x cols orthogonal grid with
// 4-neighborhood connectivity: every cell connects to its right and
// bottom neighbor where they exist.
func Grid(rows, cols int) ([]minorembed.Edge, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}

	edges := make([]minorembed.Edge, 0, rows*cols*2)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := fmt.Sprintf(gridIDFmt, r, c)
			if c+1 < cols {
				edges = append(edges, minorembed.Edge{A: u, B: fmt.Sprintf(gridIDFmt, r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, minorembed.Edge{A: u, B: fmt.Sprintf(gridIDFmt, r+1, c)})
			}
		}
	}
	return edges, nil
}
