package testgraph

import (
	"fmt"

	"github.com/katalvlaran/minorembed"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns the edge list of the n-vertex simple path v0-v1-...-v(n-1).
// A single-vertex path (n==1) has no edges.
func Path(n int) ([]minorembed.Edge, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}

	edges := make([]minorembed.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, minorembed.Edge{A: fmt.Sprintf("v%d", i), B: fmt.Sprintf("v%d", i+1)})
	}
	return edges, nil
}
