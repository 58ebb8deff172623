package testgraph

import (
	"fmt"

	"github.com/katalvlaran/minorembed"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns the edge list of the n-vertex simple cycle C_n over vertex
// labels "v0".."v(n-1)", ring edges emitted in ascending i order, closing
// from v(n-1) back to v0.
func Cycle(n int) ([]minorembed.Edge, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	edges := make([]minorembed.Edge, 0, n)
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("v%d", i)
		v := fmt.Sprintf("v%d", (i+1)%n)
		edges = append(edges, minorembed.Edge{A: u, B: v})
	}
	return edges, nil
}
