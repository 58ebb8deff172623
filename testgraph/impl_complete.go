package testgraph

import (
	"fmt"

	"github.com/katalvlaran/minorembed"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns the edge list of the complete simple graph K_n over
// vertex labels "v0".."v(n-1)", each unordered pair {i,j}, i<j, emitted
// exactly once in lexicographic order.
func Complete(n int) ([]minorembed.Edge, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("v%d", i)
	}

	edges := make([]minorembed.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, minorembed.Edge{A: ids[i], B: ids[j]})
		}
	}
	return edges, nil
}
