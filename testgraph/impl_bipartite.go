package testgraph

import (
	"fmt"

	"github.com/katalvlaran/minorembed"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
	leftPrefix              = "L"
	rightPrefix             = "R"
)

// CompleteBipartite returns the edge list of K_{n1,n2}: left labels
// "L0".."L(n1-1)", right labels "R0".."R(n2-1)", every cross pair emitted
// with i ascending over the left side and j ascending over the right.
func CompleteBipartite(n1, n2 int) ([]minorembed.Edge, error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
			methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
	}

	edges := make([]minorembed.Edge, 0, n1*n2)
	for i := 0; i < n1; i++ {
		left := fmt.Sprintf("%s%d", leftPrefix, i)
		for j := 0; j < n2; j++ {
			right := fmt.Sprintf("%s%d", rightPrefix, j)
			edges = append(edges, minorembed.Edge{A: left, B: right})
		}
	}
	return edges, nil
}
