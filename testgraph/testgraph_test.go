package testgraph_test

import (
	"testing"

	"github.com/katalvlaran/minorembed/testgraph"
	"github.com/stretchr/testify/require"
)

func TestCompleteEmitsAllUnorderedPairs(t *testing.T) {
	edges, err := testgraph.Complete(4)
	require.NoError(t, err)
	require.Len(t, edges, 6) // C(4,2)
}

func TestCompleteRejectsTooFewVertices(t *testing.T) {
	_, err := testgraph.Complete(0)
	require.ErrorIs(t, err, testgraph.ErrTooFewVertices)
}

func TestCycleClosesTheRing(t *testing.T) {
	edges, err := testgraph.Cycle(5)
	require.NoError(t, err)
	require.Len(t, edges, 5)
	require.Equal(t, "v4", edges[4].A)
	require.Equal(t, "v0", edges[4].B)
}

func TestCompleteBipartiteEmitsEveryCrossPair(t *testing.T) {
	edges, err := testgraph.CompleteBipartite(4, 4)
	require.NoError(t, err)
	require.Len(t, edges, 16)
	for _, e := range edges {
		require.Equal(t, byte('L'), e.A[0])
		require.Equal(t, byte('R'), e.B[0])
	}
}

func TestPathHasNoEdgeForSingleVertex(t *testing.T) {
	edges, err := testgraph.Path(1)
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestGridCountsInteriorAndBoundaryEdges(t *testing.T) {
	edges, err := testgraph.Grid(2, 3)
	require.NoError(t, err)
	// 2x3 grid: horizontal edges = 2*2=4, vertical edges = 1*3=3.
	require.Len(t, edges, 7)
}

func TestTwoDisjointEdgesAreVertexDisjoint(t *testing.T) {
	edges := testgraph.TwoDisjointEdges()
	require.Len(t, edges, 2)
	seen := map[string]bool{}
	for _, e := range edges {
		require.False(t, seen[e.A])
		require.False(t, seen[e.B])
		seen[e.A] = true
		seen[e.B] = true
	}
}
