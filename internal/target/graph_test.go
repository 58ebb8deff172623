package target_test

import (
	"testing"

	"github.com/katalvlaran/minorembed/internal/target"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeUndirectedAndDeduplicated(t *testing.T) {
	g := target.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1) // duplicate, no-op
	require.ElementsMatch(t, []int32{1}, g.Neighbors(0))
	require.ElementsMatch(t, []int32{0}, g.Neighbors(1))
}

func TestAddEdgeSelfLoopPanics(t *testing.T) {
	g := target.NewGraph(2)
	require.Panics(t, func() { g.AddEdge(0, 0) })
}

func TestUseCountLifecycle(t *testing.T) {
	g := target.NewGraph(2)
	require.Equal(t, 0, g.UseCount(0))
	g.IncUse(0)
	g.IncUse(0)
	require.Equal(t, 2, g.UseCount(0))
	g.DecUse(0)
	require.Equal(t, 1, g.UseCount(0))
}

func TestDecUseUnderflowPanics(t *testing.T) {
	g := target.NewGraph(1)
	require.Panics(t, func() { g.DecUse(0) })
}

func TestWeightZeroWhenUnusedOrOwnChain(t *testing.T) {
	require.Equal(t, 0.0, target.Weight(0, false, 2))
	require.Equal(t, 0.0, target.Weight(5, true, 2))
}

func TestWeightGrowsExponentiallyWithUseCount(t *testing.T) {
	w1 := target.Weight(1, false, 2)
	w2 := target.Weight(2, false, 2)
	require.Equal(t, 1.0, w1)  // 2^1 - 1
	require.Equal(t, 3.0, w2) // 2^2 - 1
	require.Less(t, w1, w2)
}

func TestRestrictSets(t *testing.T) {
	g := target.NewGraph(4)
	require.Nil(t, g.Restrict(0))

	b := target.NewBitset(4)
	b.Set(1)
	b.Set(2)
	g.SetRestrict(0, b)
	require.True(t, g.Restrict(0).Test(1))
	require.False(t, g.Restrict(0).Test(3))

	g.SetRestrict(0, target.NewBitset(4)) // empty set clears the restriction
	require.Nil(t, g.Restrict(0))
}

func TestFixedMarking(t *testing.T) {
	g := target.NewGraph(2)
	require.False(t, g.IsFixed(0))
	g.MarkFixed(0)
	require.True(t, g.IsFixed(0))
	require.False(t, g.IsFixed(1))
}
