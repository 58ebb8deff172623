package chain_test

import (
	"testing"

	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/target"
	"github.com/stretchr/testify/require"
)

func TestInstallBuildsMembershipAndUseCounts(t *testing.T) {
	g := target.NewGraph(5)
	s := chain.NewStore(g, 2)

	// Paths rooted at 2, reaching toward chain(u)'s existing members 0 and 4.
	s.Install(0, 2, [][]int32{{2, 1, 0}, {2, 3, 4}})

	c := s.Chain(0)
	require.Equal(t, 5, c.Len())
	require.Equal(t, int32(2), c.Anchor())
	require.True(t, c.Contains(0))
	require.True(t, c.Contains(4))
	for i := 0; i < 5; i++ {
		require.Equal(t, 1, g.UseCount(i))
	}
}

func TestReinstallAdjustsUseCounts(t *testing.T) {
	g := target.NewGraph(4)
	s := chain.NewStore(g, 1)
	s.Install(0, 1, [][]int32{{1, 0}})
	require.Equal(t, 1, g.UseCount(0))
	require.Equal(t, 1, g.UseCount(1))

	s.Install(0, 2, [][]int32{{2, 3}})
	require.Equal(t, 0, g.UseCount(0), "node 0 left the chain, use-count must drop")
	require.Equal(t, 0, g.UseCount(1), "node 1 left the chain too")
	require.Equal(t, 1, g.UseCount(2))
	require.Equal(t, 1, g.UseCount(3))
}

func TestTearEmptiesChainAndDecrementsUse(t *testing.T) {
	g := target.NewGraph(3)
	s := chain.NewStore(g, 1)
	s.Install(0, 0, [][]int32{{0, 1}, {0, 2}})
	s.Tear(0)
	require.Equal(t, 0, s.Chain(0).Len())
	for i := 0; i < 3; i++ {
		require.Equal(t, 0, g.UseCount(i))
	}
}

func TestTearOnFixedChainPanics(t *testing.T) {
	g := target.NewGraph(2)
	s := chain.NewStore(g, 1)
	s.InstallSingleton(0, 0)
	s.MarkFixed(0)
	require.Panics(t, func() { s.Tear(0) })
}

func TestInstallOnFixedChainPanics(t *testing.T) {
	g := target.NewGraph(2)
	s := chain.NewStore(g, 1)
	s.InstallSingleton(0, 0)
	s.MarkFixed(0)
	require.Panics(t, func() { s.InstallSingleton(0, 1) })
}

func TestPruneRemovesUnneededLeaves(t *testing.T) {
	g := target.NewGraph(4)
	s := chain.NewStore(g, 1)
	// chain tree: 0 (anchor) -> 1 -> 2, and 0 -> 3 (leaf)
	s.Install(0, 0, [][]int32{{0, 1, 2}, {0, 3}})

	s.Prune(0, func(t int32) bool {
		return t == 2 // only node 2 is required to witness an edge
	})

	c := s.Chain(0)
	require.True(t, c.Contains(0))
	require.True(t, c.Contains(1), "node 1 is an ancestor of the required leaf 2, must stay")
	require.True(t, c.Contains(2))
	require.False(t, c.Contains(3), "unneeded leaf 3 should be pruned")
	require.Equal(t, 0, g.UseCount(3))
}

func TestPruneLeavesFixedAndPinnedAlone(t *testing.T) {
	g := target.NewGraph(3)
	s := chain.NewStore(g, 1)
	s.Install(0, 0, [][]int32{{0, 1}, {0, 2}})
	s.MarkFixed(0)

	s.Prune(0, func(int32) bool { return false })
	require.Equal(t, 3, s.Chain(0).Len(), "fixed chains must not be pruned")
}
