package setupx_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/setupx"
	"github.com/katalvlaran/minorembed/internal/target"
	"github.com/stretchr/testify/require"
)

func TestValidateFillsDefaults(t *testing.T) {
	n, err := setupx.Validate(setupx.RawOptions{})
	require.NoError(t, err)
	require.Equal(t, 10, n.MaxNoImprovement)
	require.Equal(t, 10, n.Tries)
	require.Equal(t, 10, n.ChainlengthPatience)
	require.Equal(t, 63, n.MaxFill)
	require.Equal(t, 1, n.Threads)
	require.True(t, n.MaxBeta > 1)
}

func TestValidateRejectsMaxBetaNotAboveOne(t *testing.T) {
	_, err := setupx.Validate(setupx.RawOptions{MaxBeta: 1})
	require.ErrorIs(t, err, setupx.ErrOptionOutOfRange)
}

func TestValidateClampsMaxFillAbove63(t *testing.T) {
	n, err := setupx.Validate(setupx.RawOptions{MaxFill: 1000})
	require.NoError(t, err)
	require.Equal(t, 63, n.MaxFill)
}

func TestValidateRejectsNegativeTries(t *testing.T) {
	_, err := setupx.Validate(setupx.RawOptions{Tries: -1})
	require.ErrorIs(t, err, setupx.ErrOptionOutOfRange)
}

func buildPath4() *target.Graph {
	tg := target.NewGraph(4)
	tg.AddEdge(0, 1)
	tg.AddEdge(1, 2)
	tg.AddEdge(2, 3)
	return tg
}

func TestInstallVerbatimAcceptsConnectedChain(t *testing.T) {
	tg := buildPath4()
	chains := chain.NewStore(tg, 1)
	err := setupx.InstallVerbatim(tg, chains, 0, []int32{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 3, chains.Chain(0).Len())
}

func TestInstallVerbatimRejectsDisconnectedChain(t *testing.T) {
	tg := buildPath4()
	chains := chain.NewStore(tg, 1)
	err := setupx.InstallVerbatim(tg, chains, 0, []int32{0, 3})
	require.ErrorIs(t, err, setupx.ErrChainDisconnected)
}

func TestApplyFixedRejectsOverlapBetweenTwoFixedChains(t *testing.T) {
	tg := buildPath4()
	chains := chain.NewStore(tg, 2)
	require.NoError(t, setupx.ApplyFixed(tg, chains, 0, []int32{0, 1}))
	err := setupx.ApplyFixed(tg, chains, 1, []int32{1, 2})
	require.True(t, errors.Is(err, setupx.ErrFixedChainsOverlap))
}

func TestApplyRestrictInstallsBitset(t *testing.T) {
	tg := buildPath4()
	setupx.ApplyRestrict(tg, 0, []int32{1, 2})
	require.NotNil(t, tg.Restrict(0))
	require.True(t, tg.Restrict(0).Test(1))
	require.False(t, tg.Restrict(0).Test(0))
}

func TestBuildPinsCreatesAuxiliaryFixedChainAndEdges(t *testing.T) {
	tg := buildPath4()
	chains := chain.NewStore(tg, 1)
	sourceAdj := [][]int32{{}}
	fixed := []bool{false}

	aux, err := setupx.BuildPins(tg, chains, &sourceAdj, &fixed, 0, [][]int32{{1, 2}}, nil)
	require.NoError(t, err)
	require.Len(t, aux, 1)

	z := aux[0]
	require.True(t, fixed[z])
	require.Equal(t, 1, chains.Chain(z).Len())
	require.Contains(t, sourceAdj[0], int32(z))
	require.Contains(t, sourceAdj[z], int32(0))

	zPrime := chains.Chain(z).Anchor()
	require.True(t, tg.N() > 4, "a fresh target node must have been added")
	neighbors := tg.Neighbors(int(zPrime))
	require.Contains(t, neighbors, int32(1))
	require.Contains(t, neighbors, int32(2))
}
