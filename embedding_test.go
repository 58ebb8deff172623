// Package minorembed_test exercises the public FindEmbedding surface
// against the scenarios documented in the engine's behavioral contract:
// a basic permutation embedding, chain growth under a denser target, a
// fixed-endpoints path, a provably non-embeddable pair with overlap
// reporting, disjoint components, and suspension pins.
package minorembed_test

import (
	"testing"

	"github.com/katalvlaran/minorembed"
	"github.com/katalvlaran/minorembed/testgraph"
	"github.com/stretchr/testify/require"
)

func triangleST() ([]minorembed.Edge, []minorembed.Edge) {
	s := []minorembed.Edge{{A: "a", B: "b"}, {A: "b", B: "c"}, {A: "a", B: "c"}}
	t := []minorembed.Edge{{A: "0", B: "1"}, {A: "1", B: "2"}, {A: "0", B: "2"}}
	return s, t
}

func TestK3IntoK3IsAPermutation(t *testing.T) {
	s, tgt := triangleST()
	mapping, ok, err := minorembed.FindEmbedding(s, tgt, minorembed.WithRandomSeed(1))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, mapping, 3)

	seen := map[string]bool{}
	for _, targets := range mapping {
		require.Len(t, targets, 1)
		require.False(t, seen[targets[0]], "target node reused: %v", targets[0])
		seen[targets[0]] = true
	}
}

func TestK4IntoCompleteBipartiteUsesLengthTwoChains(t *testing.T) {
	s, err := testgraph.Complete(4)
	require.NoError(t, err)
	tgt, err := testgraph.CompleteBipartite(4, 4)
	require.NoError(t, err)

	mapping, ok, err := minorembed.FindEmbedding(s, tgt, minorembed.WithRandomSeed(7), minorembed.WithTries(20))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, mapping, 4)
	for _, targets := range mapping {
		require.Len(t, targets, 2)
	}
}

func TestPathWithFixedEndpointsConnectsThroughMiddle(t *testing.T) {
	s := []minorembed.Edge{{A: "a", B: "b"}, {A: "b", B: "c"}}
	tgt, err := testgraph.Path(5) // v0-v1-v2-v3-v4
	require.NoError(t, err)

	mapping, ok, err := minorembed.FindEmbedding(s, tgt,
		minorembed.WithRandomSeed(3),
		minorembed.WithFixedChains(map[string][]string{
			"a": {"v0"},
			"c": {"v4"},
		}),
	)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"v0"}, mapping["a"])
	require.Equal(t, []string{"v4"}, mapping["c"])
	require.NotEmpty(t, mapping["b"])

	allowed := map[string]bool{"v1": true, "v2": true, "v3": true}
	for _, m := range mapping["b"] {
		require.True(t, allowed[m], "chain(b) must stay within the interior of the path, got %q", m)
	}
}

func TestK5IntoC5HasNoProperEmbedding(t *testing.T) {
	s, err := testgraph.Complete(5)
	require.NoError(t, err)
	tgt, err := testgraph.Cycle(5)
	require.NoError(t, err)

	mapping, ok, err := minorembed.FindEmbedding(s, tgt,
		minorembed.WithRandomSeed(11),
		minorembed.WithReturnOverlap(true),
		minorembed.WithTries(3),
		minorembed.WithMaxNoImprovement(5),
	)
	require.NoError(t, err)
	require.False(t, ok)
	require.NotNil(t, mapping)
}

func TestTwoDisjointEdgesEmbedIndependently(t *testing.T) {
	s := testgraph.TwoDisjointEdges()
	tgt := testgraph.TwoDisjointEdges()

	mapping, ok, err := minorembed.FindEmbedding(s, tgt, minorembed.WithRandomSeed(5))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, mapping, 4)
	for _, targets := range mapping {
		require.Len(t, targets, 1)
	}
}

func TestSuspendChainsPinsOneOfTwoTargets(t *testing.T) {
	s := []minorembed.Edge{{A: "a", B: "b"}}
	tgt := []minorembed.Edge{{A: "t1", B: "t2"}, {A: "t2", B: "t3"}}

	mapping, ok, err := minorembed.FindEmbedding(s, tgt,
		minorembed.WithRandomSeed(13),
		minorembed.WithSuspendChains(map[string][][]string{
			"a": {{"t1", "t3"}},
		}),
	)
	require.NoError(t, err)
	require.True(t, ok)

	hit := false
	for _, m := range mapping["a"] {
		if m == "t1" || m == "t3" {
			hit = true
		}
	}
	require.True(t, hit, "chain(a) must contain t1 or t3, got %v", mapping["a"])
}

func TestEmptySourceReturnsEmptyMapping(t *testing.T) {
	mapping, ok, err := minorembed.FindEmbedding(nil, []minorembed.Edge{{A: "0", B: "1"}})
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, mapping)
}

func TestUnknownLabelInFixedChainsIsAUsageError(t *testing.T) {
	s, tgt := triangleST()
	_, _, err := minorembed.FindEmbedding(s, tgt, minorembed.WithFixedChains(map[string][]string{
		"a": {"does-not-exist"},
	}))
	require.Error(t, err)
	var usageErr *minorembed.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestFindEmbeddingIsDeterministicForFixedSeed(t *testing.T) {
	s, tgt := triangleST()
	run := func() map[string][]string {
		mapping, _, err := minorembed.FindEmbedding(s, tgt, minorembed.WithRandomSeed(42))
		require.NoError(t, err)
		return mapping
	}
	require.Equal(t, run(), run())
}

func TestCancelFuncStopsImmediatelyAndStillReturnsAMapping(t *testing.T) {
	s, tgt := triangleST()
	mapping, _, err := minorembed.FindEmbedding(s, tgt,
		minorembed.WithRandomSeed(1),
		minorembed.WithCancelFunc(func() bool { return true }),
	)
	require.NoError(t, err)
	require.NotNil(t, mapping)
}
