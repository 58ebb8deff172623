package testgraph

import "github.com/katalvlaran/minorembed"

// TwoDisjointEdges returns the edge list of two vertex-disjoint edges
// {v0,v1} and {v2,v3} — a minimal source graph with no path between its
// two components, exercising multi-component handling end to end.
func TwoDisjointEdges() []minorembed.Edge {
	return []minorembed.Edge{
		{A: "v0", B: "v1"},
		{A: "v2", B: "v3"},
	}
}
