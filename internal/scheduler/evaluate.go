package scheduler

import (
	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/target"
)

// edge is one source-graph edge (u,v), u<v by construction of sourceAdj
// traversal below.
type edge struct{ u, v int32 }

// sourceEdges flattens an adjacency list into a deduplicated edge list.
func sourceEdges(adj [][]int32) []edge {
	var edges []edge
	for u, nbrs := range adj {
		for _, v := range nbrs {
			if int32(u) < v {
				edges = append(edges, edge{int32(u), v})
			}
		}
	}
	return edges
}

// edgeWitnessed reports whether some target edge has one endpoint in
// chain(u) and the other in chain(v) (spec §1(b), §8 invariant 3).
//
// Complexity: O(|chain(u)| * max target degree).
func edgeWitnessed(tg *target.Graph, cu, cv *chain.Chain) bool {
	if cu.Len() == 0 || cv.Len() == 0 {
		return false
	}
	found := false
	members := cu.Members(nil)
	for _, p := range members {
		if found {
			break
		}
		for _, q := range tg.Neighbors(int(p)) {
			if cv.Contains(q) {
				found = true
				break
			}
		}
	}
	return found
}

// reachesChain reports whether target node t has a neighbor in c.
func reachesChain(tg *target.Graph, t int32, c *chain.Chain) bool {
	for _, q := range tg.Neighbors(int(t)) {
		if c.Contains(q) {
			return true
		}
	}
	return false
}

// soleWitness reports whether t is the only member of cv that reaches cu,
// i.e. removing t would break that witness edge entirely.
func soleWitness(tg *target.Graph, cv, cu *chain.Chain, t int32) bool {
	for _, p := range cv.Members(nil) {
		if p == t {
			continue
		}
		if reachesChain(tg, p, cu) {
			return false
		}
	}
	return true
}

// Evaluate computes the quality key (spec §4.G) for the current chain
// store state, along with whether the embedding is proper. edges includes
// suspension-pin auxiliary edges (v,z): their witness requirement is
// exactly how a suspend_chains blob gets enforced — chain(v) must touch
// one of the blob's target nodes through chain(z)'s fixed singleton.
//
// Complexity: O(|T| + |E_S| * average chain size * target degree).
func Evaluate(tg *target.Graph, chains *chain.Store, edges []edge) (Quality, bool) {
	lengths := chains.Lengths()

	anyPlaced := false
	for _, l := range lengths {
		if l > 0 {
			anyPlaced = true
			break
		}
	}

	var overlapValues []int
	for t := 0; t < tg.N(); t++ {
		u := tg.UseCount(t)
		if u > 1 {
			overlapValues = append(overlapValues, u)
		}
	}
	disjoint := len(overlapValues) == 0

	covered := true
	for _, e := range edges {
		if !edgeWitnessed(tg, chains.Chain(int(e.u)), chains.Chain(int(e.v))) {
			covered = false
			break
		}
	}

	proper := anyPlaced && disjoint && covered

	state := 1
	switch {
	case !anyPlaced:
		state = 2
	case proper:
		state = 0
	}

	q := Quality{
		State:       state,
		OverlapHist: histogram(overlapValues),
		LengthHist:  lengthVector(lengths),
	}
	return q, proper
}
