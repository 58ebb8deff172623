// Package sssp implements the multi-source weighted Dijkstra engine used to
// grow one source vertex's chain (spec §4.E). It runs over a pairing.Heap
// and target.Graph, using caller-supplied scratch buffers so that the outer
// placement loop can reuse one set of arrays per worker across thousands of
// invocations with zero steady-state allocation (spec §5).
package sssp

import (
	"math"

	"github.com/katalvlaran/minorembed/internal/pairing"
	"github.com/katalvlaran/minorembed/internal/target"
)

// Inf represents an unreachable target node.
const Inf = math.MaxFloat64

// Scratch holds one worker's reusable Dijkstra buffers, sized to |T|. The
// outer scheduler allocates one Scratch per worker thread during setup
// (spec §5 "fixed size |T|, allocated once").
type Scratch struct {
	Heap   *pairing.Heap
	Dist   []float64
	Hops   []int32
	Parent []int32
}

// NewScratch allocates a Scratch for a target graph of size n.
//
// Complexity: O(n).
func NewScratch(n int) *Scratch {
	return &Scratch{
		Heap:   pairing.New(n),
		Dist:   make([]float64, n),
		Hops:   make([]int32, n),
		Parent: make([]int32, n),
	}
}

// Run computes, from the multi-source seed set Σ, the minimum β-weighted
// distance to every target node, honoring max_fill and the restrict-set
// soft penalty (spec §4.E). Own reports whether t is already a member of
// the chain being grown (weight 0 per spec §4.C). Results land in
// s.Dist/s.Hops/s.Parent; unreachable nodes get Dist==Inf and Parent==-1.
//
// Tie-breaking: when two candidate paths to the same node tie exactly on
// weighted distance, the one with fewer hops from Σ wins (spec §4.E(a));
// remaining ties between distinct nodes popped from the heap at equal
// distance fall back to the heap's own id ordering (spec §4.E(b)), which is
// a safe proxy for "lower target id" because the heap breaks internal ties
// by id already.
//
// Complexity: O((|T| + |E_T|) log |T|).
func Run(
	s *Scratch,
	tg *target.Graph,
	seeds []int32,
	own func(t int32) bool,
	beta float64,
	maxFill int, // <=0 means unlimited
	restrict *target.Bitset,
	restrictPenalty float64,
) {
	n := tg.N()
	h := s.Heap
	h.Reset()

	for t := 0; t < n; t++ {
		s.Dist[t] = Inf
		s.Hops[t] = 0
		s.Parent[t] = -1
	}

	for _, seed := range seeds {
		if s.Dist[seed] == 0 {
			continue // duplicate seed
		}
		s.Dist[seed] = 0
		s.Hops[seed] = 0
		s.Parent[seed] = -1
		h.SetValue(int(seed), 0)
	}

	for !h.Empty() {
		u, du := h.PopMin()
		if du > s.Dist[u] {
			continue // stale heap entry (shouldn't happen with our strict-relax discipline, kept as a safety net)
		}

		for _, v := range tg.Neighbors(u) {
			if maxFill > 0 && tg.UseCount(int(v)) >= maxFill && !own(v) {
				continue // node saturated: treated as unreachable (spec §4.E)
			}

			w := target.Weight(tg.UseCount(int(v)), own(v), beta)
			if restrict != nil && !restrict.Test(int(v)) {
				w += restrictPenalty
			}

			nd := s.Dist[u] + w
			nh := s.Hops[u] + 1

			better := nd < s.Dist[v]
			tie := nd == s.Dist[v] && nh < s.Hops[v]
			if !better && !tie {
				continue
			}

			s.Dist[v] = nd
			s.Hops[v] = nh
			s.Parent[v] = int32(u)
			h.CheckDecreaseValue(int(v), nd)
		}
	}
}

// ReachablePathTo walks parent backwards from t up to, but not including,
// the first node for which stop returns true (typically "is a member of
// chain(u)"): that node already belongs to the neighbor's chain, and the
// source edge is witnessed by the target edge from path[len-1] into it, not
// by sharing the node itself. Returns path[0]==t; path is empty if t itself
// satisfies stop. dist/parent may come straight from a Scratch or from a
// copy retained across a parallel neighbor-distance phase (spec §4.F step
// 4). Returns ok==false if t is unreachable (dist[t]==Inf).
//
// Complexity: O(path length).
func ReachablePathTo(dist []float64, parent []int32, t int32, stop func(n int32) bool) (path []int32, ok bool) {
	if dist[t] == Inf {
		return nil, false
	}
	cur := t
	for !stop(cur) {
		path = append(path, cur)
		p := parent[cur]
		if p == -1 {
			break // reached a seed with no further parent; stop() should have caught this already
		}
		cur = p
	}
	return path, true
}
