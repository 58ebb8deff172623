// Package target implements the host graph T (spec §3, §4.C): adjacency,
// per-node use-count (overlap accounting), the exponential overlap-penalty
// weighting, and the optional per-source-vertex restrict masks.
//
// Target nodes are dense integers in [0, N). The graph is built once during
// setup and its adjacency never changes afterwards; only UseCount mutates,
// as chains are installed and torn down by the chain store (spec §4.D).
package target

import "math"

// Graph is the host (target) graph. Adjacency is immutable once setup has
// finished adding nodes and edges; UseCount is the only field that changes
// during a search.
type Graph struct {
	n        int
	adj      [][]int32
	useCount []int32
	fixedAt  []bool // true if this target node belongs to a fixed chain

	restrict map[int]*Bitset // source vertex id -> permitted target node set; absent or nil = unrestricted
}

// NewGraph allocates an empty target graph over n nodes with no edges.
//
// Complexity: O(n).
func NewGraph(n int) *Graph {
	return &Graph{
		n:        n,
		adj:      make([][]int32, n),
		useCount: make([]int32, n),
	}
}

// N returns |T|.
func (g *Graph) N() int { return g.n }

// AddNode appends one fresh, edgeless target node and returns its id. Used
// by the suspension-pin construction (spec §3 Pin) to materialize the
// auxiliary target node z' after the graph was originally sized.
//
// Complexity: amortized O(1).
func (g *Graph) AddNode() int {
	id := g.n
	g.n++
	g.adj = append(g.adj, nil)
	g.useCount = append(g.useCount, 0)
	if g.fixedAt != nil {
		g.fixedAt = append(g.fixedAt, false)
	}
	return id
}

// AddEdge adds an undirected edge between target nodes a and b. A self-loop
// panics; an edge that is already present is ignored, so a repeated edge
// submission leaves the adjacency unchanged.
//
// Complexity: O(deg(a)) to detect a duplicate, amortized O(1) to append.
func (g *Graph) AddEdge(a, b int) {
	if a == b {
		panic("target: self-loop is not a valid target edge")
	}
	for _, x := range g.adj[a] {
		if int(x) == b {
			return // idempotent: duplicate edge submissions collapse
		}
	}
	g.adj[a] = append(g.adj[a], int32(b))
	g.adj[b] = append(g.adj[b], int32(a))
}

// Neighbors returns the adjacency list of target node t. Callers must not
// mutate the returned slice.
//
// Complexity: O(1).
func (g *Graph) Neighbors(t int) []int32 { return g.adj[t] }

// UseCount returns the number of distinct chains currently containing t.
//
// Complexity: O(1).
func (g *Graph) UseCount(t int) int { return int(g.useCount[t]) }

// IncUse increments t's use-count by one chain reference.
//
// Complexity: O(1).
func (g *Graph) IncUse(t int) { g.useCount[t]++ }

// DecUse decrements t's use-count by one chain reference. Panics if it
// would go negative: that is a chain-store bookkeeping bug, not recoverable
// user input, and must surface immediately rather than silently drift.
//
// Complexity: O(1).
func (g *Graph) DecUse(t int) {
	if g.useCount[t] == 0 {
		panic("target: use-count underflow")
	}
	g.useCount[t]--
}

// MarkFixed records that target node t is permanently occupied by a fixed
// chain, for diagnostics; it does not by itself prevent further IncUse
// calls (the chain store already never tears fixed chains).
func (g *Graph) MarkFixed(t int) {
	if g.fixedAt == nil {
		g.fixedAt = make([]bool, g.n)
	}
	g.fixedAt[t] = true
}

// IsFixed reports whether t was marked fixed.
func (g *Graph) IsFixed(t int) bool { return g.fixedAt != nil && g.fixedAt[t] }

// CloneUseCounts returns a copy of the current per-node use-count vector,
// for the scheduler to snapshot before a pass it may need to roll back
// (spec §4.G phase iii: a pass is kept only if it strictly improves the
// chain-length vector).
//
// Complexity: O(n).
func (g *Graph) CloneUseCounts() []int32 {
	cp := make([]int32, len(g.useCount))
	copy(cp, g.useCount)
	return cp
}

// RestoreUseCounts overwrites the use-count vector with a snapshot
// previously returned by CloneUseCounts.
//
// Complexity: O(n).
func (g *Graph) RestoreUseCounts(snapshot []int32) {
	copy(g.useCount, snapshot)
}

// Weight returns the β-weighted entering cost for target node t (spec
// §4.C: "target nodes currently in that chain are considered weight 0").
// inOwnChain reports, for this specific Dijkstra run, whether t is already
// a member of the chain being grown.
//
// Complexity: O(1).
func Weight(useCount int, inOwnChain bool, beta float64) float64 {
	if inOwnChain {
		return 0
	}
	u := useCount
	if u <= 0 {
		return 0
	}
	return math.Pow(beta, float64(u)) - 1
}

// SetRestrict installs the permitted target-node set for source vertex v.
// An empty or nil set is interpreted as "unrestricted" (spec §3).
func (g *Graph) SetRestrict(v int, allowed *Bitset) {
	if g.restrict == nil {
		g.restrict = make(map[int]*Bitset)
	}
	if allowed == nil || allowed.Count() == 0 {
		delete(g.restrict, v)
		return
	}
	g.restrict[v] = allowed
}

// Restrict returns the restrict set for source vertex v, or nil if v is
// unrestricted.
func (g *Graph) Restrict(v int) *Bitset {
	if g.restrict == nil {
		return nil
	}
	return g.restrict[v]
}
