// Package placement implements the one-source-vertex placement heuristic
// (spec §4.F): compute neighbor distance arrays (optionally in parallel via
// internal/pool), pick a root minimizing total distance to every neighbor's
// chain, reconstruct paths, and install the new chain via internal/chain.
package placement

import (
	"context"

	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/pool"
	"github.com/katalvlaran/minorembed/internal/rng"
	"github.com/katalvlaran/minorembed/internal/sssp"
	"github.com/katalvlaran/minorembed/internal/target"
)

// Context bundles everything Place needs, reused across every call for the
// lifetime of one find_embedding run (spec §5 "all per-source scratch ...
// allocated once at setup").
type Context struct {
	Target    *target.Graph
	Chains    *chain.Store
	SourceAdj [][]int32 // SourceAdj[v] = source neighbors u with (u,v) in E_S
	Pool      *pool.Pool
	Scratches []*sssp.Scratch // len == threads

	// NeighborDist/NeighborHops/NeighborParent are preallocated [maxDegree][|T|]
	// matrices reused every call, so the parallel neighbor-distance phase
	// never allocates on the hot path: each task copies its Scratch's result
	// into one preassigned row.
	NeighborDist   [][]float64
	NeighborHops   [][]int32
	NeighborParent [][]int32

	Beta    float64
	MaxFill int // <=0 means unlimited
	RNG     *rng.Rand
}

// NewContext allocates the fixed-size scratch structures for a run over
// numTargets target nodes, threads workers, and a source graph whose
// maximum vertex degree is maxDegree.
//
// Complexity: O(threads*numTargets + maxDegree*numTargets).
func NewContext(tg *target.Graph, chains *chain.Store, sourceAdj [][]int32, threads, maxDegree int, beta float64, maxFill int, r *rng.Rand) *Context {
	scratches := make([]*sssp.Scratch, threads)
	for i := range scratches {
		scratches[i] = sssp.NewScratch(tg.N())
	}
	neighborDist := make([][]float64, maxDegree)
	neighborHops := make([][]int32, maxDegree)
	neighborParent := make([][]int32, maxDegree)
	for i := 0; i < maxDegree; i++ {
		neighborDist[i] = make([]float64, tg.N())
		neighborHops[i] = make([]int32, tg.N())
		neighborParent[i] = make([]int32, tg.N())
	}
	return &Context{
		Target:         tg,
		Chains:         chains,
		SourceAdj:      sourceAdj,
		Pool:           pool.New(threads),
		Scratches:      scratches,
		NeighborDist:   neighborDist,
		NeighborHops:   neighborHops,
		NeighborParent: neighborParent,
		Beta:           beta,
		MaxFill:        maxFill,
		RNG:            r,
	}
}

// restrictPenalty computes an additive penalty guaranteed to dominate any
// legal path while remaining finite (spec §9 open question (b): "larger
// than |T| * max attainable weight"). The bound uses 64 as a safe ceiling
// on any realistic use-count exponent, since max_fill is itself clamped to
// 63 (spec §4.H) wherever it is set.
func (c *Context) restrictPenalty() float64 {
	maxWeight := target.Weight(64, false, c.Beta)
	return maxWeight * float64(c.Target.N()+1)
}

// Result reports the outcome of one Place call.
type Result struct {
	ColdStart bool // true if v had no placed neighbors and got a singleton seed
	Violated  bool // true if some neighbor's chain was unreachable from t* (spec §4.F edge case)
}

// Place grows chain(v) from scratch. Precondition: chain(v) is already torn
// (spec §4.F precondition); all other chains, possibly overlapping, remain
// in place.
//
// Complexity: O(deg_S(v)) Dijkstra runs of O((|T|+|E_T|) log |T|) each, plus
// O(|T| * deg_S(v)) for scoring.
func Place(ctx context.Context, c *Context, v int) (Result, error) {
	neighbors := make([]int32, 0, len(c.SourceAdj[v]))
	for _, u := range c.SourceAdj[v] {
		if c.Chains.Chain(int(u)).Len() > 0 {
			neighbors = append(neighbors, u)
		}
	}

	if len(neighbors) == 0 {
		t := pickColdStartRoot(c, v)
		c.Chains.InstallSingleton(v, t)
		return Result{ColdStart: true}, nil
	}

	if err := c.runNeighborDistances(ctx, v, neighbors); err != nil {
		return Result{}, err
	}

	tStar, violated := c.pickRoot(neighbors)

	paths := make([][]int32, 0, len(neighbors))
	for i, u := range neighbors {
		path, ok := sssp.ReachablePathTo(c.NeighborDist[i], c.NeighborParent[i], tStar, func(n int32) bool {
			return c.Chains.Chain(int(u)).Contains(n)
		})
		if !ok {
			violated = true
			continue // spec §4.F edge case: install from the reachable paths only
		}
		paths = append(paths, path)
	}

	c.Chains.Install(v, tStar, paths)
	return Result{Violated: violated}, nil
}

// runNeighborDistances dispatches one Dijkstra run per neighbor (spec §4.F
// step 2) through the worker pool, whatever the number of neighbors.
func (c *Context) runNeighborDistances(ctx context.Context, v int, neighbors []int32) error {
	free := make(chan *sssp.Scratch, len(c.Scratches))
	for _, s := range c.Scratches {
		free <- s
	}
	penalty := c.restrictPenalty()
	restrict := c.Target.Restrict(v)

	tasks := make([]func() error, len(neighbors))
	for i, u := range neighbors {
		i, u := i, u
		tasks[i] = func() error {
			s := <-free
			defer func() { free <- s }()

			own := c.Chains.Chain(int(u))
			seeds := own.Members(nil)
			sssp.Run(s, c.Target, seeds, own.Contains, c.Beta, c.MaxFill, restrict, penalty)

			copy(c.NeighborDist[i], s.Dist)
			copy(c.NeighborHops[i], s.Hops)
			copy(c.NeighborParent[i], s.Parent)
			return nil
		}
	}
	return c.Pool.Run(ctx, tasks)
}

// ownedByAny reports whether target node t already belongs to one of the
// given neighbors' chains. Such a node can never serve as the new chain's
// root: installing there would share a node with the neighbor instead of
// reaching it via a witnessing target edge (spec invariant 3).
func (c *Context) ownedByAny(neighbors []int32, t int32) bool {
	for _, u := range neighbors {
		if c.Chains.Chain(int(u)).Contains(t) {
			return true
		}
	}
	return false
}

// pickRoot implements spec §4.F step 3: score(t) = sum of distances over all
// neighbor-distance arrays, minimized. Ties are broken first by the summed
// §4.E(a) hop count (shorter reconstructed paths make shorter chains), then
// by an RNG shuffle of what remains tied (collected in ascending id order),
// taking the first element of the shuffled list. Candidates
// already owned by one of the neighbors are excluded from scoring entirely.
func (c *Context) pickRoot(neighbors []int32) (t int32, anyUnreachable bool) {
	k := len(neighbors)
	n := len(c.NeighborDist[0])
	bestDist := sssp.Inf
	var bestHops int64
	var candidates []int32

	for tt := 0; tt < n; tt++ {
		t32 := int32(tt)
		if c.ownedByAny(neighbors, t32) {
			continue
		}
		var sum float64
		var hops int64
		unreachable := false
		for i := 0; i < k; i++ {
			d := c.NeighborDist[i][tt]
			if d == sssp.Inf {
				unreachable = true
				break
			}
			sum += d
			hops += int64(c.NeighborHops[i][tt])
		}
		if unreachable {
			continue // a candidate unreachable from any one neighbor never wins here
		}
		switch {
		case sum < bestDist:
			bestDist, bestHops = sum, hops
			candidates = candidates[:0]
			candidates = append(candidates, t32)
		case sum == bestDist && hops < bestHops:
			bestHops = hops
			candidates = candidates[:0]
			candidates = append(candidates, t32)
		case sum == bestDist && hops == bestHops:
			candidates = append(candidates, t32)
		}
	}

	if len(candidates) == 0 {
		// Nothing unowned is fully reachable from every neighbor at once;
		// fall back to the candidate with the smallest number of
		// unreachable neighbors, then smallest partial sum, so step 4 still
		// recovers as many witness edges as it can (spec §4.F edge case).
		return c.pickPartialRoot(neighbors), true
	}

	shuffled := make([]int, len(candidates))
	for i, id := range candidates {
		shuffled[i] = int(id)
	}
	c.RNG.Shuffle(shuffled)
	return int32(shuffled[0]), false
}

// pickPartialRoot handles the case where no unowned candidate is
// simultaneously reachable from every neighbor: minimize (unreachable-count,
// partial sum, summed hops), excluding owned candidates for the same reason
// as pickRoot.
func (c *Context) pickPartialRoot(neighbors []int32) int32 {
	k := len(neighbors)
	n := len(c.NeighborDist[0])
	bestMiss := k + 1
	bestSum := sssp.Inf
	var bestHops int64
	best := int32(0)
	found := false
	for tt := 0; tt < n; tt++ {
		t32 := int32(tt)
		if c.ownedByAny(neighbors, t32) {
			continue
		}
		miss := 0
		var sum float64
		var hops int64
		for i := 0; i < k; i++ {
			d := c.NeighborDist[i][tt]
			if d == sssp.Inf {
				miss++
				continue
			}
			sum += d
			hops += int64(c.NeighborHops[i][tt])
		}
		if !found || miss < bestMiss || (miss == bestMiss && sum < bestSum) || (miss == bestMiss && sum == bestSum && hops < bestHops) {
			found = true
			bestMiss, bestSum, bestHops = miss, sum, hops
			best = t32
		}
	}
	if !found {
		// Every single candidate is owned by some neighbor (degenerate,
		// e.g. the one neighbor's chain spans the whole reachable region):
		// any node at all is as good as another, so fall back to id 0.
		return 0
	}
	return best
}

// pickColdStartRoot implements spec §4.F step 5: a uniformly random pick
// from the permitted set (restrict ∩ unused-if-possible).
func pickColdStartRoot(c *Context, v int) int32 {
	n := c.Target.N()
	restrict := c.Target.Restrict(v)

	var unused, any []int32
	for t := 0; t < n; t++ {
		if restrict != nil && !restrict.Test(t) {
			continue
		}
		any = append(any, int32(t))
		if c.Target.UseCount(t) == 0 {
			unused = append(unused, int32(t))
		}
	}
	candidates := unused
	if len(candidates) == 0 {
		candidates = any
	}
	if len(candidates) == 0 {
		// restrict_chains is a soft constraint (spec §3): if it leaves
		// nothing permitted, fall back to the unrestricted universe rather
		// than deadlocking cold start.
		for t := 0; t < n; t++ {
			candidates = append(candidates, int32(t))
		}
	}
	idx := c.RNG.Intn(len(candidates))
	return candidates[idx]
}
