// Package setupx implements component H (spec §4.H): option normalization
// and the initial_chains/fixed_chains/restrict_chains/suspend_chains
// transformations, applied to an already-built target graph, chain store,
// and dense source adjacency, before the scheduler (component G) runs.
package setupx

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/target"
)

// Sentinel usage errors (spec §7 UsageError, raised eagerly before any
// heuristic work — mirrors the teacher's pre-construction validation in
// builder/errors.go).
var (
	ErrOptionOutOfRange   = errors.New("setupx: option value out of range")
	ErrUnknownNode        = errors.New("setupx: chain references a node absent from its graph")
	ErrFixedChainsOverlap = errors.New("setupx: two fixed chains overlap")
	ErrChainDisconnected  = errors.New("setupx: chain is not connected in its graph")
	ErrPinLabelCollision  = errors.New("setupx: suspension pin label collides with a user label")
)

// RawOptions mirrors the spec §6 options table before range validation.
type RawOptions struct {
	MaxNoImprovement    int
	RandomSeed          uint64
	HasRandomSeed       bool
	Timeout             time.Duration
	MaxBeta             float64
	Tries               int
	InnerRounds         int
	ChainlengthPatience int
	MaxFill             int
	Threads             int
	ReturnOverlap       bool
	SkipInitialization  bool
	Verbose             int
}

// Normalized is RawOptions after validation and defaulting/clamping (spec
// §4.H, §6 defaults).
type Normalized struct {
	MaxNoImprovement    int
	RandomSeed          uint64
	Timeout             time.Duration
	MaxBeta             float64
	Tries               int
	InnerRounds         int
	ChainlengthPatience int
	MaxFill             int
	Threads             int
	ReturnOverlap       bool
	SkipInitialization  bool
	Verbose             int
}

// Validate checks every option against the documented ranges (spec §4.H:
// "integers non-negative; floats finite; threads >= 1; max_fill clamped to
// 63; max_beta > 1") and fills in defaults (spec §6).
func Validate(o RawOptions) (Normalized, error) {
	n := Normalized{
		MaxNoImprovement:    o.MaxNoImprovement,
		RandomSeed:          o.RandomSeed,
		Timeout:             o.Timeout,
		MaxBeta:             o.MaxBeta,
		Tries:               o.Tries,
		InnerRounds:         o.InnerRounds,
		ChainlengthPatience: o.ChainlengthPatience,
		MaxFill:             o.MaxFill,
		Threads:             o.Threads,
		ReturnOverlap:       o.ReturnOverlap,
		SkipInitialization:  o.SkipInitialization,
		Verbose:             o.Verbose,
	}

	if n.MaxNoImprovement == 0 {
		n.MaxNoImprovement = 10
	}
	if n.MaxNoImprovement < 0 {
		return Normalized{}, fmt.Errorf("%w: max_no_improvement must be non-negative", ErrOptionOutOfRange)
	}
	if n.Timeout == 0 {
		n.Timeout = 1000 * time.Second
	}
	if n.Timeout < 0 {
		return Normalized{}, fmt.Errorf("%w: timeout must be non-negative", ErrOptionOutOfRange)
	}
	if n.MaxBeta == 0 {
		n.MaxBeta = math.Inf(1)
	}
	if n.MaxBeta <= 1 || math.IsNaN(n.MaxBeta) {
		return Normalized{}, fmt.Errorf("%w: max_beta must be > 1", ErrOptionOutOfRange)
	}
	if n.Tries == 0 {
		n.Tries = 10
	}
	if n.Tries < 0 {
		return Normalized{}, fmt.Errorf("%w: tries must be non-negative", ErrOptionOutOfRange)
	}
	if n.InnerRounds == 0 {
		n.InnerRounds = 0 // unbounded, encoded as <=0 downstream
	}
	if n.InnerRounds < 0 {
		return Normalized{}, fmt.Errorf("%w: inner_rounds must be non-negative", ErrOptionOutOfRange)
	}
	if n.ChainlengthPatience == 0 {
		n.ChainlengthPatience = 10
	}
	if n.ChainlengthPatience < 0 {
		return Normalized{}, fmt.Errorf("%w: chainlength_patience must be non-negative", ErrOptionOutOfRange)
	}
	if n.MaxFill <= 0 || n.MaxFill > 63 {
		if n.MaxFill < 0 {
			return Normalized{}, fmt.Errorf("%w: max_fill must be non-negative", ErrOptionOutOfRange)
		}
		n.MaxFill = 63 // spec: "clamped to 63"; 0 means the user left it unbounded
	}
	if n.Threads <= 0 {
		n.Threads = 1
	}
	if n.Verbose < 0 || n.Verbose > 4 {
		return Normalized{}, fmt.Errorf("%w: verbose must be in [0,4]", ErrOptionOutOfRange)
	}

	return n, nil
}

// InstallVerbatim installs a user-supplied chain exactly as given: it must
// already be connected in tg (spec §4.H "installing each one verbatim").
// Connectivity is re-derived via a BFS spanning tree over the induced
// subgraph rather than trusted blindly, since a disconnected chain would
// breach the chain-connectivity invariant (spec §3) the moment it reaches
// the scheduler.
//
// Complexity: O(|members| * average target degree).
func InstallVerbatim(tg *target.Graph, chains *chain.Store, v int, members []int32) error {
	if len(members) == 0 {
		return nil
	}
	inSet := make(map[int32]bool, len(members))
	for _, m := range members {
		if int(m) < 0 || int(m) >= tg.N() {
			return fmt.Errorf("%w: target node %d", ErrUnknownNode, m)
		}
		inSet[m] = true
	}

	root := members[0]
	parent := map[int32]int32{root: -1}
	queue := []int32{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range tg.Neighbors(int(cur)) {
			if !inSet[nb] {
				continue
			}
			if _, seen := parent[nb]; seen {
				continue
			}
			parent[nb] = cur
			queue = append(queue, nb)
		}
	}
	if len(parent) != len(inSet) {
		return fmt.Errorf("%w: source vertex %d", ErrChainDisconnected, v)
	}

	paths := make([][]int32, 0, len(members))
	for m := range inSet {
		if m == root {
			continue
		}
		var path []int32
		for cur := m; ; {
			path = append(path, cur)
			if cur == root {
				break
			}
			cur = parent[cur]
		}
		paths = append(paths, reversePath(path))
	}
	chains.Install(v, root, paths)
	return nil
}

func reversePath(p []int32) []int32 {
	out := make([]int32, len(p))
	for i, x := range p {
		out[len(p)-1-i] = x
	}
	return out
}

// ApplyFixed installs members as v's chain and freezes it, rejecting a
// fixed chain that overlaps a node already claimed by a different fixed
// chain (spec §4.H, §7 UsageError).
func ApplyFixed(tg *target.Graph, chains *chain.Store, v int, members []int32) error {
	for _, m := range members {
		if int(m) < tg.N() && tg.IsFixed(int(m)) {
			return fmt.Errorf("%w: target node %d", ErrFixedChainsOverlap, m)
		}
	}
	if err := InstallVerbatim(tg, chains, v, members); err != nil {
		return err
	}
	chains.MarkFixed(v)
	return nil
}

// ApplyRestrict installs v's soft containment set (spec §3 Restrict set).
func ApplyRestrict(tg *target.Graph, v int, allowed []int32) {
	if len(allowed) == 0 {
		return
	}
	bs := target.NewBitset(tg.N())
	for _, a := range allowed {
		bs.Set(int(a))
	}
	tg.SetRestrict(v, bs)
}

// GrowSource appends one fresh, non-fixed, empty-chain source vertex and
// returns its id, keeping sourceAdj, chains, and fixed in lockstep. Used
// both directly by suspension-pin construction and available to callers
// needing auxiliary source vertices for other extensions.
func GrowSource(chains *chain.Store, sourceAdj *[][]int32, fixed *[]bool) int {
	id := chains.Grow(1)
	*sourceAdj = append(*sourceAdj, nil)
	*fixed = append(*fixed, false)
	return id
}

// BuildPins materializes the suspension auxiliaries for source vertex v's
// suspend_chains blobs (spec §3 Pin): one fresh auxiliary source z and
// target z' per blob, chain(z) fixed to {z'}, source edge (v,z), target
// edges (z',q) for q in the blob. Returns the auxiliary source ids. Each z
// is already marked fixed and pinned (so it is left out of the returned
// mapping), and the source edge (v,z) is already in sourceAdj, so an edge
// list built from sourceAdj afterwards includes it for coverage checks.
//
// onAuxTarget, if non-nil, is invoked immediately after each z' is
// allocated, with blobIndex (the index into blobs) and the new target id:
// the caller uses it to register a synthesized label for z' in the same
// insertion order tg assigns ids, so every target id the engine can ever
// emit has a label and the output-mapping lookup in embedding.go can never
// index out of range. A non-nil error from onAuxTarget aborts immediately.
func BuildPins(tg *target.Graph, chains *chain.Store, sourceAdj *[][]int32, fixed *[]bool, v int, blobs [][]int32, onAuxTarget func(blobIndex int, zPrime int32) error) ([]int, error) {
	aux := make([]int, 0, len(blobs))
	for bi, blob := range blobs {
		if len(blob) == 0 {
			continue
		}
		z := GrowSource(chains, sourceAdj, fixed)
		zPrime := tg.AddNode()
		if onAuxTarget != nil {
			if err := onAuxTarget(bi, int32(zPrime)); err != nil {
				return nil, err
			}
		}
		for _, q := range blob {
			tg.AddEdge(zPrime, int(q))
		}
		chains.InstallSingleton(z, int32(zPrime))
		chains.MarkFixed(z)
		chains.MarkPinned(z)
		(*fixed)[z] = true

		(*sourceAdj)[v] = append((*sourceAdj)[v], int32(z))
		(*sourceAdj)[z] = append((*sourceAdj)[z], int32(v))
		aux = append(aux, z)
	}
	return aux, nil
}
