package minorembed

import (
	"context"
	"crypto/rand"
	"encoding/binary"

	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/placement"
	irng "github.com/katalvlaran/minorembed/internal/rng"
	"github.com/katalvlaran/minorembed/internal/scheduler"
	"github.com/katalvlaran/minorembed/internal/setupx"
	"github.com/katalvlaran/minorembed/internal/target"
)

// FindEmbedding attempts to embed source graph S as a minor of target
// graph T (spec §6 entry point). It returns a mapping from source labels
// to ordered lists of target labels, and whether that mapping is a proper
// (overlap-free, edge-covering) embedding.
//
// err is non-nil only for a pre-run UsageError or a recovered internal
// LogicFailure (spec §7); Stall, Exhaustion, and Cancelled are never
// returned as errors — they surface through mapping/success exactly as
// spec.md §7's policy requires ("no exception path is used for 'could not
// embed'").
func FindEmbedding(S, T []Edge, opts ...Option) (mapping map[string][]string, success bool, err error) {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	defer func() {
		if r := recover(); r != nil {
			if lf, ok := r.(*LogicFailure); ok {
				err = lf
				return
			}
			panic(r)
		}
	}()

	if len(S) == 0 {
		return map[string][]string{}, false, nil
	}

	normalized, verr := setupx.Validate(setupx.RawOptions{
		MaxNoImprovement:    o.MaxNoImprovement,
		RandomSeed:          o.RandomSeed,
		HasRandomSeed:       o.HasRandomSeed,
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
	})
	if verr != nil {
		return nil, false, usagef("FindEmbedding", ErrOptionOutOfRange, "%v", verr)
	}

	sourceLabels, sourceAdj := buildSourceGraph(S)
	targetLabels, tg := buildTargetGraph(T)

	fixed := make([]bool, sourceLabels.len())
	chains := chain.NewStore(tg, sourceLabels.len())

	if err := applyConstraints(o, sourceLabels, targetLabels, tg, chains, &sourceAdj, &fixed); err != nil {
		return nil, false, err
	}

	seed := o.RandomSeed
	if !o.HasRandomSeed {
		seed = freshSeed()
	}
	r := irng.New(seed)

	maxDegree := 0
	for _, nbrs := range sourceAdj {
		if len(nbrs) > maxDegree {
			maxDegree = len(nbrs)
		}
	}
	if maxDegree == 0 {
		maxDegree = 1
	}

	place := placement.NewContext(tg, chains, sourceAdj, normalized.Threads, maxDegree, 2, normalized.MaxFill, r)

	edges := scheduler.NewEdges(sourceAdj)
	sched := scheduler.New(tg, chains, place, sourceAdj, fixed, edges, r, scheduler.Config{
		MaxNoImprovement:    normalized.MaxNoImprovement,
		Tries:               normalized.Tries,
		InnerRounds:         normalized.InnerRounds,
		ChainlengthPatience: normalized.ChainlengthPatience,
		SkipInitialization:  normalized.SkipInitialization,
		MaxBeta:             normalized.MaxBeta,
		Timeout:             normalized.Timeout,
		Cancel:              o.cancel,
		Verbose:             normalized.Verbose,
		Logger:              o.logger,
	})

	outcome := sched.Run(context.Background())
	checkChainConnectivity(tg, chains, sourceLabels.len())

	mapping = make(map[string][]string, sourceLabels.len())
	for v := 0; v < sourceLabels.len(); v++ {
		c := chains.Chain(v)
		if c.Pinned() || c.Len() == 0 {
			continue
		}
		members := c.OrderedMembers()
		labels := make([]string, len(members))
		for i, m := range members {
			labels[i] = targetLabels.label(int(m))
		}
		mapping[sourceLabels.label(v)] = labels
	}

	return mapping, outcome.Proper, nil
}

func buildSourceGraph(edges []Edge) (*labelTable, [][]int32) {
	labels := newLabelTable()
	for _, e := range edges {
		labels.idFor(e.A)
		labels.idFor(e.B)
	}
	adj := make([][]int32, labels.len())
	seen := make(map[[2]int32]bool, len(edges))
	for _, e := range edges {
		a := int32(labels.idFor(e.A))
		b := int32(labels.idFor(e.B))
		if a == b {
			continue
		}
		if seen[[2]int32{a, b}] {
			continue
		}
		seen[[2]int32{a, b}] = true
		seen[[2]int32{b, a}] = true
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	return labels, adj
}

func buildTargetGraph(edges []Edge) (*labelTable, *target.Graph) {
	labels := newLabelTable()
	for _, e := range edges {
		labels.idFor(e.A)
		labels.idFor(e.B)
	}
	tg := target.NewGraph(labels.len())
	for _, e := range edges {
		a := labels.idFor(e.A)
		b := labels.idFor(e.B)
		if a == b {
			continue
		}
		tg.AddEdge(a, b)
	}
	return labels, tg
}

func freshSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0x9e3779b97f4a7c15
	}
	return binary.LittleEndian.Uint64(buf[:])
}
