// Package scheduler drives the outer tear-and-rebuild loop (spec §4.G):
// initialization, embedding search with growing overlap penalty, and
// chainlength reduction, wrapped in a restart loop with patience,
// timeout, and cancellation, tracking the best-so-far snapshot under the
// ordering key in quality.go.
package scheduler

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/placement"
	"github.com/katalvlaran/minorembed/internal/rng"
	"github.com/katalvlaran/minorembed/internal/target"
)

// Logger receives verbose diagnostic traces (spec §10). Defined locally
// rather than imported so callers can pass anything satisfying this shape
// without this package depending on the facade package.
type Logger interface {
	Log(level int, msg string, kv ...any)
}

// Config holds the outer-loop tunables (spec §6 options table, the subset
// that drives G rather than H).
type Config struct {
	MaxNoImprovement    int
	Tries               int
	InnerRounds         int // <=0 means unbounded
	ChainlengthPatience int
	SkipInitialization  bool
	BetaStart           float64
	BetaGrowth          float64 // multiplicative factor applied between passes in phase (ii)
	MaxBeta             float64 // +Inf means unbounded
	Timeout             time.Duration
	Cancel              func() bool // polled between passes; nil means never cancelled
	Verbose             int
	Logger              Logger // nil means no tracing, regardless of Verbose
}

func (s *Scheduler) logf(level int, msg string, kv ...any) {
	if s.Cfg.Logger == nil || s.Cfg.Verbose < level {
		return
	}
	s.Cfg.Logger.Log(level, msg, kv...)
}

// Scheduler owns the mutable search state for one find_embedding call.
type Scheduler struct {
	Target    *target.Graph
	Chains    *chain.Store
	Place     *placement.Context
	SourceAdj [][]int32
	Fixed     []bool // per source vertex, including suspension auxiliaries
	Edges     []edge
	RNG       *rng.Rand
	Cfg       Config

	best *snapshot
}

type snapshot struct {
	chains  []chain.Chain
	useCnt  []int32
	quality Quality
	proper  bool
}

// Outcome summarizes how the run ended, for the facade to translate into
// the documented return shape (spec §6, §7).
type Outcome struct {
	Quality   Quality
	Proper    bool
	Cancelled bool
	Exhausted bool
}

// New builds a Scheduler over an already-initialized target graph, chain
// store, and placement context (spec §4.H has already run by this point).
func New(tg *target.Graph, chains *chain.Store, place *placement.Context, sourceAdj [][]int32, fixed []bool, edges []edge, r *rng.Rand, cfg Config) *Scheduler {
	if cfg.Tries < 1 {
		cfg.Tries = 1
	}
	if cfg.MaxNoImprovement <= 0 {
		cfg.MaxNoImprovement = 10
	}
	if cfg.ChainlengthPatience <= 0 {
		cfg.ChainlengthPatience = 10
	}
	if cfg.BetaGrowth <= 1 {
		cfg.BetaGrowth = 1.1
	}
	if cfg.BetaStart <= 1 {
		cfg.BetaStart = 2
	}
	if cfg.MaxBeta <= 1 {
		cfg.MaxBeta = math.Inf(1)
	}
	return &Scheduler{
		Target:    tg,
		Chains:    chains,
		Place:     place,
		SourceAdj: sourceAdj,
		Fixed:     fixed,
		Edges:     edges,
		RNG:       r,
		Cfg:       cfg,
	}
}

// NewEdges exposes sourceEdges for callers (the facade in embedding.go)
// building the edge list once at setup.
func NewEdges(adj [][]int32) []edge { return sourceEdges(adj) }

// Run executes the full outer loop (spec §4.G) and leaves s.Chains/s.Target
// holding the best-so-far embedding found.
//
// Complexity: O(tries * (inner_rounds + chainlength_patience) * |S| placements).
func (s *Scheduler) Run(ctx context.Context) Outcome {
	var deadline time.Time
	if s.Cfg.Timeout > 0 {
		deadline = time.Now().Add(s.Cfg.Timeout)
	}

	cancelled := false
	for try := 0; try < s.Cfg.Tries; try++ {
		if s.stopRequested(ctx, deadline) {
			cancelled = true
			break
		}

		s.logf(1, "restart begin", "try", try)

		if try > 0 {
			for v := 0; v < len(s.Fixed); v++ {
				if !s.Fixed[v] {
					s.Chains.Tear(v)
				}
			}
		}
		s.Place.Beta = s.Cfg.BetaStart

		if !s.Cfg.SkipInitialization {
			s.logf(2, "phase i: initialization")
			for _, v := range s.shuffledNonFixed() {
				if s.Chains.Chain(v).Len() == 0 {
					_, _ = placement.Place(ctx, s.Place, v)
				}
			}
		}
		q, proper := s.evaluate()
		s.updateBest(q, proper)
		s.logf(2, "phase ii: embedding search", "beta", s.Place.Beta, "state", q.State)

		noImprove := 0
		passes := 0
		for !proper && noImprove < s.Cfg.MaxNoImprovement && (s.Cfg.InnerRounds <= 0 || passes < s.Cfg.InnerRounds) {
			if s.stopRequested(ctx, deadline) {
				cancelled = true
				break
			}

			for _, v := range s.shuffledNonFixed() {
				s.Chains.Tear(v)
				if _, err := placement.Place(ctx, s.Place, v); err != nil {
					cancelled = true
					break
				}
			}
			if cancelled {
				break
			}
			s.Place.Beta = math.Min(s.Place.Beta*s.Cfg.BetaGrowth, s.Cfg.MaxBeta)
			passes++

			nq, nproper := s.evaluate()
			if nq.Less(q) {
				noImprove = 0
			} else {
				noImprove++
			}
			q, proper = nq, nproper
			s.updateBest(q, proper)
			s.logf(3, "pass complete", "try", try, "pass", passes, "beta", s.Place.Beta, "state", q.State, "noImprove", noImprove)
		}

		if proper && !cancelled {
			s.logf(2, "phase iii: chainlength reduction", "try", try)
			s.reduceChainLengths(ctx, deadline)
		}

		s.logf(1, "restart outcome", "try", try, "proper", proper, "cancelled", cancelled)

		if cancelled || (s.best != nil && s.best.proper) {
			break
		}
	}

	if s.best != nil {
		s.Chains.Restore(s.best.chains)
		s.Target.RestoreUseCounts(s.best.useCnt)
	}

	out := Outcome{Cancelled: cancelled}
	if s.best != nil {
		out.Quality = s.best.quality
		out.Proper = s.best.proper
	}
	out.Exhausted = !out.Proper && !out.Cancelled
	return out
}

// witnessRequired returns the chain.Store.Prune predicate for source vertex
// v: t survives pruning if some source neighbor's witness edge runs through
// t and no other member of chain(v) also reaches that neighbor's chain
// (spec §2/§4.D prune primitive).
func (s *Scheduler) witnessRequired(v int) func(t int32) bool {
	neighbors := s.SourceAdj[v]
	cv := s.Chains.Chain(v)
	return func(t int32) bool {
		for _, u := range neighbors {
			cu := s.Chains.Chain(int(u))
			if cu.Len() == 0 || !reachesChain(s.Target, t, cu) {
				continue
			}
			if soleWitness(s.Target, cv, cu, t) {
				return true
			}
		}
		return false
	}
}

// reduceChainLengths implements phase (iii) (spec §4.G): each pass tears
// and rebuilds every chain, then prunes the spare leaves the rebuild leaves
// behind (spec §2/§4.D), keeping the result only if the resulting
// lexicographically-sorted-descending chain-length vector strictly
// decreases; otherwise it is rolled back. max_fill applies here exactly as
// in phase (ii) (spec §9 open question (a): applied uniformly across all
// search phases).
func (s *Scheduler) reduceChainLengths(ctx context.Context, deadline time.Time) {
	bestLen := lengthVector(s.Chains.Lengths())
	stall := 0
	for stall < s.Cfg.ChainlengthPatience {
		if s.stopRequested(ctx, deadline) {
			return
		}

		chainSnap := s.Chains.Snapshot()
		useSnap := s.Target.CloneUseCounts()

		order := s.shuffledNonFixed()
		for _, v := range order {
			s.Chains.Tear(v)
			if _, err := placement.Place(ctx, s.Place, v); err != nil {
				s.Chains.Restore(chainSnap)
				s.Target.RestoreUseCounts(useSnap)
				return
			}
		}
		for _, v := range order {
			s.Chains.Prune(v, s.witnessRequired(v))
		}

		newLen := lengthVector(s.Chains.Lengths())
		if compareInts(newLen, bestLen) < 0 {
			bestLen = newLen
			stall = 0
			q, proper := s.evaluate()
			s.updateBest(q, proper)
		} else {
			s.Chains.Restore(chainSnap)
			s.Target.RestoreUseCounts(useSnap)
			stall++
		}
	}
}

func (s *Scheduler) evaluate() (Quality, bool) {
	return Evaluate(s.Target, s.Chains, s.Edges)
}

func (s *Scheduler) updateBest(q Quality, proper bool) {
	if s.best != nil && !q.Less(s.best.quality) {
		return
	}
	s.best = &snapshot{
		chains:  s.Chains.Snapshot(),
		useCnt:  s.Target.CloneUseCounts(),
		quality: q,
		proper:  proper,
	}
}

func (s *Scheduler) shuffledNonFixed() []int {
	order := make([]int, 0, len(s.Fixed))
	for v, fixed := range s.Fixed {
		if !fixed {
			order = append(order, v)
		}
	}
	s.RNG.Shuffle(order)
	return order
}

func (s *Scheduler) stopRequested(ctx context.Context, deadline time.Time) bool {
	if ctx.Err() != nil {
		return true
	}
	if s.Cfg.Cancel != nil && s.Cfg.Cancel() {
		return true
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return true
	}
	return false
}
