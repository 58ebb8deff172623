// Package chain implements the per-source chain bookkeeping described in
// spec §3 and §4.D: for each source vertex, a membership set and a
// parent-pointer tree rooted at an anchor, kept in lockstep with the
// target graph's use-counts.
package chain

import (
	"sort"

	"github.com/katalvlaran/minorembed/internal/target"
)

// Chain is one source vertex's placement: a connected subgraph of T stored
// as a parent-pointer tree rooted at Anchor. The zero value is an empty
// (unplaced) chain.
type Chain struct {
	members map[int32]int32 // target node -> parent target node; Anchor maps to -1
	anchor  int32
	fixed   bool
	pinned  bool
}

// Anchor returns the chain's root node, or -1 if the chain is empty.
func (c *Chain) Anchor() int32 {
	if c == nil || len(c.members) == 0 {
		return -1
	}
	return c.anchor
}

// Len returns the chain's size (number of target nodes).
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.members)
}

// Contains reports whether t belongs to the chain.
func (c *Chain) Contains(t int32) bool {
	if c == nil {
		return false
	}
	_, ok := c.members[t]
	return ok
}

// Fixed reports whether the chain is immutable for the run.
func (c *Chain) Fixed() bool { return c != nil && c.fixed }

// Pinned reports whether the chain belongs to a suspension auxiliary.
func (c *Chain) Pinned() bool { return c != nil && c.pinned }

// Members appends every target node in the chain to dst and returns the
// result, in no particular order.
//
// Complexity: O(|chain|).
func (c *Chain) Members(dst []int32) []int32 {
	if c == nil {
		return dst
	}
	for t := range c.members {
		dst = append(dst, t)
	}
	return dst
}

// OrderedMembers returns the chain's target nodes in a deterministic
// root-first, breadth-first order over the parent-pointer tree (spec §6:
// "ordered lists of target labels"), so the same chain always serializes
// identically regardless of map iteration order.
//
// Complexity: O(|chain| log |chain|).
func (c *Chain) OrderedMembers() []int32 {
	if c == nil || len(c.members) == 0 {
		return nil
	}
	children := make(map[int32][]int32, len(c.members))
	for t, p := range c.members {
		if t == c.anchor {
			continue
		}
		children[p] = append(children[p], t)
	}
	for _, kids := range children {
		sort.Slice(kids, func(i, j int) bool { return kids[i] < kids[j] })
	}

	order := []int32{c.anchor}
	queue := []int32{c.anchor}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		kids := children[cur]
		order = append(order, kids...)
		queue = append(queue, kids...)
	}
	return order
}

// Store owns every source vertex's Chain and keeps target.Graph use-counts
// synchronized with membership changes.
type Store struct {
	g      *target.Graph
	chains []Chain
}

// NewStore allocates a Store for numSources source vertices over g.
func NewStore(g *target.Graph, numSources int) *Store {
	return &Store{g: g, chains: make([]Chain, numSources)}
}

// Chain returns a pointer to source vertex v's chain. Never nil, but may be
// empty (Len()==0).
func (s *Store) Chain(v int) *Chain { return &s.chains[v] }

// Grow appends extra fresh, empty chains and returns the id of the first
// one. Used by the suspension-pin construction (spec §3 Pin), which adds
// auxiliary source vertices after the store's initial sizing.
func (s *Store) Grow(extra int) int {
	first := len(s.chains)
	s.chains = append(s.chains, make([]Chain, extra)...)
	return first
}

// NumSources returns the current number of source vertices tracked,
// including any auxiliaries appended via Grow.
func (s *Store) NumSources() int { return len(s.chains) }

// Install replaces chain(v) with the union of paths (spec §4.D). Each path
// is ordered root-to-leaf: path[0] == root (the chosen anchor t*), and each
// subsequent element is one hop closer to some neighbor's existing chain.
// Use-counts are decremented for members leaving chain(v) and incremented
// for members newly entering it.
//
// Complexity: O(total path length).
func (s *Store) Install(v int, root int32, paths [][]int32) {
	c := &s.chains[v]
	if c.fixed {
		panic("chain: Install called on a fixed chain")
	}

	newMembers := make(map[int32]int32, len(paths)*2)
	newMembers[root] = -1
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		if path[0] != root {
			panic("chain: Install path does not start at root")
		}
		for i := 1; i < len(path); i++ {
			if _, ok := newMembers[path[i]]; !ok {
				newMembers[path[i]] = path[i-1]
			}
		}
	}

	for t := range c.members {
		if _, stillIn := newMembers[t]; !stillIn {
			s.g.DecUse(int(t))
		}
	}
	for t := range newMembers {
		if _, wasIn := c.members[t]; !wasIn {
			s.g.IncUse(int(t))
		}
	}

	c.members = newMembers
	c.anchor = root
}

// InstallSingleton sets chain(v) = {t}, used for cold-start placement of an
// isolated source vertex (spec §4.F step 5).
//
// Complexity: O(|old chain|).
func (s *Store) InstallSingleton(v int, t int32) {
	s.Install(v, t, nil)
}

// Tear fully empties chain(v), decrementing use-counts for every member.
// Fixed and pinned chains are never torn (spec §4.D invariant); calling
// Tear on one is a programmer error.
//
// Complexity: O(|chain|).
func (s *Store) Tear(v int) {
	c := &s.chains[v]
	if c.fixed || c.pinned {
		panic("chain: Tear called on a fixed or pinned chain")
	}
	for t := range c.members {
		s.g.DecUse(int(t))
	}
	c.members = nil
	c.anchor = -1
}

// MarkFixed freezes chain(v) as immutable for the remainder of the run and
// marks its target nodes fixed in the target graph. It does not touch
// use-counts: those were incremented when the chain was installed and stay
// incremented because a fixed chain is never torn.
func (s *Store) MarkFixed(v int) {
	c := &s.chains[v]
	c.fixed = true
	for t := range c.members {
		s.g.MarkFixed(int(t))
	}
}

// MarkPinned marks chain(v) as belonging to a suspension auxiliary; pinned
// chains behave like fixed chains for Tear/Prune purposes but are stripped
// from the returned mapping by the caller (spec §3 Pin).
func (s *Store) MarkPinned(v int) { s.chains[v].pinned = true }

// Snapshot captures every chain's membership and anchor (not use-counts,
// which the caller snapshots separately via target.Graph.CloneUseCounts),
// so the scheduler can roll back a non-improving pass (spec §4.G phase
// iii) without re-deriving chains from scratch.
//
// Complexity: O(total chain size).
func (s *Store) Snapshot() []Chain {
	cp := make([]Chain, len(s.chains))
	for i, c := range s.chains {
		cp[i] = c
		if c.members != nil {
			cp[i].members = make(map[int32]int32, len(c.members))
			for k, v := range c.members {
				cp[i].members[k] = v
			}
		}
	}
	return cp
}

// Restore replaces every chain with the contents of a prior Snapshot.
// Callers must also call target.Graph.RestoreUseCounts with the matching
// use-count snapshot; Restore itself does not touch use-counts.
//
// Complexity: O(total chain size).
func (s *Store) Restore(snapshot []Chain) {
	copy(s.chains, snapshot)
}

// Lengths returns chain(v).Len() for every source vertex, in order.
//
// Complexity: O(numSources).
func (s *Store) Lengths() []int {
	out := make([]int, len(s.chains))
	for i := range s.chains {
		out[i] = s.chains[i].Len()
	}
	return out
}

// Prune drops leaves of chain(v)'s tree that are neither the anchor nor
// required to witness an edge to any neighbor's current chain (spec §4.D).
// It repeats until no further leaf can be removed. Fixed and pinned chains
// are left untouched.
//
// witnesses(t) must report whether target node t is needed to keep some
// source edge covered — the caller (the placement/scheduler layer, which
// knows S's adjacency and every other chain) supplies this predicate so
// the chain package itself stays independent of source-graph structure.
//
// Complexity: O(|chain| * average degree) per full pass; the outer loop
// runs until a fixed point, bounded by |chain| total removals.
func (s *Store) Prune(v int, witnesses func(t int32) bool) {
	c := &s.chains[v]
	if c.fixed || c.pinned {
		return
	}
	for {
		// children[p] counts how many members point to p as their parent;
		// a member with zero children and not the anchor is a leaf.
		children := make(map[int32]int, len(c.members))
		for t, p := range c.members {
			if t == c.anchor {
				continue
			}
			children[p]++
		}

		var removed int32 = -1
		for t := range c.members {
			if t == c.anchor {
				continue
			}
			if children[t] > 0 {
				continue // has descendants; not a leaf
			}
			if witnesses(t) {
				continue // required to cover a source edge
			}
			if removed == -1 || t < removed {
				removed = t // lowest id first, independent of map order
			}
		}
		if removed == -1 {
			return
		}
		delete(c.members, removed)
		s.g.DecUse(int(removed))
	}
}
