package minorembed

import (
	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/target"
)

// checkChainConnectivity re-verifies spec §8 invariant 1 ("for every source
// v with nonempty chain(v): chain(v) is connected in T") against the final
// scheduler output. The chain store's own operations are built to preserve
// this by construction (install/tear/prune), so a violation here means an
// internal bug, not bad input — exactly spec §7's LogicFailure category.
func checkChainConnectivity(tg *target.Graph, chains *chain.Store, numSources int) {
	for v := 0; v < numSources; v++ {
		c := chains.Chain(v)
		if c.Len() == 0 {
			continue
		}
		members := c.OrderedMembers()
		if len(members) != c.Len() {
			panic(&LogicFailure{Err: ErrChainDisconnected})
		}
		seen := map[int32]bool{members[0]: true}
		for _, m := range members[1:] {
			reachable := false
			for _, nb := range tg.Neighbors(int(m)) {
				if seen[nb] {
					reachable = true
					break
				}
			}
			if !reachable {
				panic(&LogicFailure{Err: ErrChainDisconnected})
			}
			seen[m] = true
		}
	}
}
