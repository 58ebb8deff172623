package minorembed

import (
	"errors"
	"sort"

	"github.com/katalvlaran/minorembed/internal/chain"
	"github.com/katalvlaran/minorembed/internal/setupx"
	"github.com/katalvlaran/minorembed/internal/target"
)

// applyConstraints wires spec §4.H's constraint application in order:
// suspension pins first (they grow the source/target graphs), then
// initial_chains, then fixed_chains on top, then restrict_chains.
func applyConstraints(
	o *Options,
	sourceLabels, targetLabels *labelTable,
	tg *target.Graph,
	chains *chain.Store,
	sourceAdj *[][]int32,
	fixed *[]bool,
) error {
	// Pins allocate fresh source and target ids, so visit the labels in a
	// fixed order to keep those ids the same from run to run.
	suspendLabels := make([]string, 0, len(o.SuspendChains))
	for vLabel := range o.SuspendChains {
		suspendLabels = append(suspendLabels, vLabel)
	}
	sort.Strings(suspendLabels)
	for _, vLabel := range suspendLabels {
		blobs := o.SuspendChains[vLabel]
		v, ok := sourceLabels.lookup(vLabel)
		if !ok {
			return usagef("applyConstraints", ErrUnknownLabel, "suspend_chains source %q", vLabel)
		}
		blobIDs := make([][]int32, 0, len(blobs))
		for bi, blob := range blobs {
			if _, err := sourceLabels.pinLabel(vLabel, bi); err != nil {
				return err
			}
			ids, err := toTargetIDs(targetLabels, blob)
			if err != nil {
				return err
			}
			blobIDs = append(blobIDs, ids)
		}
		if _, err := setupx.BuildPins(tg, chains, sourceAdj, fixed, v, blobIDs, func(blobIndex int, zPrime int32) error {
			synth, err := targetLabels.pinTargetLabel(vLabel, blobIndex)
			if err != nil {
				return err
			}
			targetLabels.idFor(synth)
			return nil
		}); err != nil {
			return err
		}
	}

	for vLabel, targets := range o.InitialChains {
		v, ok := sourceLabels.lookup(vLabel)
		if !ok {
			return usagef("applyConstraints", ErrUnknownLabel, "initial_chains source %q", vLabel)
		}
		ids, err := toTargetIDs(targetLabels, targets)
		if err != nil {
			return err
		}
		if err := setupx.InstallVerbatim(tg, chains, v, ids); err != nil {
			return wrapSetupxErr(err)
		}
	}

	for vLabel, targets := range o.FixedChains {
		v, ok := sourceLabels.lookup(vLabel)
		if !ok {
			return usagef("applyConstraints", ErrUnknownLabel, "fixed_chains source %q", vLabel)
		}
		ids, err := toTargetIDs(targetLabels, targets)
		if err != nil {
			return err
		}
		if err := setupx.ApplyFixed(tg, chains, v, ids); err != nil {
			return wrapSetupxErr(err)
		}
		(*fixed)[v] = true
	}

	for vLabel, targets := range o.RestrictChains {
		v, ok := sourceLabels.lookup(vLabel)
		if !ok {
			return usagef("applyConstraints", ErrUnknownLabel, "restrict_chains source %q", vLabel)
		}
		ids, err := toTargetIDs(targetLabels, targets)
		if err != nil {
			return err
		}
		setupx.ApplyRestrict(tg, v, ids)
	}

	return nil
}

func toTargetIDs(targetLabels *labelTable, labels []string) ([]int32, error) {
	ids := make([]int32, len(labels))
	for i, l := range labels {
		id, ok := targetLabels.lookup(l)
		if !ok {
			return nil, usagef("applyConstraints", ErrUnknownLabel, "target label %q", l)
		}
		ids[i] = int32(id)
	}
	return ids, nil
}

// wrapSetupxErr translates internal/setupx's sentinel errors into the
// public UsageError shape: every one of them fires only in response to
// caller-supplied chain data, never an internal bug, so none of them
// become a LogicFailure.
func wrapSetupxErr(err error) error {
	switch {
	case errors.Is(err, setupx.ErrChainDisconnected):
		return usagef("applyConstraints", ErrChainDisconnected, "%v", err)
	case errors.Is(err, setupx.ErrFixedChainsOverlap):
		return usagef("applyConstraints", ErrFixedChainsOverlap, "%v", err)
	case errors.Is(err, setupx.ErrUnknownNode):
		return usagef("applyConstraints", ErrUnknownLabel, "%v", err)
	default:
		return err
	}
}
