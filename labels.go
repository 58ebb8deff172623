package minorembed

import "fmt"

// labelTable is the insertion-ordered bidirectional label<->id mapping
// described in spec §9 ("Dynamic label universe -> dense ids"): an
// open-addressed hash from label to id plus a vector from id to label,
// mirroring the teacher's dense-adjacency-by-insertion-order idiom
// (core's map-of-maps) without introducing a new dependency.
type labelTable struct {
	toID    map[string]int
	toLabel []string
}

func newLabelTable() *labelTable {
	return &labelTable{toID: make(map[string]int)}
}

// idFor returns the id for label, allocating a fresh one on first sight.
func (t *labelTable) idFor(label string) int {
	if id, ok := t.toID[label]; ok {
		return id
	}
	id := len(t.toLabel)
	t.toID[label] = id
	t.toLabel = append(t.toLabel, label)
	return id
}

// lookup returns the id for label without allocating one.
func (t *labelTable) lookup(label string) (int, bool) {
	id, ok := t.toID[label]
	return id, ok
}

func (t *labelTable) label(id int) string { return t.toLabel[id] }

func (t *labelTable) len() int { return len(t.toLabel) }

// pinLabel synthesizes the label for a suspension auxiliary (spec §3 Pin):
// deterministic given (sourceLabel, blobIndex) so repeated calls with the
// same seed produce identical auxiliary labels (spec's determinism
// guarantee extends to the labels the setup phase invents). Returns an
// error if the synthesized label collides with one already present in the
// user's own label universe (spec §7 "a suspension pin label collides with
// a user label").
func (t *labelTable) pinLabel(sourceLabel string, blobIndex int) (string, error) {
	synth := fmt.Sprintf("\x00pin\x00%s\x00%d", sourceLabel, blobIndex)
	if _, exists := t.toID[synth]; exists {
		return "", usagef("pinLabel", ErrPinLabelCollision, "source=%q blob=%d", sourceLabel, blobIndex)
	}
	return synth, nil
}

// pinTargetLabel synthesizes the label for a suspension auxiliary's pin
// target z' (spec §3 Pin). It does not register the label; the caller
// (applyConstraints in setup.go) registers it with idFor right away, so
// every target id BuildPins can ever hand back has a label (label()
// otherwise indexes out of range on an unregistered id). Errors the same way
// pinLabel does if the synthesized label collides with a user-supplied one.
func (t *labelTable) pinTargetLabel(sourceLabel string, blobIndex int) (string, error) {
	synth := fmt.Sprintf("\x00pin-t\x00%s\x00%d", sourceLabel, blobIndex)
	if _, exists := t.toID[synth]; exists {
		return "", usagef("pinTargetLabel", ErrPinLabelCollision, "source=%q blob=%d", sourceLabel, blobIndex)
	}
	return synth, nil
}
