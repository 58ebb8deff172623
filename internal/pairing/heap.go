// Package pairing implements a fixed-capacity pairing heap keyed by dense
// integer ids in [0, n), the priority queue behind the Dijkstra engine
// (spec §4.B). It supports amortized O(1) decrease-key and an O(1)
// amortized full reset via a generation counter, so the same arena can be
// reused across thousands of per-source-vertex Dijkstra runs without
// reallocating or re-zeroing on every call.
//
// The heap node arena mirrors the (value, next-sibling, first-child, prev)
// layout described by the design: we additionally keep an explicit parent
// link per node (a fifth array) rather than overloading "prev" to mean
// "parent if leftmost child, else previous sibling" — it costs one more
// int32 per node and makes cut-on-decrease-key a direct, unambiguous splice.
//
// All ordering is strict and ties break by node id (lower id wins), so two
// heaps fed the same sequence of operations pop an identical order.
package pairing

const none = int32(-1)

// Heap is a pairing heap over a fixed universe of ids [0, n). The zero value
// is not usable; construct with New.
type Heap struct {
	value       []float64
	gen         []uint32
	parent      []int32
	firstChild  []int32
	nextSibling []int32
	prevSibling []int32 // -1 if this node is its parent's first child (or has no parent)

	root int32 // index of the minimum node, or none if empty
	now  uint32
	size int
}

// New allocates a Heap over the id universe [0, n).
//
// Complexity: O(n) time and space, paid once; reused via Reset thereafter.
func New(n int) *Heap {
	h := &Heap{
		value:       make([]float64, n),
		gen:         make([]uint32, n),
		parent:      make([]int32, n),
		firstChild:  make([]int32, n),
		nextSibling: make([]int32, n),
		prevSibling: make([]int32, n),
		root:        none,
		now:         1,
	}
	for i := range h.gen {
		h.gen[i] = 0 // generation 0 never matches h.now (starts at 1): everything begins "not live"
	}
	return h
}

// live reports whether node i was inserted during the current generation.
// A node removed by PopMin/DeleteMin keeps its generation and so stays live
// (with value 0) until the next Reset.
func (h *Heap) live(i int32) bool { return h.gen[i] == h.now }

// Reset clears the heap in amortized O(1) by bumping the generation
// counter; stale entries are lazily recognized as dead the next time they
// are touched, avoiding an O(n) sweep between placements.
//
// Complexity: O(1), except once every 2^32 resets when the counter wraps
// (handled by falling back to an explicit O(n) clear).
func (h *Heap) Reset() {
	h.root = none
	h.size = 0
	h.now++
	if h.now == 0 { // wrapped around; force every slot to miss
		h.now = 1
		for i := range h.gen {
			h.gen[i] = 0
		}
	}
}

// Empty reports whether the heap currently holds no live nodes.
//
// Complexity: O(1).
func (h *Heap) Empty() bool { return h.root == none }

// Len returns the number of live nodes.
//
// Complexity: O(1).
func (h *Heap) Len() int { return h.size }

// MinValue returns the value of the current minimum node. Panics if empty;
// callers must check Empty first, matching the rest of the engine's policy
// of failing fast on programmer error rather than returning sentinel zero
// values that could be mistaken for real data.
//
// Complexity: O(1).
func (h *Heap) MinValue() float64 {
	if h.root == none {
		panic("pairing: MinValue on empty heap")
	}
	return h.value[h.root]
}

// MinID returns the id of the current minimum node. Panics if empty.
//
// Complexity: O(1).
func (h *Heap) MinID() int {
	if h.root == none {
		panic("pairing: MinID on empty heap")
	}
	return int(h.root)
}

// SetValue inserts id into the heap with the given value, or, if id is
// already live, is a programmer error (use CheckDecreaseValue instead).
// Inserting an id that was live in a previous generation (i.e. stale) is
// fine: SetValue resurrects it as a fresh singleton node.
//
// Complexity: O(1) amortized.
func (h *Heap) SetValue(id int, value float64) {
	i := int32(id)
	h.gen[i] = h.now
	h.value[i] = value
	h.parent[i] = none
	h.firstChild[i] = none
	h.nextSibling[i] = none
	h.prevSibling[i] = none
	h.size++
	h.root = h.meld(h.root, i)
}

// CheckDecreaseValue lowers id's value to newValue if newValue is strictly
// smaller than its current value; otherwise it is a no-op, matching the
// spec's requirement that decrease-key never increases a key. If id is not
// currently live, it is inserted fresh via SetValue.
//
// Complexity: O(1) amortized (a cut plus one meld; the actual consolidation
// cost is paid lazily at the next DeleteMin).
func (h *Heap) CheckDecreaseValue(id int, newValue float64) {
	i := int32(id)
	if !h.live(i) {
		h.SetValue(id, newValue)
		return
	}
	if newValue >= h.value[i] {
		return // no-op: not strictly smaller
	}
	h.value[i] = newValue
	if i == h.root {
		return // already the root; no structural change needed
	}
	h.cut(i)
	h.root = h.meld(h.root, i)
}

// cut detaches i from its parent's child list, leaving i a rootless
// singleton (its own subtree intact below it).
func (h *Heap) cut(i int32) {
	p := h.parent[i]
	if p == none {
		return // i is already a root of some melded tree fragment (shouldn't happen via public API)
	}
	prev := h.prevSibling[i]
	next := h.nextSibling[i]
	if prev != none {
		h.nextSibling[prev] = next
	} else {
		h.firstChild[p] = next
	}
	if next != none {
		h.prevSibling[next] = prev
	}
	h.parent[i] = none
	h.nextSibling[i] = none
	h.prevSibling[i] = none
}

// meld merges two root trees (either may be none) and returns the new root,
// attaching the tree with the larger key as a new leftmost child of the
// tree with the smaller key. Ties break by id for determinism.
func (h *Heap) meld(a, b int32) int32 {
	if a == none {
		return b
	}
	if b == none {
		return a
	}
	if h.less(b, a) {
		a, b = b, a
	}
	// b becomes the new leftmost child of a.
	h.parent[b] = a
	h.prevSibling[b] = none
	oldFirst := h.firstChild[a]
	h.nextSibling[b] = oldFirst
	if oldFirst != none {
		h.prevSibling[oldFirst] = b
	}
	h.firstChild[a] = b
	return a
}

func (h *Heap) less(a, b int32) bool {
	if h.value[a] != h.value[b] {
		return h.value[a] < h.value[b]
	}
	return a < b // deterministic tie-break by node id
}

// DeleteMin removes the current minimum node from the heap (but does not
// report it); use PopMin to remove and retrieve it in one call. A no-op on
// an empty heap.
//
// Complexity: O(log n) amortized, via two-pass left-to-right pairing of the
// root's children.
func (h *Heap) DeleteMin() {
	if h.root == none {
		return
	}
	h.deleteRoot()
}

// PopMin removes and returns (id, value) of the current minimum node.
// Panics if the heap is empty.
//
// Complexity: O(log n) amortized.
func (h *Heap) PopMin() (id int, value float64) {
	if h.root == none {
		panic("pairing: PopMin on empty heap")
	}
	id = int(h.root)
	value = h.value[h.root]
	h.deleteRoot()
	return id, value
}

// deleteRoot detaches the root's children into a singly-linked sibling
// list, then combines them via the standard two-pass pairing merge:
// pair up consecutive siblings left-to-right, then fold the resulting
// list right-to-left into a single tree.
func (h *Heap) deleteRoot() {
	old := h.root
	h.size--

	child := h.firstChild[old]
	h.value[old] = 0
	h.firstChild[old] = none

	if child == none {
		h.root = none
		return
	}

	// Collect children into a slice; the per-call scratch is bounded by the
	// number of children and is the only allocation on this path, matching
	// the spec's "amortized-growth containers for chain membership only"
	// discipline loosely — this growth is O(children), not O(|T|).
	var siblings []int32
	for c := child; c != none; {
		next := h.nextSibling[c]
		h.parent[c] = none
		h.prevSibling[c] = none
		h.nextSibling[c] = none
		siblings = append(siblings, c)
		c = next
	}

	// First pass: pair up consecutive trees left to right.
	merged := siblings[:0]
	i := 0
	for ; i+1 < len(siblings); i += 2 {
		merged = append(merged, h.meld(siblings[i], siblings[i+1]))
	}
	if i < len(siblings) {
		merged = append(merged, siblings[i])
	}

	// Second pass: fold right to left into one tree.
	var result int32 = none
	for j := len(merged) - 1; j >= 0; j-- {
		result = h.meld(merged[j], result)
	}
	h.root = result
}
