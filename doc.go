// Package minorembed finds heuristic minor-embeddings of a small source
// graph into a larger target graph — the placement step behind mapping a
// problem graph onto fixed hardware topology.
//
// 🧩 What is minorembed?
//
//	A modernized Cai–Macready–Roy placement heuristic that brings together:
//
//	  • A tear-and-rebuild outer loop with growing overlap penalties
//	  • A pairing-heap multi-source Dijkstra engine for chain growth
//	  • Fixed/initial/restrict/suspend chain constraints
//	  • A bounded worker pool for the one parallel phase that matters
//
// ✨ Why choose minorembed?
//
//   - Deterministic     — same seed, same input, single thread ⇒ identical trajectory
//   - Allocation-light  — per-worker scratch sized once, reused across placements
//   - Honest failure    — no embedding found returns the best-so-far, not an error
//   - Pure Go           — no cgo, small dependency surface
//
// Under the hood, everything is organized under internal subpackages:
//
//	internal/rng/        — seeded xorshift128+ generator with per-thread forking
//	internal/pairing/     — pairing heap with amortized O(1) decrease-key and reset
//	internal/target/      — target graph, overlap weights, restrict masks
//	internal/chain/       — per-source chain bookkeeping and use-count accounting
//	internal/sssp/        — multi-source weighted Dijkstra
//	internal/placement/   — one-vertex placement heuristic, parallel neighbor scan
//	internal/pool/        — bounded worker pool for the neighbor-distance phase
//	internal/scheduler/   — the outer loop: init, search, chainlength reduction
//	internal/setupx/      — option validation and constraint application
//	testgraph/            — small topology constructors used by tests and examples
//
// Quick example — embedding a triangle into a triangle:
//
//	S := []minorembed.Edge{{"a", "b"}, {"b", "c"}, {"a", "c"}}
//	T := []minorembed.Edge{{"0", "1"}, {"1", "2"}, {"0", "2"}}
//	mapping, ok, err := minorembed.FindEmbedding(S, T, minorembed.WithReturnOverlap(true))
//
// Dive into DESIGN.md for the grounding of each component against its
// reference algorithms.
//
//	go get github.com/katalvlaran/minorembed
package minorembed
