// Package testgraph provides small, deterministic topology constructors
// for tests and runnable examples: Complete, Cycle, CompleteBipartite,
// Path, Grid, and TwoDisjointEdges. Each emits the plain (label, label)
// edge-list pairs that minorembed.FindEmbedding consumes directly,
// adapted from the teacher's graph-building constructors.
package testgraph

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, ...)
// fell below the minimum required by the topology being constructed.
var ErrTooFewVertices = errors.New("testgraph: parameter too small")
