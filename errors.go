package minorembed

import (
	"errors"
	"fmt"
)

// Sentinel errors for the UsageError category (spec §7): raised eagerly,
// before any heuristic work, exactly like the teacher's builder package
// validates its inputs before constructing a graph.
var (
	ErrUnknownOption      = errors.New("minorembed: unknown option")
	ErrOptionOutOfRange   = errors.New("minorembed: option value out of range")
	ErrUnknownLabel       = errors.New("minorembed: chain references a label absent from its graph")
	ErrFixedChainsOverlap = errors.New("minorembed: two fixed chains overlap")
	ErrPinLabelCollision  = errors.New("minorembed: suspension pin label collides with a user label")
	ErrChainDisconnected  = errors.New("minorembed: supplied chain is not connected")
)

// UsageError wraps a pre-run validation failure (spec §7). It is always
// one of the sentinels above, with method-name context attached, mirroring
// the teacher's %w-wrapped error idiom.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string { return fmt.Sprintf("minorembed: %s: %v", e.Op, e.Err) }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(op string, sentinel error, format string, args ...any) *UsageError {
	return &UsageError{Op: op, Err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))}
}

// LogicFailure wraps an internal invariant breach (spec §7: "a chain
// became disconnected"). It is never expected in normal operation; unlike
// UsageError it indicates a bug in the engine itself rather than bad
// input, and is recovered exactly once at the top of FindEmbedding.
type LogicFailure struct {
	Err error
}

func (e *LogicFailure) Error() string { return fmt.Sprintf("minorembed: internal invariant breach: %v", e.Err) }
func (e *LogicFailure) Unwrap() error { return e.Err }
