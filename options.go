package minorembed

import "time"

// Edge is one (label, label) pair in a source or target graph's edge list
// (spec §6: "S: iterable of (label, label) pairs; labels are arbitrary
// hashable tokens"). Labels here are strings: a concrete, practical choice
// for the arbitrary-hashable-token requirement, narrow enough to make
// suspension-pin label synthesis collision-detectable (see labels.go).
type Edge struct {
	A, B string
}

// Options holds every recognized key from spec §6's options table, after
// functional-option application but before setupx.Validate normalizes
// ranges and fills defaults.
type Options struct {
	MaxNoImprovement    int
	RandomSeed          uint64
	HasRandomSeed       bool
	Timeout             time.Duration
	MaxBeta             float64
	Tries               int
	InnerRounds         int
	ChainlengthPatience int
	MaxFill             int
	Threads             int
	ReturnOverlap       bool
	SkipInitialization  bool
	Verbose             int

	InitialChains  map[string][]string
	FixedChains    map[string][]string
	RestrictChains map[string][]string
	SuspendChains  map[string][][]string

	logger Logger
	cancel func() bool
}

// Option configures one field of Options, following the teacher's
// functional-options convention (builder.BuilderOption, dijkstra.Option).
type Option func(*Options)

func WithMaxNoImprovement(n int) Option { return func(o *Options) { o.MaxNoImprovement = n } }

func WithRandomSeed(seed uint64) Option {
	return func(o *Options) { o.RandomSeed = seed; o.HasRandomSeed = true }
}

func WithTimeout(d time.Duration) Option { return func(o *Options) { o.Timeout = d } }
func WithMaxBeta(b float64) Option       { return func(o *Options) { o.MaxBeta = b } }
func WithTries(n int) Option             { return func(o *Options) { o.Tries = n } }
func WithInnerRounds(n int) Option       { return func(o *Options) { o.InnerRounds = n } }

func WithChainlengthPatience(n int) Option {
	return func(o *Options) { o.ChainlengthPatience = n }
}

func WithMaxFill(n int) Option            { return func(o *Options) { o.MaxFill = n } }
func WithThreads(n int) Option            { return func(o *Options) { o.Threads = n } }
func WithReturnOverlap(b bool) Option     { return func(o *Options) { o.ReturnOverlap = b } }
func WithSkipInitialization(b bool) Option {
	return func(o *Options) { o.SkipInitialization = b }
}
func WithVerbose(level int) Option { return func(o *Options) { o.Verbose = level } }

func WithInitialChains(chains map[string][]string) Option {
	return func(o *Options) { o.InitialChains = chains }
}
func WithFixedChains(chains map[string][]string) Option {
	return func(o *Options) { o.FixedChains = chains }
}
func WithRestrictChains(chains map[string][]string) Option {
	return func(o *Options) { o.RestrictChains = chains }
}
func WithSuspendChains(blobs map[string][][]string) Option {
	return func(o *Options) { o.SuspendChains = blobs }
}

// Logger receives diagnostic traces when verbose > 0 (spec §1 explicitly
// pushes "verbose logging surfaces" out of the engine's scope; this is the
// minimal seam a caller plugs a real logger into, matching the teacher's
// "no hidden globals" policy). The zero value (nil) means no-op.
type Logger interface {
	Log(level int, msg string, kv ...any)
}

func WithLogger(l Logger) Option { return func(o *Options) { o.logger = l } }

// WithCancelFunc installs the cancellation predicate the outer loop polls
// between passes (spec §5, §6 "Cancellation interface"). A nil poll
// function (the default) means the run is never externally cancelled.
func WithCancelFunc(poll func() bool) Option { return func(o *Options) { o.cancel = poll } }
