// Package clustering - options, sentinel errors and result types.
package clustering

import (
	"errors"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/GunterMueller/KaDraw/ordering"
)

// Sentinel errors returned by the clustering entry points.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("clustering: graph is nil")

	// ErrBadIterations indicates a negative sweep count.
	ErrBadIterations = errors.New("clustering: iteration count must be non-negative")

	// ErrBadUpperBound indicates a negative or NaN cluster upper bound.
	ErrBadUpperBound = errors.New("clustering: cluster upper bound must be non-negative")

	// ErrMappingSize indicates a cluster label slice whose length does not
	// equal the graph's node count.
	ErrMappingSize = errors.New("clustering: label slice length must equal node count")
)

// NoUpperBound disables the cluster size constraint: any value at or above
// it is treated as "no cap".
const NoUpperBound = float64(math.MaxInt64)

// DefaultIterations is the default number of propagation sweeps.
const DefaultIterations = 10

// BoolSource supplies fair coin flips for breaking ties between candidate
// clusters of equal accumulated weight. Implementations need not be
// goroutine-safe; a source is consumed by one run at a time.
type BoolSource interface {
	// NextBool reports the next coin flip.
	NextBool() bool
}

// randCoin is the default BoolSource: a seeded math/rand stream.
type randCoin struct {
	r *rand.Rand
}

// NextBool draws one fair coin flip from the underlying stream.
func (c randCoin) NextBool() bool { return c.r.Intn(2) == 1 }

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0,
// matching the ordering package policy so the zero value stays deterministic.
const defaultRNGSeed int64 = 1

// newCoin builds the default tie-break source for the given seed.
func newCoin(seed int64) BoolSource {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return randCoin{r: rand.New(rand.NewSource(s))}
}

// Options configures a label propagation run.
//
// UpperBound — maximum permitted total vertex weight per cluster. The
// effective cap is ceil(UpperBound), so fractional bounds round up.
// Default NoUpperBound (unconstrained).
//
// Iterations — number of full propagation sweeps; every sweep runs to
// completion, there is no early termination. Default DefaultIterations.
//
// Strategy / Seed — visiting-order strategy (see package ordering) and the
// seed shared by the order shuffle and the default tie-break coin.
// Default ordering.Random with seed 0 (the fixed default stream).
//
// TieBreaker — optional explicit coin source; when set it replaces the
// default seeded coin. Inject a constant source for reproducible selection.
//
// Logger — optional structured logger; per-sweep move counts are emitted at
// debug level. Default zerolog.Nop().
type Options struct {
	UpperBound float64
	Iterations int
	Strategy   ordering.Strategy
	Seed       int64
	TieBreaker BoolSource
	Logger     zerolog.Logger
}

// Option is a functional option for the clustering entry points.
type Option func(*Options)

// WithUpperBound sets the cluster weight cap. The engine applies
// ceil(u), so a fractional configured bound rounds up.
// Panics on negative u; NaN is rejected later with ErrBadUpperBound.
func WithUpperBound(u float64) Option {
	if u < 0 {
		panic(ErrBadUpperBound.Error())
	}

	return func(o *Options) { o.UpperBound = u }
}

// WithIterations sets the number of propagation sweeps.
// Panics on negative t.
func WithIterations(t int) Option {
	if t < 0 {
		panic(ErrBadIterations.Error())
	}

	return func(o *Options) { o.Iterations = t }
}

// WithOrderingStrategy selects the visiting-order strategy.
func WithOrderingStrategy(s ordering.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSeed sets the seed shared by the visiting-order shuffle and the default
// tie-break coin. Seed 0 selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTieBreaker replaces the default seeded coin with an explicit source.
func WithTieBreaker(src BoolSource) Option {
	return func(o *Options) { o.TieBreaker = src }
}

// WithLogger attaches a structured logger; sweep progress is emitted at
// debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the default configuration: unconstrained cluster
// size, DefaultIterations sweeps, random visiting order with the fixed
// default seed, seeded coin tie-breaking, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		UpperBound: NoUpperBound,
		Iterations: DefaultIterations,
		Strategy:   ordering.Random,
		Logger:     zerolog.Nop(),
	}
}

// bound converts the configured float upper bound to the effective integer
// cap: ceil(UpperBound), saturating at math.MaxInt64 for NoUpperBound.
func (o Options) bound() int64 {
	if o.UpperBound >= NoUpperBound {
		return math.MaxInt64
	}

	return int64(math.Ceil(o.UpperBound))
}

// Matching is the result of Match: the coarse mapping produced for the
// external contraction stage.
//
// CoarseMapping holds one dense cluster label (0..NoOfCoarseVertices-1) per
// node, indexed by node ID. NoOfCoarseVertices is the number of distinct
// clusters, i.e. the node count of the contracted graph.
//
// Permutation is sized to the node count but never populated: the historical
// matching interface reserves the slot and downstream consumers ignore it.
// Kept as-is for behavioral parity with the original pipeline.
type Matching struct {
	CoarseMapping      []int
	NoOfCoarseVertices int
	Permutation        []int
}
