package ordering

import (
	"errors"
	"math/rand"
)

// Sentinel errors for visiting-order generation.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Permutation.
	ErrNilGraph = errors.New("ordering: graph is nil")

	// ErrUnknownStrategy indicates a Strategy value outside the declared constants.
	ErrUnknownStrategy = errors.New("ordering: unknown strategy")
)

// Strategy selects how the visiting order is generated.
type Strategy int

const (
	// Identity visits nodes in ID order 0..n-1.
	Identity Strategy = iota

	// Random visits nodes in a seeded Fisher–Yates shuffle of the ID order.
	Random

	// Degree visits nodes by ascending out-degree (stable within equal degrees).
	Degree
)

// Options configures Permutation.
//
// Strategy — one of Identity, Random, Degree (default Random, matching the
// propagation engine's preference for shuffled sweeps).
// Seed     — RNG seed for Random; seed 0 selects a fixed default stream so
// that the zero value stays deterministic.
// Rand     — optional explicit RNG; when set it takes precedence over Seed.
type Options struct {
	Strategy Strategy
	Seed     int64
	Rand     *rand.Rand
}

// Option is a functional option for Permutation.
type Option func(*Options)

// WithStrategy selects the generation strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithSeed sets the RNG seed used by the Random strategy.
// Seed 0 selects the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an explicit RNG for the Random strategy, overriding Seed.
// The RNG is advanced by the shuffle; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// DefaultOptions returns the default configuration: Random strategy with the
// fixed default seed.
func DefaultOptions() Options {
	return Options{Strategy: Random}
}
