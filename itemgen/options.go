package itemgen

import (
	"fmt"
	"math/rand"
)

// Default inclusive ranges for weight and value.
const (
	defaultMin int64 = 1
	defaultMax int64 = 100

	// defaultSeed is used when the caller supplies no RNG or seed 0.
	defaultSeed int64 = 1
)

// config aggregates all generator knobs.
type config struct {
	rng       *rand.Rand
	minWeight int64
	maxWeight int64
	minValue  int64
	maxValue  int64
}

// Option customizes Random.
// Option constructors validate and panic on meaningless arguments; Random
// itself never panics.
type Option func(*config)

// WithSeed uses a new *rand.Rand seeded with seed. Seed 0 selects the
// package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("itemgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWeightRange draws weights from [lo, hi]. Panics if lo < 0 or hi < lo.
func WithWeightRange(lo, hi int64) Option {
	mustRange("WithWeightRange", lo, hi)
	return func(c *config) {
		c.minWeight, c.maxWeight = lo, hi
	}
}

// WithValueRange draws values from [lo, hi]. Panics if lo < 0 or hi < lo.
func WithValueRange(lo, hi int64) Option {
	mustRange("WithValueRange", lo, hi)
	return func(c *config) {
		c.minValue, c.maxValue = lo, hi
	}
}

// mustRange panics on an empty or negative range.
func mustRange(name string, lo, hi int64) {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("itemgen: %s(%d, %d)", name, lo, hi))
	}
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	c := config{
		minWeight: defaultMin,
		maxWeight: defaultMax,
		minValue:  defaultMin,
		maxValue:  defaultMax,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
