package builder

import "math/rand"

// BuilderOption customizes builderConfig. Invalid arguments panic at option
// construction time, never inside BuildGraph.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID function. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand sets the RNG for stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand over a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeight gives every emitted edge the constant weight w.
func WithWeight(w float64) BuilderOption {
	return func(c *builderConfig) {
		c.weightFn = func(*rand.Rand) float64 { return w }
	}
}

// WithWeightFn draws each edge weight from fn. The RNG passed to fn is the
// one set by WithSeed/WithRand and may be nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDirectedEdges makes constructors emit one-way arcs in their documented
// direction. Spokes of Star and Wheel stay two-way.
func WithDirectedEdges() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}
