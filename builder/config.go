package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/kata/graph"
)

// builderConfig is resolved once per BuildGraph call and never mutated by
// constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
	directed bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) float64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// link emits u→v (and v→u unless edges are directed) with the next weight.
func (c builderConfig) link(g Sink, u, v string) {
	g.Connect(u, v, graph.WithWeight(c.weightFn(c.rng)), graph.WithBidirectional(!c.directed))
}

// spoke emits a hub edge, which is two-way even for directed fixtures.
func (c builderConfig) spoke(g Sink, hub, rim string) {
	g.Connect(hub, rim, graph.WithWeight(c.weightFn(c.rng)))
}
