package builder

import (
	"fmt"

	"github.com/katalvlaran/kata/graph"
)

// Sink is the part of graph.Graph a Constructor writes to. Every
// *graph.Graph[string, T] satisfies it.
type Sink interface {
	AddNode(key string)
	Connect(source, target string, opts ...graph.EdgeOption)
}

// Constructor adds a topology to g using the resolved configuration. It
// validates its parameters before touching g and returns wrapped sentinel
// errors instead of panicking.
type Constructor func(g Sink, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves opts and applies cons in
// order. The first failing constructor aborts the build; its error is
// wrapped with "BuildGraph: %w".
func BuildGraph[T any](opts []BuilderOption, cons ...Constructor) (*graph.Graph[string, T], error) {
	g := graph.NewGraph[string, T]()
	if err := Apply(g, opts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against an existing graph, so fixtures can be layered
// onto graphs built elsewhere.
func Apply(g Sink, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}
