package builder

import "fmt"

// Star returns a Constructor for a star with hub CenterVertexID and leaves
// idFn(1..n-1) (n ≥ 2).
func Star(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		g.AddNode(CenterVertexID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			g.AddNode(leaf)
			cfg.spoke(g, CenterVertexID, leaf)
		}

		return nil
	}
}
