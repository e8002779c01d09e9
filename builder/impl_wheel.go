package builder

import "fmt"

// Wheel returns a Constructor for W_n = C_{n-1} + CenterVertexID (n ≥ 4).
// The rim is Cycle(n-1); spokes follow in ring index order.
func Wheel(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		g.AddNode(CenterVertexID)
		for i := 0; i < n-1; i++ {
			cfg.spoke(g, CenterVertexID, cfg.idFn(i))
		}

		return nil
	}
}
