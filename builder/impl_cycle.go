package builder

import "fmt"

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Edges idFn(i)→idFn((i+1)%n) in ascending i, closing the ring last.
func Cycle(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			cfg.link(g, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
