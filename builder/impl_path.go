package builder

import "fmt"

// Path returns a Constructor for the simple path P_n (n ≥ 2).
// Vertices idFn(0..n-1); edges idFn(i)→idFn(i+1) in ascending i.
func Path(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 0; i+1 < n; i++ {
			cfg.link(g, cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}
