package builder

import "fmt"

// Complete returns a Constructor for K_n (n ≥ 1): idFn(i)→idFn(j) for every
// i<j, in lexicographic (i, j) order.
func Complete(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.link(g, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}
