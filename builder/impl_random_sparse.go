package builder

import "fmt"

// RandomSparse returns a Constructor for an Erdős–Rényi style graph: every
// pair i<j (or every ordered pair i≠j with WithDirectedEdges) is linked with
// probability p. No self-loops are emitted.
//
// p == 0 and p == 1 are deterministic and need no RNG; anything in between
// requires WithSeed or WithRand. For a fixed seed the result is identical
// across runs.
func RandomSparse(n int, p float64) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				if keep() {
					cfg.link(g, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
