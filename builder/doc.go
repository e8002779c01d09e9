// Package builder assembles deterministic graph.Graph fixtures from
// composable topology constructors.
//
// BuildGraph creates an empty graph.Graph[string, T], resolves the functional
// BuilderOptions once into an immutable configuration and runs every
// Constructor in order against the same graph. Constructors sharing vertex
// IDs therefore overlay each other, which is how richer fixtures are made:
//
//	g, err := builder.BuildGraph[struct{}](
//	    []builder.BuilderOption{builder.WithSymbNumb("v")},
//	    builder.Cycle(5),
//	    builder.Star(3),
//	)
//
// Topologies
//
//   - Path(n)              P_n, n ≥ 2, edges i→i+1
//   - Cycle(n)             C_n, n ≥ 3, edges i→(i+1)%n
//   - Star(n)              hub "Center" + leaves 1..n-1, n ≥ 2
//   - Wheel(n)             C_{n-1} + hub "Center" with spokes, n ≥ 4
//   - Complete(n)          K_n, n ≥ 1, edges i→j for i<j
//   - Grid(rows, cols)     4-neighbourhood lattice with IDs "r,c"
//   - RandomSparse(n, p)   each pair linked with probability p (needs a seed)
//
// Options
//
//   - WithIDScheme / WithSymbNumb / WithSymbolIDs / WithExcelColumnIDs
//   - WithWeight (constant) / WithWeightFn + WithSeed / WithRand
//   - WithDirectedEdges: emit one-way arcs; hub spokes stay two-way
//
// Errors
//
//   - ErrTooFewVertices      a size parameter is below the topology minimum
//   - ErrInvalidProbability  p outside [0,1]
//   - ErrNeedRandSource      a stochastic constructor has no RNG
//   - ErrConstructFailed     a nil constructor was supplied
//
// Every error is wrapped with the constructor name; branch with errors.Is.
package builder
