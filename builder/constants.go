package builder

// Method names used as error context.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// CenterVertexID is the fixed hub ID of Star and Wheel.
const CenterVertexID = "Center"

// Topology minima.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4 // the rim is a cycle of n-1 ≥ 3 vertices
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinRandomNodes   = 1
)

// DefaultEdgeWeight is used when neither WithWeight nor WithWeightFn is given.
const DefaultEdgeWeight = 1.0
