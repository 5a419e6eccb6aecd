// Package builder defines shared constants used by the topology constructors.
package builder

// Method names prefix every constructor error.
const (
	MethodPath          = "Path"
	MethodCycle         = "Cycle"
	MethodStar          = "Star"
	MethodWheel         = "Wheel"
	MethodComplete      = "Complete"
	MethodGrid          = "Grid"
	MethodLattice       = "Lattice"
	MethodPlatonicSolid = "PlatonicSolid"
	MethodRandomSparse  = "RandomSparse"
)

// Minimum sizes per constructor.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: fewer than 3 nodes cannot form a ring without parallel edges.
	MinCycleNodes = 3
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-ring plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single isolated vertex.
	MinCompleteNodes = 1
	// MinGridDim applies to every grid and lattice dimension.
	MinGridDim = 1
	// MinRandomNodes: at least one vertex.
	MinRandomNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Placement defaults.
const (
	DefaultScale = 1.0
)
