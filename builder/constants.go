// constants.go - method tags and size minima shared by all constructors.

package builder

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
	// MethodIsolated is the canonical name for the Isolated constructor.
	MethodIsolated = "Isolated"
)

// Minimum vertex counts per constructor.
const (
	MinCompleteNodes        = 1
	MinStarNodes            = 2
	MinPathNodes            = 2
	MinCycleNodes           = 3
	MinRandomSparseNodes    = 1
	MinRandomConnectedNodes = 1
	MinIsolatedNodes        = 1
)
