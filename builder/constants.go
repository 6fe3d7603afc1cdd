// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the constructors, ensuring
// consistent defaults and validation across all topologies.

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodFan is the canonical name for the Fan constructor.
	MethodFan = "Fan"
	// MethodPolygon is the canonical name for the Polygon constructor.
	MethodPolygon = "Polygon"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier for the hub vertex of Star, Fan and Wheel.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCycleNodes is the smallest cycle without a multi-edge.
const MinCycleNodes = 3

// MinStarNodes is one hub plus at least one leaf.
const MinStarNodes = 2

// MinPolygonNodes is the smallest polygon without a 2-gon face.
const MinPolygonNodes = 3

// MinFanNodes is one hub plus a rim of two, i.e. a single triangle.
const MinFanNodes = 3

// MinWheelNodes is a hub plus a rim cycle of at least 3.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A grid with a dimension of 1 is a path and has no faces.
const MinGridDim = 1

// MinCompleteNodes is the smallest complete graph (a single vertex).
const MinCompleteNodes = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse(p).
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse(p).
const MaxProbability = 1.0
