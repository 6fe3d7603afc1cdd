// SPDX-License-Identifier: MIT
// Package: hedgegraph/builder
//
// variants_platonic.go - canonical face sets of the five Platonic solids.
//
// Every loop is listed so that, seen from outside, vertices run the same way
// around each face; every edge therefore appears once in each direction and
// the finished solid has no boundary half-edges. Face order is chosen so each
// incremental AddFace finds its rotation slots.
//
// Shapes (V, E, F):
//   • Tetrahedron  (4, 6, 4)
//   • Cube         (8, 12, 6)   bottom 0-3, top 4-7, 4 above 0
//   • Octahedron   (6, 12, 8)   poles 0 and 1, equator 2-5
//   • Dodecahedron (20, 30, 12) top ring 0-4, bottom ring 5-9, belt 10-19
//   • Icosahedron  (12, 30, 20) poles 0 and 11, rings 1-5 and 6-10

package builder

import (
	"fmt"
	"strings"
)

// PlatonicName selects one of the five Platonic solids.
type PlatonicName int

// String returns the solid's name.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // V=8,  E=12, F=6
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // V=20, E=30, F=12
	Icosahedron                      // V=12, E=30, F=20
)

// ParsePlatonicName resolves a solid by name, ignoring case.
func ParsePlatonicName(name string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
}

// platonicVertexCounts maps each solid to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicFaceSets lists faces as vertex-index loops.
var platonicFaceSets = map[PlatonicName][][]int{
	Tetrahedron: {
		{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {0, 2, 3},
	},

	Cube: {
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	},

	Octahedron: {
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
	},

	Dodecahedron: {
		{0, 1, 2, 3, 4},
		{1, 0, 10, 11, 12}, {2, 1, 12, 13, 14}, {3, 2, 14, 15, 16},
		{4, 3, 16, 17, 18}, {0, 4, 18, 19, 10},
		{5, 6, 13, 12, 11}, {6, 7, 15, 14, 13}, {7, 8, 17, 16, 15},
		{8, 9, 19, 18, 17}, {9, 5, 11, 10, 19},
		{9, 8, 7, 6, 5},
	},

	Icosahedron: {
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
		{2, 1, 7}, {3, 2, 8}, {4, 3, 9}, {5, 4, 10}, {1, 5, 6},
		{1, 6, 7}, {2, 7, 8}, {3, 8, 9}, {4, 9, 10}, {5, 10, 6},
		{11, 7, 6}, {11, 8, 7}, {11, 9, 8}, {11, 10, 9}, {11, 6, 10},
	},
}
