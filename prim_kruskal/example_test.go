package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/hedgegraph/builder"
	"github.com/katalvlaran/hedgegraph/prim_kruskal"
)

// ExampleKruskal splits the cube's edges into a spanning tree and a cotree.
func ExampleKruskal() {
	g, _ := builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.Cube))
	mst, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tree edges:", len(mst), "weight:", total)
	fmt.Println("cotree edges:", g.EdgeCount()-len(mst), "faces:", g.FaceCount())
	// Output:
	// tree edges: 7 weight: 7
	// cotree edges: 5 faces: 6
}
