package export_test

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/hedgegraph/builder"
	"github.com/katalvlaran/hedgegraph/export"
)

// ExampleDump renders a square and reads one half-edge record back.
func ExampleDump() {
	g, _ := builder.BuildGraph(nil, nil, builder.Polygon(4))

	doc, err := export.Dump(g, export.WithVertexNames(g))
	if err != nil {
		fmt.Println("dump:", err)
		return
	}
	sum, _ := export.Summarize(doc)
	fmt.Println("half-edges:", sum.HalfEdges, "boundary:", sum.Boundary)

	h := gjson.GetBytes(doc, "faces.f0.hedge").String()
	fmt.Println("representative bounds:", gjson.GetBytes(doc, "half_edges."+h+".face"))
	// Output:
	// half-edges: 8 boundary: 4
	// representative bounds: f0
}
