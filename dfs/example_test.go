package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hedgegraph/builder"
	"github.com/katalvlaran/hedgegraph/core"
	"github.com/katalvlaran/hedgegraph/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a path.
// Starting at "0", the far end finishes first.
func ExampleDFS() {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	start, _ := builder.VertexByID(g, "0")

	res, err := dfs.DFS(g.Primal(), start)
	if err != nil {
		fmt.Println("dfs:", err)
		return
	}

	ids := make([]string, len(res.Order))
	for i, v := range res.Order {
		ids[i], _ = g.VertexData(v)
	}
	fmt.Println("post-order:", strings.Join(ids, " "))
	// Output:
	// post-order: 4 3 2 1 0
}

// ExampleComponents counts vertex islands and face patches.
func ExampleComponents() {
	g := core.NewPlain()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_, _ = g.AddFace(a, b, c)
	d, e := g.AddVertex(), g.AddVertex()
	_, _ = g.AddEdge(d, e)
	g.AddVertex()

	islands, _ := dfs.Components(g.Primal())
	patches, _ := dfs.Components(g.Dual())
	fmt.Println("islands:", len(islands), "patches:", len(patches))
	// Output:
	// islands: 3 patches: 1
}

// ExampleFindCycle shows that closing a polygon with its outer face makes the
// dual graph cyclic: the two faces meet along every edge.
func ExampleFindCycle() {
	open, _ := builder.BuildGraph(nil, nil, builder.Polygon(5))
	closed, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithOuterFace()}, builder.Polygon(5))

	_, ok, _ := dfs.FindCycle(open.Dual())
	fmt.Println("open:", ok)

	cycle, ok, _ := dfs.FindCycle(closed.Dual())
	fmt.Println("closed:", ok, len(cycle))
	// Output:
	// open: false
	// closed: true 3
}
