// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hedgegraph/core"
)

// TestConcurrentAddEdge ensures that concurrent AddVertex/AddEdge calls
// around one hub are safe and every spoke appears.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewPlain()
	hub := g.AddVertex()
	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)

	errs := make(chan error, NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func() {
			defer wg.Done()
			_, err := g.AddEdge(hub, g.AddVertex())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(hub)
	require.NoError(t, err)
	require.Len(t, nbs, NConcurrentAdds)
	MustValid(t, g)
}

// TestConcurrentReadersAndClone validates concurrent adjacency reads, snapshots
// and clones do not race with each other or with a writer building faces.
func TestConcurrentReadersAndClone(t *testing.T) {
	g, vs := MustBuild(t, 8, CubeFaces)
	extra := Vertices(g, 16)

	var wg sync.WaitGroup
	wg.Add(NReaders + NCloners + 1)

	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors(vs[0])
			if err != nil || len(nbs) != 3 {
				t.Errorf("Neighbors: %v %v", nbs, err)
			}
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
			_ = g.Snapshot()
		}()
	}
	// a writer working on disjoint vertices; cube rings never change
	go func() {
		defer wg.Done()
		for i := 0; i+2 < len(extra); i += 3 {
			if _, err := g.AddFace(extra[i], extra[i+1], extra[i+2]); err != nil {
				t.Errorf("AddFace: %v", err)
			}
		}
	}()
	wg.Wait()

	require.Equal(t, 6+5, g.FaceCount())
	MustValid(t, g)
}
