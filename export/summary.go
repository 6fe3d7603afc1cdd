package export

import (
	"github.com/tidwall/gjson"
)

// Summary holds the counts read back from a Dump document.
type Summary struct {
	Graph     string
	Vertices  int
	Edges     int
	Faces     int
	HalfEdges int
	Boundary  int // half-edges with a null face
	Isolated  int // vertices with a null hedge
}

// Summarize parses a Dump document.
func Summarize(doc []byte) (Summary, error) {
	if !gjson.ValidBytes(doc) {
		return Summary{}, ErrInvalidDocument
	}
	root := gjson.ParseBytes(doc)

	var s Summary
	s.Graph = root.Get("graph").String()
	root.Get("vertices").ForEach(func(_, v gjson.Result) bool {
		s.Vertices++
		if v.Get("hedge").Type == gjson.Null {
			s.Isolated++
		}
		return true
	})
	s.Edges = count(root.Get("edges"))
	s.Faces = count(root.Get("faces"))
	root.Get("half_edges").ForEach(func(_, h gjson.Result) bool {
		s.HalfEdges++
		if h.Get("face").Type == gjson.Null {
			s.Boundary++
		}
		return true
	})

	return s, nil
}

func count(r gjson.Result) int {
	n := 0
	r.ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})

	return n
}
