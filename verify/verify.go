// Package verify checks the structural invariants of a core half-edge graph.
//
// What
//
//   - pair:         every half-edge has a distinct pair, and pair.pair is itself.
//   - next-prev:    next.prev and prev.next lead back to the half-edge.
//   - edge:         a half-edge and its pair share one edge, and the edge's
//     representative is one of them.
//   - loop-face:    consecutive half-edges of a loop bound the same face (or none).
//   - chain:        the target of a half-edge is the source of its next.
//   - vertex-ring:  a vertex representative leaves the vertex, and the
//     rotation from it reaches every outgoing half-edge exactly once.
//   - face-loop:    a face representative carries the face, and its loop
//     holds every half-edge of the face.
//   - simple:       no self-loops and at most one edge per vertex pair.
//
// The checker is read-only and works on a core.Snapshot; running it twice
// on the same graph yields identical reports.
//
// Complexity: O(V + E + F) time and space.
package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hedgegraph/core"
)

// ErrInvariantViolated is wrapped by Report.Err when any rule fails.
var ErrInvariantViolated = errors.New("verify: invariant violated")

// Rule names one structural property.
type Rule string

// Checked rules.
const (
	RulePair       Rule = "pair"
	RuleNextPrev   Rule = "next-prev"
	RuleEdge       Rule = "edge"
	RuleLoopFace   Rule = "loop-face"
	RuleChain      Rule = "chain"
	RuleVertexRing Rule = "vertex-ring"
	RuleFaceLoop   Rule = "face-loop"
	RuleSimple     Rule = "simple"
	RuleDangling   Rule = "dangling"
)

// Violation is one failed rule at one entity.
type Violation struct {
	Rule    Rule
	Subject string // handle of the offending entity, e.g. "h7"
	Detail  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %s: %s", v.Rule, v.Subject, v.Detail)
}

// Report collects every violation found by one check.
type Report struct {
	Vertices, Edges, HalfEdges, Faces int
	Violations                        []Violation
}

// OK reports whether no rule failed.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Err returns nil for a clean report, otherwise an error wrapping
// ErrInvariantViolated that lists every violation.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		lines[i] = v.String()
	}

	return fmt.Errorf("%w: %d violation(s):\n  %s", ErrInvariantViolated, len(lines), strings.Join(lines, "\n  "))
}

// Has reports whether rule failed at least once.
func (r *Report) Has(rule Rule) bool {
	for _, v := range r.Violations {
		if v.Rule == rule {
			return true
		}
	}

	return false
}

func (r *Report) add(rule Rule, subject fmt.Stringer, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		Rule:    rule,
		Subject: subject.String(),
		Detail:  fmt.Sprintf(format, args...),
	})
}

// Source is anything that can produce a topology snapshot; *core.Graph does.
type Source interface {
	Snapshot() *core.Snapshot
}

// Check snapshots g and verifies it.
func Check(g Source) *Report {
	return CheckSnapshot(g.Snapshot())
}

// CheckSnapshot verifies every rule on s.
//
// Implementation:
//   - Stage 1: per half-edge local rules (pair, next-prev, edge, loop-face, chain).
//   - Stage 2: per vertex rotation walk against the expected outgoing set.
//   - Stage 3: per face loop walk against the expected boundary set.
//   - Stage 4: self-loop and duplicate-connection scan.
//
// Walks in stages 2 and 3 are bounded by the half-edge count, so a corrupt
// snapshot never loops forever.
func CheckSnapshot(s *core.Snapshot) *Report {
	r := &Report{
		Vertices:  len(s.Vertices),
		Edges:     len(s.Edges),
		HalfEdges: len(s.HalfEdges),
		Faces:     len(s.Faces),
	}
	c := checker{s: s, r: r}
	if !c.halfEdges() {
		// the ring walks below need sound links
		return r
	}
	c.vertices()
	c.faces()
	c.simple()

	return r
}

type checker struct {
	s *core.Snapshot
	r *Report
}

// halfEdges runs the local rules. It returns false if any handle dangles.
func (c *checker) halfEdges() bool {
	s, r := c.s, c.r
	sound := true
	for i := range s.HalfEdges {
		h := &s.HalfEdges[i]
		pair, okPair := s.HalfEdge(h.Pair)
		next, okNext := s.HalfEdge(h.Next)
		prev, okPrev := s.HalfEdge(h.Prev)
		edge, okEdge := s.Edge(h.Edge)
		_, okVertex := s.Vertex(h.Vertex)
		okFace := h.Face.IsNil()
		if !okFace {
			_, okFace = s.Face(h.Face)
		}
		if !okPair || !okNext || !okPrev || !okEdge || !okVertex || !okFace {
			r.add(RuleDangling, h.Handle, "pair=%v next=%v prev=%v edge=%v vertex=%v face=%v",
				h.Pair, h.Next, h.Prev, h.Edge, h.Vertex, h.Face)
			sound = false
			continue
		}

		if pair.Handle == h.Handle || pair.Pair != h.Handle {
			r.add(RulePair, h.Handle, "pair %v has pair %v", pair.Handle, pair.Pair)
		}
		if next.Prev != h.Handle {
			r.add(RuleNextPrev, h.Handle, "next %v has prev %v", next.Handle, next.Prev)
		}
		if prev.Next != h.Handle {
			r.add(RuleNextPrev, h.Handle, "prev %v has next %v", prev.Handle, prev.Next)
		}
		if pair.Edge != h.Edge {
			r.add(RuleEdge, h.Handle, "edge %v but pair %v has edge %v", h.Edge, pair.Handle, pair.Edge)
		}
		if edge.HalfEdge != h.Handle && edge.HalfEdge != h.Pair {
			r.add(RuleEdge, h.Handle, "edge %v represented by foreign %v", edge.Handle, edge.HalfEdge)
		}
		if next.Face != h.Face {
			r.add(RuleLoopFace, h.Handle, "face %v but next %v has face %v", h.Face, next.Handle, next.Face)
		}
		if nextPair, ok := s.HalfEdge(next.Pair); ok && nextPair.Vertex != h.Vertex {
			r.add(RuleChain, h.Handle, "points to %v but next %v leaves %v", h.Vertex, next.Handle, nextPair.Vertex)
		}
	}
	for i := range s.Edges {
		e := &s.Edges[i]
		if _, ok := s.HalfEdge(e.HalfEdge); !ok {
			r.add(RuleDangling, e.Handle, "representative %v", e.HalfEdge)
			sound = false
		}
	}
	for i := range s.Vertices {
		v := &s.Vertices[i]
		if v.HalfEdge.IsNil() {
			continue
		}
		if _, ok := s.HalfEdge(v.HalfEdge); !ok {
			r.add(RuleDangling, v.Handle, "representative %v", v.HalfEdge)
			sound = false
		}
	}
	for i := range s.Faces {
		f := &s.Faces[i]
		if _, ok := s.HalfEdge(f.HalfEdge); !ok {
			r.add(RuleDangling, f.Handle, "representative %v", f.HalfEdge)
			sound = false
		}
	}

	return sound
}

func (c *checker) source(h core.HalfEdgeHandle) core.VertexHandle {
	rec, _ := c.s.HalfEdge(h)
	pair, _ := c.s.HalfEdge(rec.Pair)

	return pair.Vertex
}

func (c *checker) vertices() {
	s, r := c.s, c.r
	outgoing := make(map[core.VertexHandle]int, len(s.Vertices))
	for i := range s.HalfEdges {
		outgoing[c.source(s.HalfEdges[i].Handle)]++
	}
	limit := len(s.HalfEdges)
	for i := range s.Vertices {
		v := &s.Vertices[i]
		want := outgoing[v.Handle]
		if v.HalfEdge.IsNil() {
			if want != 0 {
				r.add(RuleVertexRing, v.Handle, "isolated but %d half-edges leave it", want)
			}
			continue
		}
		if src := c.source(v.HalfEdge); src != v.Handle {
			r.add(RuleVertexRing, v.Handle, "representative %v leaves %v", v.HalfEdge, src)
			continue
		}
		got, closed := 0, false
		for cur, steps := v.HalfEdge, 0; steps <= limit; steps++ {
			got++
			rec, _ := s.HalfEdge(cur)
			pair, _ := s.HalfEdge(rec.Pair)
			cur = pair.Next
			if cur == v.HalfEdge {
				closed = true
				break
			}
			if c.source(cur) != v.Handle {
				break
			}
		}
		switch {
		case !closed:
			r.add(RuleVertexRing, v.Handle, "rotation from %v does not close", v.HalfEdge)
		case got != want:
			r.add(RuleVertexRing, v.Handle, "rotation reaches %d of %d outgoing half-edges", got, want)
		}
	}
}

func (c *checker) faces() {
	s, r := c.s, c.r
	boundary := make(map[core.FaceHandle]int, len(s.Faces))
	for i := range s.HalfEdges {
		if f := s.HalfEdges[i].Face; !f.IsNil() {
			boundary[f]++
		}
	}
	limit := len(s.HalfEdges)
	for i := range s.Faces {
		f := &s.Faces[i]
		head, _ := s.HalfEdge(f.HalfEdge)
		if head.Face != f.Handle {
			r.add(RuleFaceLoop, f.Handle, "representative %v bounds %v", f.HalfEdge, head.Face)
			continue
		}
		got, closed := 0, false
		for cur, steps := f.HalfEdge, 0; steps <= limit; steps++ {
			got++
			rec, _ := s.HalfEdge(cur)
			cur = rec.Next
			if cur == f.HalfEdge {
				closed = true
				break
			}
		}
		switch {
		case !closed:
			r.add(RuleFaceLoop, f.Handle, "loop from %v does not close", f.HalfEdge)
		case got != boundary[f.Handle]:
			r.add(RuleFaceLoop, f.Handle, "loop holds %d of %d half-edges", got, boundary[f.Handle])
		}
	}
}

func (c *checker) simple() {
	s, r := c.s, c.r
	type link struct{ from, to core.VertexHandle }
	seen := make(map[link]core.EdgeHandle, len(s.HalfEdges))
	for i := range s.HalfEdges {
		h := &s.HalfEdges[i]
		from := c.source(h.Handle)
		if from == h.Vertex {
			r.add(RuleSimple, h.Handle, "self-loop at %v", from)
			continue
		}
		k := link{from: from, to: h.Vertex}
		if other, dup := seen[k]; dup && other != h.Edge {
			r.add(RuleSimple, h.Handle, "%v→%v carried by %v and %v", from, h.Vertex, other, h.Edge)
			continue
		}
		seen[k] = h.Edge
	}
}
