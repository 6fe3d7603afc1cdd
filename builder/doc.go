// Package builder assembles deterministic half-edge fixtures from small,
// composable constructors. It writes through core.Topology, so the same
// constructors fill a fresh graph, an existing one, or a live core.Writer.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build:          run constructors against any core.Topology.
//     – BuildGraph:     run them against a new labelled Graph (vertex ID and
//     edge weight payloads).
//     – Target:         the shared ID → handle index and edge weights.
//   - Constructors (Constructor implementations):
//     – Path, Cycle, Star, Complete, CompleteBipartite, RandomSparse: edges only.
//     – Polygon, Fan, Wheel, Grid:       open surfaces, closable with WithOuterFace.
//     – PlatonicSolid:                   the five closed Platonic surfaces.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Composition: constructors sharing a Build see one another's vertices by
//     ID and reuse existing edges, so Cycle(n) followed by Polygon(n) faces the
//     ring instead of duplicating it.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors for invalid build parameters; topology errors from core
//     (ErrNoFreeSlot, ErrHalfEdgeTaken) pass through wrapped.
//   - Face loops are consistently oriented; every closed result passes the
//     verify checker with no boundary half-edges.
//
// See individual function documentation for detailed contracts and
// performance notes.
package builder
