// Package meshdsl reads a small text language that describes a half-edge mesh
// statement by statement:
//
//	# 2×1 strip
//	vertex a, b, c, d, e, f;
//	face left  (a -> b -> e -> d);
//	face right (b -> c -> f -> e);
//	edge spur  (c -> f);   // fails: the edge already exists
//
// Parse turns source into a File; File.Apply replays it against any
// core.Topology (a *core.Graph or a live *core.Writer); BuildGraph does both on
// a fresh graph whose payloads carry the declared names.
//
// Errors wrap ErrSyntax, ErrUnknownVertex, ErrDuplicateVertex, or the core
// sentinel of the failing construction (core.ErrHalfEdgeTaken, ...), prefixed
// with the statement position. Use errors.Is to branch.
package meshdsl
