// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories.
//
// Each function returns a sentinel-wrapped error via builderErrorf when its
// precondition is violated.

package builder

// validateMin ensures that got ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: builder: parameter too small".
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validatePartition checks that both sides of a bipartite graph are non-empty.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return builderErrorf(method, ErrTooFewVertices, "partition sizes must be ≥ %d, got %d and %d", MinPartition, n1, n2)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
