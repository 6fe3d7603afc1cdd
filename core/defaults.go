// SPDX-License-Identifier: MIT
//
// File: defaults.go
// Role: Default payloads for entities a mutation creates implicitly.

package core

// Defaulter is implemented by payload types whose empty value is not their
// Go zero value. The method must have a value receiver: it is called on the
// zero value of the type.
type Defaulter[T any] interface {
	Default() T
}

// defaultOf returns the payload materialized for implied entities
// (half-edges of a new edge, edges created by NewFace).
func defaultOf[T any]() T {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}

	return zero
}
