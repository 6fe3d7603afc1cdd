// SPDX-License-Identifier: MIT
//
// File: arena.go
// Role: Append-only slot arena, one per entity kind and per payload kind.
// Determinism:
//   - Slots are allocated densely in creation order.
// Concurrency:
//   - None here; callers hold the Graph lock.

package core

import (
	"fmt"

	"github.com/google/uuid"
)

// arena stores values of type T addressed by Handle[K].
// All arenas of one Graph share the same owner identity.
type arena[K kind, T any] struct {
	owner uuid.UUID
	slots []T
}

func newArena[K kind, T any](owner uuid.UUID, capacity int) arena[K, T] {
	return arena[K, T]{owner: owner, slots: make([]T, 0, capacity)}
}

// alloc appends v and returns its handle. Complexity: O(1) amortized.
func (a *arena[K, T]) alloc(v T) Handle[K] {
	a.slots = append(a.slots, v)

	return Handle[K]{owner: a.owner, index: uint32(len(a.slots))}
}

// contains reports whether h was issued by this arena.
func (a *arena[K, T]) contains(h Handle[K]) bool {
	return h.index != 0 && h.owner == a.owner && int(h.index) <= len(a.slots)
}

// get returns a copy of the value at h.
func (a *arena[K, T]) get(h Handle[K]) (T, bool) {
	if !a.contains(h) {
		var zero T
		return zero, false
	}

	return a.slots[h.index-1], true
}

// set overwrites the value at h.
func (a *arena[K, T]) set(h Handle[K], v T) bool {
	if !a.contains(h) {
		return false
	}
	a.slots[h.index-1] = v

	return true
}

// update applies fn to a copy of the value at h and stores the result back.
func (a *arena[K, T]) update(h Handle[K], fn func(*T)) bool {
	v, ok := a.get(h)
	if !ok {
		return false
	}
	fn(&v)
	a.slots[h.index-1] = v

	return true
}

// at returns a pointer into the arena. The pointer must not be kept across
// an alloc. A handle this arena did not issue (nil, foreign, or from before
// a Reset) panics with ErrStaleHandle.
func (a *arena[K, T]) at(h Handle[K]) *T {
	if !a.contains(h) {
		panic(fmt.Errorf("%w: %v", ErrStaleHandle, h))
	}

	return &a.slots[h.index-1]
}

// handle returns the handle of the i-th slot (0-based).
func (a *arena[K, T]) handle(i int) Handle[K] {
	return Handle[K]{owner: a.owner, index: uint32(i + 1)}
}

func (a *arena[K, T]) len() int {
	return len(a.slots)
}

// truncate drops every slot at position >= n. Used only to undo a failed
// face insertion; handles to dropped slots become invalid.
func (a *arena[K, T]) truncate(n int) {
	if n >= len(a.slots) {
		return
	}
	var zero T
	for i := n; i < len(a.slots); i++ {
		a.slots[i] = zero
	}
	a.slots = a.slots[:n]
}
