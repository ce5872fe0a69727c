// Package container implements the three index-based collections the solver
// core is built on: IndexedSet, IndexedMap and DoublyIndexedMap.
//
// IndexedSet is a permutation of 0..capacity-1 (plus its inverse) split by
// a pivot into an "in" and an "out" region; IndexedMap wraps an IndexedSet
// of the indices holding a non-default value; DoublyIndexedMap keeps one
// slice per class plus per-index class and position arrays. This gives O(1) amortized add/remove/contains and O(class size) iteration
// over any single class, at the cost of O(capacity) Clear/Fill and O(size)
// ShuffleIn — exactly the complexity budget the row-weighting local
// searches and the reduction engine are built around.
//
// Every operation that receives an out-of-range index, or that double-adds
// / double-removes an element, panics: these are programmer errors, not
// recoverable conditions (see spec.md §7, "Invariant violation").
package container
