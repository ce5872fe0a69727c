// Package reduction implements the six exact kernelization rules applied
// to a maximum-weight independent set instance before greedy construction
// and local search: pendant-vertex, isolated-vertex (simplicial clique),
// vertex-folding, twin, domination and unconfined. Rules run in rounds
// until a fixed point (spec.md §3, "Reduction engine"). Grounded on the
// original stablesolver stable::Reduction (stable/reduction.cpp): each
// rule computes a vertex classification with an IndexedSet or
// DoublyIndexedMap, rebuilds a smaller graph, and records, per surviving
// or removed vertex, the set of original vertices to reinstate when
// lifting a reduced solution back up (UnreductionOperations).
package reduction
