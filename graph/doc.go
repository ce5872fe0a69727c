// Package graph implements the immutable, vertex-weighted undirected graph
// model the solver core operates on: vertices numbered 0..n-1, edges
// numbered 0..m-1, symmetric adjacency, and precomputed connected
// components.
//
// A Graph is built once (see the builder package's InstanceBuilder) and
// never mutated afterward: every reduction round and every Complement call
// produces a *new* Graph rather than editing one in place, matching
// spec.md §3's "Graph (immutable after build)" invariant.
package graph
