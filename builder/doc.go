// Package builder implements InstanceBuilder, the incremental API that
// hands the solver core a finished graph.Graph (spec.md §6, "Graph
// builder"), plus readers for the five external instance formats
// (DIMACS'92, DIMACS'10, MatrixMarket, Chaco, SNAP). Parsing itself is an
// external collaborator per spec.md §1 ("a builder hands the core a
// finished graph"); InstanceBuilder's incremental methods are the contract
// the core actually depends on, following the teacher builder package's
// functional-options-plus-incremental-methods shape.
package builder
