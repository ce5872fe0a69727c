// Package localsearch implements the two row-weighting local search
// variants for maximum-weight independent set. Both start from a GWMIN
// greedy solution and repair infeasibility by shifting a penalized
// "shift" move (add the least-penalized out-of-solution vertex of the
// active component/whole graph) followed by a randomized swap move that
// trades a conflicting vertex for a better-penalized neighbor, bumping
// the penalty of edges that remain in conflict after the swap.
//
// v1 (grounded on local_search_row_weighting.cpp's
// local_search_row_weighting_1) strides through connected components in
// round-robin, each component getting a budget proportional to its edge
// count, and tracks feasibility per component.
//
// v2 (local_search_row_weighting_2) works over the whole graph with an
// incrementally maintained per-vertex score (the sum of penalties of its
// conflicting edges), trading the component bookkeeping for a simpler,
// fully global move selection.
//
// Both use an overflow-safe penalty-halving step once any edge penalty
// approaches the int64 range, per spec.md's "halving" requirement.
package localsearch
