// Package greedy implements the four classical weighted-greedy
// constructors for maximum-weight independent set: GWMIN (sort by
// w/(deg+1)), GWMAX (iteratively drop the worst residual-degree vertex),
// GWMIN2 (sort by w/Σ neighbor weight) and a strong greedy that
// re-evaluates every candidate's residual score at each step. Grounded
// on stablesolver's stable/algorithms/greedy.cpp.
package greedy
