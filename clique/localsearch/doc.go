// Package localsearch implements clique-local-search: an add neighborhood
// plus an optional (2,1)-swap neighborhood, hill-climbing from a greedy
// start while UpdateCore periodically shrinks the candidate set once a
// new incumbent is found. Grounded on the best-first LocalScheme in
// clique/algorithms/local_search.cpp; the generic A*-over-compact-states
// engine it runs under is replaced here by a single direct hill-climb
// that stops at the first non-improving iteration; no perturbation or
// restart is performed.
package localsearch
