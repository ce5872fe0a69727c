// Package solver ties the graph, stable and clique packages together: a
// thread-safe Output that tracks the best solution and bound found so
// far, a Parameters struct controlling a run, an algorithm keyword
// selector, and JSON/certificate serialization of the final result.
// Grounded on the original stablesolver::Output / AlgorithmFormatter
// protocol (stablesolver/clique/solution.hpp, stablesolver/stable/solution.hpp).
package solver
