// Package clique implements maximum-weight clique solution state: a
// mutable vertex subset tracked against an immutable graph.Graph,
// reporting weight and the count of missing internal edges ("penalty")
// per Add/Remove. Unlike stable.Solution, feasibility here means zero
// missing edges rather than zero conflicting ones, and the update cost
// is O(degree(v) + |solution|) rather than O(degree(v)), since every
// pair of solution members must be mutually adjacent. Grounded on the
// original stablesolver clique::Solution (clique/solution.hpp).
package clique
