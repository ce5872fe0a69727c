package solver

import (
	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/stable"
	"github.com/fontanf/stablesolver-sub000/stable/reduction"
)

// SolveReduced wraps algo with the optional reduce/recurse/lift
// composition every original algorithm performed inline: when
// params.Reduce is set, it reduces g, runs algo on the reduced graph,
// and lifts both the resulting solution and a bound back to g's vertex
// set. When params.Reduce is false, algo runs directly on g and the
// bound is simply g's total weight. Restores the original
// solve_reduced_instance helper (every *_reduced algorithm in
// original_source/stablesolver/stable/algorithms/*) as a reusable
// wrapper instead of one copy per algorithm.
func SolveReduced(g *graph.Graph, params reduction.Parameters, algo func(*graph.Graph) *stable.Solution) (*stable.Solution, int64) {
	if !params.Reduce {
		return algo(g), g.TotalWeight()
	}

	red := reduction.New(g, params)
	reduced := red.Reduced()
	sol := algo(reduced)
	bound := red.UnreduceBound(reduced.TotalWeight())
	return red.UnreduceSolution(sol), bound
}
