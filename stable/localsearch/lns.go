package localsearch

import (
	"context"
	"math"

	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/penalty"
	"github.com/fontanf/stablesolver-sub000/stable"
	"github.com/fontanf/stablesolver-sub000/stable/greedy"
)

// LargeNeighborhoodSearch alternates a destroy phase — greedily adding
// back sqrt(n - |solution|) out-of-solution vertices, cheapest
// (score/weight) first — with a repair phase that removes the
// costliest conflicting vertex until feasible again, promoting any
// neighbor whose score has dropped to zero back into the solution
// (redundant-cover promotion). Conflicting edges get their penalty
// bumped once per iteration. Grounded on
// large_neighborhood_search.cpp; its two IndexedBinaryHeaps are
// replaced here by linear best-of scans over the live candidate sets,
// a reference-implementation simplification of the same move order.
func LargeNeighborhoodSearch(ctx context.Context, g *graph.Graph, params Parameters) *stable.Solution {
	sol := greedy.GWMIN(g)
	if g.NumVertices() == 0 {
		return sol
	}
	best := sol.Clone()

	penalties := penalty.New(g.NumEdges())
	score := make([]int64, g.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		if sol.Contains(v) {
			continue
		}
		for _, ve := range g.Neighbors(v) {
			if sol.Contains(ve.VertexID) {
				score[v] += penalties.Get(ve.EdgeID)
			}
		}
	}

	var iter int64
	for ; params.MaxIterations <= 0 || iter < params.MaxIterations; iter++ {
		if ctxDone(ctx) {
			break
		}

		numToAdd := int(math.Sqrt(float64(g.NumVertices() - sol.NumMembers())))
		for s := 0; s < numToAdd; s++ {
			v := bestOutVertex(g, sol, score)
			if v == -1 {
				break
			}
			sol.Add(v)
			for _, ve := range g.Neighbors(v) {
				score[ve.VertexID] += penalties.Get(ve.EdgeID)
			}
		}

		for _, e := range sol.ConflictEdges() {
			penalties.Increment(e)
			edge := g.Edge(e)
			score[edge.V1]++
			score[edge.V2]++
		}

		for !sol.Feasible() {
			v := worstInVertex(g, sol, score)
			if v == -1 {
				break
			}
			sol.Remove(v)
			for _, ve := range g.Neighbors(v) {
				score[ve.VertexID] -= penalties.Get(ve.EdgeID)
			}
			for _, ve := range g.Neighbors(v) {
				w := ve.VertexID
				if !sol.Contains(w) && score[w] == 0 {
					sol.Add(w)
					for _, ve2 := range g.Neighbors(w) {
						score[ve2.VertexID] += penalties.Get(ve2.EdgeID)
					}
				}
			}
		}

		if best.Weight() < sol.Weight() && sol.Feasible() {
			best = sol.Clone()
		}
	}

	return best
}

// bestOutVertex returns the out-of-solution vertex minimizing
// score/weight (cheapest to bring back in), or -1 if none remain.
func bestOutVertex(g *graph.Graph, sol *stable.Solution, score []int64) int {
	best, bestVal := -1, math.Inf(1)
	for v := 0; v < g.NumVertices(); v++ {
		if sol.Contains(v) {
			continue
		}
		val := float64(score[v]) / float64(g.Weight(v))
		if val < bestVal {
			best, bestVal = v, val
		}
	}
	return best
}

// worstInVertex returns the in-solution vertex maximizing score/weight
// (costliest conflict contributor relative to its own weight).
func worstInVertex(g *graph.Graph, sol *stable.Solution, score []int64) int {
	best, bestVal := -1, math.Inf(-1)
	for _, v := range sol.Members() {
		val := float64(score[v]) / float64(g.Weight(v))
		if val > bestVal {
			best, bestVal = v, val
		}
	}
	return best
}
