package greedy

import (
	"math"
	"sort"

	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/stable"
)

// GWMIN greedily adds vertices in decreasing order of weight/(degree+1),
// skipping any vertex already ruled out by a conflict with an earlier
// pick. Complexity: O(n log n + m).
func GWMIN(g *graph.Graph) *stable.Solution {
	n := g.NumVertices()
	values := make([]float64, n)
	for v := 0; v < n; v++ {
		values[v] = float64(g.Weight(v)) / float64(g.Degree(v)+1)
	}
	order := sortedByValueDesc(n, values)

	sol := stable.NewSolution(g)
	available := make([]bool, n)
	for i := range available {
		available[i] = true
	}
	for _, v := range order {
		if !available[v] {
			continue
		}
		sol.Add(v)
		for _, ve := range g.Neighbors(v) {
			available[ve.VertexID] = false
		}
	}
	return sol
}

// GWMIN2 greedily adds vertices in decreasing order of
// weight/Σ(neighbor weights), treating a vertex with zero neighbor
// weight as having infinite priority. Complexity: O(n log n + m).
func GWMIN2(g *graph.Graph) *stable.Solution {
	n := g.NumVertices()
	values := make([]float64, n)
	for v := 0; v < n; v++ {
		var neighborWeight int64
		for _, ve := range g.Neighbors(v) {
			neighborWeight += g.Weight(ve.VertexID)
		}
		if neighborWeight == 0 {
			values[v] = math.Inf(1)
		} else {
			values[v] = float64(g.Weight(v)) / float64(neighborWeight)
		}
	}
	order := sortedByValueDesc(n, values)

	sol := stable.NewSolution(g)
	available := make([]bool, n)
	for i := range available {
		available[i] = true
	}
	for _, v := range order {
		if !available[v] {
			continue
		}
		sol.Add(v)
		for _, ve := range g.Neighbors(v) {
			available[ve.VertexID] = false
		}
	}
	return sol
}

// GWMAX repeatedly removes, from the full vertex set, a vertex v
// minimizing weight(v)/residual_degree(v)/(residual_degree(v)+1) among
// the vertices not yet removed, until every remaining vertex is
// isolated in the residual graph; the remaining vertices form the
// solution. Complexity: O(n*(n+m)) in this reference implementation (the
// original uses a lazy-updated binary heap; direct rescans keep the Go
// port simple without changing the result).
func GWMAX(g *graph.Graph) *stable.Solution {
	n := g.NumVertices()
	removed := make([]bool, n)

	residualDegree := func(v int) int {
		d := 0
		for _, ve := range g.Neighbors(v) {
			if !removed[ve.VertexID] {
				d++
			}
		}
		return d
	}

	for {
		best, bestVal := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if removed[v] {
				continue
			}
			d := residualDegree(v)
			var val float64
			if d == 0 {
				val = math.Inf(1)
			} else {
				val = float64(g.Weight(v)) / float64(d) / float64(d+1)
			}
			if val < bestVal {
				best, bestVal = v, val
			}
		}
		if best == -1 || math.IsInf(bestVal, 1) {
			break
		}
		removed[best] = true
	}

	sol := stable.NewSolution(g)
	for v := 0; v < n; v++ {
		if !removed[v] {
			sol.Add(v)
		}
	}
	return sol
}

// Strong re-evaluates, at every step, each remaining candidate's score
// (minus the total weight of its still-candidate neighbors) and adds
// the best-scoring one, removing it and its neighbors from further
// consideration. The most expensive and typically the best of the four
// constructors. Complexity: O(n * m) worst case.
func Strong(g *graph.Graph) *stable.Solution {
	n := g.NumVertices()
	candidates := container.NewIndexedSet(n)
	candidates.Fill()

	sol := stable.NewSolution(g)
	for candidates.Size() > 0 {
		best, bestScore := -1, int64(0)
		for _, v := range candidates.In() {
			var score int64
			for _, ve := range g.Neighbors(v) {
				if candidates.Contains(ve.VertexID) {
					score -= g.Weight(ve.VertexID)
				}
			}
			if best == -1 || bestScore < score {
				best, bestScore = v, score
			}
		}
		sol.Add(best)
		candidates.Remove(best)
		for _, ve := range g.Neighbors(best) {
			if candidates.Contains(ve.VertexID) {
				candidates.Remove(ve.VertexID)
			}
		}
	}
	return sol
}

func sortedByValueDesc(n int, values []float64) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] > values[order[j]]
	})
	return order
}
