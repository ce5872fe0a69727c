package clique

import (
	"sort"

	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
)

// GWMIN builds a clique by visiting vertices in decreasing order of
// w(v) / (n - degree(v)), adding v whenever it is still adjacent to every
// vertex already selected. Grounded on greedy_gwmin (clique/algorithms/greedy.cpp).
func GWMIN(g *graph.Graph) *Solution {
	n := g.NumVertices()
	sol := NewSolution(g)
	if n == 0 {
		return sol
	}

	values := make([]float64, n)
	for v := 0; v < n; v++ {
		values[v] = float64(g.Weight(v)) / float64(n-g.Degree(v))
	}
	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	sort.Slice(order, func(i, j int) bool { return values[order[i]] > values[order[j]] })

	available := make([]int, n)
	for _, v := range order {
		if available[v] < sol.NumMembers() {
			continue
		}
		sol.Add(v)
		for _, ve := range g.Neighbors(v) {
			available[ve.VertexID]++
		}
	}
	return sol
}

// Strong builds a clique by repeatedly adding, among the vertices
// currently adjacent to every selected vertex, the one whose neighbors
// (restricted to that same candidate set) carry the most weight.
// Grounded on greedy_strong (clique/algorithms/greedy.cpp).
func Strong(g *graph.Graph) *Solution {
	n := g.NumVertices()
	sol := NewSolution(g)
	if n == 0 {
		return sol
	}

	candidates := container.NewDoublyIndexedMap(n, n+1)
	for v := 0; v < n; v++ {
		candidates.Set(v, 0)
	}

	for candidates.NumberOfElements(sol.NumMembers()) > 0 {
		best, bestScore := -1, int64(-1)
		for _, v := range candidates.Class(sol.NumMembers()) {
			var score int64
			for _, ve := range g.Neighbors(v) {
				if candidates.Contains(ve.VertexID) {
					score += g.Weight(ve.VertexID)
				}
			}
			if best == -1 || bestScore < score {
				best, bestScore = v, score
			}
		}
		sol.Add(best)
		for _, ve := range g.Neighbors(best) {
			w := ve.VertexID
			if candidates.Contains(w) {
				candidates.Set(w, candidates.ClassOf(w)+1)
			}
		}
	}
	return sol
}
