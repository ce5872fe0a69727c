package clique

import (
	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
)

// UpdateCore prunes relevant, a live working set of vertices still worth
// considering, against an incumbent weight: for each vertex v it computes
// best(v) = w(v) plus the weight of every neighbor of v that is also in
// relevant, an upper bound on the best clique weight reachable through v
// given the vertices still available. Any vertex whose best(v) cannot
// beat weight is removed, and the removal cascades since every neighbor
// loses v's contribution to its own best(v). The maximum best(v) over
// every vertex examined, including those later removed, is returned as a
// valid upper bound on the optimum. Grounded on
// Instance::update_core (clique/instance.cpp).
func UpdateCore(g *graph.Graph, relevant *container.IndexedSet, weight int64) int64 {
	best := make([]int64, g.NumVertices())
	var queue []int
	for _, v := range relevant.In() {
		best[v] = g.Weight(v)
		for _, ve := range g.Neighbors(v) {
			if relevant.Contains(ve.VertexID) {
				best[v] += g.Weight(ve.VertexID)
			}
		}
		if best[v] <= weight {
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		relevant.Remove(v)
		for _, ve := range g.Neighbors(v) {
			w := ve.VertexID
			if best[w] <= weight {
				continue
			}
			best[w] -= g.Weight(v)
			if best[w] <= weight {
				queue = append(queue, w)
			}
		}
	}

	// The bound is the maximum best(v) over every vertex that ever held one,
	// not just the survivors: a vertex removed by the cascade still
	// witnesses a valid upper bound as of the moment it was evicted, and
	// the vertex carrying the true maximum can itself be the one the
	// cascade removes (e.g. a star's centre once every leaf falls below
	// weight). Matching Instance::update_core (clique/instance.cpp), which
	// takes the maximum over the full best_values vector.
	var bound int64
	for v := 0; v < g.NumVertices(); v++ {
		if best[v] > bound {
			bound = best[v]
		}
	}
	return bound
}
