package graph

// Complement returns the graph on the same vertex set (same weights) with
// an edge between u and v iff g has none. Used to reduce MWC to MWIS and
// vice versa (spec.md §1: "the two problems are duals under graph
// complementation").
//
// Complexity: O(n^2).
func (g *Graph) Complement() *Graph {
	n := g.NumVertices()
	weights := make([]int64, n)
	for v := 0; v < n; v++ {
		weights[v] = g.Weight(v)
	}

	adjacent := make([]map[int]bool, n)
	for v := 0; v < n; v++ {
		adjacent[v] = make(map[int]bool, g.Degree(v))
		for _, ve := range g.Neighbors(v) {
			adjacent[v][ve.VertexID] = true
		}
	}

	var edges []Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !adjacent[u][v] {
				edges = append(edges, Edge{V1: u, V2: v})
			}
		}
	}

	complement, err := New(weights, edges)
	if err != nil {
		// New only rejects malformed input; a complement built from a
		// valid Graph's own vertex range can never trigger that.
		panic(err)
	}
	return complement
}
