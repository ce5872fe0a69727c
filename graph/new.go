package graph

// New assembles a Graph from a finished vertex-weight list and edge list.
// It computes each vertex's VertexEdge adjacency, the connected-component
// partition, HighestDegree and TotalWeight.
//
// New does not itself enforce a duplicate-edge policy — incremental
// rejection/deduplication is the incremental builder's job (see the
// builder package), and the reduction engine intentionally reassembles
// graphs whose edge lists were already deduplicated per-row (spec.md
// §4.2). New does validate the structural invariants that must hold for
// any caller: in-range endpoints, no self-loops, non-negative weights.
//
// Complexity: O(n + m α(n)) for the union-find component pass.
func New(weights []int64, edges []Edge) (*Graph, error) {
	n := len(weights)
	for _, w := range weights {
		if w < 0 {
			return nil, ErrNegativeWeight
		}
	}
	for _, e := range edges {
		if e.V1 < 0 || e.V1 >= n || e.V2 < 0 || e.V2 >= n {
			return nil, ErrVertexOutOfRange
		}
		if e.V1 == e.V2 {
			return nil, ErrSelfLoop
		}
	}

	vertices := make([]Vertex, n)
	for v := 0; v < n; v++ {
		vertices[v].Weight = weights[v]
	}

	uf := newUnionFind(n)
	for eid, e := range edges {
		vertices[e.V1].Edges = append(vertices[e.V1].Edges, VertexEdge{EdgeID: eid, VertexID: e.V2})
		vertices[e.V2].Edges = append(vertices[e.V2].Edges, VertexEdge{EdgeID: eid, VertexID: e.V1})
		uf.union(e.V1, e.V2)
	}

	// Assign component ids: order components by the smallest vertex id
	// they contain, for determinism independent of union-find internals.
	rootToComponent := make(map[int]int)
	var components [][]int
	for v := 0; v < n; v++ {
		root := uf.find(v)
		cid, ok := rootToComponent[root]
		if !ok {
			cid = len(components)
			rootToComponent[root] = cid
			components = append(components, nil)
		}
		components[cid] = append(components[cid], v)
		vertices[v].Component = cid
	}

	finalEdges := make([]Edge, len(edges))
	highestDegree := 0
	var totalWeight int64
	for v := 0; v < n; v++ {
		if d := len(vertices[v].Edges); d > highestDegree {
			highestDegree = d
		}
		totalWeight += vertices[v].Weight
	}
	for eid, e := range edges {
		finalEdges[eid] = Edge{V1: e.V1, V2: e.V2, Component: vertices[e.V1].Component}
	}

	return &Graph{
		vertices:      vertices,
		edges:         finalEdges,
		components:    components,
		highestDegree: highestDegree,
		totalWeight:   totalWeight,
	}, nil
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}
