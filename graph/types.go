package graph

import "errors"

// Sentinel errors for graph construction. Callers (the builder package)
// surface these as input errors to the CLI; the core never recovers from
// them internally.
var (
	// ErrVertexOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrNegativeWeight indicates a vertex weight below zero.
	ErrNegativeWeight = errors.New("graph: negative vertex weight")

	// ErrSelfLoop indicates an edge whose two endpoints are equal.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates a repeated edge under DuplicateFail.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")
)

// DuplicatePolicy controls how AddEdge behaves when an edge between the
// same two endpoints has already been added.
type DuplicatePolicy int

const (
	// DuplicateAllow keeps every edge, including parallel ones.
	DuplicateAllow DuplicatePolicy = iota
	// DuplicateIgnore silently drops a repeated edge.
	DuplicateIgnore
	// DuplicateFail returns ErrDuplicateEdge on a repeated edge.
	DuplicateFail
)

// VertexEdge is one endpoint's view of an incident edge: which edge, and
// which vertex lies on its other side.
type VertexEdge struct {
	EdgeID   int
	VertexID int
}

// Vertex holds the per-vertex state of a built Graph: its weight, degree,
// connected-component id, and the list of incident VertexEdge records.
type Vertex struct {
	Weight    int64
	Component int
	Edges     []VertexEdge
}

// Degree returns the number of edges incident to this vertex.
func (v Vertex) Degree() int { return len(v.Edges) }

// Edge is one undirected edge between V1 and V2 (V1 != V2), plus the id of
// the connected component it lies in.
type Edge struct {
	V1, V2    int
	Component int
}

// Other returns the endpoint of e that is not v. Panics if v is not an
// endpoint of e: a programmer error, not a recoverable condition.
func (e Edge) Other(v int) int {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	default:
		panic("graph: vertex is not an endpoint of edge")
	}
}

// Graph is the immutable, vertex-weighted undirected graph the solver core
// operates on. It is only ever produced by builder.InstanceBuilder.Build or
// by a reduction/complement transform; nothing in this package mutates a
// Graph after construction.
type Graph struct {
	vertices      []Vertex
	edges         []Edge
	components    [][]int // components[c] = sorted vertex ids in component c
	highestDegree int
	totalWeight   int64
}

// NumVertices returns n.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns m.
func (g *Graph) NumEdges() int { return len(g.edges) }

// NumComponents returns the number of connected components.
func (g *Graph) NumComponents() int { return len(g.components) }

// Vertex returns the Vertex record for id. Panics on an out-of-range id.
func (g *Graph) Vertex(id int) Vertex { return g.vertices[id] }

// Edge returns the Edge record for id. Panics on an out-of-range id.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// Weight returns w(v).
func (g *Graph) Weight(v int) int64 { return g.vertices[v].Weight }

// Degree returns deg(v).
func (g *Graph) Degree(v int) int { return len(g.vertices[v].Edges) }

// Component returns c(v).
func (g *Graph) Component(v int) int { return g.vertices[v].Component }

// Neighbors returns v's incident VertexEdge records.
func (g *Graph) Neighbors(v int) []VertexEdge { return g.vertices[v].Edges }

// ComponentVertices returns the sorted vertex ids in component c.
func (g *Graph) ComponentVertices(c int) []int { return g.components[c] }

// HighestDegree returns max_v deg(v), precomputed at build time.
func (g *Graph) HighestDegree() int { return g.highestDegree }

// TotalWeight returns Σ w(v), precomputed at build time.
func (g *Graph) TotalWeight() int64 { return g.totalWeight }
