package builder

import (
	"errors"
	"fmt"

	"github.com/fontanf/stablesolver-sub000/graph"
)

// ErrNegativeWeight is returned by SetWeight for a negative weight.
var ErrNegativeWeight = errors.New("builder: negative weight")

// InstanceBuilder accumulates vertices and edges and produces an immutable
// graph.Graph via Build. It is not safe for concurrent use; callers add
// vertices and edges from a single goroutine and call Build exactly once,
// matching the teacher builder package's functional, single-owner shape.
type InstanceBuilder struct {
	weights []int64
	edges   []graph.Edge
}

// New returns an empty InstanceBuilder.
func New() *InstanceBuilder {
	return &InstanceBuilder{}
}

// AddVertices appends n vertices of weight 0.
func (b *InstanceBuilder) AddVertices(n int) {
	for i := 0; i < n; i++ {
		b.weights = append(b.weights, 0)
	}
}

// AddVertex appends one vertex with the given weight and returns its id.
func (b *InstanceBuilder) AddVertex(weight int64) int {
	id := len(b.weights)
	b.weights = append(b.weights, weight)
	return id
}

// SetWeight overwrites the weight of an existing vertex. Returns
// ErrNegativeWeight if weight < 0.
func (b *InstanceBuilder) SetWeight(vertexID int, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: vertex %d weight %d", ErrNegativeWeight, vertexID, weight)
	}
	b.weights[vertexID] = weight
	return nil
}

// SetUnweighted sets every vertex's weight to 1.
func (b *InstanceBuilder) SetUnweighted() {
	for i := range b.weights {
		b.weights[i] = 1
	}
}

// NumberOfVertices returns the number of vertices added so far.
func (b *InstanceBuilder) NumberOfVertices() int { return len(b.weights) }

// AddEdge adds an edge between v1 and v2 under the given duplicate policy.
// Rejects self-loops unconditionally (graph.ErrSelfLoop). Under
// DuplicateIgnore a repeated edge is silently dropped; under
// DuplicateFail it returns graph.ErrDuplicateEdge. The duplicate scan is
// linear in the number of edges added so far.
func (b *InstanceBuilder) AddEdge(v1, v2 int, policy graph.DuplicatePolicy) error {
	if v1 == v2 {
		return graph.ErrSelfLoop
	}
	if v1 < 0 || v1 >= len(b.weights) || v2 < 0 || v2 >= len(b.weights) {
		return graph.ErrVertexOutOfRange
	}
	if policy != graph.DuplicateAllow {
		for _, e := range b.edges {
			if (e.V1 == v1 && e.V2 == v2) || (e.V1 == v2 && e.V2 == v1) {
				if policy == graph.DuplicateIgnore {
					return nil
				}
				return fmt.Errorf("%w: (%d,%d)", graph.ErrDuplicateEdge, v1, v2)
			}
		}
	}
	b.edges = append(b.edges, graph.Edge{V1: v1, V2: v2})
	return nil
}

// Build computes degrees, connected components, highest degree and total
// weight, and returns the finished Graph. The builder must not be reused
// afterward.
func (b *InstanceBuilder) Build() (*graph.Graph, error) {
	return graph.New(b.weights, b.edges)
}
