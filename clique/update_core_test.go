package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/clique"
	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
)

// star builds K_{1,n}: a centre vertex adjacent to n leaves, centre first.
func star(t *testing.T, centreWeight, leafWeight int64, n int) *graph.Graph {
	t.Helper()
	weights := make([]int64, n+1)
	weights[0] = centreWeight
	for i := 1; i <= n; i++ {
		weights[i] = leafWeight
	}
	edges := make([]graph.Edge, n)
	for i := 1; i <= n; i++ {
		edges[i-1] = graph.Edge{V1: 0, V2: i}
	}
	g, err := graph.New(weights, edges)
	require.NoError(t, err)
	return g
}

func TestUpdateCore_CascadeRemovesCentreAfterLeaves(t *testing.T) {
	g := star(t, 100, 2, 10)
	relevant := container.NewIndexedSet(g.NumVertices())
	relevant.Fill()

	// best(leaf) = 2+100 = 102 <= 105, so every leaf cascades away first;
	// each decrement of 2 drops the centre's best (100+10*2=120) until it
	// crosses 105 after 8 leaves are removed, freezing the centre's best
	// at 120-8*2=104 at the moment it is itself removed.
	bound := clique.UpdateCore(g, relevant, 105)

	assert.Equal(t, 0, relevant.Size())
	assert.Equal(t, int64(104), bound)
}

func TestUpdateCore_SurvivorsKeepTheirBound(t *testing.T) {
	// With incumbent 1 no best(v) is <= 1, so nothing is removed and the
	// bound is the heavy centre's 100 plus its leaves' 3.
	g := star(t, 100, 1, 3)
	relevant := container.NewIndexedSet(g.NumVertices())
	relevant.Fill()

	bound := clique.UpdateCore(g, relevant, 1)

	assert.True(t, relevant.Contains(0))
	assert.Equal(t, int64(103), bound)
}
