package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/graph"
)

func cycle4() *graph.Graph {
	g, err := graph.New(
		[]int64{1, 1, 1, 1},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 2, V2: 3}, {V1: 3, V2: 0}},
	)
	if err != nil {
		panic(err)
	}
	return g
}

func TestNew_SymmetricAdjacency(t *testing.T) {
	g := cycle4()
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 4, g.NumEdges())
	for _, e := range []graph.Edge{g.Edge(0), g.Edge(1), g.Edge(2), g.Edge(3)} {
		found1, found2 := false, false
		for _, ve := range g.Neighbors(e.V1) {
			if ve.VertexID == e.V2 {
				found1 = true
			}
		}
		for _, ve := range g.Neighbors(e.V2) {
			if ve.VertexID == e.V1 {
				found2 = true
			}
		}
		assert.True(t, found1)
		assert.True(t, found2)
	}
}

func TestNew_ComponentsAndHighestDegree(t *testing.T) {
	g := cycle4()
	assert.Equal(t, 1, g.NumComponents())
	assert.Equal(t, 2, g.HighestDegree())
	assert.Equal(t, int64(4), g.TotalWeight())
}

func TestNew_TwoComponents(t *testing.T) {
	g, err := graph.New(
		[]int64{1, 1, 1, 1},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 2, V2: 3}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumComponents())
	assert.Equal(t, g.Component(0), g.Component(1))
	assert.NotEqual(t, g.Component(0), g.Component(2))
}

func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := graph.New([]int64{1}, []graph.Edge{{V1: 0, V2: 0}})
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestNew_RejectsNegativeWeight(t *testing.T) {
	_, err := graph.New([]int64{-1}, nil)
	assert.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestNew_RejectsOutOfRangeEndpoint(t *testing.T) {
	_, err := graph.New([]int64{1, 1}, []graph.Edge{{V1: 0, V2: 5}})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestComplement_Involution(t *testing.T) {
	g := cycle4()
	cc := g.Complement().Complement()
	require.Equal(t, g.NumVertices(), cc.NumVertices())
	require.Equal(t, g.NumEdges(), cc.NumEdges())
	for v := 0; v < g.NumVertices(); v++ {
		want := neighborSet(g, v)
		got := neighborSet(cc, v)
		assert.Equal(t, want, got, "vertex %d", v)
	}
}

func TestComplement_K3IsEmpty(t *testing.T) {
	g, err := graph.New(
		[]int64{1, 1, 1},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 0, V2: 2}},
	)
	require.NoError(t, err)
	comp := g.Complement()
	assert.Equal(t, 0, comp.NumEdges())
}

func neighborSet(g *graph.Graph, v int) map[int]bool {
	s := make(map[int]bool)
	for _, ve := range g.Neighbors(v) {
		s[ve.VertexID] = true
	}
	return s
}
