package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/clique"
	"github.com/fontanf/stablesolver-sub000/graph"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]int64{3, 5, 7},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 0, V2: 2}},
	)
	require.NoError(t, err)
	return g
}

func path3(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]int64{3, 5, 7},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}},
	)
	require.NoError(t, err)
	return g
}

func TestSolution_AddOnCompleteGraphStaysFeasible(t *testing.T) {
	g := triangle(t)
	s := clique.NewSolution(g)

	s.Add(0)
	assert.True(t, s.Feasible())
	s.Add(1)
	assert.True(t, s.Feasible())
	s.Add(2)
	assert.True(t, s.Feasible())
	assert.Equal(t, int64(15), s.Weight())
	assert.Equal(t, 0, s.Penalty())
}

func TestSolution_AddNonAdjacentPairRaisesPenalty(t *testing.T) {
	g := path3(t)
	s := clique.NewSolution(g)

	s.Add(0)
	s.Add(1)
	assert.True(t, s.Feasible())

	s.Add(2)
	assert.False(t, s.Feasible())
	assert.Equal(t, 1, s.Penalty())
	assert.Equal(t, int64(15), s.Weight())
}

func TestSolution_RemoveRestoresFeasibility(t *testing.T) {
	g := path3(t)
	s := clique.NewSolution(g)
	s.Add(0)
	s.Add(1)
	s.Add(2)
	require.False(t, s.Feasible())

	s.Remove(2)
	assert.True(t, s.Feasible())
	assert.Equal(t, int64(8), s.Weight())
	assert.False(t, s.Contains(2))
}

func TestSolution_ClearAndClone(t *testing.T) {
	g := triangle(t)
	s := clique.NewSolution(g)
	s.Add(0)
	s.Add(1)

	clone := s.Clone()
	s.Remove(0)
	assert.True(t, clone.Contains(0))
	assert.Equal(t, int64(8), clone.Weight())

	s.Clear()
	assert.Equal(t, 0, s.NumMembers())
	assert.Equal(t, int64(0), s.Weight())
	assert.Equal(t, 0, s.Penalty())
}

func TestSolution_AddPanicsOnDuplicate(t *testing.T) {
	g := triangle(t)
	s := clique.NewSolution(g)
	s.Add(0)
	assert.Panics(t, func() { s.Add(0) })
}

func TestSolution_RemovePanicsOnMissing(t *testing.T) {
	g := triangle(t)
	s := clique.NewSolution(g)
	assert.Panics(t, func() { s.Remove(0) })
}
