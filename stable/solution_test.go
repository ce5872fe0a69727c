package stable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/stable"
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

func TestSolution_AddTracksWeightAndConflicts(t *testing.T) {
	g := triangle(t)
	s := stable.NewSolution(g)

	s.Add(0)
	assert.Equal(t, int64(3), s.Weight())
	assert.True(t, s.Feasible())

	s.Add(1)
	assert.Equal(t, int64(8), s.Weight())
	assert.False(t, s.Feasible())
	assert.Equal(t, 1, s.NumConflicts())
}

func TestSolution_RemoveRestoresFeasibility(t *testing.T) {
	g := triangle(t)
	s := stable.NewSolution(g)
	s.Add(0)
	s.Add(1)
	s.Remove(1)
	assert.True(t, s.Feasible())
	assert.Equal(t, int64(3), s.Weight())
	assert.False(t, s.Contains(1))
}

func TestSolution_ComponentFeasible(t *testing.T) {
	g, err := graph.New(
		[]int64{1, 1, 1, 1},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 2, V2: 3}},
	)
	require.NoError(t, err)
	s := stable.NewSolution(g)
	s.Add(0)
	s.Add(1)
	assert.False(t, s.ComponentFeasible(g.Component(0)))
	assert.True(t, s.ComponentFeasible(g.Component(2)))
}

func TestSolution_ClearAndClone(t *testing.T) {
	g := triangle(t)
	s := stable.NewSolution(g)
	s.Add(0)
	s.Add(1)

	clone := s.Clone()
	s.Remove(0)
	assert.True(t, clone.Contains(0))
	assert.Equal(t, int64(8), clone.Weight())

	s.Clear()
	assert.Equal(t, 0, s.NumMembers())
	assert.Equal(t, int64(0), s.Weight())
}

func TestSolution_AddPanicsOnDuplicate(t *testing.T) {
	g := triangle(t)
	s := stable.NewSolution(g)
	s.Add(0)
	assert.Panics(t, func() { s.Add(0) })
}

func TestSolution_RemovePanicsOnMissing(t *testing.T) {
	g := triangle(t)
	s := stable.NewSolution(g)
	assert.Panics(t, func() { s.Remove(0) })
}
