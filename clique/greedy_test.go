package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/clique"
	"github.com/fontanf/stablesolver-sub000/graph"
)

// diamond is K4 minus one edge (0-2 missing), so the maximum cliques are
// {1, 2, 3} and {0, 1, 3}, each of weight 12.
func diamond(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]int64{1, 5, 1, 6},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 2, V2: 3}, {V1: 3, V2: 0}, {V1: 1, V2: 3}},
	)
	require.NoError(t, err)
	return g
}

func TestGWMIN_FeasibleOnDiamond(t *testing.T) {
	g := diamond(t)
	sol := clique.GWMIN(g)
	assert.True(t, sol.Feasible())
	assert.Greater(t, sol.NumMembers(), 0)
}

func TestStrong_FeasibleOnDiamond(t *testing.T) {
	g := diamond(t)
	sol := clique.Strong(g)
	assert.True(t, sol.Feasible())
	assert.Equal(t, int64(12), sol.Weight())
}

func TestGreedyConstructors_EmptyGraph(t *testing.T) {
	g, err := graph.New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, clique.GWMIN(g).NumMembers())
	assert.Equal(t, 0, clique.Strong(g).NumMembers())
}
