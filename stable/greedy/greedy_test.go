package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/stable/greedy"
)

func star(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]int64{10, 1, 1, 1},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 0, V2: 2}, {V1: 0, V2: 3}},
	)
	require.NoError(t, err)
	return g
}

func TestGWMIN_FeasibleAndNonEmpty(t *testing.T) {
	g := star(t)
	sol := greedy.GWMIN(g)
	assert.True(t, sol.Feasible())
	assert.Greater(t, sol.NumMembers(), 0)
}

func TestGWMIN2_FeasibleAndNonEmpty(t *testing.T) {
	g := star(t)
	sol := greedy.GWMIN2(g)
	assert.True(t, sol.Feasible())
	assert.Greater(t, sol.NumMembers(), 0)
}

func TestGWMAX_FeasibleAndNonEmpty(t *testing.T) {
	g := star(t)
	sol := greedy.GWMAX(g)
	assert.True(t, sol.Feasible())
	assert.Greater(t, sol.NumMembers(), 0)
}

func TestStrong_PicksHubOnStar(t *testing.T) {
	g := star(t)
	sol := greedy.Strong(g)
	assert.True(t, sol.Feasible())
	// The hub's weight (10) dominates any pair of leaves (1 each), so the
	// strong greedy constructor must pick it first.
	assert.True(t, sol.Contains(0))
	assert.Equal(t, int64(10), sol.Weight())
}

func TestGreedyConstructors_AllFeasibleOnTriangle(t *testing.T) {
	g, err := graph.New(
		[]int64{3, 5, 7},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 0, V2: 2}},
	)
	require.NoError(t, err)
	for _, sol := range []interface{ Feasible() bool }{
		greedy.GWMIN(g), greedy.GWMIN2(g), greedy.GWMAX(g), greedy.Strong(g),
	} {
		assert.True(t, sol.Feasible())
	}
}
