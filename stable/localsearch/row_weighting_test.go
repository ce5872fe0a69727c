package localsearch_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/stable/localsearch"
)

func cycle5(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]int64{3, 5, 2, 6, 4},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 2, V2: 3}, {V1: 3, V2: 4}, {V1: 4, V2: 0}},
	)
	require.NoError(t, err)
	return g
}

func TestRowWeighting1_ReturnsFeasibleSolution(t *testing.T) {
	g := cycle5(t)
	rng := rand.New(rand.NewSource(1))
	sol := localsearch.RowWeighting1(context.Background(), g, rng, localsearch.Parameters{MaxIterations: 200})
	assert.True(t, sol.Feasible())
	assert.Greater(t, sol.Weight(), int64(0))
}

func TestRowWeighting2_ReturnsFeasibleSolution(t *testing.T) {
	g := cycle5(t)
	rng := rand.New(rand.NewSource(2))
	sol := localsearch.RowWeighting2(context.Background(), g, rng, localsearch.Parameters{MaxIterations: 200})
	assert.True(t, sol.Feasible())
	assert.Greater(t, sol.Weight(), int64(0))
}

func TestRowWeighting_EmptyGraph(t *testing.T) {
	g, err := graph.New(nil, nil)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))
	sol1 := localsearch.RowWeighting1(context.Background(), g, rng, localsearch.Parameters{MaxIterations: 10})
	sol2 := localsearch.RowWeighting2(context.Background(), g, rng, localsearch.Parameters{MaxIterations: 10})
	assert.Equal(t, 0, sol1.NumMembers())
	assert.Equal(t, 0, sol2.NumMembers())
}

func TestRowWeighting_ContextCancellationStopsEarly(t *testing.T) {
	g := cycle5(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rng := rand.New(rand.NewSource(4))
	sol := localsearch.RowWeighting1(ctx, g, rng, localsearch.Parameters{MaxIterations: -1})
	assert.True(t, sol.Feasible())
}
