package localsearch_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/clique/localsearch"
	"github.com/fontanf/stablesolver-sub000/graph"
)

func diamond(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]int64{1, 5, 1, 6},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 2, V2: 3}, {V1: 3, V2: 0}, {V1: 1, V2: 3}},
	)
	require.NoError(t, err)
	return g
}

func TestRun_FindsMaxWeightCliqueOnDiamond(t *testing.T) {
	g := diamond(t)
	rng := rand.New(rand.NewSource(1))
	sol := localsearch.Run(context.Background(), g, rng, localsearch.DefaultParameters())
	assert.True(t, sol.Feasible())
	assert.Equal(t, int64(12), sol.Weight())
}

func TestRun_EmptyGraph(t *testing.T) {
	g, err := graph.New(nil, nil)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	sol := localsearch.Run(context.Background(), g, rng, localsearch.DefaultParameters())
	assert.Equal(t, 0, sol.NumMembers())
}

func TestRun_ContextCancellationStopsEarly(t *testing.T) {
	g := diamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rng := rand.New(rand.NewSource(3))
	sol := localsearch.Run(ctx, g, rng, localsearch.Parameters{MaxIterations: -1, Swap21: true})
	assert.True(t, sol.Feasible())
}
