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

func TestRun_ReturnsFeasibleSolution(t *testing.T) {
	g := cycle5(t)
	rng := rand.New(rand.NewSource(7))
	sol := localsearch.Run(context.Background(), g, rng, localsearch.DefaultBestFirstParameters())
	assert.True(t, sol.Feasible())
	assert.Greater(t, sol.Weight(), int64(0))
}

func TestRun_EmptyGraph(t *testing.T) {
	g, err := graph.New(nil, nil)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(8))
	sol := localsearch.Run(context.Background(), g, rng, localsearch.DefaultBestFirstParameters())
	assert.Equal(t, 0, sol.NumMembers())
}

func TestRun_ContextCancellationStopsEarly(t *testing.T) {
	g := cycle5(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rng := rand.New(rand.NewSource(9))
	sol := localsearch.Run(ctx, g, rng, localsearch.BestFirstParameters{MaxIterations: -1, Swap21: true})
	assert.True(t, sol.Feasible())
}
