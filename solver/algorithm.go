package solver

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/fontanf/stablesolver-sub000/clique"
	cliquelocalsearch "github.com/fontanf/stablesolver-sub000/clique/localsearch"
	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/stable"
	"github.com/fontanf/stablesolver-sub000/stable/greedy"
	stablelocalsearch "github.com/fontanf/stablesolver-sub000/stable/localsearch"
	"github.com/fontanf/stablesolver-sub000/stable/reduction"
)

// ErrUnknownAlgorithm reports an algorithm keyword the selector does not
// recognize, or recognizes but cannot run for the given problem (e.g. the
// clique problem has no row-weighting local search in the original
// library). Matches §6's "unknown keyword -> error" contract.
var ErrUnknownAlgorithm = fmt.Errorf("solver: unknown algorithm")

// RunStable runs the named algorithm keyword against the maximum-weight
// independent set problem, composed with reduction per
// reduction.DefaultParameters, and returns the solution plus a valid
// upper bound.
func RunStable(ctx context.Context, g *graph.Graph, params Parameters) (*stable.Solution, int64, error) {
	rng := rand.New(rand.NewSource(params.Seed))
	reduceParams := reduction.DefaultParameters()

	var algo func(*graph.Graph) *stable.Solution
	switch params.Algorithm {
	case "greedy-gwmin":
		algo = greedy.GWMIN
	case "greedy-gwmax":
		algo = greedy.GWMAX
	case "greedy-gwmin2":
		algo = greedy.GWMIN2
	case "greedy-strong":
		algo = greedy.Strong
	case "local-search":
		algo = func(rg *graph.Graph) *stable.Solution {
			return stablelocalsearch.Run(ctx, rg, rng, stableBestFirstParameters(params))
		}
	case "local-search-row-weighting-1":
		algo = func(rg *graph.Graph) *stable.Solution {
			return stablelocalsearch.RowWeighting1(ctx, rg, rng, stableRowWeightingParameters(params))
		}
	case "local-search-row-weighting-2":
		algo = func(rg *graph.Graph) *stable.Solution {
			return stablelocalsearch.RowWeighting2(ctx, rg, rng, stableRowWeightingParameters(params))
		}
	case "large-neighborhood-search":
		algo = func(rg *graph.Graph) *stable.Solution {
			return stablelocalsearch.LargeNeighborhoodSearch(ctx, rg, stableRowWeightingParameters(params))
		}
	default:
		if strings.HasPrefix(params.Algorithm, "milp-") {
			return nil, 0, fmt.Errorf("%w: %q (MILP bindings are out of scope)", ErrUnknownAlgorithm, params.Algorithm)
		}
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, params.Algorithm)
	}

	sol, bound := SolveReduced(g, reduceParams, algo)
	return sol, bound, nil
}

// RunClique runs the named algorithm keyword against the maximum-weight
// clique problem and returns the solution plus a valid upper bound
// computed by UpdateCore over the full candidate set.
func RunClique(ctx context.Context, g *graph.Graph, params Parameters) (*clique.Solution, int64, error) {
	rng := rand.New(rand.NewSource(params.Seed))

	var sol *clique.Solution
	switch params.Algorithm {
	case "greedy-gwmin":
		sol = clique.GWMIN(g)
	case "greedy-strong":
		sol = clique.Strong(g)
	case "local-search":
		sol = cliquelocalsearch.Run(ctx, g, rng, cliqueLocalSearchParameters(params))
	case "greedy-gwmax", "greedy-gwmin2", "local-search-row-weighting-1",
		"local-search-row-weighting-2", "large-neighborhood-search":
		return nil, 0, fmt.Errorf("%w: %q (not implemented for the clique problem)", ErrUnknownAlgorithm, params.Algorithm)
	default:
		if strings.HasPrefix(params.Algorithm, "milp-") {
			return nil, 0, fmt.Errorf("%w: %q (MILP bindings are out of scope)", ErrUnknownAlgorithm, params.Algorithm)
		}
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, params.Algorithm)
	}

	relevant := allVertices(g)
	bound := clique.UpdateCore(g, relevant, sol.Weight())
	return sol, bound, nil
}

func stableRowWeightingParameters(params Parameters) stablelocalsearch.Parameters {
	return stablelocalsearch.Parameters{MaxIterations: params.MaximumNumberOfIterations}
}

func stableBestFirstParameters(params Parameters) stablelocalsearch.BestFirstParameters {
	return stablelocalsearch.BestFirstParameters{MaxIterations: params.MaximumNumberOfIterations, Swap21: true}
}

func cliqueLocalSearchParameters(params Parameters) cliquelocalsearch.Parameters {
	return cliquelocalsearch.Parameters{MaxIterations: params.MaximumNumberOfIterations, Swap21: true}
}

func allVertices(g *graph.Graph) *container.IndexedSet {
	s := container.NewIndexedSet(g.NumVertices())
	s.Fill()
	return s
}
