package localsearch

import (
	"context"
	"math/rand"

	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/stable"
)

// BestFirstParameters configures Run. MaxIterations <= 0 means unbounded
// (the caller relies on ctx cancellation instead).
type BestFirstParameters struct {
	MaxIterations int64
	Swap21        bool
}

// DefaultBestFirstParameters enables the (2,1)-swap neighborhood,
// matching the original LocalScheme::Parameters default.
func DefaultBestFirstParameters() BestFirstParameters {
	return BestFirstParameters{MaxIterations: 0, Swap21: true}
}

// bfState mirrors the LocalScheme::Solution of local_search.cpp: a
// membership flag plus a per-vertex neighborWeight accumulating the
// weight of its selected neighbors, maintained so that adding a vertex
// can evict its neighbors in O(degree).
type bfState struct {
	g              *graph.Graph
	in             []bool
	neighborWeight []int64
	weight         int64
}

func newBFState(g *graph.Graph) *bfState {
	return &bfState{
		g:              g,
		in:             make([]bool, g.NumVertices()),
		neighborWeight: make([]int64, g.NumVertices()),
	}
}

func (s *bfState) contains(v int) bool { return s.in[v] }

func (s *bfState) add(v int) {
	w := s.g.Weight(v)
	for _, ve := range s.g.Neighbors(v) {
		if s.in[ve.VertexID] {
			s.remove(ve.VertexID)
		}
		s.neighborWeight[ve.VertexID] += w
	}
	s.in[v] = true
	s.weight += w
}

func (s *bfState) remove(v int) {
	s.in[v] = false
	w := s.g.Weight(v)
	s.weight -= w
	for _, ve := range s.g.Neighbors(v) {
		s.neighborWeight[ve.VertexID] -= w
	}
}

func (s *bfState) costAdd(v int) int64 {
	return s.weight + s.g.Weight(v) - s.neighborWeight[v]
}

func (s *bfState) toSolution() *stable.Solution {
	sol := stable.NewSolution(s.g)
	for v, in := range s.in {
		if in {
			sol.Add(v)
		}
	}
	return sol
}

// Run hill-climbs from a vertex-order greedy start using the add
// neighborhood and, if enabled, the (2,1)-swap neighborhood. Grounded on
// the LocalScheme in stable/algorithms/local_search.cpp; as with the
// clique counterpart, the generic best-first A*-over-compact-states
// driver is replaced by a single direct hill-climb: the greedy start
// takes vertices in a random order, and the search stops at the first
// iteration in which no neighborhood improves the solution. No
// perturbation or restart is performed.
func Run(ctx context.Context, g *graph.Graph, rng *rand.Rand, params BestFirstParameters) *stable.Solution {
	n := g.NumVertices()
	if n == 0 {
		return stable.NewSolution(g)
	}

	order := rng.Perm(n)
	state := newBFState(g)
	for _, v := range order {
		if state.neighborWeight[v] == 0 {
			state.add(v)
		}
	}

	best := state.toSolution()

	var iter int64
	for ; params.MaxIterations <= 0 || iter < params.MaxIterations; iter++ {
		if ctxDone(ctx) {
			break
		}

		neighborhoods := []int{0}
		if params.Swap21 {
			neighborhoods = append(neighborhoods, 1)
		}
		if len(neighborhoods) == 2 && rng.Intn(2) == 1 {
			neighborhoods[0], neighborhoods[1] = neighborhoods[1], neighborhoods[0]
		}

		improved := false
		for _, neighborhood := range neighborhoods {
			switch neighborhood {
			case 0:
				improved = bfTryAdd(state, rng)
			case 1:
				improved = bfTrySwap21(g, state, rng)
			}
			if improved {
				break
			}
		}
		if !improved {
			break
		}

		if best.Weight() < state.weight {
			best = state.toSolution()
		}
	}

	if best.Weight() < state.weight {
		return state.toSolution()
	}
	return best
}

func bfTryAdd(state *bfState, rng *rand.Rand) bool {
	n := state.g.NumVertices()
	bestV, bestWeight := -1, state.weight
	for _, v := range rng.Perm(n) {
		if state.contains(v) {
			continue
		}
		w := state.costAdd(v)
		if w > bestWeight {
			bestV, bestWeight = v, w
		}
	}
	if bestV == -1 {
		return false
	}
	state.add(bestV)
	return true
}

// bfTrySwap21 looks for a solution member whose eviction frees at least
// two mutually non-adjacent neighbors, then checks whether any pair of
// those neighbors (each adjacent to nothing else in the solution) yields a
// heavier solution than the current one.
func bfTrySwap21(g *graph.Graph, state *bfState, rng *rand.Rand) bool {
	n := g.NumVertices()
	free := container.NewIndexedSet(n)
	free2 := container.NewIndexedSet(n)

	bestIn, bestOut1, bestOut2, bestWeight := -1, -1, -1, state.weight
	for _, vIn := range rng.Perm(n) {
		if !state.contains(vIn) {
			continue
		}

		free.Clear()
		for _, ve := range g.Neighbors(vIn) {
			if state.neighborWeight[ve.VertexID] == g.Weight(vIn) {
				free.Add(ve.VertexID)
			}
		}
		if free.Size() < 2 {
			continue
		}

		state.remove(vIn)
		for _, out1 := range append([]int(nil), free.In()...) {
			free2.Clear()
			for _, v := range free.In() {
				free2.Add(v)
			}
			free2.Remove(out1)
			for _, ve := range g.Neighbors(out1) {
				if free2.Contains(ve.VertexID) {
					free2.Remove(ve.VertexID)
				}
			}
			if free2.Size() == 0 {
				continue
			}

			state.add(out1)
			for _, out2 := range append([]int(nil), free2.In()...) {
				w := state.costAdd(out2)
				if w > bestWeight {
					bestIn, bestOut1, bestOut2, bestWeight = vIn, out1, out2, w
				}
			}
			state.remove(out1)
		}
		state.add(vIn)
	}

	if bestIn == -1 {
		return false
	}
	state.remove(bestIn)
	state.add(bestOut1)
	state.add(bestOut2)
	return true
}
