package localsearch

import (
	"context"
	"math/rand"

	"github.com/fontanf/stablesolver-sub000/clique"
	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
)

// Parameters bounds a clique local search run. MaxIterations <= 0 means
// unbounded (the caller relies on ctx cancellation instead).
type Parameters struct {
	MaxIterations int64
	Swap21        bool
}

// DefaultParameters enables the (2,1)-swap neighborhood, matching the
// original LocalScheme::Parameters default.
func DefaultParameters() Parameters {
	return Parameters{MaxIterations: 0, Swap21: true}
}

func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// workingState is the internal hill-climbing representation: a candidate
// membership set plus, for every relevant vertex not yet selected, the
// additionCost it would take to bring it in (the combined weight of the
// current members it is not adjacent to, all of which get evicted on
// add). Grounded on the nested LocalScheme::Solution in
// clique/algorithms/local_search.cpp.
type workingState struct {
	g        *graph.Graph
	relevant *container.IndexedSet

	members      *container.IndexedSet
	additionCost []int64
	weight       int64

	neighborsAdd    *container.IndexedSet
	neighborsRemove *container.IndexedSet
}

func newWorkingState(g *graph.Graph, relevant *container.IndexedSet) *workingState {
	n := g.NumVertices()
	return &workingState{
		g:               g,
		relevant:        relevant,
		members:         container.NewIndexedSet(n),
		additionCost:    make([]int64, n),
		neighborsAdd:    container.NewIndexedSet(n),
		neighborsRemove: container.NewIndexedSet(n),
	}
}

func (s *workingState) contains(v int) bool { return s.members.Contains(v) }

func (s *workingState) add(v int) {
	s.neighborsAdd.Clear()
	s.neighborsAdd.Add(v)
	for _, ve := range s.g.Neighbors(v) {
		s.neighborsAdd.Add(ve.VertexID)
	}

	w := s.g.Weight(v)
	for _, v2 := range s.relevant.In() {
		if !s.neighborsAdd.Contains(v2) {
			if s.members.Contains(v2) {
				s.remove(v2)
			}
			s.additionCost[v2] += w
		}
	}

	s.members.Add(v)
	s.weight += w
}

func (s *workingState) remove(v int) {
	s.neighborsRemove.Clear()
	s.neighborsRemove.Add(v)
	for _, ve := range s.g.Neighbors(v) {
		s.neighborsRemove.Add(ve.VertexID)
	}

	w := s.g.Weight(v)
	s.members.Remove(v)
	s.weight -= w
	for _, v2 := range s.relevant.In() {
		if !s.neighborsRemove.Contains(v2) {
			s.additionCost[v2] -= w
		}
	}
}

// costAdd returns the solution weight that would result from adding v.
func (s *workingState) costAdd(v int) int64 {
	return s.weight + s.g.Weight(v) - s.additionCost[v]
}

// toSolution converts the working state into a clique.Solution.
func (s *workingState) toSolution() *clique.Solution {
	sol := clique.NewSolution(s.g)
	for _, v := range s.members.In() {
		sol.Add(v)
	}
	return sol
}

// Run hill-climbs from a greedy GWMIN start using the add neighborhood
// and, if enabled, the (2,1)-swap neighborhood, periodically tightening
// the candidate set with UpdateCore whenever a new incumbent weight is
// reached. Grounded on LocalScheme::local_search
// (clique/algorithms/local_search.cpp); the generic best-first
// A*-over-compact-states driver is replaced by this direct hill-climb
// loop with random neighborhood-order shuffling, which stops at the
// first iteration in which no neighborhood improves the solution. No
// perturbation or restart is performed.
func Run(ctx context.Context, g *graph.Graph, rng *rand.Rand, params Parameters) *clique.Solution {
	n := g.NumVertices()
	if n == 0 {
		return clique.NewSolution(g)
	}

	relevant := container.NewIndexedSet(n)
	relevant.Fill()

	greedy := clique.GWMIN(g)
	state := newWorkingState(g, relevant)
	for _, v := range greedy.Members() {
		state.add(v)
	}

	best := state.toSolution()
	bestWeight := best.Weight()

	var iter int64
	for ; params.MaxIterations <= 0 || iter < params.MaxIterations; iter++ {
		if ctxDone(ctx) {
			break
		}

		if bestWeight < state.weight {
			bestWeight = state.weight
			clique.UpdateCore(g, relevant, state.weight)
			for _, v := range append([]int(nil), state.members.In()...) {
				if !relevant.Contains(v) {
					state.remove(v)
				}
			}
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
				improved = tryAddNeighborhood(state)
			case 1:
				improved = trySwap21Neighborhood(g, state)
			}
			if improved {
				break
			}
		}
		if !improved {
			break
		}
	}

	if bestWeight < state.weight {
		clique.UpdateCore(g, relevant, state.weight)
		return state.toSolution()
	}
	return best
}

func tryAddNeighborhood(state *workingState) bool {
	bestV, bestWeight := -1, state.weight
	for _, v := range state.relevant.In() {
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

// trySwap21Neighborhood looks for a pair of out-of-solution vertices,
// adjacent to each other and both missing exactly the same single
// solution member, whose combined weight exceeds that member's weight.
func trySwap21Neighborhood(g *graph.Graph, state *workingState) bool {
	tight := container.NewIndexedMap(g.NumVertices(), -1)
	for _, out1 := range state.relevant.In() {
		if state.contains(out1) {
			continue
		}
		missing := -1
		multiple := false
		for _, member := range state.members.In() {
			adjacent := false
			for _, ve := range g.Neighbors(out1) {
				if ve.VertexID == member {
					adjacent = true
					break
				}
			}
			if !adjacent {
				if missing != -1 {
					multiple = true
					break
				}
				missing = member
			}
		}
		if !multiple && missing != -1 {
			tight.Set(out1, missing)
		}
	}

	bestIn, bestOut1, bestOut2, bestWeight := -1, -1, -1, state.weight
	for _, out1 := range tight.Keys() {
		in := tight.Get(out1)
		for _, ve := range g.Neighbors(out1) {
			out2 := ve.VertexID
			if tight.Contains(out2) && tight.Get(out2) == in {
				w := state.weight + g.Weight(out1) + g.Weight(out2) - g.Weight(in)
				if w > bestWeight {
					bestIn, bestOut1, bestOut2, bestWeight = in, out1, out2, w
				}
			}
		}
	}

	if bestIn == -1 {
		return false
	}
	state.remove(bestIn)
	state.add(bestOut1)
	state.add(bestOut2)
	return true
}
