package localsearch

import (
	"context"
	"math/rand"

	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/penalty"
	"github.com/fontanf/stablesolver-sub000/stable"
	"github.com/fontanf/stablesolver-sub000/stable/greedy"
)

// Parameters bounds a row-weighting run. MaxIterations <= 0 means
// unbounded (the caller relies on ctx cancellation instead).
type Parameters struct {
	MaxIterations int64
}

func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// RowWeighting1 runs the component-stratified row-weighting local
// search: it strides through connected components round-robin (each
// getting a budget proportional to its edge count), greedily shifts in
// the least-penalized out-of-component-solution vertex while the
// component stays feasible, then repairs a conflict, chosen uniformly at
// random among the solution's conflicting edges, with a swap move.
func RowWeighting1(ctx context.Context, g *graph.Graph, rng *rand.Rand, params Parameters) *stable.Solution {
	sol := greedy.GWMIN(g)
	best := sol.Clone()
	if g.NumVertices() == 0 {
		return sol
	}

	numComponents := g.NumComponents()
	edgeCount := make([]int64, numComponents)
	for e := 0; e < g.NumEdges(); e++ {
		edgeCount[g.Edge(e).Component]++
	}
	iterationMax := make([]int64, numComponents)
	var cumulative int64
	for c := 0; c < numComponents; c++ {
		cumulative += edgeCount[c]
		iterationMax[c] = cumulative
	}
	multiVertexComponent := func(c int) bool { return len(g.ComponentVertices(c)) > 1 }
	hasMultiVertexComponent := false
	for c := 0; c < numComponents; c++ {
		if multiVertexComponent(c) {
			hasMultiVertexComponent = true
			break
		}
	}
	if !hasMultiVertexComponent {
		return sol
	}

	penalties := penalty.New(g.NumEdges())
	timestamp := make([]int64, g.NumVertices())
	for i := range timestamp {
		timestamp[i] = -1
	}
	lastAdded, lastRemoved := -1, -1

	componentID := 0
	for componentID < numComponents && !multiVertexComponent(componentID) {
		componentID++
	}

	var iter int64
	for ; params.MaxIterations <= 0 || iter < params.MaxIterations; iter++ {
		if ctxDone(ctx) {
			break
		}

		if iterationMax[numComponents-1] > 0 {
			if iter%(iterationMax[numComponents-1]+1) >= iterationMax[componentID] {
				componentID = (componentID + 1) % numComponents
				for !multiVertexComponent(componentID) {
					componentID = (componentID + 1) % numComponents
				}
			}
		}

		for sol.ComponentFeasible(componentID) {
			if best.ComponentWeight(componentID) < sol.ComponentWeight(componentID) {
				syncComponent(best, sol, g, componentID)
			}

			bestV, bestP := -1, int64(-1)
			for _, v := range g.ComponentVertices(componentID) {
				if sol.Contains(v) {
					continue
				}
				var p int64
				for _, ve := range g.Neighbors(v) {
					if sol.Covers(ve.EdgeID) == 1 {
						p += penalties.Get(ve.EdgeID)
					}
				}
				if bestV == -1 || bestP > p || (bestP == p && timestamp[bestV] > timestamp[v]) {
					bestV, bestP = v, p
				}
			}
			if bestV == -1 {
				break
			}
			sol.Add(bestV)
			timestamp[bestV] = iter
			lastAdded = bestV
		}

		conflicts := sol.ConflictEdges()
		if len(conflicts) == 0 {
			continue
		}
		edgeID := conflicts[rng.Intn(len(conflicts))]
		edge := g.Edge(edgeID)

		v1Best, v2Best, pBest := -1, -1, int64(-1)
		for _, v1 := range [2]int{edge.V1, edge.V2} {
			if v1 == lastAdded {
				continue
			}
			var p0 int64
			for _, ve := range g.Neighbors(v1) {
				if sol.Covers(ve.EdgeID) == 2 {
					p0 -= penalties.Get(ve.EdgeID)
				}
			}
			sol.Remove(v1)
			if v1Best == -1 || pBest == -1 || p0 <= pBest {
				for _, ve := range g.Neighbors(v1) {
					w := ve.VertexID
					if w == lastRemoved || sol.Contains(w) {
						continue
					}
					p := p0
					for _, ve2 := range g.Neighbors(w) {
						if sol.Covers(ve2.EdgeID) == 1 {
							p += penalties.Get(ve2.EdgeID)
						}
					}
					if v1Best == -1 || pBest > p ||
						(pBest == p && timestamp[v1Best]+timestamp[v2Best] > timestamp[v1]+timestamp[w]) {
						v1Best, v2Best, pBest = v1, w, p
					}
				}
			}
			sol.Add(v1)
		}

		if v1Best != -1 {
			sol.Remove(v1Best)
			sol.Add(v2Best)
			timestamp[v1Best] = iter
			timestamp[v2Best] = iter
			for _, ve := range g.Neighbors(v2Best) {
				if sol.Covers(ve.EdgeID) == 2 {
					penalties.Increment(ve.EdgeID)
				}
			}
		}
		lastRemoved = v1Best
		lastAdded = v2Best
	}

	if best.Weight() < sol.Weight() && sol.Feasible() {
		return sol
	}
	return best
}

// syncComponent copies component c's membership from src into dst.
func syncComponent(dst, src *stable.Solution, g *graph.Graph, c int) {
	for _, v := range g.ComponentVertices(c) {
		switch {
		case dst.Contains(v) && !src.Contains(v):
			dst.Remove(v)
		case !dst.Contains(v) && src.Contains(v):
			dst.Add(v)
		}
	}
}

// RowWeighting2 runs the whole-graph row-weighting local search: each
// vertex keeps an incrementally maintained score (the penalty sum of its
// conflicting edges), shift-repairs while feasible, then performs one
// greedy add plus one randomized, penalty-guided removal per iteration.
func RowWeighting2(ctx context.Context, g *graph.Graph, rng *rand.Rand, params Parameters) *stable.Solution {
	sol := greedy.GWMIN(g)
	if g.NumVertices() == 0 {
		return sol
	}
	best := sol.Clone()

	penalties := penalty.New(g.NumEdges())
	score := make([]int64, g.NumVertices())
	timestamp := make([]int64, g.NumVertices())
	for i := range timestamp {
		timestamp[i] = -1
	}
	for e := 0; e < g.NumEdges(); e++ {
		if sol.Covers(e) != 1 {
			continue
		}
		edge := g.Edge(e)
		if !sol.Contains(edge.V1) {
			score[edge.V1] += penalties.Get(e)
		}
		if !sol.Contains(edge.V2) {
			score[edge.V2] += penalties.Get(e)
		}
	}
	lastAdded, lastRemoved := -1, -1

	var iter int64
	for ; params.MaxIterations <= 0 || iter < params.MaxIterations; iter++ {
		if ctxDone(ctx) {
			break
		}

		for sol.Feasible() {
			if best.Weight() < sol.Weight() {
				best = sol.Clone()
			}

			bestV, bestScore := -1, int64(-1)
			for v := 0; v < g.NumVertices(); v++ {
				if sol.Contains(v) {
					continue
				}
				if bestV == -1 || bestScore > score[v] || (bestScore == score[v] && timestamp[bestV] > timestamp[v]) {
					bestV, bestScore = v, score[v]
				}
			}
			if bestV == -1 {
				break
			}
			addVertex(sol, g, penalties, score, bestV)
			timestamp[bestV] = iter
			lastAdded, lastRemoved = -1, -1
		}

		bestV1, score1 := -1, int64(-1)
		for v := 0; v < g.NumVertices(); v++ {
			if sol.Contains(v) || v == lastRemoved {
				continue
			}
			if bestV1 == -1 || score1 > score[v] || (score1 == score[v] && timestamp[bestV1] > timestamp[v]) {
				bestV1, score1 = v, score[v]
			}
		}
		if bestV1 == -1 {
			break
		}
		addVertex(sol, g, penalties, score, bestV1)
		timestamp[bestV1] = iter
		lastAdded = bestV1

		conflicts := sol.ConflictEdges()
		if len(conflicts) == 0 {
			continue
		}
		edge := g.Edge(conflicts[rng.Intn(len(conflicts))])

		bestV2, score2 := -1, int64(-1)
		for _, v := range [2]int{edge.V1, edge.V2} {
			if v == lastAdded {
				continue
			}
			if bestV2 == -1 || score2 < score[v] || (score2 == score[v] && timestamp[bestV2] > timestamp[v]) {
				bestV2, score2 = v, score[v]
			}
		}
		if bestV2 == -1 {
			bestV2 = bestV1
		}
		removeVertex(sol, g, penalties, score, bestV2)
		timestamp[bestV2] = iter
		lastRemoved = bestV2
	}

	if best.Weight() < sol.Weight() && sol.Feasible() {
		return sol
	}
	return best
}

func addVertex(sol *stable.Solution, g *graph.Graph, penalties *penalty.Penalties, score []int64, v int) {
	sol.Add(v)
	for _, ve := range g.Neighbors(v) {
		if sol.Covers(ve.EdgeID) >= 1 {
			score[ve.VertexID] += penalties.Get(ve.EdgeID)
		}
	}
	for _, ve := range g.Neighbors(v) {
		if sol.Covers(ve.EdgeID) >= 2 {
			penalties.Increment(ve.EdgeID)
			e := g.Edge(ve.EdgeID)
			score[e.V1]++
			score[e.V2]++
		}
	}
}

func removeVertex(sol *stable.Solution, g *graph.Graph, penalties *penalty.Penalties, score []int64, v int) {
	sol.Remove(v)
	for _, ve := range g.Neighbors(v) {
		if sol.Covers(ve.EdgeID) <= 1 {
			score[ve.VertexID] -= penalties.Get(ve.EdgeID)
		}
	}
}
