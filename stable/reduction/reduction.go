package reduction

import (
	"github.com/fontanf/stablesolver-sub000/builder"
	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/stable"
)

// Parameters configures the reduction engine.
type Parameters struct {
	// Reduce disables all rules when false; Reduced returns the original
	// graph unchanged.
	Reduce bool

	// MaxRounds bounds how many fixed-point rounds run. Zero means the
	// default of 10.
	MaxRounds int
}

// DefaultParameters matches the original solver's defaults: reduction on,
// at most 10 rounds.
func DefaultParameters() Parameters {
	return Parameters{Reduce: true, MaxRounds: 10}
}

// unreductionOps records, for one vertex of the current reduced graph,
// which original vertices to add back to a solution when that vertex is
// (In) or is not (Out) selected.
type unreductionOps struct {
	In  []int
	Out []int
}

// Reduction holds the reduced graph plus enough bookkeeping to lift a
// solution or a bound computed on it back to the original instance.
type Reduction struct {
	original *graph.Graph
	g        *graph.Graph

	ops         []unreductionOps
	mandatory   []int
	extraWeight int64
}

// New runs the reduction engine to a fixed point (or MaxRounds rounds,
// whichever comes first) and returns the result.
func New(g *graph.Graph, params Parameters) *Reduction {
	r := &Reduction{original: g, g: g}
	r.ops = make([]unreductionOps, g.NumVertices())
	for v := range r.ops {
		r.ops[v].In = []int{v}
	}

	if params.Reduce {
		maxRounds := params.MaxRounds
		if maxRounds <= 0 {
			maxRounds = 10
		}
		for round := 0; round < maxRounds; round++ {
			found1 := r.reducePendantVertices()
			found2 := r.reduceVertexFolding()
			found3 := r.reduceIsolatedVertexRemoval()
			found4 := r.reduceTwin()
			found5 := r.reduceDomination()
			found6 := r.reduceUnconfined()
			if !(found1 || found2 || found3 || found4 || found5 || found6) {
				break
			}
		}
	}

	r.extraWeight = 0
	for _, v := range r.mandatory {
		r.extraWeight += g.Weight(v)
	}
	// Every fold/twin-fold collapses several original vertices into one
	// reduced vertex whose weight only accounts for one side of the choice
	// (see reduceVertexFolding/reduceTwin); the other side's weight is
	// recorded in that reduced vertex's Out-ops and must be added back here
	// so that w(lift(S')) = w(S') + extraWeight regardless of which side a
	// solution of the reduced graph picks.
	for v := 0; v < r.g.NumVertices(); v++ {
		for _, o := range r.ops[v].Out {
			r.extraWeight += g.Weight(o)
		}
	}
	return r
}

// Reduced returns the reduced graph.
func (r *Reduction) Reduced() *graph.Graph { return r.g }

// UnreduceSolution lifts a solution of the reduced graph back to a
// solution of the original graph.
func (r *Reduction) UnreduceSolution(sol *stable.Solution) *stable.Solution {
	out := stable.NewSolution(r.original)
	for _, v := range r.mandatory {
		if !out.Contains(v) {
			out.Add(v)
		}
	}
	for v := 0; v < r.g.NumVertices(); v++ {
		var lift []int
		if sol.Contains(v) {
			lift = r.ops[v].In
		} else {
			lift = r.ops[v].Out
		}
		for _, v2 := range lift {
			if !out.Contains(v2) {
				out.Add(v2)
			}
		}
	}
	return out
}

// UnreduceBound lifts an upper bound computed on the reduced graph back
// to a bound on the original graph.
func (r *Reduction) UnreduceBound(bound int64) int64 { return r.extraWeight + bound }

func rebuildGraph(weights []int64, edges []graph.Edge) *graph.Graph {
	b := builder.New()
	b.AddVertices(len(weights))
	for i, w := range weights {
		if err := b.SetWeight(i, w); err != nil {
			panic(err)
		}
	}
	for _, e := range edges {
		if err := b.AddEdge(e.V1, e.V2, graph.DuplicateAllow); err != nil {
			panic(err)
		}
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// applyFixed2Class rebuilds the graph keeping every vertex absent from
// fixed, recording class-1 members' In-ops and class-0 members' Out-ops
// as newly mandatory. Shared by the pendant and isolated-vertex rules,
// which both classify vertices as "forced in" (1) or "forced out because
// a forced-in neighbor dominates it" (0).
func (r *Reduction) applyFixed2Class(fixed *container.DoublyIndexedMap) bool {
	if fixed.TotalElements() == 0 {
		return false
	}
	g := r.g
	n := g.NumVertices()

	newMandatory := append([]int(nil), r.mandatory...)
	for _, v := range fixed.Class(1) {
		newMandatory = append(newMandatory, r.ops[v].In...)
	}
	for _, v := range fixed.Class(0) {
		newMandatory = append(newMandatory, r.ops[v].Out...)
	}

	original2reduced := make([]int, n)
	for i := range original2reduced {
		original2reduced[i] = -1
	}
	var weights []int64
	var newOps []unreductionOps
	for v := 0; v < n; v++ {
		if fixed.Contains(v) {
			continue
		}
		original2reduced[v] = len(weights)
		weights = append(weights, g.Weight(v))
		newOps = append(newOps, r.ops[v])
	}

	var edges []graph.Edge
	for e := 0; e < g.NumEdges(); e++ {
		edge := g.Edge(e)
		nv1, nv2 := original2reduced[edge.V1], original2reduced[edge.V2]
		if nv1 != -1 && nv2 != -1 {
			edges = append(edges, graph.Edge{V1: nv1, V2: nv2})
		}
	}

	r.g = rebuildGraph(weights, edges)
	r.ops = newOps
	r.mandatory = newMandatory
	return true
}

// applyRemoved rebuilds the graph dropping every vertex in removed,
// recording each dropped vertex's Out-ops as newly mandatory. Shared by
// domination and unconfined, which only ever force a vertex out.
func (r *Reduction) applyRemoved(removed *container.IndexedSet) bool {
	if removed.Size() == 0 {
		return false
	}
	g := r.g
	n := g.NumVertices()

	newMandatory := append([]int(nil), r.mandatory...)
	for _, v := range removed.In() {
		newMandatory = append(newMandatory, r.ops[v].Out...)
	}

	original2reduced := make([]int, n)
	for i := range original2reduced {
		original2reduced[i] = -1
	}
	var weights []int64
	var newOps []unreductionOps
	for v := 0; v < n; v++ {
		if removed.Contains(v) {
			continue
		}
		original2reduced[v] = len(weights)
		weights = append(weights, g.Weight(v))
		newOps = append(newOps, r.ops[v])
	}

	var edges []graph.Edge
	for e := 0; e < g.NumEdges(); e++ {
		edge := g.Edge(e)
		nv1, nv2 := original2reduced[edge.V1], original2reduced[edge.V2]
		if nv1 != -1 && nv2 != -1 {
			edges = append(edges, graph.Edge{V1: nv1, V2: nv2})
		}
	}

	r.g = rebuildGraph(weights, edges)
	r.ops = newOps
	r.mandatory = newMandatory
	return true
}

// reducePendantVertices forces a degree-1 vertex into the solution (and
// its sole neighbor out) whenever the neighbor's weight doesn't exceed
// the pendant's own.
func (r *Reduction) reducePendantVertices() bool {
	g := r.g
	n := g.NumVertices()
	fixed := container.NewDoublyIndexedMap(n, 2)
	for v := 0; v < n; v++ {
		if g.Degree(v) != 1 {
			continue
		}
		w := g.Weight(v)
		neighbor := g.Neighbors(v)[0].VertexID
		if g.Weight(neighbor) > w {
			continue
		}
		fixed.Set(v, 1)
		fixed.Set(neighbor, 0)
	}
	return r.applyFixed2Class(fixed)
}

// reduceIsolatedVertexRemoval forces a vertex into the solution whenever
// its neighborhood forms a clique in which it has maximum weight (it
// "dominates" its own closed neighborhood).
func (r *Reduction) reduceIsolatedVertexRemoval() bool {
	g := r.g
	n := g.NumVertices()
	fixed := container.NewDoublyIndexedMap(n, 2)
	neighbors := container.NewIndexedSet(n)

	for v := 0; v < n; v++ {
		if fixed.Contains(v) {
			continue
		}
		neighborsClique := true
	outer:
		for _, ve := range g.Neighbors(v) {
			if fixed.Contains(ve.VertexID) {
				continue
			}
			neighbors.Clear()
			neighbors.Add(ve.VertexID)
			for _, ve2 := range g.Neighbors(ve.VertexID) {
				if !fixed.Contains(ve2.VertexID) && !neighbors.Contains(ve2.VertexID) {
					neighbors.Add(ve2.VertexID)
				}
			}
			for _, ve3 := range g.Neighbors(v) {
				if fixed.Contains(ve3.VertexID) {
					continue
				}
				if !neighbors.Contains(ve3.VertexID) || g.Weight(v) < g.Weight(ve3.VertexID) {
					neighborsClique = false
					break outer
				}
			}
		}
		if neighborsClique {
			fixed.Set(v, 1)
			for _, ve := range g.Neighbors(v) {
				fixed.Set(ve.VertexID, 0)
			}
		}
	}
	return r.applyFixed2Class(fixed)
}

// reduceDomination drops a vertex v whenever some neighbor u of at least
// v's weight has N(u)\{v} contained in N(v): any solution containing v
// can swap it for u without loss.
func (r *Reduction) reduceDomination() bool {
	g := r.g
	n := g.NumVertices()
	removed := container.NewIndexedSet(n)
	neighbors := container.NewIndexedSet(n)

	for v := 0; v < n; v++ {
		weight := g.Weight(v)
		neighbors.Clear()
		for _, ve := range g.Neighbors(v) {
			neighbors.Add(ve.VertexID)
		}
		canBeRemoved := false
		for _, ve := range g.Neighbors(v) {
			u := ve.VertexID
			if g.Weight(u) < weight || removed.Contains(u) {
				continue
			}
			dominates := true
			for _, ve2 := range g.Neighbors(u) {
				if ve2.VertexID != v && !neighbors.Contains(ve2.VertexID) {
					dominates = false
					break
				}
			}
			if dominates {
				canBeRemoved = true
				break
			}
		}
		if canBeRemoved {
			removed.Add(v)
		}
	}
	return r.applyRemoved(removed)
}

// reduceUnconfined implements the unconfined rule: starting from S={v},
// repeatedly find a u in N(S) with |N(u) ∩ S| = 1; if N(u)\N[S] is empty
// v is unconfined (safely excluded), if it is a single vertex w absorb w
// into S and continue, otherwise v is confined and the rule doesn't
// apply. The minimum weight in S must stay >= the maximum weight in
// N(S) throughout, generalizing the unweighted rule to weighted graphs.
func (r *Reduction) reduceUnconfined() bool {
	g := r.g
	n := g.NumVertices()
	removed := container.NewIndexedSet(n)
	s := container.NewIndexedSet(n)
	ns := container.NewIndexedSet(n)

	for v := 0; v < n; v++ {
		wsMin := g.Weight(v)
		var wnsMax int64
		s.Clear()
		ns.Clear()
		s.Add(v)
		for _, ve := range g.Neighbors(v) {
			ns.Add(ve.VertexID)
			if g.Weight(ve.VertexID) > wnsMax {
				wnsMax = g.Weight(ve.VertexID)
			}
		}
		if wsMin < wnsMax {
			continue
		}

		canBeRemoved := false
		for {
			uBest, wBest := -1, -1
			best := -1
			for _, u := range ns.In() {
				if removed.Contains(u) {
					continue
				}
				inter := 0
				for _, ve := range g.Neighbors(u) {
					if s.Contains(ve.VertexID) {
						inter++
					}
				}
				if inter != 1 {
					continue
				}
				outside := 0
				w := -1
				for _, ve := range g.Neighbors(u) {
					if !s.Contains(ve.VertexID) && !ns.Contains(ve.VertexID) {
						outside++
						w = ve.VertexID
					}
				}
				if uBest == -1 || best > outside {
					uBest, best, wBest = u, outside, w
				}
			}
			if uBest == -1 {
				canBeRemoved = false
				break
			} else if best == 0 {
				canBeRemoved = true
				break
			} else if best == 1 {
				s.Add(wBest)
				if g.Weight(wBest) < wsMin {
					wsMin = g.Weight(wBest)
				}
				if ns.Contains(wBest) {
					ns.Remove(wBest)
				}
				for _, ve := range g.Neighbors(wBest) {
					if !s.Contains(ve.VertexID) && !ns.Contains(ve.VertexID) {
						ns.Add(ve.VertexID)
						if g.Weight(ve.VertexID) > wnsMax {
							wnsMax = g.Weight(ve.VertexID)
						}
					}
				}
				if wsMin < wnsMax {
					canBeRemoved = false
					break
				}
				continue
			} else {
				canBeRemoved = false
				break
			}
		}
		if canBeRemoved {
			removed.Add(v)
		}
	}
	return r.applyRemoved(removed)
}

// reduceVertexFolding merges a degree-2 vertex v (neighbors v1, v2, not
// adjacent to each other, all three of equal weight) into one vertex
// representing "v in, or both v1 and v2 in": the fold is safe because
// any solution can be normalized to pick exactly one side.
func (r *Reduction) reduceVertexFolding() bool {
	g := r.g
	n := g.NumVertices()
	folded := container.NewIndexedSet(n)
	type triple struct{ v, v1, v2 int }
	var list []triple

	for v := 0; v < n; v++ {
		if g.Degree(v) != 2 {
			continue
		}
		nb := g.Neighbors(v)
		v1, v2 := nb[0].VertexID, nb[1].VertexID
		if folded.Contains(v) || folded.Contains(v1) || folded.Contains(v2) {
			continue
		}
		if g.Weight(v) != g.Weight(v1) || g.Weight(v) != g.Weight(v2) {
			continue
		}
		adjacent := false
		for _, ve := range g.Neighbors(v1) {
			if ve.VertexID == v2 {
				adjacent = true
				break
			}
		}
		if adjacent {
			continue
		}
		folded.Add(v)
		folded.Add(v1)
		folded.Add(v2)
		list = append(list, triple{v, v1, v2})
	}
	if len(list) == 0 {
		return false
	}

	original2reduced := make([]int, n)
	for i := range original2reduced {
		original2reduced[i] = -1
	}
	var weights []int64
	var newOps []unreductionOps

	for v := 0; v < n; v++ {
		if folded.Contains(v) {
			continue
		}
		original2reduced[v] = len(weights)
		weights = append(weights, g.Weight(v))
		newOps = append(newOps, r.ops[v])
	}
	for _, tr := range list {
		nv := len(weights)
		original2reduced[tr.v] = nv
		original2reduced[tr.v1] = nv
		original2reduced[tr.v2] = nv
		weights = append(weights, g.Weight(tr.v))

		var ops unreductionOps
		ops.In = append(ops.In, r.ops[tr.v].Out...)
		ops.Out = append(ops.Out, r.ops[tr.v].In...)
		ops.In = append(ops.In, r.ops[tr.v1].In...)
		ops.Out = append(ops.Out, r.ops[tr.v1].Out...)
		ops.In = append(ops.In, r.ops[tr.v2].In...)
		ops.Out = append(ops.Out, r.ops[tr.v2].Out...)
		newOps = append(newOps, ops)
	}

	var edges []graph.Edge
	for e := 0; e < g.NumEdges(); e++ {
		edge := g.Edge(e)
		if folded.Contains(edge.V1) || folded.Contains(edge.V2) {
			continue
		}
		edges = append(edges, graph.Edge{V1: original2reduced[edge.V1], V2: original2reduced[edge.V2]})
	}

	neighborsTmp := container.NewIndexedSet(len(weights))
	for _, tr := range list {
		nv := original2reduced[tr.v]
		neighborsTmp.Clear()
		for _, side := range [2]int{tr.v1, tr.v2} {
			for _, ve := range g.Neighbors(side) {
				if ve.VertexID == tr.v {
					continue
				}
				if !folded.Contains(ve.VertexID) || nv < original2reduced[ve.VertexID] {
					if !neighborsTmp.Contains(original2reduced[ve.VertexID]) {
						neighborsTmp.Add(original2reduced[ve.VertexID])
					}
				}
			}
		}
		for _, other := range neighborsTmp.In() {
			edges = append(edges, graph.Edge{V1: nv, V2: other})
		}
	}

	r.g = rebuildGraph(weights, edges)
	r.ops = newOps
	return true
}

// reduceTwin merges two degree-3 vertices with identical weight whose
// neighborhoods coincide (twins): if the neighborhood has an internal
// edge both twins are forced in (their neighbors forced out); otherwise
// the five vertices fold into one representative, the weighted analogue
// of the unweighted twin rule.
func (r *Reduction) reduceTwin() bool {
	g := r.g
	n := g.NumVertices()
	modified := container.NewDoublyIndexedMap(n, 3) // 0=removed(out) 1=added(in) 2=folded
	twinCandidates := container.NewIndexedMap[int](n, 0)
	type quint struct{ v, twin, v1, v2, v3 int }
	var list []quint

	for v := 0; v < n; v++ {
		if g.Degree(v) != 3 {
			continue
		}
		nb := g.Neighbors(v)
		v1, v2, v3 := nb[0].VertexID, nb[1].VertexID, nb[2].VertexID
		if modified.Contains(v) || modified.Contains(v1) || modified.Contains(v2) || modified.Contains(v3) {
			continue
		}
		weight := g.Weight(v)
		if g.Weight(v1) != weight || g.Weight(v2) != weight || g.Weight(v3) != weight {
			continue
		}

		twinCandidates.Clear()
		for _, ve := range nb {
			for _, ve2 := range g.Neighbors(ve.VertexID) {
				if g.Degree(ve2.VertexID) != 3 || ve2.VertexID == v {
					continue
				}
				if g.Weight(ve2.VertexID) != weight || modified.Contains(ve2.VertexID) {
					continue
				}
				twinCandidates.Set(ve2.VertexID, twinCandidates.Get(ve2.VertexID)+1)
			}
		}
		twin := -1
		for _, key := range twinCandidates.Keys() {
			if twinCandidates.Get(key) == 3 {
				twin = key
				break
			}
		}
		if twin == -1 {
			continue
		}

		hasEdge := false
		for _, ve := range g.Neighbors(v1) {
			if ve.VertexID == v2 || ve.VertexID == v3 {
				hasEdge = true
			}
		}
		for _, ve := range g.Neighbors(v2) {
			if ve.VertexID == v3 {
				hasEdge = true
			}
		}

		if hasEdge {
			modified.Set(v, 1)
			modified.Set(twin, 1)
			modified.Set(v1, 0)
			modified.Set(v2, 0)
			modified.Set(v3, 0)
		} else {
			modified.Set(v, 2)
			modified.Set(twin, 2)
			modified.Set(v1, 2)
			modified.Set(v2, 2)
			modified.Set(v3, 2)
			list = append(list, quint{v, twin, v1, v2, v3})
		}
	}
	if modified.TotalElements() == 0 {
		return false
	}

	newMandatory := append([]int(nil), r.mandatory...)
	for _, v := range modified.Class(1) {
		newMandatory = append(newMandatory, r.ops[v].In...)
	}
	for _, v := range modified.Class(0) {
		newMandatory = append(newMandatory, r.ops[v].Out...)
	}

	original2reduced := make([]int, n)
	for i := range original2reduced {
		original2reduced[i] = -1
	}
	var weights []int64
	var newOps []unreductionOps
	for v := 0; v < n; v++ {
		if modified.Contains(v) {
			continue
		}
		original2reduced[v] = len(weights)
		weights = append(weights, g.Weight(v))
		newOps = append(newOps, r.ops[v])
	}
	for _, q := range list {
		nv := len(weights)
		for _, id := range [5]int{q.v, q.twin, q.v1, q.v2, q.v3} {
			original2reduced[id] = nv
		}
		weights = append(weights, g.Weight(q.v))

		var ops unreductionOps
		ops.In = append(ops.In, r.ops[q.v].Out...)
		ops.Out = append(ops.Out, r.ops[q.v].In...)
		ops.In = append(ops.In, r.ops[q.twin].Out...)
		ops.Out = append(ops.Out, r.ops[q.twin].In...)
		for _, id := range [3]int{q.v1, q.v2, q.v3} {
			ops.In = append(ops.In, r.ops[id].In...)
			ops.Out = append(ops.Out, r.ops[id].Out...)
		}
		newOps = append(newOps, ops)
	}

	var edges []graph.Edge
	for e := 0; e < g.NumEdges(); e++ {
		edge := g.Edge(e)
		if modified.Contains(edge.V1) || modified.Contains(edge.V2) {
			continue
		}
		edges = append(edges, graph.Edge{V1: original2reduced[edge.V1], V2: original2reduced[edge.V2]})
	}

	neighborsTmp := container.NewIndexedSet(len(weights))
	for _, q := range list {
		nv := original2reduced[q.v]
		neighborsTmp.Clear()
		for _, side := range [3]int{q.v1, q.v2, q.v3} {
			for _, ve := range g.Neighbors(side) {
				if ve.VertexID == q.v || ve.VertexID == q.twin {
					continue
				}
				if !modified.Contains(ve.VertexID) || nv < original2reduced[ve.VertexID] {
					if !neighborsTmp.Contains(original2reduced[ve.VertexID]) {
						neighborsTmp.Add(original2reduced[ve.VertexID])
					}
				}
			}
		}
		for _, other := range neighborsTmp.In() {
			edges = append(edges, graph.Edge{V1: nv, V2: other})
		}
	}

	r.g = rebuildGraph(weights, edges)
	r.ops = newOps
	r.mandatory = newMandatory
	return true
}
