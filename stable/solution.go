package stable

import (
	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
)

// Solution is a mutable independent-set candidate over an immutable graph.
// It is not safe for concurrent use.
type Solution struct {
	g *graph.Graph

	members *container.IndexedSet

	// conflicts holds the id of every edge with both endpoints currently in
	// the solution.
	conflicts map[int]struct{}

	componentConflicts []int
	componentWeights   []int64
	weight             int64
}

// NewSolution returns an empty solution over g.
func NewSolution(g *graph.Graph) *Solution {
	return &Solution{
		g:                  g,
		members:            container.NewIndexedSet(g.NumVertices()),
		conflicts:          make(map[int]struct{}),
		componentConflicts: make([]int, g.NumComponents()),
		componentWeights:   make([]int64, g.NumComponents()),
	}
}

// Graph returns the underlying graph.
func (s *Solution) Graph() *graph.Graph { return s.g }

// Weight returns the total weight of the solution's members.
func (s *Solution) Weight() int64 { return s.weight }

// ComponentWeight returns the weight contributed by component c.
func (s *Solution) ComponentWeight(c int) int64 { return s.componentWeights[c] }

// NumMembers returns the number of vertices currently in the solution.
func (s *Solution) NumMembers() int { return s.members.Size() }

// Contains reports whether v is in the solution.
func (s *Solution) Contains(v int) bool { return s.members.Contains(v) }

// Members returns the live slice of member vertex ids. Callers must not
// mutate the returned slice and it is invalidated by the next Add/Remove.
func (s *Solution) Members() []int { return s.members.In() }

// NumConflicts returns the number of edges with both endpoints selected.
func (s *Solution) NumConflicts() int { return len(s.conflicts) }

// ComponentNumConflicts returns the number of conflicting edges inside
// component c.
func (s *Solution) ComponentNumConflicts(c int) int { return s.componentConflicts[c] }

// Feasible reports whether the solution has no conflicting edges.
func (s *Solution) Feasible() bool { return len(s.conflicts) == 0 }

// ComponentFeasible reports whether component c has no conflicting edges.
// Restores the per-component feasibility check the row-weighting v1 local
// search relies on when it only explores a single component at a time.
func (s *Solution) ComponentFeasible(c int) bool { return s.componentConflicts[c] == 0 }

// Covers returns how many of edge e's two endpoints are in the solution
// (0, 1 or 2).
func (s *Solution) Covers(e int) int { return s.covers(s.g.Edge(e)) }

// ConflictEdges returns the ids of every edge with both endpoints
// currently in the solution. Order is unspecified.
func (s *Solution) ConflictEdges() []int {
	ids := make([]int, 0, len(s.conflicts))
	for id := range s.conflicts {
		ids = append(ids, id)
	}
	return ids
}

// covers returns how many of edge e's two endpoints are in the solution.
func (s *Solution) covers(e graph.Edge) int {
	n := 0
	if s.Contains(e.V1) {
		n++
	}
	if s.Contains(e.V2) {
		n++
	}
	return n
}

// Add inserts vertex v into the solution, updating weight and the
// conflicting-edge bookkeeping in O(degree(v)). Panics if v is already a
// member or out of range, matching container.IndexedSet's contract.
func (s *Solution) Add(v int) {
	c := s.g.Component(v)
	for _, ve := range s.g.Neighbors(v) {
		if s.covers(s.g.Edge(ve.EdgeID)) == 1 {
			s.componentConflicts[c]++
			s.conflicts[ve.EdgeID] = struct{}{}
		}
	}
	s.weight += s.g.Weight(v)
	s.componentWeights[c] += s.g.Weight(v)
	s.members.Add(v)
}

// Remove deletes vertex v from the solution. Panics if v is not a member
// or out of range.
func (s *Solution) Remove(v int) {
	c := s.g.Component(v)
	for _, ve := range s.g.Neighbors(v) {
		e := s.g.Edge(ve.EdgeID)
		if s.covers(e) == 2 {
			s.componentConflicts[c]--
			delete(s.conflicts, ve.EdgeID)
		}
	}
	s.weight -= s.g.Weight(v)
	s.componentWeights[c] -= s.g.Weight(v)
	s.members.Remove(v)
}

// Clear empties the solution.
func (s *Solution) Clear() {
	s.members.Clear()
	for e := range s.conflicts {
		delete(s.conflicts, e)
	}
	for c := range s.componentConflicts {
		s.componentConflicts[c] = 0
		s.componentWeights[c] = 0
	}
	s.weight = 0
}

// Clone returns an independent deep copy of s.
func (s *Solution) Clone() *Solution {
	c := &Solution{
		g:                  s.g,
		members:            s.members.Clone(),
		conflicts:          make(map[int]struct{}, len(s.conflicts)),
		componentConflicts: append([]int(nil), s.componentConflicts...),
		componentWeights:   append([]int64(nil), s.componentWeights...),
		weight:             s.weight,
	}
	for e := range s.conflicts {
		c.conflicts[e] = struct{}{}
	}
	return c
}
