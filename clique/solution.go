package clique

import (
	"github.com/fontanf/stablesolver-sub000/container"
	"github.com/fontanf/stablesolver-sub000/graph"
)

// Solution is a mutable clique candidate over an immutable graph. It is
// not safe for concurrent use.
type Solution struct {
	g *graph.Graph

	members *container.IndexedSet
	weight  int64

	// penalty counts the number of pairs of selected vertices that are
	// NOT adjacent, i.e. how far the current selection is from being an
	// actual clique. The solution is feasible exactly when penalty is 0.
	penalty int

	// neighborsTmp is a scratch set reused by Add/Remove to avoid
	// reallocating a fresh IndexedSet on every call.
	neighborsTmp *container.IndexedSet
}

// NewSolution returns an empty solution over g.
func NewSolution(g *graph.Graph) *Solution {
	return &Solution{
		g:            g,
		members:      container.NewIndexedSet(g.NumVertices()),
		neighborsTmp: container.NewIndexedSet(g.NumVertices()),
	}
}

// Graph returns the underlying graph.
func (s *Solution) Graph() *graph.Graph { return s.g }

// Weight returns the total weight of the solution's members.
func (s *Solution) Weight() int64 { return s.weight }

// NumMembers returns the number of vertices currently in the solution.
func (s *Solution) NumMembers() int { return s.members.Size() }

// Contains reports whether v is in the solution.
func (s *Solution) Contains(v int) bool { return s.members.Contains(v) }

// Members returns the live slice of member vertex ids. Callers must not
// mutate the returned slice and it is invalidated by the next Add/Remove.
func (s *Solution) Members() []int { return s.members.In() }

// Penalty returns the number of non-adjacent pairs among the solution's
// current members.
func (s *Solution) Penalty() int { return s.penalty }

// Feasible reports whether every pair of selected vertices is adjacent,
// i.e. the selection actually forms a clique.
func (s *Solution) Feasible() bool { return s.penalty == 0 }

// fillNeighbors resets neighborsTmp to exactly v's neighbor set.
func (s *Solution) fillNeighbors(v int) {
	s.neighborsTmp.Clear()
	for _, ve := range s.g.Neighbors(v) {
		s.neighborsTmp.Add(ve.VertexID)
	}
}

// Add inserts vertex v into the solution, updating weight and penalty in
// O(degree(v) + |solution|). Panics if v is already a member or out of
// range.
func (s *Solution) Add(v int) {
	s.fillNeighbors(v)
	for _, v2 := range s.members.In() {
		if !s.neighborsTmp.Contains(v2) {
			s.penalty++
		}
	}
	s.weight += s.g.Weight(v)
	s.members.Add(v)
}

// Remove deletes vertex v from the solution, restoring weight and penalty
// symmetrically. Panics if v is not a member or out of range.
func (s *Solution) Remove(v int) {
	s.members.Remove(v)
	s.fillNeighbors(v)
	for _, v2 := range s.members.In() {
		if !s.neighborsTmp.Contains(v2) {
			s.penalty--
		}
	}
	s.weight -= s.g.Weight(v)
}

// Clear empties the solution.
func (s *Solution) Clear() {
	s.members.Clear()
	s.penalty = 0
	s.weight = 0
}

// Clone returns an independent deep copy of s.
func (s *Solution) Clone() *Solution {
	return &Solution{
		g:            s.g,
		members:      s.members.Clone(),
		weight:       s.weight,
		penalty:      s.penalty,
		neighborsTmp: container.NewIndexedSet(s.g.NumVertices()),
	}
}
