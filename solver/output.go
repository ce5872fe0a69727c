package solver

import (
	"sync"
	"time"
)

// WeightedSolution is the minimal surface Output needs from a candidate
// solution; both stable.Solution and clique.Solution satisfy it.
type WeightedSolution interface {
	Weight() int64
	Feasible() bool
	Members() []int
}

// Event records one improving update to either the best solution or the
// bound, timestamped relative to the run's start. Mirrors the
// "Solution1..k" / "Bound1..k" entries of the JSON output protocol.
type Event struct {
	Value int64
	Time  time.Duration
	Tag   string
}

// NewSolutionCallback is invoked, under Output's lock, every time
// UpdateSolution installs a strictly better feasible solution.
type NewSolutionCallback[S WeightedSolution] func(best S, tag string)

// Output is the single piece of mutable state shared across a solve
// invocation's workers. Every mutation is serialized by mu, matching
// the "all mutations to Output are serialised by a single mutex"
// ordering rule: UpdateSolution, UpdateBound and AlgorithmEnd never run
// concurrently with each other.
type Output[S WeightedSolution] struct {
	mu sync.Mutex

	start time.Time
	ended bool
	endAt time.Duration

	best        S
	hasSolution bool
	bound       int64
	hasBound    bool

	solutionEvents []Event
	boundEvents    []Event

	certificatePath string
	newSolution     NewSolutionCallback[S]
}

// NewOutput returns an Output with bound initialized to the instance's
// total weight, the loosest valid upper bound before anything has run.
func NewOutput[S WeightedSolution](totalWeight int64) *Output[S] {
	return &Output[S]{
		start:    time.Now(),
		bound:    totalWeight,
		hasBound: true,
	}
}

// SetCertificatePath enables writing the current best solution's member
// list to disk on every UpdateSolution call.
func (o *Output[S]) SetCertificatePath(path string) { o.certificatePath = path }

// SetNewSolutionCallback installs the callback UpdateSolution invokes on
// every improvement.
func (o *Output[S]) SetNewSolutionCallback(cb NewSolutionCallback[S]) { o.newSolution = cb }

// UpdateSolution installs candidate as the new best if it is feasible
// and strictly heavier than the current best, persists the certificate
// file if one is configured, and invokes the new-solution callback.
// Reports whether the update was accepted.
func (o *Output[S]) UpdateSolution(candidate S, tag string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !candidate.Feasible() {
		return false
	}
	if o.hasSolution && candidate.Weight() <= o.best.Weight() {
		return false
	}

	o.best = candidate
	o.hasSolution = true
	o.solutionEvents = append(o.solutionEvents, Event{
		Value: candidate.Weight(),
		Time:  o.elapsedLocked(),
		Tag:   tag,
	})

	if o.certificatePath != "" {
		// Persisted certificate always corresponds to the last solution
		// announced, never an intermediate state, since the write happens
		// here under the same lock that installs it.
		_ = WriteCertificateFile(o.certificatePath, candidate.Members())
	}
	if o.newSolution != nil {
		o.newSolution(o.best, tag)
	}
	return true
}

// UpdateBound tightens the bound if newBound is strictly better (lower).
// Reports whether the update was accepted.
func (o *Output[S]) UpdateBound(newBound int64, tag string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.hasBound && newBound >= o.bound {
		return false
	}
	o.bound = newBound
	o.hasBound = true
	o.boundEvents = append(o.boundEvents, Event{
		Value: newBound,
		Time:  o.elapsedLocked(),
		Tag:   tag,
	})
	return true
}

// AlgorithmEnd freezes the elapsed time. Further UpdateSolution /
// UpdateBound calls still apply but the elapsed time recorded in their
// events and in reports no longer advances.
func (o *Output[S]) AlgorithmEnd() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ended {
		return
	}
	o.ended = true
	o.endAt = time.Since(o.start)
}

func (o *Output[S]) elapsedLocked() time.Duration {
	if o.ended {
		return o.endAt
	}
	return time.Since(o.start)
}

// Best returns the current best solution and whether one has been found.
func (o *Output[S]) Best() (S, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.best, o.hasSolution
}

// Bound returns the current bound.
func (o *Output[S]) Bound() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.bound
}

// Optimal reports whether the best solution's weight matches the bound
// exactly, i.e. the absolute optimality gap is zero.
func (o *Output[S]) Optimal() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hasSolution && o.best.Weight() == o.bound
}
