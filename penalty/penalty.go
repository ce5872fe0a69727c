// Package penalty implements the overflow-safe per-edge penalty vector
// used by the stable row-weighting and large-neighborhood searches: each
// edge starts at penalty 1, is incremented every time a move leaves it
// conflicting, and the whole vector is halved (rounding up) once any
// entry approaches the integer range, so that it can run indefinitely
// without overflowing. Grounded on local_search_row_weighting.cpp's
// solution_penalties vector and its "> max/2" halving check, kept in its
// own package so that several stable local searches share it.
package penalty

import "math"

// Penalties is a dense per-edge (or per-index) penalty vector.
type Penalties struct {
	values []int64
}

// New returns a penalty vector of size n with every entry set to 1.
func New(n int) *Penalties {
	values := make([]int64, n)
	for i := range values {
		values[i] = 1
	}
	return &Penalties{values: values}
}

// Get returns the current penalty at i.
func (p *Penalties) Get(i int) int64 { return p.values[i] }

// Len returns the number of tracked indices.
func (p *Penalties) Len() int { return len(p.values) }

// Increment bumps the penalty at i by one, halving the entire vector
// first if the penalty at i exceeds math.MaxInt64/2.
func (p *Penalties) Increment(i int) {
	if p.values[i] > math.MaxInt64/2 {
		p.halve()
	}
	p.values[i]++
}

func (p *Penalties) halve() {
	for i, v := range p.values {
		p.values[i] = (v-1)/2 + 1
	}
}
