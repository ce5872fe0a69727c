package solver

import "time"

// Parameters configures one solve invocation, populated through With*
// option constructors rather than a loose argument list, following the
// teacher's functional-options convention.
type Parameters struct {
	Algorithm                                   string
	Seed                                        int64
	TimeLimit                                   time.Duration
	MaximumNumberOfIterations                   int64
	MaximumNumberOfIterationsWithoutImprovement int64
	Unweighted                                  bool
	Complementary                               bool
	CertificatePath                             string
	OutputPath                                  string
	VerbosityLevel                              int
}

// Option mutates a Parameters in place.
type Option func(*Parameters)

// NewParameters returns a Parameters with the given algorithm keyword and
// every other field at its zero value, then applies opts.
func NewParameters(algorithm string, opts ...Option) Parameters {
	p := Parameters{Algorithm: algorithm}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithSeed sets the PRNG seed.
func WithSeed(seed int64) Option {
	return func(p *Parameters) { p.Seed = seed }
}

// WithTimeLimit sets the wall-clock budget; zero means unbounded.
func WithTimeLimit(d time.Duration) Option {
	return func(p *Parameters) { p.TimeLimit = d }
}

// WithMaximumNumberOfIterations bounds iterated algorithms; <= 0 means
// unbounded.
func WithMaximumNumberOfIterations(n int64) Option {
	return func(p *Parameters) { p.MaximumNumberOfIterations = n }
}

// WithMaximumNumberOfIterationsWithoutImprovement records a limit on
// consecutive non-improving iterations in Parameters; no algorithm in
// this module reads it, so it does not stop any run.
func WithMaximumNumberOfIterationsWithoutImprovement(n int64) Option {
	return func(p *Parameters) { p.MaximumNumberOfIterationsWithoutImprovement = n }
}

// WithUnweighted forces every vertex weight to 1 after loading.
func WithUnweighted(u bool) Option {
	return func(p *Parameters) { p.Unweighted = u }
}

// WithComplementary runs the algorithm against the complement graph,
// exploiting the duality between maximum-weight clique and
// maximum-weight independent set.
func WithComplementary(c bool) Option {
	return func(p *Parameters) { p.Complementary = c }
}

// WithCertificatePath enables writing the best solution to disk.
func WithCertificatePath(path string) Option {
	return func(p *Parameters) { p.CertificatePath = path }
}

// WithOutputPath enables writing the final JSON report to disk.
func WithOutputPath(path string) Option {
	return func(p *Parameters) { p.OutputPath = path }
}

// WithVerbosityLevel sets how much progress the CLI layer prints.
func WithVerbosityLevel(level int) Option {
	return func(p *Parameters) { p.VerbosityLevel = level }
}
