package kmeans

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultMaxIter is the iteration cap used when none is given.
	DefaultMaxIter = 200

	// MaxIterLimit is the exclusive upper bound accepted by WithMaxIter.
	MaxIterLimit = 1000

	// DefaultEpsilon is the convergence threshold on centroid displacement.
	DefaultEpsilon = 0.001
)

var (
	// ErrEmpty indicates no vectors or zero-dimensional vectors.
	ErrEmpty = errors.New("kmeans: empty input")

	// ErrShape indicates vectors or centroids of different dimensions.
	ErrShape = errors.New("kmeans: inconsistent dimensions")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("kmeans: non-finite coordinate")

	// ErrInvalidK indicates k outside 1..n.
	ErrInvalidK = errors.New("kmeans: k must satisfy 1 <= k <= n")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("kmeans: invalid option supplied")
)

// IterationFunc is called after every iteration with the new centroids
// (read-only) and their largest displacement. A non-nil return aborts Run.
type IterationFunc func(iter int, centroids [][]float64, shift float64) error

// Options configures Run.
type Options struct {
	MaxIter     int
	Epsilon     float64
	OnIteration IterationFunc

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MaxIter = DefaultMaxIter and Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter, Epsilon: DefaultEpsilon}
}

// WithMaxIter sets the iteration cap; valid range is [1, MaxIterLimit).
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 || n >= MaxIterLimit {
			o.err = fmt.Errorf("WithMaxIter(%d): %w", n, ErrOptionViolation)
			return
		}
		o.MaxIter = n
	}
}

// WithEpsilon sets the displacement threshold; must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("WithEpsilon(%g): %w", eps, ErrOptionViolation)
			return
		}
		o.Epsilon = eps
	}
}

// WithOnIteration registers a per-iteration hook.
func WithOnIteration(fn IterationFunc) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// Result is the outcome of Run.
type Result struct {
	Centroids  [][]float64 // k×d, owned by the caller
	Iterations int
	Converged  bool
	Shift      float64 // largest centroid displacement in the last iteration
}
