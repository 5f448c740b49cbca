package symnmf

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/symnmf/matrix"
)

// Defaults for Options.
const (
	// DefaultTolerance bounds the squared Frobenius change between iterations.
	DefaultTolerance = 1e-4

	// DefaultMaxIter caps the number of update iterations.
	DefaultMaxIter = 300

	// DefaultEpsilon guards the update's division.
	DefaultEpsilon = 1e-9

	// DefaultBeta is the update damping; 1 gives the undamped rule.
	DefaultBeta = 0.5

	// DefaultSeed is the seed used for H₀ when none is configured.
	DefaultSeed uint64 = 1234
)

// Sentinel errors.
var (
	// ErrInvalidK indicates k outside 1..n.
	ErrInvalidK = errors.New("symnmf: k must satisfy 1 <= k <= n")

	// ErrNegativeMean indicates mean(W) < 0, which leaves the H₀ range undefined.
	ErrNegativeMean = errors.New("symnmf: mean of W is negative")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("symnmf: invalid option supplied")
)

// IterationFunc observes the optimizer after every iteration. iter starts
// at 1, h is the freshly computed H (read-only for the hook) and delta is
// ‖h − previous‖²_F. A non-nil return aborts Optimize.
type IterationFunc func(iter int, h *matrix.Dense, delta float64) error

// Options configures Optimize. Construct via DefaultOptions and Option setters.
type Options struct {
	Tolerance   float64
	MaxIter     int
	Epsilon     float64
	Beta        float64
	OnIteration IterationFunc

	// internal error recorded during option parsing
	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Epsilon:   DefaultEpsilon,
		Beta:      DefaultBeta,
	}
}

func (o *Options) fail(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf(format+": %w", append(args, ErrOptionViolation)...)
	}
}

// WithTolerance sets the convergence threshold on ‖H_next − H‖²_F; must be finite and > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 0) {
			o.fail("WithTolerance(%g)", tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIter sets the iteration cap; must be ≥ 1.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("WithMaxIter(%d)", n)
			return
		}
		o.MaxIter = n
	}
}

// WithEpsilon sets the denominator guard; must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			o.fail("WithEpsilon(%g)", eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithBeta sets the damping factor β ∈ (0, 1].
func WithBeta(beta float64) Option {
	return func(o *Options) {
		if !(beta > 0) || beta > 1 {
			o.fail("WithBeta(%g)", beta)
			return
		}
		o.Beta = beta
	}
}

// WithOnIteration registers a per-iteration hook.
func WithOnIteration(fn IterationFunc) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// Result is the outcome of Optimize.
type Result struct {
	H          *matrix.Dense // final factor, n×k, owned by the caller
	Iterations int           // iterations performed
	Converged  bool          // Delta < Tolerance before MaxIter ran out
	Delta      float64       // ‖H_last − H_prev‖²_F of the last iteration
}
