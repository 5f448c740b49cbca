package similarity

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/symnmf/matrix"
)

// Sentinel errors for similarity construction.
var (
	// ErrEmpty is returned when there are no points or the points have no coordinates.
	ErrEmpty = errors.New("similarity: empty input")

	// ErrShape is returned when points disagree on dimension, or when A and D
	// are not square matrices of the same order.
	ErrShape = errors.New("similarity: inconsistent shape")

	// ErrDegenerate is returned when a degree is not strictly positive
	// (an isolated point), which makes normalization undefined.
	ErrDegenerate = errors.New("similarity: degenerate degree matrix")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("similarity: invalid option supplied")
)

// Option configures similarity construction via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Sym is invoked.
type Option func(*Options)

// Options holds the parameters of Sym.
type Options struct {
	// Workers bounds the number of rows computed concurrently.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the row-level parallelism of Sym. A value of 0 keeps
// the default (GOMAXPROCS); negative values are rejected.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("WithWorkers(%d): %w", n, ErrOptionViolation)
		case n > 0:
			o.Workers = n
		}
	}
}

// Stages bundles the three matrices for callers that need all of them.
type Stages struct {
	A *matrix.Dense // similarity
	D *matrix.Dense // degree
	W *matrix.Dense // normalized similarity
}
