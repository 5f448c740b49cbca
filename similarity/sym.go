package similarity

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/symnmf/matrix"
)

// Sym builds the n×n Gaussian similarity matrix of points.
//
// A[i][j] = exp(-‖p_i − p_j‖² / 2) for i ≠ j and A[i][i] = 0. The kernel
// exponent is never positive, so entries lie in [0, 1].
//
// Errors: ErrEmpty, ErrShape, ErrOptionViolation, matrix.ErrNaNInf for
// non-finite coordinates.
func Sym(points [][]float64, opts ...Option) (*matrix.Dense, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	// NewDenseFrom rejects NaN/Inf coordinates under the default policy.
	if _, err := matrix.NewDenseFrom(points); err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	n, d := len(points), len(points[0])
	A, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			row, err := A.RawRow(i)
			if err != nil {
				return err
			}
			diff := make([]float64, d)
			for j := 0; j < n; j++ {
				if i == j {
					continue // zero diagonal
				}
				floats.SubTo(diff, points[i], points[j])
				row[j] = math.Exp(-floats.Dot(diff, diff) / 2)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	return A, nil
}

// validatePoints checks n ≥ 1, d ≥ 1 and a common dimension taken from the
// first point.
func validatePoints(points [][]float64) error {
	if len(points) == 0 || len(points[0]) == 0 {
		return ErrEmpty
	}
	d := len(points[0])
	for i, p := range points {
		if len(p) != d {
			return fmt.Errorf("point %d has dimension %d, want %d: %w", i, len(p), d, ErrShape)
		}
	}

	return nil
}
