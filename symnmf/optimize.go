package symnmf

import (
	"fmt"

	"github.com/katalvlaran/symnmf/matrix"
)

// Optimize runs multiplicative updates starting from H0 and returns the
// final factor. H0 is not modified.
//
// Implementation:
//   - Stage 1: validate options, W (square, non-negative, symmetric) and H0 (n rows, non-negative).
//   - Stage 2: per iteration compute W·H, HᵀH and H·(HᵀH), then the damped
//     elementwise update into a fresh matrix.
//   - Stage 3: stop when ‖H_next − H‖²_F < Tolerance or at MaxIter.
//
// Errors: ErrOptionViolation, matrix.ErrDimensionMismatch, matrix.ErrNegativeEntry,
// matrix.ErrAsymmetry, matrix.ErrNilMatrix, or the hook's error wrapped with the iteration number.
func Optimize(W, H0 matrix.Matrix, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := matrix.ValidateSquareNonNil(W); err != nil {
		return nil, fmt.Errorf("symnmf: Optimize: W: %w", err)
	}
	if err := matrix.ValidateNonNegative(W); err != nil {
		return nil, fmt.Errorf("symnmf: Optimize: W: %w", err)
	}
	if err := matrix.ValidateSymmetric(W); err != nil {
		return nil, fmt.Errorf("symnmf: Optimize: W: %w", err)
	}
	if err := matrix.ValidateNotNil(H0); err != nil {
		return nil, fmt.Errorf("symnmf: Optimize: H0: %w", err)
	}
	if H0.Rows() != W.Rows() {
		return nil, fmt.Errorf("symnmf: Optimize: H0 has %d rows, W is %d×%d: %w",
			H0.Rows(), W.Rows(), W.Cols(), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateNonNegative(H0); err != nil {
		return nil, fmt.Errorf("symnmf: Optimize: H0: %w", err)
	}

	H, err := matrix.NewDense(H0.Rows(), H0.Cols())
	if err != nil {
		return nil, fmt.Errorf("symnmf: Optimize: %w", err)
	}
	if err = H.Apply(func(i, j int, _ float64) float64 {
		v, _ := H0.At(i, j)
		return v
	}); err != nil {
		return nil, fmt.Errorf("symnmf: Optimize: %w", err)
	}

	res := &Result{H: H}
	var next *matrix.Dense
	for iter := 1; iter <= o.MaxIter; iter++ {
		if next, err = step(W, H, o.Beta, o.Epsilon); err != nil {
			return nil, fmt.Errorf("symnmf: Optimize: iteration %d: %w", iter, err)
		}
		if res.Delta, err = matrix.FrobeniusDistSq(next, H); err != nil {
			return nil, fmt.Errorf("symnmf: Optimize: iteration %d: %w", iter, err)
		}
		H = next
		res.H, res.Iterations = H, iter
		if o.OnIteration != nil {
			if err = o.OnIteration(iter, H, res.Delta); err != nil {
				return nil, fmt.Errorf("symnmf: Optimize: iteration %d: %w", iter, err)
			}
		}
		if res.Delta < o.Tolerance {
			res.Converged = true
			break
		}
	}

	return res, nil
}

// step computes one update H ∘ (1 − β + β·(W·H) ⊘ (H·(HᵀH) + ε)).
func step(W matrix.Matrix, H *matrix.Dense, beta, eps float64) (*matrix.Dense, error) {
	WH, err := matrix.Mul(W, H)
	if err != nil {
		return nil, err
	}
	HtH, err := matrix.MulTransA(H, H)
	if err != nil {
		return nil, err
	}
	HHtH, err := matrix.Mul(H, HtH)
	if err != nil {
		return nil, err
	}

	// WH becomes the update factor in place.
	var fac, den []float64
	for i := 0; i < WH.Rows(); i++ {
		fac, _ = WH.RawRow(i)
		den, _ = HHtH.RawRow(i)
		for j := range fac {
			fac[j] = 1 - beta + beta*fac[j]/(den[j]+eps)
		}
	}
	next, err := matrix.Hadamard(H, WH)
	if err != nil {
		return nil, err
	}

	return next, nil
}

// Factorize draws H₀ from NewSource(seed) and runs Optimize.
func Factorize(W matrix.Matrix, k int, seed uint64, opts ...Option) (*Result, error) {
	H0, err := InitH(W, k, NewSource(seed))
	if err != nil {
		return nil, err
	}

	return Optimize(W, H0, opts...)
}

// Objective returns ‖W − H·Hᵀ‖_F.
func Objective(W, H matrix.Matrix) (float64, error) {
	HHt, err := matrix.MulTransB(H, H)
	if err != nil {
		return 0, fmt.Errorf("symnmf: Objective: %w", err)
	}
	diff, err := matrix.Sub(W, HHt)
	if err != nil {
		return 0, fmt.Errorf("symnmf: Objective: %w", err)
	}
	norm, err := matrix.FrobeniusNorm(diff)
	if err != nil {
		return 0, fmt.Errorf("symnmf: Objective: %w", err)
	}

	return norm, nil
}
