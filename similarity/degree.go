package similarity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symnmf/matrix"
)

// Degree returns the diagonal degree matrix of A: D[i][i] = Σ_j A[i][j].
//
// Row sums are accumulated left to right, so D[i][i] equals the plain sum
// of row i exactly. A non-positive degree means an isolated point (for
// example a single input point, or points so far apart that every kernel
// value underflows to zero) and yields ErrDegenerate.
func Degree(A matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(A); err != nil {
		return nil, fmt.Errorf("similarity: Degree: %w: %w", ErrShape, err)
	}
	sums, err := matrix.RowSums(A)
	if err != nil {
		return nil, fmt.Errorf("similarity: Degree: %w", err)
	}
	for i, s := range sums {
		if s <= 0 || math.IsNaN(s) {
			return nil, fmt.Errorf("similarity: Degree: row %d sums to %g: %w", i, s, ErrDegenerate)
		}
	}

	D, err := matrix.NewDiagonal(sums)
	if err != nil {
		return nil, fmt.Errorf("similarity: Degree: %w", err)
	}

	return D, nil
}

// Normalized returns W = D^{-1/2}·A·D^{-1/2}, entrywise
// W[i][j] = A[i][j] / sqrt(D[i][i]·D[j][j]).
//
// A must be symmetric and D diagonal (within matrix.DefaultEpsilon), else
// ErrShape. W is then symmetric, because D[i][i]·D[j][j] commutes exactly.
func Normalized(A, D matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(A); err != nil {
		return nil, fmt.Errorf("similarity: Normalized: %w: %w", ErrShape, err)
	}
	if err := matrix.ValidateSquareNonNil(D); err != nil {
		return nil, fmt.Errorf("similarity: Normalized: %w: %w", ErrShape, err)
	}
	if A.Rows() != D.Rows() {
		return nil, fmt.Errorf("similarity: Normalized: A is %d×%d, D is %d×%d: %w",
			A.Rows(), A.Cols(), D.Rows(), D.Cols(), ErrShape)
	}
	if err := matrix.ValidateSymmetric(A); err != nil {
		return nil, fmt.Errorf("similarity: Normalized: A: %w: %w", ErrShape, err)
	}
	if ok, err := matrix.IsZeroOffDiagonal(D); err != nil || !ok {
		return nil, fmt.Errorf("similarity: Normalized: D is not diagonal: %w", ErrShape)
	}
	deg, err := matrix.Diagonal(D)
	if err != nil {
		return nil, fmt.Errorf("similarity: Normalized: %w", err)
	}
	for i, v := range deg {
		if v <= 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("similarity: Normalized: degree %d is %g: %w", i, v, ErrDegenerate)
		}
	}

	n := A.Rows()
	W, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("similarity: Normalized: %w", err)
	}
	var aij float64
	for i := 0; i < n; i++ {
		row, _ := W.RawRow(i) // in range by construction
		for j := 0; j < n; j++ {
			if aij, err = A.At(i, j); err != nil {
				return nil, fmt.Errorf("similarity: Normalized: %w", err)
			}
			row[j] = aij / math.Sqrt(deg[i]*deg[j])
		}
	}

	return W, nil
}

// Norm composes Sym, Degree and Normalized and returns W.
func Norm(points [][]float64, opts ...Option) (*matrix.Dense, error) {
	st, err := Compute(points, opts...)
	if err != nil {
		return nil, err
	}

	return st.W, nil
}

// Compute runs Sym, Degree and Normalized and returns all three matrices.
func Compute(points [][]float64, opts ...Option) (*Stages, error) {
	A, err := Sym(points, opts...)
	if err != nil {
		return nil, err
	}
	D, err := Degree(A)
	if err != nil {
		return nil, err
	}
	W, err := Normalized(A, D)
	if err != nil {
		return nil, err
	}

	return &Stages{A: A, D: D, W: W}, nil
}
