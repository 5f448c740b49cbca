// SPDX-License-Identifier: MIT
// Package matrix: constructors and small structural helpers.
//
// Purpose:
//   - Build diagonal matrices (degree matrices D).
//   - Extract the diagonal of a square matrix.
//   - Expose AllClose for invariance checks.

package matrix

import "fmt"

const (
	opNewDiagonal = "NewDiagonal"
	opDiagonal    = "Diagonal"
	opAllClose    = "AllClose"
)

// NewDiagonal returns the n×n matrix with diag on the main diagonal and
// zeros elsewhere (n = len(diag)).
//
// Errors:
//   - ErrInvalidDimensions for an empty diag; ErrNaNInf for non-finite entries.
//
// Complexity: O(n^2).
func NewDiagonal(diag []float64) (*Dense, error) {
	n := len(diag)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewDiagonal, err)
	}
	for i, v := range diag {
		if isNonFinite(v) {
			return nil, matrixErrorf(opNewDiagonal, fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
		D.data[i*n+i] = v
	}

	return D, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i], _ = m.At(i, i) // in range after shape validation
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Deterministic. Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
