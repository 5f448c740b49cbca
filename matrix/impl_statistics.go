// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the reductions used by the clustering stages: row sums (degrees),
//     the global mean (H₀ scale), and Frobenius norms (convergence and objective).
//
// Exposed API:
//   - RowSums(m)            -> []float64  // Σ_j m[i,j], plain left-to-right sum
//   - Mean(m)               -> float64    // mean over all r*c entries
//   - FrobeniusNorm(m)      -> float64    // ‖m‖_F
//   - FrobeniusDistSq(a, b) -> float64    // ‖a − b‖_F²
//
// Determinism & Performance:
//   - RowSums and FrobeniusDistSq use fixed i→j loops so results are
//     reproducible bit-for-bit (callers compare degrees with exact equality).
//   - Mean and FrobeniusNorm defer to gonum (stat.Mean, mat.Norm).

package matrix

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRowSums         = "RowSums"
	opMean            = "Mean"
	opFrobeniusNorm   = "FrobeniusNorm"
	opFrobeniusDistSq = "FrobeniusDistSq"
)

// RowSums returns vector s where s[i] = Σ_j m[i,j].
// Implementation:
//   - Stage 1: validate m non-nil.
//   - Stage 2: accumulate each row left to right into a fresh float64.
//
// Behavior highlights:
//   - The summation order is fixed (j = 0..c-1), so the result equals a naive
//     loop over the same row exactly.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	sums := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		acc = 0
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j]
		}
		sums[i] = acc
	}

	return sums, nil
}

// Mean returns the arithmetic mean of all entries of m.
// Delegates to gonum stat.Mean over the flat buffer (unweighted).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense.
func Mean(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMean, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}

	return stat.Mean(d.data, nil), nil
}

// FrobeniusNorm returns ‖m‖_F = sqrt(Σ m[i,j]²) via gonum mat.Norm(·, 2).
//
// Errors:
//   - ErrNilMatrix.
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}

	return mat.Norm(d.gonum(), 2), nil
}

// FrobeniusDistSq returns the squared Frobenius norm of a − b without
// allocating the difference.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func FrobeniusDistSq(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opFrobeniusDistSq, err)
	}
	da, db, err := binaryDense(a, b)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusDistSq, err)
	}

	var sum, diff float64
	for idx := range da.data {
		diff = da.data[idx] - db.data[idx]
		sum += diff * diff
	}

	return sum, nil
}
