// SPDX-License-Identifier: MIT
// Package matrix provides products, transposition and elementwise arithmetic
// on any Matrix implementation. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Expose the canonical linear-algebra kernels used by the factorization
//     and similarity stages.
//   - Delegate the arithmetic to gonum's mat.Dense, which runs the products
//     through BLAS (dgemm) on the shared row-major buffer.
//
// Notes:
//   - Operands that are not *Dense are materialized once via toDense.
//   - Results are always freshly allocated; operands are never mutated.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opMulTransA = "MulTransA"
	opMulTransB = "MulTransB"
	opTranspose = "Transpose"
	opHadamard  = "Hadamard"
	opToDense   = "toDense"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it already is a *Dense, otherwise a Dense copy.
// Implementation:
//   - Stage 1: type-assert the fast path.
//   - Stage 2: fallback At loop in fixed i→j order.
//
// Complexity:
//   - Time O(1) fast path, O(r*c) fallback.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToDense, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// binaryDense validates two operands and returns their Dense forms.
func binaryDense(a, b Matrix) (*Dense, *Dense, error) {
	da, err := toDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := toDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Allocate C (r × c) and run gonum mat.Dense.Mul into its buffer.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, db, err := binaryDense(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res.gonum().Mul(da.gonum(), db.gonum())

	return res, nil
}

// MulTransA computes C = Aᵀ × B without materializing Aᵀ.
// Requires A.Rows == B.Rows. Used for Gram matrices HᵀH (k×k).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n*r*c), Space O(r*c) where A is n×r and B is n×c.
func MulTransA(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opMulTransA, ErrDimensionMismatch)
	}
	da, db, err := binaryDense(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}
	res, err := NewDense(da.c, db.c)
	if err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}
	res.gonum().Mul(da.gonum().T(), db.gonum())

	return res, nil
}

// MulTransB computes C = A × Bᵀ without materializing Bᵀ.
// Requires A.Cols == B.Cols. Used for H·Hᵀ (n×n).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c) where A is r×k and B is c×k.
func MulTransB(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulTransB, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulTransB, err)
	}
	if a.Cols() != b.Cols() {
		return nil, matrixErrorf(opMulTransB, ErrDimensionMismatch)
	}
	da, db, err := binaryDense(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulTransB, err)
	}
	res, err := NewDense(da.r, db.r)
	if err != nil {
		return nil, matrixErrorf(opMulTransB, err)
	}
	res.gonum().Mul(da.gonum(), db.gonum().T())

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(dm.c, dm.r) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < dm.r; i++ {
		baseSrc = i * dm.c
		for j = 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Sub computes elementwise a − b for identically shaped operands.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, db, err := binaryDense(a, b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res.gonum().Sub(da.gonum(), db.gonum())

	return res, nil
}

// Hadamard computes the elementwise product a ∘ b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	da, db, err := binaryDense(a, b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res.gonum().MulElem(da.gonum(), db.gonum())

	return res, nil
}
