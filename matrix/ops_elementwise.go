// SPDX-License-Identifier: MIT
// Package matrix: element-wise micro-kernels (ew*).
//
// Purpose:
//   - Centralize tight elementwise loops so facades stay declarative.

package matrix

import "math"

// ewAllClose implements AllClose.
// Implementation:
//   - Stage 1: reject NaN/Inf tolerances, normalize signs.
//   - Stage 2: validate operands (nil, shape).
//   - Stage 3: flat loop over both buffers with early exit on first violation.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, db, err := binaryDense(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff float64
	for idx := range da.data {
		diff = math.Abs(da.data[idx] - db.data[idx])
		// NaN compares false, so a NaN diff must be rejected explicitly.
		if math.IsNaN(diff) || diff > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}
