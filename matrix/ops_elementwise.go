// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels that derive a new cost table from an existing one.
//   - Zero cells mean "no entry" and are carried through untouched, so a
//     kernel never manufactures a cell that was absent in its input.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf wraps an underlying error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MaskedAffine computes, for every non-zero cell,
//
//	out[i,j] = X[i,j] * mul / div + vec[k]
//
// where k = i for AxisRows and k = j for AxisCols. Zero cells stay zero.
// A result that overflows to ±Inf (or is NaN) is left zero as well: such a
// cell could never be part of a finite sum, so it is dropped from the table.
// The operations are applied in exactly that order (multiply, divide, add)
// so results are reproducible bit for bit against other implementations
// evaluating the same expression left to right.
//
// Errors:
//   - ErrNilMatrix if X is nil.
//   - ErrZeroDivisor if div == 0.
//   - ErrNaNInf if mul or div is not finite.
//   - ErrDimensionMismatch if len(vec) does not match the selected axis.
//
// Time: O(r*c). Space: O(r*c). X is never mutated.
func MaskedAffine(X Matrix, mul, div float64, vec []float64, axis Axis) (*Dense, error) {
	// Stage 1 (Validate): operands.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("MaskedAffine", err)
	}
	if math.IsNaN(mul) || math.IsInf(mul, 0) || math.IsNaN(div) || math.IsInf(div, 0) {
		return nil, matrixErrorf("MaskedAffine", ErrNaNInf)
	}
	if div == 0 {
		return nil, matrixErrorf("MaskedAffine", ErrZeroDivisor)
	}
	r, c := X.Rows(), X.Cols()
	want := c
	if axis == AxisRows {
		want = r
	}
	if err := ValidateVecLen(vec, want); err != nil {
		return nil, matrixErrorf("MaskedAffine", err)
	}

	// Stage 2 (Prepare): output buffer.
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("MaskedAffine", err)
	}

	// Stage 3 (Execute): Dense fast-path.
	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if v == 0 {
					continue // absent stays absent
				}
				out.data[base+j] = finiteOrZero(v*mul/div + pick(vec, axis, i, j))
			}
		}

		return out, nil
	}

	// Generic fallback through the bounds-checked interface.
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf("MaskedAffine", err)
			}
			if v == 0 {
				continue
			}
			out.data[i*c+j] = finiteOrZero(v*mul/div + pick(vec, axis, i, j))
		}
	}

	return out, nil
}

// pick returns the broadcast entry for cell (i, j).
func pick(vec []float64, axis Axis, i, j int) float64 {
	if axis == AxisRows {
		return vec[i]
	}

	return vec[j]
}

// finiteOrZero maps NaN and ±Inf to 0 (absent).
func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	return x
}
