// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks
//    on raw [][]float64 tables and []float64 vectors before they are ingested.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Scans run in fixed i→j order, so the first offending cell is always the
//    one reported.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareRows checks that rows describes a non-empty N×N table and
// returns N.
//
// Errors:
//   - ErrInvalidDimensions when len(rows) == 0.
//   - ErrNonSquare when some row has a length other than len(rows).
//
// Complexity: O(N).
func ValidateSquareRows(rows [][]float64) (int, error) {
	n := len(rows)
	if n == 0 {
		return 0, validatorErrorf("ValidateSquareRows", ErrInvalidDimensions)
	}
	for i := range rows {
		if len(rows[i]) != n {
			return 0, validatorErrorf("ValidateSquareRows",
				fmt.Errorf("row %d has %d cols, want %d: %w", i, len(rows[i]), n, ErrNonSquare))
		}
	}

	return n, nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in broadcast kernels.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Complexity: O(len(x)).
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateNonNegative rejects NaN, ±Inf and negative entries, in that order.
// Complexity: O(len(x)).
func ValidateNonNegative(x []float64) error {
	if err := ValidateFinite(x); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	for i, v := range x {
		if v < 0 {
			return validatorErrorf("ValidateNonNegative", fmt.Errorf("index %d: %w", i, ErrNegativeValue))
		}
	}

	return nil
}

// ValidateNonNegativeRows applies ValidateNonNegative to every row and
// reports the offending row.
// Complexity: O(r*c).
func ValidateNonNegativeRows(rows [][]float64) error {
	for i := range rows {
		if err := ValidateNonNegative(rows[i]); err != nil {
			return validatorErrorf("ValidateNonNegativeRows", fmt.Errorf("row %d: %w", i, err))
		}
	}

	return nil
}
